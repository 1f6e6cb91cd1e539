package bootstrap

import (
	"log/slog"

	"lab-reservation/internal/domain/booking"
	"lab-reservation/internal/infra/finance"
	"lab-reservation/internal/infra/slotcatalog"
	"lab-reservation/internal/pkg/config"
	"lab-reservation/internal/usecase/commands"

	"go.uber.org/fx"
)

var BookingModule = fx.Module("booking",
	fx.Provide(
		NewSlotCatalog,
		NewBookingPolicy,
		NewPaymentRequester,
	),
)

func NewSlotCatalog(cfg config.Config) (booking.SlotCatalog, error) {
	catalog, err := slotcatalog.Load(cfg.Booking.SlotCatalogPath)
	if err != nil {
		return booking.SlotCatalog{}, err
	}
	slog.Info("slot catalog loaded", "slots", catalog.Names())
	return catalog, nil
}

func NewBookingPolicy(cfg config.Config, catalog booking.SlotCatalog) (commands.BookingPolicy, error) {
	loc, err := cfg.Booking.Location()
	if err != nil {
		return commands.BookingPolicy{}, err
	}
	return commands.BookingPolicy{
		WindowDays: cfg.Booking.WindowDays,
		Location:   loc,
		Catalog:    catalog,
	}, nil
}

// NewPaymentRequester falls back to logging requests when no finance
// endpoint is configured.
func NewPaymentRequester(cfg config.Config) commands.PaymentRequester {
	if cfg.Finance.BaseURL == "" {
		slog.Warn("FINANCE_BASE_URL not set, payment requests will only be logged")
		return finance.LogOnlyRequester{}
	}
	return finance.NewClient(cfg.Finance.BaseURL, cfg.Finance.CallbackURL, cfg.Finance.Timeout)
}
