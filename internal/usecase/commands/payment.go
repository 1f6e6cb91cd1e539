package commands

import (
	"context"
	"log/slog"
	"time"

	"lab-reservation/internal/domain/booking"
	"lab-reservation/internal/pkg/clock"
	"lab-reservation/internal/usecase/shared"
)

//go:generate mockgen -source=payment.go -destination=../../../tests/mock/commands/payment_mock.go -package=commandsmock

const (
	CallbackPaid   = "paid"
	CallbackFailed = "failed"
)

type PaymentCallback struct {
	BookingCode string
	Status      string
	PaidAt      *time.Time
}

type PaymentOutcome struct {
	Booking *booking.Booking
	// Applied is false for failed notices and redelivered paid notices.
	Applied bool
}

type PaymentCommands interface {
	HandlePaymentCallback(ctx context.Context, cb PaymentCallback) (*PaymentOutcome, error)
}

type paymentCommandsImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	policy   BookingPolicy
	observer Observer
}

func NewPaymentCommands(uow shared.UnitOfWork, clk clock.Clock, policy BookingPolicy, observer Observer) PaymentCommands {
	if observer == nil {
		observer = NopObserver{}
	}
	return &paymentCommandsImpl{
		uow:      uow,
		clock:    clk,
		policy:   policy.withDefaults(),
		observer: observer,
	}
}

// HandlePaymentCallback is safe under at-least-once delivery: the booking
// row is locked, so a duplicate paid notice sees manager_approved and no-ops.
func (c *paymentCommandsImpl) HandlePaymentCallback(ctx context.Context, cb PaymentCallback) (*PaymentOutcome, error) {
	if cb.Status != CallbackPaid && cb.Status != CallbackFailed {
		return nil, ErrInvalidPaymentStatus
	}

	var (
		out *PaymentOutcome
		tr  booking.Transition
	)
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByCodeForUpdate(ctx, cb.BookingCode)
		if err != nil {
			return mapRepoErr(err)
		}

		if cb.Status == CallbackFailed {
			out = &PaymentOutcome{Booking: b, Applied: false}
			return nil
		}

		var changed bool
		tr, changed, err = b.ConfirmPayment(c.clock.Now())
		if err != nil {
			return err
		}
		if !changed {
			out = &PaymentOutcome{Booking: b, Applied: false}
			return nil
		}

		if err := tx.Bookings().Update(ctx, b); err != nil {
			return mapRepoErr(err)
		}
		recordBorrow(ctx, tx, c.policy, c.observer, b)

		out = &PaymentOutcome{Booking: b, Applied: true}
		return nil
	})
	if err != nil {
		return nil, err
	}

	switch {
	case out.Applied:
		c.observer.TransitionApplied(tr.From, tr.To)
		slog.Info("payment confirmed", "code", cb.BookingCode)
	case cb.Status == CallbackFailed:
		slog.Warn("payment failed, booking left in place", "code", cb.BookingCode, "status", string(out.Booking.Status()))
	default:
		slog.Info("duplicate payment notice ignored", "code", cb.BookingCode)
	}
	return out, nil
}
