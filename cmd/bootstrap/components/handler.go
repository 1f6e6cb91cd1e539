package components

import (
	"lab-reservation/internal/handler"
	"lab-reservation/internal/handler/api"
	"lab-reservation/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewApprovalHandler,
		api.NewDeviceHandler,
		api.NewAvailabilityHandler,
		api.NewFinanceHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
