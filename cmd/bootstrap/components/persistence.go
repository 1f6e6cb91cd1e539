package components

import (
	"lab-reservation/internal/infra/readstore"
	"lab-reservation/internal/infra/uow"
	"lab-reservation/internal/usecase/queries"
	"lab-reservation/internal/usecase/shared"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	readstoreModule,
	repositoryModule,
)

// Read stores run on the pool directly; write repositories are bound to a
// transaction by the unit of work.
var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewDeviceReadStore,
			fx.As(new(queries.DeviceReadStore)),
		),
		fx.Annotate(
			readstore.NewAvailabilityReadStore,
			fx.As(new(queries.AvailabilityReadStore)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)
