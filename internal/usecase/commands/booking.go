package commands

import (
	"context"
	"time"

	"lab-reservation/internal/domain/booking"
	"lab-reservation/internal/domain/identity"
	"lab-reservation/internal/pkg/clock"
	"lab-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking_mock.go -package=commandsmock

type CreateBookingRequest struct {
	DeviceCode string
	Date       time.Time
	Slot       string
	Purpose    string
	AdvisorID  *uuid.UUID
}

type CreateBookingResult struct {
	Booking   *booking.Booking
	Displaced []*booking.Booking
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, actor identity.Actor, req CreateBookingRequest) (*CreateBookingResult, error)
	Cancel(ctx context.Context, actor identity.Actor, code string) (*booking.Booking, error)
	RecordReturn(ctx context.Context, actor identity.Actor, code string) (*booking.Booking, error)
}

type bookingCommandsImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	policy   BookingPolicy
	observer Observer
}

func NewBookingCommands(uow shared.UnitOfWork, clk clock.Clock, policy BookingPolicy, observer Observer) BookingCommands {
	if observer == nil {
		observer = NopObserver{}
	}
	return &bookingCommandsImpl{
		uow:      uow,
		clock:    clk,
		policy:   policy.withDefaults(),
		observer: observer,
	}
}

func (c *bookingCommandsImpl) today() time.Time {
	return clock.Today(c.clock, c.policy.Location)
}
