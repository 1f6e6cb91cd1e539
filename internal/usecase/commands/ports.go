package commands

import (
	"context"
	"time"

	"lab-reservation/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports_mock.go -package=commandsmock

// PaymentRequester asks the finance system to collect a booking fee.
type PaymentRequester interface {
	RequestPayment(ctx context.Context, req PaymentRequest) (*PaymentAck, error)
}

type PaymentRequest struct {
	BookingCode   string
	ApplicantID   uuid.UUID
	ApplicantName string
	ApplicantCode string
	DeviceCode    string
	DeviceName    string
	BookingDate   time.Time
	Slot          string
	Amount        decimal.Decimal
}

type PaymentAck struct {
	Reference string
}

// Observer receives booking lifecycle signals for metrics.
type Observer interface {
	BookingAdmitted(class booking.ApplicantClass)
	BookingsDisplaced(n int)
	TransitionApplied(from, to booking.Status)
	CollaboratorFailed(collaborator string)
}

const (
	CollaboratorLedger  = "ledger"
	CollaboratorPayment = "payment"
)

type NopObserver struct{}

func (NopObserver) BookingAdmitted(booking.ApplicantClass)           {}
func (NopObserver) BookingsDisplaced(int)                            {}
func (NopObserver) TransitionApplied(booking.Status, booking.Status) {}
func (NopObserver) CollaboratorFailed(string)                        {}

// BookingPolicy carries the configurable parts of admission.
type BookingPolicy struct {
	WindowDays int
	Location   *time.Location
	Catalog    booking.SlotCatalog
}

// withDefaults fills a zero Location with UTC.
func (p BookingPolicy) withDefaults() BookingPolicy {
	if p.Location == nil {
		p.Location = time.UTC
	}
	return p
}

func DefaultBookingPolicy() BookingPolicy {
	return BookingPolicy{
		WindowDays: booking.DefaultWindowDays,
		Location:   time.UTC,
		Catalog:    booking.DefaultCatalog(),
	}
}
