package device

import (
	"strings"
	"time"

	"lab-reservation/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidStatus       = errs.New("invalid device status")
	ErrInvalidCode         = errs.New("device code must not be empty")
	ErrNegativePrice       = errs.New("device price must not be negative")
	ErrDiscardedIsTerminal = errs.New("discarded device cannot change status")
	ErrStatusUnchanged     = errs.New("device already in requested status")
	ErrNotFound            = errs.New("device not found")
)

// Device is a piece of lab equipment. Physical status is independent of
// slot occupancy.
type Device struct {
	id            uuid.UUID
	code          string
	model         string
	manufacturer  string
	status        PhysicalStatus
	priceInternal decimal.Decimal
	priceExternal decimal.Decimal
	createdAt     time.Time
	updatedAt     time.Time
}

func NewDevice(code, model, manufacturer string, priceInternal, priceExternal decimal.Decimal, now time.Time) (*Device, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrInvalidCode
	}
	if priceInternal.IsNegative() || priceExternal.IsNegative() {
		return nil, ErrNegativePrice
	}
	return &Device{
		id:            uuid.New(),
		code:          code,
		model:         model,
		manufacturer:  manufacturer,
		status:        StatusAvailable,
		priceInternal: priceInternal,
		priceExternal: priceExternal,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructDevice(id uuid.UUID, code, model, manufacturer string, status PhysicalStatus, priceInternal, priceExternal decimal.Decimal, createdAt, updatedAt time.Time) *Device {
	return &Device{
		id:            id,
		code:          code,
		model:         model,
		manufacturer:  manufacturer,
		status:        status,
		priceInternal: priceInternal,
		priceExternal: priceExternal,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (d *Device) ID() uuid.UUID                  { return d.id }
func (d *Device) Code() string                   { return d.code }
func (d *Device) Model() string                  { return d.model }
func (d *Device) Manufacturer() string           { return d.manufacturer }
func (d *Device) Status() PhysicalStatus         { return d.status }
func (d *Device) PriceInternal() decimal.Decimal { return d.priceInternal }
func (d *Device) PriceExternal() decimal.Decimal { return d.priceExternal }
func (d *Device) CreatedAt() time.Time           { return d.createdAt }
func (d *Device) UpdatedAt() time.Time           { return d.updatedAt }

// AcceptsBookings is false for maintenance and discarded devices, whatever
// the slot state.
func (d *Device) AcceptsBookings() bool {
	return d.status == StatusAvailable
}

func (d *Device) ChangeStatus(to PhysicalStatus, now time.Time) error {
	if !to.IsValid() {
		return ErrInvalidStatus
	}
	if d.status == StatusDiscarded {
		return ErrDiscardedIsTerminal
	}
	if d.status == to {
		return ErrStatusUnchanged
	}
	d.status = to
	d.updatedAt = now
	return nil
}
