//go:build unit || e2e

package builder

import (
	"time"

	"lab-reservation/internal/domain/booking"
	"lab-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingBuilder struct {
	ID             uuid.UUID
	Code           string
	ApplicantID    uuid.UUID
	ApplicantClass string
	DeviceID       uuid.UUID
	DeviceCode     string
	AdvisorID      *uuid.UUID
	Date           time.Time
	Slot           string
	Purpose        string
	Status         string
	PaymentAmount  decimal.Decimal
	PaymentStatus  string
	RefundAmount   decimal.Decimal
	Now            time.Time
}

func NewBookingBuilder() *BookingBuilder {
	advisor := uuid.New()
	return &BookingBuilder{
		ID:             uuid.New(),
		Code:           "BOOK20250601001",
		ApplicantID:    uuid.New(),
		ApplicantClass: "student",
		DeviceID:       uuid.New(),
		DeviceCode:     "D1",
		AdvisorID:      &advisor,
		Date:           time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		Slot:           "08:00-10:00",
		Purpose:        "cell imaging",
		Status:         "teacher_pending",
		PaymentAmount:  decimal.Zero,
		PaymentStatus:  "unpaid",
		RefundAmount:   decimal.Zero,
		Now:            time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods

// BuildDomain creates a fresh booking through the admission constructor,
// so Status, PaymentStatus and RefundAmount are ignored.
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	return booking.New(booking.NewParams{
		Code:           b.Code,
		ApplicantID:    b.ApplicantID,
		ApplicantClass: booking.ApplicantClass(b.ApplicantClass),
		DeviceID:       b.DeviceID,
		DeviceCode:     b.DeviceCode,
		AdvisorID:      b.AdvisorID,
		Date:           b.Date,
		Slot:           b.Slot,
		Purpose:        b.Purpose,
		PaymentAmount:  b.PaymentAmount,
		Now:            b.Now,
	})
}

// BuildStored returns a booking in exactly the builder's state.
func (b *BookingBuilder) BuildStored() *booking.Booking {
	return booking.Reconstruct(b.BuildSnapshot())
}

func (b *BookingBuilder) BuildSnapshot() booking.Snapshot {
	return booking.Snapshot{
		ID:             b.ID,
		Code:           b.Code,
		ApplicantID:    b.ApplicantID,
		ApplicantClass: booking.ApplicantClass(b.ApplicantClass),
		DeviceID:       b.DeviceID,
		DeviceCode:     b.DeviceCode,
		AdvisorID:      b.AdvisorID,
		Date:           b.Date,
		Slot:           b.Slot,
		Purpose:        b.Purpose,
		Status:         booking.Status(b.Status),
		PaymentAmount:  b.PaymentAmount,
		PaymentStatus:  booking.PaymentStatus(b.PaymentStatus),
		RefundAmount:   b.RefundAmount,
		CreatedAt:      b.Now,
		UpdatedAt:      b.Now,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:             b.ID,
		Code:           b.Code,
		ApplicantID:    b.ApplicantID,
		ApplicantName:  "Test User",
		ApplicantClass: b.ApplicantClass,
		DeviceID:       b.DeviceID,
		DeviceCode:     b.DeviceCode,
		DeviceName:     "Confocal Microscope LSM 900",
		AdvisorID:      b.AdvisorID,
		Date:           b.Date,
		Slot:           b.Slot,
		Purpose:        b.Purpose,
		Status:         b.Status,
		PaymentAmount:  b.PaymentAmount,
		PaymentStatus:  b.PaymentStatus,
		RefundAmount:   b.RefundAmount,
		CreatedAt:      b.Now,
		UpdatedAt:      b.Now,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithCode(code string) *BookingBuilder {
	b.Code = code
	return b
}

func (b *BookingBuilder) WithApplicant(id uuid.UUID, class string) *BookingBuilder {
	b.ApplicantID = id
	b.ApplicantClass = class
	if class != "student" {
		b.AdvisorID = nil
	}
	return b
}

func (b *BookingBuilder) WithAdvisor(id uuid.UUID) *BookingBuilder {
	b.AdvisorID = &id
	return b
}

func (b *BookingBuilder) WithoutAdvisor() *BookingBuilder {
	b.AdvisorID = nil
	return b
}

func (b *BookingBuilder) WithDevice(id uuid.UUID, code string) *BookingBuilder {
	b.DeviceID = id
	b.DeviceCode = code
	return b
}

func (b *BookingBuilder) WithDate(date time.Time) *BookingBuilder {
	b.Date = date
	return b
}

func (b *BookingBuilder) WithSlot(slot string) *BookingBuilder {
	b.Slot = slot
	return b
}

func (b *BookingBuilder) WithStatus(status string) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithPayment(amount string, status string) *BookingBuilder {
	b.PaymentAmount = decimal.RequireFromString(amount)
	b.PaymentStatus = status
	return b
}

func (b *BookingBuilder) AsStudent() *BookingBuilder {
	b.ApplicantClass = "student"
	b.Status = "teacher_pending"
	if b.AdvisorID == nil {
		advisor := uuid.New()
		b.AdvisorID = &advisor
	}
	b.PaymentAmount = decimal.Zero
	return b
}

func (b *BookingBuilder) AsTeacher() *BookingBuilder {
	b.ApplicantClass = "teacher"
	b.Status = "pending"
	b.AdvisorID = nil
	b.PaymentAmount = decimal.Zero
	return b
}

func (b *BookingBuilder) AsExternal() *BookingBuilder {
	b.ApplicantClass = "external"
	b.Status = "pending"
	b.AdvisorID = nil
	b.PaymentAmount = decimal.RequireFromString("100.00")
	return b
}
