package converter

import (
	"time"

	"lab-reservation/internal/domain/booking"
	"lab-reservation/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// BookingColumns is the column order BookingRow scans.
var BookingColumns = []string{
	"b.id", "b.code", "b.applicant_id", "b.applicant_class", "b.device_id", "d.code",
	"b.advisor_id", "b.booking_date", "b.slot", "b.purpose", "b.status",
	"b.payment_amount", "b.payment_status", "b.refund_amount", "b.returned_at",
	"b.created_at", "b.updated_at",
}

type BookingRow struct {
	ID             uuid.UUID
	Code           string
	ApplicantID    uuid.UUID
	ApplicantClass string
	DeviceID       uuid.UUID
	DeviceCode     string
	AdvisorID      pgtype.UUID
	Date           time.Time
	Slot           string
	Purpose        string
	Status         string
	PaymentAmount  pgtype.Numeric
	PaymentStatus  string
	RefundAmount   pgtype.Numeric
	ReturnedAt     pgtype.Timestamptz
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ScanTargets returns pointers in BookingColumns order.
func (r *BookingRow) ScanTargets() []any {
	return []any{
		&r.ID, &r.Code, &r.ApplicantID, &r.ApplicantClass, &r.DeviceID, &r.DeviceCode,
		&r.AdvisorID, &r.Date, &r.Slot, &r.Purpose, &r.Status,
		&r.PaymentAmount, &r.PaymentStatus, &r.RefundAmount, &r.ReturnedAt,
		&r.CreatedAt, &r.UpdatedAt,
	}
}

func BookingToDomain(r BookingRow) (*booking.Booking, error) {
	class, err := booking.NewApplicantClass(r.ApplicantClass)
	if err != nil {
		return nil, err
	}
	status, err := booking.NewStatus(r.Status)
	if err != nil {
		return nil, err
	}
	payStatus, err := booking.NewPaymentStatus(r.PaymentStatus)
	if err != nil {
		return nil, err
	}
	payment, err := pgconv.DecimalFromNumeric(r.PaymentAmount)
	if err != nil {
		return nil, err
	}
	refund, err := pgconv.DecimalFromNumeric(r.RefundAmount)
	if err != nil {
		return nil, err
	}

	return booking.Reconstruct(booking.Snapshot{
		ID:             r.ID,
		Code:           r.Code,
		ApplicantID:    r.ApplicantID,
		ApplicantClass: class,
		DeviceID:       r.DeviceID,
		DeviceCode:     r.DeviceCode,
		AdvisorID:      pgconv.UUIDPtrFromPgtype(r.AdvisorID),
		Date:           pgconv.DateOnly(r.Date),
		Slot:           r.Slot,
		Purpose:        r.Purpose,
		Status:         status,
		PaymentAmount:  payment,
		PaymentStatus:  payStatus,
		RefundAmount:   refund,
		ReturnedAt:     pgconv.TimePtrFromPgtype(r.ReturnedAt),
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}), nil
}

// BookingInsertColumns matches BookingInsertValues.
var BookingInsertColumns = []string{
	"id", "code", "applicant_id", "applicant_class", "device_id", "advisor_id",
	"booking_date", "slot", "purpose", "status", "payment_amount", "payment_status",
	"refund_amount", "returned_at", "created_at", "updated_at",
}

func BookingInsertValues(b *booking.Booking) []any {
	s := b.Snapshot()
	return []any{
		s.ID, s.Code, s.ApplicantID, string(s.ApplicantClass), s.DeviceID,
		pgconv.UUIDPtrToPgtype(s.AdvisorID), s.Date, s.Slot, s.Purpose, string(s.Status),
		pgconv.NumericFromDecimal(s.PaymentAmount), string(s.PaymentStatus),
		pgconv.NumericFromDecimal(s.RefundAmount), pgconv.TimePtrToPgtype(s.ReturnedAt),
		s.CreatedAt, s.UpdatedAt,
	}
}

// BookingMutableFields are the columns an Update may change.
func BookingMutableFields(b *booking.Booking) map[string]any {
	s := b.Snapshot()
	return map[string]any{
		"status":         string(s.Status),
		"payment_status": string(s.PaymentStatus),
		"refund_amount":  pgconv.NumericFromDecimal(s.RefundAmount),
		"returned_at":    pgconv.TimePtrToPgtype(s.ReturnedAt),
		"updated_at":     s.UpdatedAt,
	}
}
