package shared

import (
	"context"
	"time"

	"lab-reservation/internal/domain/booking"
	"lab-reservation/internal/domain/device"
	"lab-reservation/internal/domain/user"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes repositories bound to the running transaction.
type Tx interface {
	Bookings() BookingRepository
	Approvals() ApprovalRepository
	Devices() DeviceRepository
	Advisors() AdvisorRepository
	CodeSequences() CodeSequenceRepository
	Ledger() LedgerRepository
	Notifications() NotificationRepository
	Users() UserRepository
}

type BookingRepository interface {
	// LockSlot serializes admissions on one (device, date, slot) until commit.
	LockSlot(ctx context.Context, key booking.SlotKey) error
	// FindOccupants returns occupying bookings for the key, row-locked.
	FindOccupants(ctx context.Context, key booking.SlotKey) ([]*booking.Booking, error)
	FindByCodeForUpdate(ctx context.Context, code string) (*booking.Booking, error)
	// FindStale returns occupying, not fully granted bookings dated on or before
	// the given day. Rows locked by other sweepers are skipped.
	FindStale(ctx context.Context, before time.Time, limit int) ([]*booking.Booking, error)
	Insert(ctx context.Context, b *booking.Booking) error
	Update(ctx context.Context, b *booking.Booking) error
}

type ApprovalRepository interface {
	Append(ctx context.Context, r *booking.ApprovalRecord) error
}

type DeviceRepository interface {
	FindByCode(ctx context.Context, code string) (*device.Device, error)
	FindByID(ctx context.Context, id uuid.UUID) (*device.Device, error)
	Update(ctx context.Context, d *device.Device) error
}

type AdvisorRepository interface {
	IsAdvisor(ctx context.Context, studentID, teacherID uuid.UUID) (bool, error)
}

type CodeSequenceRepository interface {
	// Next returns the next booking sequence number for day, starting at 1.
	Next(ctx context.Context, day time.Time) (int, error)
}

// LedgerRepository writes device ledger rows. Implementations isolate their
// writes so a failure leaves the surrounding transaction usable.
type LedgerRepository interface {
	RecordBorrow(ctx context.Context, e BorrowEntry) error
	RecordReturn(ctx context.Context, e ReturnEntry) error
	RecordDiscard(ctx context.Context, e DiscardEntry) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}

type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}
