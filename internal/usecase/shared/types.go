package shared

import (
	"time"

	"github.com/google/uuid"
)

const (
	LedgerBorrow  = "borrow"
	LedgerReturn  = "return"
	LedgerDiscard = "discard"
)

const (
	JobKindEmail = "email"

	TopicBookingDisplaced = "booking_displaced"
	TopicRefundIssued     = "refund_issued"
)

type BorrowEntry struct {
	DeviceID       uuid.UUID
	DeviceName     string
	BookingID      uuid.UUID
	BookingCode    string
	ApplicantID    uuid.UUID
	ExpectedReturn time.Time
}

type ReturnEntry struct {
	DeviceID    uuid.UUID
	DeviceName  string
	BookingID   uuid.UUID
	ApplicantID uuid.UUID
	ReturnedAt  time.Time
}

type DiscardEntry struct {
	DeviceID   uuid.UUID
	DeviceName string
	Reason     string
	At         time.Time
}
