package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookingView represents read-optimized booking data joined with names
type BookingView struct {
	ID             uuid.UUID       `json:"id"`
	Code           string          `json:"code"`
	ApplicantID    uuid.UUID       `json:"applicant_id"`
	ApplicantName  string          `json:"applicant_name"`
	ApplicantClass string          `json:"applicant_class"`
	DeviceID       uuid.UUID       `json:"device_id"`
	DeviceCode     string          `json:"device_code"`
	DeviceName     string          `json:"device_name"`
	AdvisorID      *uuid.UUID      `json:"advisor_id,omitempty"`
	AdvisorName    *string         `json:"advisor_name,omitempty"`
	Date           time.Time       `json:"date"`
	Slot           string          `json:"slot"`
	Purpose        string          `json:"purpose"`
	Status         string          `json:"status"`
	PaymentAmount  decimal.Decimal `json:"payment_amount"`
	PaymentStatus  string          `json:"payment_status"`
	RefundAmount   decimal.Decimal `json:"refund_amount"`
	ReturnedAt     *time.Time      `json:"returned_at,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ApprovalView is one entry of a booking's approval trail
type ApprovalView struct {
	ID           uuid.UUID `json:"id"`
	ApproverID   uuid.UUID `json:"approver_id"`
	ApproverName string    `json:"approver_name"`
	Level        string    `json:"level"`
	Action       string    `json:"action"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"created_at"`
}

type BookingDetailView struct {
	BookingView
	Approvals []ApprovalView `json:"approvals"`
}

// DeviceView represents read-optimized device data
type DeviceView struct {
	ID            uuid.UUID       `json:"id"`
	Code          string          `json:"code"`
	Model         string          `json:"model"`
	Manufacturer  string          `json:"manufacturer"`
	Status        string          `json:"status"`
	PriceInternal decimal.Decimal `json:"price_internal"`
	PriceExternal decimal.Decimal `json:"price_external"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type SlotAvailabilityView struct {
	Slot   string `json:"slot"`
	Start  string `json:"start"`
	End    string `json:"end"`
	State  string `json:"state"`
	Reason string `json:"reason,omitempty"`
}

type AvailabilityView struct {
	DeviceCode   string                 `json:"device_code"`
	DeviceStatus string                 `json:"device_status"`
	Date         time.Time              `json:"date"`
	Slots        []SlotAvailabilityView `json:"slots"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	UserCode string    `json:"user_code"`
	Roles    []string  `json:"roles"`
	IsActive bool      `json:"is_active"`
}
