package request

import (
	"time"

	"lab-reservation/internal/usecase/commands"
)

// PaymentCallbackRequest is posted by the finance office once a fee is
// settled or has failed.
type PaymentCallbackRequest struct {
	BookingCode   string     `json:"booking_code" binding:"required"`
	PaymentStatus string     `json:"payment_status" binding:"required"`
	PaymentTime   *time.Time `json:"payment_time"`
}

func (r *PaymentCallbackRequest) ToCommand() commands.PaymentCallback {
	return commands.PaymentCallback{
		BookingCode: r.BookingCode,
		Status:      r.PaymentStatus,
		PaidAt:      r.PaymentTime,
	}
}
