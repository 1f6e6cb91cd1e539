package response

import (
	"time"

	"lab-reservation/internal/domain/booking"
	"lab-reservation/internal/usecase/commands"
	"lab-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookingResponse is the write-side echo of a booking after a command.
type BookingResponse struct {
	ID             uuid.UUID       `json:"id"`
	Code           string          `json:"code"`
	ApplicantID    uuid.UUID       `json:"applicant_id"`
	ApplicantClass string          `json:"applicant_class"`
	DeviceCode     string          `json:"device_code"`
	AdvisorID      *uuid.UUID      `json:"advisor_id,omitempty"`
	Date           string          `json:"date"`
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

type CreateBookingResponse struct {
	Booking   *BookingResponse   `json:"booking"`
	Displaced []*BookingResponse `json:"displaced"`
}

type BookingListResponse struct {
	Items      []*queries.BookingView `json:"items"`
	NextCursor string                 `json:"next_cursor,omitempty"`
}

type BatchDecisionResult struct {
	Code    string           `json:"code"`
	Booking *BookingResponse `json:"booking,omitempty"`
	Error   string           `json:"error,omitempty"`
}

type BatchDecisionResponse struct {
	Results   []BatchDecisionResult `json:"results"`
	Succeeded int                   `json:"succeeded"`
	Failed    int                   `json:"failed"`
}

type PaymentCallbackResponse struct {
	BookingCode string `json:"booking_code"`
	Status      string `json:"status"`
	Applied     bool   `json:"applied"`
}

func FromBooking(b *booking.Booking) *BookingResponse {
	if b == nil {
		return nil
	}
	return &BookingResponse{
		ID:             b.ID(),
		Code:           b.Code(),
		ApplicantID:    b.ApplicantID(),
		ApplicantClass: b.ApplicantClass().String(),
		DeviceCode:     b.DeviceCode(),
		AdvisorID:      b.AdvisorID(),
		Date:           b.Date().Format(time.DateOnly),
		Slot:           b.Slot(),
		Purpose:        b.Purpose(),
		Status:         b.Status().String(),
		PaymentAmount:  b.PaymentAmount(),
		PaymentStatus:  string(b.PaymentStatus()),
		RefundAmount:   b.RefundAmount(),
		ReturnedAt:     b.ReturnedAt(),
		CreatedAt:      b.CreatedAt(),
		UpdatedAt:      b.UpdatedAt(),
	}
}

func FromCreateResult(r *commands.CreateBookingResult) *CreateBookingResponse {
	displaced := make([]*BookingResponse, 0, len(r.Displaced))
	for _, d := range r.Displaced {
		displaced = append(displaced, FromBooking(d))
	}
	return &CreateBookingResponse{Booking: FromBooking(r.Booking), Displaced: displaced}
}

func FromBatchResults(results []commands.BatchResult) *BatchDecisionResponse {
	resp := &BatchDecisionResponse{Results: make([]BatchDecisionResult, 0, len(results))}
	for _, r := range results {
		item := BatchDecisionResult{Code: r.Code}
		if r.Err != nil {
			item.Error = r.Err.Error()
			resp.Failed++
		} else {
			item.Booking = FromBooking(r.Booking)
			resp.Succeeded++
		}
		resp.Results = append(resp.Results, item)
	}
	return resp
}
