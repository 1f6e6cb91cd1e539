package request

import (
	"strings"
	"time"

	"lab-reservation/internal/domain/booking"
	"lab-reservation/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	DeviceCode string     `json:"device_code" binding:"required,max=64"`
	Date       string     `json:"date" binding:"required,datetime=2006-01-02"`
	Slot       string     `json:"slot" binding:"required"`
	Purpose    string     `json:"purpose" binding:"max=2000"`
	AdvisorID  *uuid.UUID `json:"advisor_id"`
}

func (r *CreateBookingRequest) ToCommand() (commands.CreateBookingRequest, error) {
	date, err := time.Parse(time.DateOnly, r.Date)
	if err != nil {
		return commands.CreateBookingRequest{}, booking.ErrInvalidDateRange
	}
	return commands.CreateBookingRequest{
		DeviceCode: strings.TrimSpace(r.DeviceCode),
		Date:       date,
		Slot:       r.Slot,
		Purpose:    r.Purpose,
		AdvisorID:  r.AdvisorID,
	}, nil
}

// ListBookingsQuery binds GET /bookings query parameters.
type ListBookingsQuery struct {
	Status []string `form:"status"`
	After  string   `form:"after"`
	Limit  int      `form:"limit" binding:"omitempty,min=1,max=200"`
}

func (q *ListBookingsQuery) Statuses() ([]booking.Status, error) {
	out := make([]booking.Status, 0, len(q.Status))
	for _, raw := range q.Status {
		for _, s := range strings.Split(raw, ",") {
			if s == "" {
				continue
			}
			st, err := booking.NewStatus(s)
			if err != nil {
				return nil, err
			}
			out = append(out, st)
		}
	}
	return out, nil
}

type AvailabilityQuery struct {
	Date string `form:"date" binding:"required,datetime=2006-01-02"`
	Slot string `form:"slot"`
}
