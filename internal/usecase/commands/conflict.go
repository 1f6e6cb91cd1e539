package commands

import (
	"context"
	"encoding/json"
	"time"

	"lab-reservation/internal/domain/booking"
	"lab-reservation/internal/usecase/shared"
)

type displacementNotice struct {
	BookingCode  string `json:"booking_code"`
	ApplicantID  string `json:"applicant_id"`
	DeviceCode   string `json:"device_code"`
	BookingDate  string `json:"booking_date"`
	Slot         string `json:"slot"`
	RefundAmount string `json:"refund_amount"`
}

// resolveConflicts serializes on the slot key, displaces external occupants
// when the applicant is internal, and fails if anything else still holds
// the slot.
func (c *bookingCommandsImpl) resolveConflicts(
	ctx context.Context,
	tx shared.Tx,
	key booking.SlotKey,
	class booking.ApplicantClass,
	now time.Time,
) ([]*booking.Booking, error) {
	if err := tx.Bookings().LockSlot(ctx, key); err != nil {
		return nil, mapRepoErr(err)
	}

	occupants, err := tx.Bookings().FindOccupants(ctx, key)
	if err != nil {
		return nil, mapRepoErr(err)
	}

	displace, err := booking.PlanDisplacement(class, occupants)
	if err != nil {
		return nil, err
	}

	for _, b := range displace {
		if _, err := b.Displace(now); err != nil {
			return nil, err
		}
		if err := tx.Bookings().Update(ctx, b); err != nil {
			return nil, mapRepoErr(err)
		}
		if err := enqueueDisplacementNotice(ctx, tx, b, now); err != nil {
			return nil, mapRepoErr(err)
		}
	}
	return displace, nil
}

func enqueueDisplacementNotice(ctx context.Context, tx shared.Tx, b *booking.Booking, now time.Time) error {
	payload, err := json.Marshal(displacementNotice{
		BookingCode:  b.Code(),
		ApplicantID:  b.ApplicantID().String(),
		DeviceCode:   b.DeviceCode(),
		BookingDate:  b.Date().Format("2006-01-02"),
		Slot:         b.Slot(),
		RefundAmount: b.RefundAmount().StringFixed(2),
	})
	if err != nil {
		return err
	}
	return tx.Notifications().CreateJob(ctx, shared.JobKindEmail, shared.TopicBookingDisplaced, payload, now)
}
