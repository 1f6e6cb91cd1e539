package commands

import (
	"context"
	"encoding/json"
	"log/slog"

	"lab-reservation/internal/domain/booking"
	"lab-reservation/internal/domain/identity"
	"lab-reservation/internal/usecase/shared"
)

type refundNotice struct {
	BookingCode  string `json:"booking_code"`
	ApplicantID  string `json:"applicant_id"`
	RefundAmount string `json:"refund_amount"`
}

func (c *bookingCommandsImpl) Cancel(ctx context.Context, actor identity.Actor, code string) (*booking.Booking, error) {
	today := c.today()

	var (
		cancelled *booking.Booking
		tr        booking.Transition
	)
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := c.clock.Now()

		b, err := tx.Bookings().FindByCodeForUpdate(ctx, code)
		if err != nil {
			return mapRepoErr(err)
		}

		tr, err = b.Cancel(actor.UserID, today, now)
		if err != nil {
			return err
		}

		if err := tx.Bookings().Update(ctx, b); err != nil {
			return mapRepoErr(err)
		}

		if b.PaymentStatus() == booking.PaymentRefunded {
			payload, err := json.Marshal(refundNotice{
				BookingCode:  b.Code(),
				ApplicantID:  b.ApplicantID().String(),
				RefundAmount: b.RefundAmount().StringFixed(2),
			})
			if err != nil {
				return err
			}
			if err := tx.Notifications().CreateJob(ctx, shared.JobKindEmail, shared.TopicRefundIssued, payload, now); err != nil {
				return mapRepoErr(err)
			}
		}

		cancelled = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.observer.TransitionApplied(tr.From, tr.To)
	slog.Info("booking cancelled",
		"code", cancelled.Code(),
		"from", string(tr.From),
		"refund", cancelled.RefundAmount().StringFixed(2))

	return cancelled, nil
}
