package commands

import (
	"context"
	"log/slog"
	"time"

	"lab-reservation/internal/domain/booking"
	"lab-reservation/internal/domain/device"
	"lab-reservation/internal/domain/identity"
	"lab-reservation/internal/domain/user"
	"lab-reservation/internal/usecase/shared"
)

// RecordReturn marks the device of a granted booking as back in the lab.
func (c *bookingCommandsImpl) RecordReturn(ctx context.Context, actor identity.Actor, code string) (*booking.Booking, error) {
	if !actor.Has(user.RoleAdmin) {
		return nil, booking.ErrUnauthorized
	}

	var returned *booking.Booking
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := c.clock.Now()

		b, err := tx.Bookings().FindByCodeForUpdate(ctx, code)
		if err != nil {
			return mapRepoErr(err)
		}
		if err := b.MarkReturned(now); err != nil {
			return err
		}
		if err := tx.Bookings().Update(ctx, b); err != nil {
			return mapRepoErr(err)
		}

		dev, err := tx.Devices().FindByID(ctx, b.DeviceID())
		if err != nil {
			return mapRepoErr(err)
		}
		entry := shared.ReturnEntry{
			DeviceID:    dev.ID(),
			DeviceName:  dev.Model(),
			BookingID:   b.ID(),
			ApplicantID: b.ApplicantID(),
			ReturnedAt:  now,
		}
		if err := tx.Ledger().RecordReturn(ctx, entry); err != nil {
			ledgerFailed(c.observer, "return", b.Code(), err)
		}

		returned = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return returned, nil
}

// recordBorrow writes the borrow entry for a booking that just reached
// manager_approved. Failures are reported, never returned.
func recordBorrow(ctx context.Context, tx shared.Tx, policy BookingPolicy, observer Observer, b *booking.Booking) {
	dev, err := tx.Devices().FindByID(ctx, b.DeviceID())
	if err != nil {
		ledgerFailed(observer, "borrow", b.Code(), err)
		return
	}

	entry := shared.BorrowEntry{
		DeviceID:       dev.ID(),
		DeviceName:     dev.Model(),
		BookingID:      b.ID(),
		BookingCode:    b.Code(),
		ApplicantID:    b.ApplicantID(),
		ExpectedReturn: expectedReturn(policy, b),
	}
	if err := tx.Ledger().RecordBorrow(ctx, entry); err != nil {
		ledgerFailed(observer, "borrow", b.Code(), err)
	}
}

func recordDiscard(ctx context.Context, tx shared.Tx, observer Observer, d *device.Device, reason string, now time.Time) {
	entry := shared.DiscardEntry{
		DeviceID:   d.ID(),
		DeviceName: d.Model(),
		Reason:     reason,
		At:         now,
	}
	if err := tx.Ledger().RecordDiscard(ctx, entry); err != nil {
		ledgerFailed(observer, "discard", d.Code(), err)
	}
}

func expectedReturn(policy BookingPolicy, b *booking.Booking) time.Time {
	if s, ok := policy.Catalog.Lookup(b.Slot()); ok {
		if end, err := s.EndOn(b.Date(), policy.Location); err == nil {
			return end
		}
	}
	d := b.Date()
	return time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 0, 0, policy.Location)
}

func ledgerFailed(observer Observer, op, ref string, err error) {
	observer.CollaboratorFailed(CollaboratorLedger)
	slog.Error("ledger write failed, needs manual reconciliation",
		"operation", op,
		"ref", ref,
		"error", err.Error())
}
