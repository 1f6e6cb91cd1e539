package commands

import (
	"context"
	"log/slog"

	"lab-reservation/internal/domain/booking"
	"lab-reservation/internal/domain/identity"
	"lab-reservation/internal/domain/user"
	"lab-reservation/internal/infra"
	"lab-reservation/internal/pkg/errs"
	"lab-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

// CreateBooking admits a new booking. Checks run in a fixed order and the
// first failure wins: date window, device, slot conflict, advisor.
func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, actor identity.Actor, req CreateBookingRequest) (*CreateBookingResult, error) {
	class, err := booking.ClassOf(actor.Roles)
	if err != nil {
		return nil, err
	}
	if _, ok := c.policy.Catalog.Lookup(req.Slot); !ok {
		return nil, booking.ErrInvalidSlot
	}

	today := c.today()
	date := booking.DateOf(req.Date)
	if err := booking.ValidateWindow(date, today, c.policy.WindowDays); err != nil {
		return nil, err
	}

	var result *CreateBookingResult
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := c.clock.Now()

		dev, err := tx.Devices().FindByCode(ctx, req.DeviceCode)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return booking.ErrDeviceUnavailable
			}
			return mapRepoErr(err)
		}
		if !dev.AcceptsBookings() {
			return booking.ErrDeviceUnavailable
		}

		key := booking.SlotKey{DeviceID: dev.ID(), Date: date, Slot: req.Slot}
		displaced, err := c.resolveConflicts(ctx, tx, key, class, now)
		if err != nil {
			return err
		}

		if class == booking.ClassStudent {
			if err := c.checkAdvisor(ctx, tx, actor.UserID, req.AdvisorID); err != nil {
				return err
			}
		}

		seq, err := tx.CodeSequences().Next(ctx, today)
		if err != nil {
			return mapRepoErr(err)
		}

		b, err := booking.New(booking.NewParams{
			Code:           booking.FormatCode(today, seq),
			ApplicantID:    actor.UserID,
			ApplicantClass: class,
			DeviceID:       dev.ID(),
			DeviceCode:     dev.Code(),
			AdvisorID:      req.AdvisorID,
			Date:           date,
			Slot:           req.Slot,
			Purpose:        req.Purpose,
			PaymentAmount:  booking.PaymentFor(class, dev.PriceExternal()),
			Now:            now,
		})
		if err != nil {
			return err
		}

		if err := tx.Bookings().Insert(ctx, b); err != nil {
			return mapRepoErr(err)
		}

		result = &CreateBookingResult{Booking: b, Displaced: displaced}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.observer.BookingAdmitted(class)
	if len(result.Displaced) > 0 {
		c.observer.BookingsDisplaced(len(result.Displaced))
	}
	slog.Info("booking admitted",
		"code", result.Booking.Code(),
		"applicant_class", string(class),
		"device", result.Booking.DeviceCode(),
		"date", date.Format("2006-01-02"),
		"slot", req.Slot,
		"displaced", len(result.Displaced))

	return result, nil
}

// checkAdvisor requires the referenced user to hold the teacher role and be
// linked to the student.
func (c *bookingCommandsImpl) checkAdvisor(ctx context.Context, tx shared.Tx, studentID uuid.UUID, advisorID *uuid.UUID) error {
	if advisorID == nil || *advisorID == uuid.Nil {
		return booking.ErrAdvisorRequired
	}

	teacher, err := tx.Users().FindByID(ctx, *advisorID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return booking.ErrNotYourAdvisor
		}
		return mapRepoErr(err)
	}
	if !teacher.HasRole(user.RoleTeacher) {
		return booking.ErrNotYourAdvisor
	}

	linked, err := tx.Advisors().IsAdvisor(ctx, studentID, *advisorID)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !linked {
		return booking.ErrNotYourAdvisor
	}
	return nil
}
