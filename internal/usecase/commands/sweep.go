package commands

import (
	"context"
	"log/slog"
	"time"

	"lab-reservation/internal/domain/booking"
	"lab-reservation/internal/pkg/clock"
	"lab-reservation/internal/usecase/shared"
)

const sweepBatchSize = 100

type SweepCommands interface {
	// ExpireStale cancels occupying bookings whose date has passed without
	// reaching manager_approved. It returns how many were cancelled.
	ExpireStale(ctx context.Context) (int, error)
}

type sweepCommandsImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	location *time.Location
	observer Observer
}

func NewSweepCommands(uow shared.UnitOfWork, clk clock.Clock, policy BookingPolicy, observer Observer) SweepCommands {
	if observer == nil {
		observer = NopObserver{}
	}
	return &sweepCommandsImpl{uow: uow, clock: clk, location: policy.withDefaults().Location, observer: observer}
}

func (c *sweepCommandsImpl) ExpireStale(ctx context.Context) (int, error) {
	today := clock.Today(c.clock, c.location)
	total := 0

	for {
		var (
			transitions []booking.Transition
			fetched     int
		)
		err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			transitions = transitions[:0]
			now := c.clock.Now()

			stale, err := tx.Bookings().FindStale(ctx, today, sweepBatchSize)
			if err != nil {
				return mapRepoErr(err)
			}
			fetched = len(stale)
			for _, b := range stale {
				tr, err := b.Expire(today, now)
				if err != nil {
					slog.Warn("stale booking skipped",
						"code", b.Code(),
						"status", string(b.Status()),
						"error", err.Error())
					continue
				}
				if err := tx.Bookings().Update(ctx, b); err != nil {
					return mapRepoErr(err)
				}
				transitions = append(transitions, tr)
			}
			return nil
		})
		if err != nil {
			return total, err
		}

		for _, tr := range transitions {
			c.observer.TransitionApplied(tr.From, tr.To)
		}
		total += len(transitions)
		// a full batch of skipped rows would be fetched again forever
		if fetched < sweepBatchSize || len(transitions) == 0 {
			break
		}
	}

	if total > 0 {
		slog.Info("stale bookings expired", "count", total, "before", today.Format("2006-01-02"))
	}
	return total, nil
}
