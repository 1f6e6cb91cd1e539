package commands

import (
	"context"
	"log/slog"

	"lab-reservation/internal/domain/booking"
	"lab-reservation/internal/domain/device"
	"lab-reservation/internal/domain/identity"
	"lab-reservation/internal/domain/user"
	"lab-reservation/internal/infra"
	"lab-reservation/internal/pkg/clock"
	"lab-reservation/internal/usecase/shared"
)

//go:generate mockgen -source=device.go -destination=../../../tests/mock/commands/device_mock.go -package=commandsmock

type DeviceCommands interface {
	ChangeStatus(ctx context.Context, actor identity.Actor, code string, to device.PhysicalStatus, reason string) (*device.Device, error)
}

type deviceCommandsImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	observer Observer
}

func NewDeviceCommands(uow shared.UnitOfWork, clk clock.Clock, observer Observer) DeviceCommands {
	if observer == nil {
		observer = NopObserver{}
	}
	return &deviceCommandsImpl{uow: uow, clock: clk, observer: observer}
}

// ChangeStatus moves a device between physical states. Existing bookings are
// left alone; maintenance only blocks new admissions.
func (c *deviceCommandsImpl) ChangeStatus(ctx context.Context, actor identity.Actor, code string, to device.PhysicalStatus, reason string) (*device.Device, error) {
	if !actor.Has(user.RoleAdmin) {
		return nil, booking.ErrUnauthorized
	}

	var changed *device.Device
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := c.clock.Now()

		d, err := tx.Devices().FindByCode(ctx, code)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return device.ErrNotFound
			}
			return mapRepoErr(err)
		}
		if err := d.ChangeStatus(to, now); err != nil {
			return err
		}
		if err := tx.Devices().Update(ctx, d); err != nil {
			return mapRepoErr(err)
		}
		if to == device.StatusDiscarded {
			recordDiscard(ctx, tx, c.observer, d, reason, now)
		}

		changed = d
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("device status changed", "code", code, "status", string(to), "by", actor.UserID.String())
	return changed, nil
}
