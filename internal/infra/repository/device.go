package repository

import (
	"context"
	"errors"

	"lab-reservation/internal/domain/device"
	"lab-reservation/internal/infra"
	"lab-reservation/internal/infra/db"
	"lab-reservation/internal/infra/repository/converter"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type DeviceRepository struct {
	db db.DBTX
}

func NewDeviceRepository(dbtx db.DBTX) *DeviceRepository {
	return &DeviceRepository{db: dbtx}
}

func (r *DeviceRepository) FindByCode(ctx context.Context, code string) (*device.Device, error) {
	return r.findOne(ctx, squirrel.Eq{"code": code})
}

func (r *DeviceRepository) FindByID(ctx context.Context, id uuid.UUID) (*device.Device, error) {
	return r.findOne(ctx, squirrel.Eq{"id": id})
}

// findOne locks the device row so a concurrent status change waits for the
// admission that read it.
func (r *DeviceRepository) findOne(ctx context.Context, pred squirrel.Eq) (*device.Device, error) {
	sql, args, err := db.Builder.Select(converter.DeviceColumns...).
		From("devices").
		Where(pred).
		Suffix("FOR SHARE").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build device query", err)
	}

	var row converter.DeviceRow
	if err := r.db.QueryRow(ctx, sql, args...).Scan(row.ScanTargets()...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("device not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find device", err)
	}
	d, err := converter.DeviceToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert device", err)
	}
	return d, nil
}

func (r *DeviceRepository) Update(ctx context.Context, d *device.Device) error {
	sql, args, err := db.Builder.Update("devices").
		Set("status", string(d.Status())).
		Set("updated_at", d.UpdatedAt()).
		Where(squirrel.Eq{"id": d.ID()}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build device update", err)
	}
	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update device", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "device not found")
	}
	return nil
}
