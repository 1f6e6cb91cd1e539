package converter

import (
	"time"

	"lab-reservation/internal/domain/device"
	"lab-reservation/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

var DeviceColumns = []string{
	"id", "code", "model", "manufacturer", "status",
	"price_internal", "price_external", "created_at", "updated_at",
}

type DeviceRow struct {
	ID            uuid.UUID
	Code          string
	Model         string
	Manufacturer  string
	Status        string
	PriceInternal pgtype.Numeric
	PriceExternal pgtype.Numeric
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (r *DeviceRow) ScanTargets() []any {
	return []any{
		&r.ID, &r.Code, &r.Model, &r.Manufacturer, &r.Status,
		&r.PriceInternal, &r.PriceExternal, &r.CreatedAt, &r.UpdatedAt,
	}
}

func DeviceToDomain(r DeviceRow) (*device.Device, error) {
	status, err := device.NewPhysicalStatus(r.Status)
	if err != nil {
		return nil, err
	}
	internal, err := pgconv.DecimalFromNumeric(r.PriceInternal)
	if err != nil {
		return nil, err
	}
	external, err := pgconv.DecimalFromNumeric(r.PriceExternal)
	if err != nil {
		return nil, err
	}
	return device.ReconstructDevice(r.ID, r.Code, r.Model, r.Manufacturer, status, internal, external, r.CreatedAt, r.UpdatedAt), nil
}
