package readstore

import (
	"context"
	"time"

	"lab-reservation/internal/domain/booking"
	"lab-reservation/internal/infra"
	"lab-reservation/internal/infra/db"
	"lab-reservation/internal/usecase/queries"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

// AvailabilityReadStore answers slot occupancy from the same occupancy set
// admission uses.
type AvailabilityReadStore struct {
	db      db.DBTX
	devices *DeviceReadStore
}

func NewAvailabilityReadStore(dbtx db.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{db: dbtx, devices: NewDeviceReadStore(dbtx)}
}

func (r *AvailabilityReadStore) FindDevice(ctx context.Context, code string) (*queries.DeviceView, error) {
	return r.devices.FindByCode(ctx, code)
}

func (r *AvailabilityReadStore) Occupancy(ctx context.Context, deviceID uuid.UUID, date time.Time) (booking.Occupancy, error) {
	sql, args, err := db.Builder.Select("slot", "applicant_class").
		From("bookings").
		Where(squirrel.Eq{
			"device_id":    deviceID,
			"booking_date": date,
			"status":       booking.OccupiedStatusStrings(),
		}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build occupancy query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load slot occupancy", err)
	}
	defer rows.Close()

	occ := booking.Occupancy{}
	for rows.Next() {
		var slot, class string
		if err := rows.Scan(&slot, &class); err != nil {
			return nil, infra.WrapRepoErr("failed to scan slot occupancy", err)
		}
		c, err := booking.NewApplicantClass(class)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid applicant class in bookings", err)
		}
		occ[slot] = append(occ[slot], c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to load slot occupancy", err)
	}
	return occ, nil
}
