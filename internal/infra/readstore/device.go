package readstore

import (
	"context"
	"errors"

	"lab-reservation/internal/infra"
	"lab-reservation/internal/infra/db"
	"lab-reservation/internal/pkg/pgconv"
	"lab-reservation/internal/usecase/queries"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

var deviceViewColumns = []string{
	"id", "code", "model", "manufacturer", "status",
	"price_internal", "price_external", "created_at", "updated_at",
}

type DeviceReadStore struct {
	db db.DBTX
}

func NewDeviceReadStore(dbtx db.DBTX) *DeviceReadStore {
	return &DeviceReadStore{db: dbtx}
}

func (r *DeviceReadStore) List(ctx context.Context, status *string) ([]*queries.DeviceView, error) {
	q := db.Builder.Select(deviceViewColumns...).From("devices").OrderBy("code")
	if status != nil {
		q = q.Where(squirrel.Eq{"status": *status})
	}
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build device list query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list devices", err)
	}
	defer rows.Close()

	out := []*queries.DeviceView{}
	for rows.Next() {
		v, err := scanDeviceView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan device", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list devices", err)
	}
	return out, nil
}

func (r *DeviceReadStore) FindByCode(ctx context.Context, code string) (*queries.DeviceView, error) {
	sql, args, err := db.Builder.Select(deviceViewColumns...).
		From("devices").
		Where(squirrel.Eq{"code": code}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build device query", err)
	}

	v, err := scanDeviceView(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("device not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find device", err)
	}
	return v, nil
}

func scanDeviceView(row pgx.Row) (*queries.DeviceView, error) {
	var (
		v                  queries.DeviceView
		internal, external pgtype.Numeric
	)
	if err := row.Scan(&v.ID, &v.Code, &v.Model, &v.Manufacturer, &v.Status, &internal, &external, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return nil, err
	}
	var err error
	if v.PriceInternal, err = pgconv.DecimalFromNumeric(internal); err != nil {
		return nil, err
	}
	if v.PriceExternal, err = pgconv.DecimalFromNumeric(external); err != nil {
		return nil, err
	}
	return &v, nil
}
