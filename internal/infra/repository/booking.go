package repository

import (
	"context"
	"errors"
	"time"

	"lab-reservation/internal/domain/booking"
	"lab-reservation/internal/infra"
	"lab-reservation/internal/infra/db"
	"lab-reservation/internal/infra/repository/converter"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

// LockSlot takes a transaction-scoped advisory lock on the slot key, so
// concurrent admissions for one slot run one after another even when no
// row exists yet to lock.
func (r *BookingRepository) LockSlot(ctx context.Context, key booking.SlotKey) error {
	_, err := r.db.Exec(ctx, "SELECT pg_advisory_xact_lock(hashtextextended($1, 0))", key.LockKey())
	if err != nil {
		return infra.WrapRepoErr("failed to lock booking slot", err)
	}
	return nil
}

func (r *BookingRepository) FindOccupants(ctx context.Context, key booking.SlotKey) ([]*booking.Booking, error) {
	sql, args, err := occupantsQuery(key).ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build occupants query", err)
	}
	return r.queryBookings(ctx, "failed to find slot occupants", sql, args...)
}

func (r *BookingRepository) FindByCodeForUpdate(ctx context.Context, code string) (*booking.Booking, error) {
	sql, args, err := selectBookings().
		Where(squirrel.Eq{"b.code": code}).
		Suffix("FOR UPDATE OF b").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking query", err)
	}

	var row converter.BookingRow
	if err := r.db.QueryRow(ctx, sql, args...).Scan(row.ScanTargets()...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by code", err)
	}
	b, err := converter.BookingToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert booking", err)
	}
	return b, nil
}

func (r *BookingRepository) FindStale(ctx context.Context, before time.Time, limit int) ([]*booking.Booking, error) {
	sql, args, err := staleQuery(before, limit).ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build stale bookings query", err)
	}
	return r.queryBookings(ctx, "failed to find stale bookings", sql, args...)
}

func (r *BookingRepository) Insert(ctx context.Context, b *booking.Booking) error {
	sql, args, err := db.Builder.Insert("bookings").
		Columns(converter.BookingInsertColumns...).
		Values(converter.BookingInsertValues(b)...).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build booking insert", err)
	}
	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return infra.WrapRepoErr("failed to insert booking", err)
	}
	return nil
}

func (r *BookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	sql, args, err := db.Builder.Update("bookings").
		SetMap(converter.BookingMutableFields(b)).
		Where(squirrel.Eq{"id": b.ID()}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build booking update", err)
	}
	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "booking not found")
	}
	return nil
}

func (r *BookingRepository) queryBookings(ctx context.Context, msg, sql string, args ...any) ([]*booking.Booking, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(msg, err)
	}
	defer rows.Close()

	var out []*booking.Booking
	for rows.Next() {
		var row converter.BookingRow
		if err := rows.Scan(row.ScanTargets()...); err != nil {
			return nil, infra.WrapRepoErr(msg, err)
		}
		b, err := converter.BookingToDomain(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert booking", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(msg, err)
	}
	return out, nil
}

func selectBookings() squirrel.SelectBuilder {
	return db.Builder.Select(converter.BookingColumns...).
		From("bookings b").
		Join("devices d ON d.id = b.device_id")
}

func occupantsQuery(key booking.SlotKey) squirrel.SelectBuilder {
	return selectBookings().
		Where(squirrel.Eq{
			"b.device_id":    key.DeviceID,
			"b.booking_date": key.Date,
			"b.slot":         key.Slot,
			"b.status":       booking.OccupiedStatusStrings(),
		}).
		OrderBy("b.created_at").
		Suffix("FOR UPDATE OF b")
}

// staleQuery selects occupying bookings that never reached manager_approved
// and whose date is on or before the given day.
func staleQuery(today time.Time, limit int) squirrel.SelectBuilder {
	statuses := make([]string, 0, len(booking.OccupiedStatuses)-1)
	for _, s := range booking.OccupiedStatusStrings() {
		if s != string(booking.StatusManagerApproved) {
			statuses = append(statuses, s)
		}
	}
	return selectBookings().
		Where(squirrel.Eq{"b.status": statuses}).
		Where(squirrel.LtOrEq{"b.booking_date": today}).
		OrderBy("b.booking_date", "b.created_at").
		Limit(uint64(limit)).
		Suffix("FOR UPDATE OF b SKIP LOCKED")
}
