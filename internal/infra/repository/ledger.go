package repository

import (
	"context"
	"errors"
	"log/slog"

	"lab-reservation/internal/infra"
	"lab-reservation/internal/infra/db"
	"lab-reservation/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
)

type LedgerRepository struct {
	db db.DBTX
}

func NewLedgerRepository(dbtx db.DBTX) *LedgerRepository {
	return &LedgerRepository{db: dbtx}
}

// RecordBorrow is idempotent per booking.
func (r *LedgerRepository) RecordBorrow(ctx context.Context, e shared.BorrowEntry) error {
	sql, args, err := db.Builder.Insert("device_ledger").
		Columns("operation_type", "device_id", "device_name", "booking_id", "booking_code", "applicant_id", "expected_return").
		Values(shared.LedgerBorrow, e.DeviceID, e.DeviceName, e.BookingID, e.BookingCode, e.ApplicantID, e.ExpectedReturn).
		Suffix("ON CONFLICT (booking_id) WHERE operation_type = 'borrow' DO NOTHING").
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build borrow entry", err)
	}
	return r.write(ctx, "failed to record borrow", sql, args...)
}

func (r *LedgerRepository) RecordReturn(ctx context.Context, e shared.ReturnEntry) error {
	sql, args, err := db.Builder.Insert("device_ledger").
		Columns("operation_type", "device_id", "device_name", "booking_id", "applicant_id", "actual_return").
		Values(shared.LedgerReturn, e.DeviceID, e.DeviceName, e.BookingID, e.ApplicantID, e.ReturnedAt).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build return entry", err)
	}
	return r.write(ctx, "failed to record return", sql, args...)
}

func (r *LedgerRepository) RecordDiscard(ctx context.Context, e shared.DiscardEntry) error {
	sql, args, err := db.Builder.Insert("device_ledger").
		Columns("operation_type", "device_id", "device_name", "description", "created_at").
		Values(shared.LedgerDiscard, e.DeviceID, e.DeviceName, e.Reason, e.At).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build discard entry", err)
	}
	return r.write(ctx, "failed to record discard", sql, args...)
}

// write runs inside a savepoint. A failed ledger insert rolls back to it and
// the caller's transaction stays usable.
func (r *LedgerRepository) write(ctx context.Context, msg, sql string, args ...any) error {
	sp, err := r.db.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr("failed to open ledger savepoint", err)
	}
	if _, err := sp.Exec(ctx, sql, args...); err != nil {
		if rbErr := sp.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			slog.Warn("ledger savepoint rollback failed", "error", rbErr.Error())
		}
		return infra.WrapRepoErr(msg, err)
	}
	if err := sp.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to release ledger savepoint", err)
	}
	return nil
}
