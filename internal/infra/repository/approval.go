package repository

import (
	"context"

	"lab-reservation/internal/domain/booking"
	"lab-reservation/internal/infra"
	"lab-reservation/internal/infra/db"
)

type ApprovalRepository struct {
	db db.DBTX
}

func NewApprovalRepository(dbtx db.DBTX) *ApprovalRepository {
	return &ApprovalRepository{db: dbtx}
}

// Append writes one approval record. Records are never updated.
func (r *ApprovalRepository) Append(ctx context.Context, rec *booking.ApprovalRecord) error {
	sql, args, err := db.Builder.Insert("approval_records").
		Columns("id", "booking_id", "approver_id", "level", "action", "comment", "created_at").
		Values(rec.ID(), rec.BookingID(), rec.ApproverID(), string(rec.Level()), string(rec.Action()), rec.Comment(), rec.CreatedAt()).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build approval insert", err)
	}
	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return infra.WrapRepoErr("failed to append approval record", err)
	}
	return nil
}
