package readstore

import (
	"context"
	"errors"
	"time"

	"lab-reservation/internal/infra"
	"lab-reservation/internal/infra/db"
	"lab-reservation/internal/pkg/pgconv"
	"lab-reservation/internal/usecase/queries"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

var bookingViewColumns = []string{
	"b.id", "b.code", "b.applicant_id", "a.name", "b.applicant_class",
	"b.device_id", "d.code", "d.model", "b.advisor_id", "t.name",
	"b.booking_date", "b.slot", "b.purpose", "b.status",
	"b.payment_amount", "b.payment_status", "b.refund_amount", "b.returned_at",
	"b.created_at", "b.updated_at",
}

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

func selectBookingViews() squirrel.SelectBuilder {
	return db.Builder.Select(bookingViewColumns...).
		From("bookings b").
		Join("users a ON a.id = b.applicant_id").
		Join("devices d ON d.id = b.device_id").
		LeftJoin("users t ON t.id = b.advisor_id")
}

func (r *BookingReadStore) FindByCode(ctx context.Context, code string) (*queries.BookingView, error) {
	sql, args, err := selectBookingViews().Where(squirrel.Eq{"b.code": code}).ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking query", err)
	}

	v, err := scanBookingView(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return v, nil
}

func (r *BookingReadStore) ListApprovals(ctx context.Context, bookingID uuid.UUID) ([]queries.ApprovalView, error) {
	sql, args, err := db.Builder.
		Select("r.id", "r.approver_id", "u.name", "r.level", "r.action", "r.comment", "r.created_at").
		From("approval_records r").
		Join("users u ON u.id = r.approver_id").
		Where(squirrel.Eq{"r.booking_id": bookingID}).
		OrderBy("r.created_at").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build approvals query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list approvals", err)
	}
	defer rows.Close()

	out := []queries.ApprovalView{}
	for rows.Next() {
		var v queries.ApprovalView
		if err := rows.Scan(&v.ID, &v.ApproverID, &v.ApproverName, &v.Level, &v.Action, &v.Comment, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan approval", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list approvals", err)
	}
	return out, nil
}

// ListByApplicant pages newest first. The keyset compares (created_at, id)
// as a row value so ties on created_at stay stable.
func (r *BookingReadStore) ListByApplicant(ctx context.Context, applicantID uuid.UUID, statuses []string, after *queries.Keyset, limit int) ([]*queries.BookingView, error) {
	q := selectBookingViews().
		Where(squirrel.Eq{"b.applicant_id": applicantID}).
		OrderBy("b.created_at DESC", "b.id DESC").
		Limit(uint64(limit))
	if len(statuses) > 0 {
		q = q.Where(squirrel.Eq{"b.status": statuses})
	}
	if after != nil {
		q = q.Where(squirrel.Expr("(b.created_at, b.id) < (?, ?)", after.CreatedAt, after.ID))
	}
	return r.list(ctx, q, "failed to list bookings by applicant")
}

func (r *BookingReadStore) ListPending(ctx context.Context, pq queries.PendingQuery) ([]*queries.BookingView, error) {
	q := selectBookingViews().
		Where(squirrel.Eq{"b.status": string(pq.Status)}).
		OrderBy("b.booking_date", "b.created_at").
		Limit(uint64(pq.Limit))
	if pq.AdvisorID != nil {
		q = q.Where(squirrel.Eq{"b.advisor_id": *pq.AdvisorID})
	}
	if pq.ExternalOnly {
		q = q.Where(squirrel.Eq{"b.applicant_class": "external"})
	}
	return r.list(ctx, q, "failed to list pending bookings")
}

func (r *BookingReadStore) list(ctx context.Context, q squirrel.SelectBuilder, msg string) ([]*queries.BookingView, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking list query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(msg, err)
	}
	defer rows.Close()

	out := []*queries.BookingView{}
	for rows.Next() {
		v, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(msg, err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(msg, err)
	}
	return out, nil
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var (
		v               queries.BookingView
		advisorID       pgtype.UUID
		advisorName     pgtype.Text
		date            time.Time
		payment, refund pgtype.Numeric
		returnedAt      pgtype.Timestamptz
	)
	err := row.Scan(
		&v.ID, &v.Code, &v.ApplicantID, &v.ApplicantName, &v.ApplicantClass,
		&v.DeviceID, &v.DeviceCode, &v.DeviceName, &advisorID, &advisorName,
		&date, &v.Slot, &v.Purpose, &v.Status,
		&payment, &v.PaymentStatus, &refund, &returnedAt,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	v.AdvisorID = pgconv.UUIDPtrFromPgtype(advisorID)
	v.AdvisorName = pgconv.StringPtrFromPgtype(advisorName)
	v.Date = pgconv.DateOnly(date)
	v.ReturnedAt = pgconv.TimePtrFromPgtype(returnedAt)
	if v.PaymentAmount, err = pgconv.DecimalFromNumeric(payment); err != nil {
		return nil, err
	}
	if v.RefundAmount, err = pgconv.DecimalFromNumeric(refund); err != nil {
		return nil, err
	}
	return &v, nil
}
