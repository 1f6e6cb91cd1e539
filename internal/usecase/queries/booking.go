package queries

import (
	"context"

	"lab-reservation/internal/domain/booking"
	"lab-reservation/internal/domain/identity"
	"lab-reservation/internal/domain/user"
	"lab-reservation/internal/infra"
	"lab-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking_mock.go -package=queriesmock

type BookingFilter struct {
	Statuses []booking.Status
}

type BookingQueries interface {
	GetByCode(ctx context.Context, actor identity.Actor, code string) (*BookingDetailView, error)
	ListMine(ctx context.Context, actor identity.Actor, filter BookingFilter, after *Cursor, limit int) ([]*BookingView, *Cursor, error)
	// ListPending returns the approval queue for the actor: bookings awaiting
	// their teacher decision, admin review or manager review.
	ListPending(ctx context.Context, actor identity.Actor, limit int) ([]*BookingView, error)
}

// PendingQuery selects one approval queue. AdvisorID narrows teacher_pending
// to one teacher's students; ExternalOnly restricts to external applicants.
type PendingQuery struct {
	Status       booking.Status
	AdvisorID    *uuid.UUID
	ExternalOnly bool
	Limit        int
}

type BookingReadStore interface {
	FindByCode(ctx context.Context, code string) (*BookingView, error)
	ListApprovals(ctx context.Context, bookingID uuid.UUID) ([]ApprovalView, error)
	ListByApplicant(ctx context.Context, applicantID uuid.UUID, statuses []string, after *Keyset, limit int) ([]*BookingView, error)
	ListPending(ctx context.Context, q PendingQuery) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
}

func NewBookingQueries(readStore BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{readStore: readStore}
}

func (q *bookingQueriesImpl) GetByCode(ctx context.Context, actor identity.Actor, code string) (*BookingDetailView, error) {
	v, err := q.readStore.FindByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, booking.ErrNotFound
		}
		return nil, err
	}
	if !canView(actor, v) {
		return nil, booking.ErrUnauthorized
	}

	approvals, err := q.readStore.ListApprovals(ctx, v.ID)
	if err != nil {
		return nil, err
	}
	return &BookingDetailView{BookingView: *v, Approvals: approvals}, nil
}

func canView(actor identity.Actor, v *BookingView) bool {
	switch {
	case actor.UserID == v.ApplicantID:
		return true
	case v.AdvisorID != nil && *v.AdvisorID == actor.UserID && actor.Has(user.RoleTeacher):
		return true
	default:
		return actor.Roles.HasAny(user.RoleAdmin, user.RoleManager)
	}
}

func (q *bookingQueriesImpl) ListMine(ctx context.Context, actor identity.Actor, filter BookingFilter, after *Cursor, limit int) ([]*BookingView, *Cursor, error) {
	limit = ValidateLimit(limit)

	var keyset *Keyset
	if after != nil && after.After != "" {
		t, id, err := DecodeAfterCursor(after.After)
		if err != nil {
			return nil, nil, errs.Mark(err, errs.ErrInvalidCursor)
		}
		keyset = &Keyset{CreatedAt: t, ID: id}
	}

	statuses := make([]string, 0, len(filter.Statuses))
	for _, s := range filter.Statuses {
		statuses = append(statuses, string(s))
	}

	// one extra row tells us whether another page exists
	rows, err := q.readStore.ListByApplicant(ctx, actor.UserID, statuses, keyset, limit+1)
	if err != nil {
		return nil, nil, err
	}
	if len(rows) <= limit {
		return rows, nil, nil
	}
	rows = rows[:limit]
	last := rows[len(rows)-1]
	return rows, &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}, nil
}

func (q *bookingQueriesImpl) ListPending(ctx context.Context, actor identity.Actor, limit int) ([]*BookingView, error) {
	limit = ValidateLimit(limit)

	var out []*BookingView
	add := func(pq PendingQuery) error {
		pq.Limit = limit
		rows, err := q.readStore.ListPending(ctx, pq)
		if err != nil {
			return err
		}
		out = append(out, rows...)
		return nil
	}

	if actor.Has(user.RoleTeacher) {
		id := actor.UserID
		if err := add(PendingQuery{Status: booking.StatusTeacherPending, AdvisorID: &id}); err != nil {
			return nil, err
		}
	}
	if actor.Has(user.RoleAdmin) {
		if err := add(PendingQuery{Status: booking.StatusPending}); err != nil {
			return nil, err
		}
	}
	if actor.Has(user.RoleManager) {
		if err := add(PendingQuery{Status: booking.StatusAdminApproved, ExternalOnly: true}); err != nil {
			return nil, err
		}
	}
	if out == nil {
		out = []*BookingView{}
	}
	return out, nil
}
