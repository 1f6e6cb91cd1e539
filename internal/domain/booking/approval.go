package booking

import (
	"time"

	"github.com/google/uuid"
)

type Level string

const (
	LevelTeacher Level = "teacher"
	LevelAdmin   Level = "admin"
	LevelManager Level = "manager"
)

func (l Level) IsValid() bool {
	return l == LevelTeacher || l == LevelAdmin || l == LevelManager
}

func NewLevel(s string) (Level, error) {
	l := Level(s)
	if !l.IsValid() {
		return "", ErrInvalidDecision
	}
	return l, nil
}

type Action string

const (
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
)

func (a Action) IsValid() bool {
	return a == ActionApprove || a == ActionReject
}

func NewAction(s string) (Action, error) {
	a := Action(s)
	if !a.IsValid() {
		return "", ErrInvalidDecision
	}
	return a, nil
}

// ApprovalRecord is an append-only audit entry. It has no mutators.
type ApprovalRecord struct {
	id         uuid.UUID
	bookingID  uuid.UUID
	approverID uuid.UUID
	level      Level
	action     Action
	comment    string
	createdAt  time.Time
}

func newApprovalRecord(bookingID, approverID uuid.UUID, level Level, action Action, comment string, now time.Time) *ApprovalRecord {
	return &ApprovalRecord{
		id:         uuid.New(),
		bookingID:  bookingID,
		approverID: approverID,
		level:      level,
		action:     action,
		comment:    comment,
		createdAt:  now,
	}
}

func ReconstructApprovalRecord(id, bookingID, approverID uuid.UUID, level Level, action Action, comment string, createdAt time.Time) *ApprovalRecord {
	return &ApprovalRecord{
		id:         id,
		bookingID:  bookingID,
		approverID: approverID,
		level:      level,
		action:     action,
		comment:    comment,
		createdAt:  createdAt,
	}
}

func (r *ApprovalRecord) ID() uuid.UUID         { return r.id }
func (r *ApprovalRecord) BookingID() uuid.UUID  { return r.bookingID }
func (r *ApprovalRecord) ApproverID() uuid.UUID { return r.approverID }
func (r *ApprovalRecord) Level() Level          { return r.level }
func (r *ApprovalRecord) Action() Action        { return r.action }
func (r *ApprovalRecord) Comment() string       { return r.comment }
func (r *ApprovalRecord) CreatedAt() time.Time  { return r.createdAt }

// Replay folds an approval trail over an initial status. Records that do not
// apply from the current status yield ErrInvalidTransition.
func Replay(initial Status, class ApplicantClass, records []*ApprovalRecord) (Status, error) {
	st := initial
	for _, r := range records {
		next, err := Next(st, decisionEvent(r.level, r.action, class))
		if err != nil {
			return st, err
		}
		st = next
	}
	return st, nil
}
