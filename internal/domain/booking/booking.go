package booking

import (
	"strings"
	"time"

	"lab-reservation/internal/domain/identity"
	"lab-reservation/internal/domain/user"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const MaxPurposeLength = 500

type Booking struct {
	id             uuid.UUID
	code           string
	applicantID    uuid.UUID
	applicantClass ApplicantClass
	deviceID       uuid.UUID
	deviceCode     string
	advisorID      *uuid.UUID
	date           time.Time
	slot           string
	purpose        string
	status         Status
	paymentAmount  decimal.Decimal
	paymentStatus  PaymentStatus
	refundAmount   decimal.Decimal
	returnedAt     *time.Time
	createdAt      time.Time
	updatedAt      time.Time
}

type NewParams struct {
	Code           string
	ApplicantID    uuid.UUID
	ApplicantClass ApplicantClass
	DeviceID       uuid.UUID
	DeviceCode     string
	AdvisorID      *uuid.UUID
	Date           time.Time
	Slot           string
	Purpose        string
	PaymentAmount  decimal.Decimal
	Now            time.Time
}

// New builds a booking in the initial status for its applicant class.
func New(p NewParams) (*Booking, error) {
	if !p.ApplicantClass.IsValid() {
		return nil, ErrNotApplicant
	}
	if p.ApplicantClass == ClassStudent && p.AdvisorID == nil {
		return nil, ErrAdvisorRequired
	}
	if strings.TrimSpace(p.Slot) == "" {
		return nil, ErrInvalidSlot
	}
	purpose := strings.TrimSpace(p.Purpose)
	if len([]rune(purpose)) > MaxPurposeLength {
		purpose = string([]rune(purpose)[:MaxPurposeLength])
	}
	var advisor *uuid.UUID
	if p.ApplicantClass == ClassStudent {
		id := *p.AdvisorID
		advisor = &id
	}
	return &Booking{
		id:             uuid.New(),
		code:           p.Code,
		applicantID:    p.ApplicantID,
		applicantClass: p.ApplicantClass,
		deviceID:       p.DeviceID,
		deviceCode:     p.DeviceCode,
		advisorID:      advisor,
		date:           DateOf(p.Date),
		slot:           p.Slot,
		purpose:        purpose,
		status:         InitialStatus(p.ApplicantClass),
		paymentAmount:  p.PaymentAmount.Round(2),
		paymentStatus:  PaymentUnpaid,
		refundAmount:   decimal.Zero,
		createdAt:      p.Now,
		updatedAt:      p.Now,
	}, nil
}

func InitialStatus(class ApplicantClass) Status {
	if class == ClassStudent {
		return StatusTeacherPending
	}
	return StatusPending
}

// Snapshot carries persisted state back into the aggregate.
type Snapshot struct {
	ID             uuid.UUID
	Code           string
	ApplicantID    uuid.UUID
	ApplicantClass ApplicantClass
	DeviceID       uuid.UUID
	DeviceCode     string
	AdvisorID      *uuid.UUID
	Date           time.Time
	Slot           string
	Purpose        string
	Status         Status
	PaymentAmount  decimal.Decimal
	PaymentStatus  PaymentStatus
	RefundAmount   decimal.Decimal
	ReturnedAt     *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func Reconstruct(s Snapshot) *Booking {
	return &Booking{
		id:             s.ID,
		code:           s.Code,
		applicantID:    s.ApplicantID,
		applicantClass: s.ApplicantClass,
		deviceID:       s.DeviceID,
		deviceCode:     s.DeviceCode,
		advisorID:      s.AdvisorID,
		date:           DateOf(s.Date),
		slot:           s.Slot,
		purpose:        s.Purpose,
		status:         s.Status,
		paymentAmount:  s.PaymentAmount,
		paymentStatus:  s.PaymentStatus,
		refundAmount:   s.RefundAmount,
		returnedAt:     s.ReturnedAt,
		createdAt:      s.CreatedAt,
		updatedAt:      s.UpdatedAt,
	}
}

func (b *Booking) Snapshot() Snapshot {
	return Snapshot{
		ID:             b.id,
		Code:           b.code,
		ApplicantID:    b.applicantID,
		ApplicantClass: b.applicantClass,
		DeviceID:       b.deviceID,
		DeviceCode:     b.deviceCode,
		AdvisorID:      b.advisorID,
		Date:           b.date,
		Slot:           b.slot,
		Purpose:        b.purpose,
		Status:         b.status,
		PaymentAmount:  b.paymentAmount,
		PaymentStatus:  b.paymentStatus,
		RefundAmount:   b.refundAmount,
		ReturnedAt:     b.returnedAt,
		CreatedAt:      b.createdAt,
		UpdatedAt:      b.updatedAt,
	}
}

func (b *Booking) ID() uuid.UUID                  { return b.id }
func (b *Booking) Code() string                   { return b.code }
func (b *Booking) ApplicantID() uuid.UUID         { return b.applicantID }
func (b *Booking) ApplicantClass() ApplicantClass { return b.applicantClass }
func (b *Booking) DeviceID() uuid.UUID            { return b.deviceID }
func (b *Booking) DeviceCode() string             { return b.deviceCode }
func (b *Booking) AdvisorID() *uuid.UUID          { return b.advisorID }
func (b *Booking) Date() time.Time                { return b.date }
func (b *Booking) Slot() string                   { return b.slot }
func (b *Booking) Purpose() string                { return b.purpose }
func (b *Booking) Status() Status                 { return b.status }
func (b *Booking) PaymentAmount() decimal.Decimal { return b.paymentAmount }
func (b *Booking) PaymentStatus() PaymentStatus   { return b.paymentStatus }
func (b *Booking) RefundAmount() decimal.Decimal  { return b.refundAmount }
func (b *Booking) ReturnedAt() *time.Time         { return b.returnedAt }
func (b *Booking) CreatedAt() time.Time           { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time           { return b.updatedAt }

func (b *Booking) Key() SlotKey {
	return SlotKey{DeviceID: b.deviceID, Date: b.date, Slot: b.slot}
}

func (b *Booking) Occupies() bool {
	return b.status.Occupies()
}

func (b *Booking) IsAdvisedBy(id uuid.UUID) bool {
	return b.advisorID != nil && *b.advisorID == id
}

// Decide applies one approve/reject by the given level. Authorization is
// checked before any state is touched.
func (b *Booking) Decide(actor identity.Actor, level Level, action Action, comment string, now time.Time) (Transition, error) {
	if !level.IsValid() || !action.IsValid() {
		return Transition{}, ErrInvalidDecision
	}
	if !b.authorized(actor, level) {
		return Transition{}, ErrUnauthorized
	}
	to, err := Next(b.status, decisionEvent(level, action, b.applicantClass))
	if err != nil {
		return Transition{}, err
	}
	t := Transition{
		From:   b.status,
		To:     to,
		Record: newApprovalRecord(b.id, actor.UserID, level, action, comment, now),
	}
	b.status = to
	b.updatedAt = now
	return t, nil
}

func (b *Booking) authorized(actor identity.Actor, level Level) bool {
	switch level {
	case LevelTeacher:
		return actor.Has(user.RoleTeacher) &&
			b.IsAdvisedBy(actor.UserID) &&
			b.status == StatusTeacherPending
	case LevelAdmin:
		return actor.Has(user.RoleAdmin) && b.status == StatusPending
	case LevelManager:
		return actor.Has(user.RoleManager) &&
			b.status == StatusAdminApproved &&
			b.applicantClass == ClassExternal
	default:
		return false
	}
}

// ConfirmPayment handles a paid notice from finance. A redelivered notice on
// an already paid and granted booking returns changed=false and no error.
func (b *Booking) ConfirmPayment(now time.Time) (Transition, bool, error) {
	if b.status == StatusManagerApproved && b.paymentStatus == PaymentPaid {
		return Transition{From: b.status, To: b.status}, false, nil
	}
	to, err := Next(b.status, EventPaymentConfirmed)
	if err != nil {
		return Transition{}, false, err
	}
	t := Transition{From: b.status, To: to}
	b.status = to
	b.paymentStatus = PaymentPaid
	b.updatedAt = now
	return t, true, nil
}

// Cancel is the applicant's own cancellation. Checks run in the order
// owner, terminal, deadline.
func (b *Booking) Cancel(actorID uuid.UUID, today, now time.Time) (Transition, error) {
	if actorID != b.applicantID {
		return Transition{}, ErrNotOwner
	}
	if b.status.IsTerminal() {
		return Transition{}, ErrAlreadyTerminal
	}
	if !b.date.After(DateOf(today)) {
		return Transition{}, ErrTooLate
	}
	refundable := b.applicantClass == ClassExternal &&
		b.paymentAmount.IsPositive() &&
		(b.status == StatusManagerApproved || b.status == StatusPaymentPending)
	return b.release(EventCancel, refundable, now)
}

// Displace cancels an external booking to make room for an internal one.
func (b *Booking) Displace(now time.Time) (Transition, error) {
	if b.applicantClass != ClassExternal {
		return Transition{}, ErrInvalidTransition
	}
	return b.release(EventDisplace, b.paymentAmount.IsPositive(), now)
}

// Expire releases a booking whose date passed before it was fully granted.
func (b *Booking) Expire(today, now time.Time) (Transition, error) {
	if b.status == StatusManagerApproved || b.date.After(DateOf(today)) {
		return Transition{}, ErrInvalidTransition
	}
	return b.release(EventExpire, false, now)
}

func (b *Booking) release(ev Event, refund bool, now time.Time) (Transition, error) {
	to, err := Next(b.status, ev)
	if err != nil {
		if ev == EventCancel {
			return Transition{}, ErrAlreadyTerminal
		}
		return Transition{}, err
	}
	t := Transition{From: b.status, To: to}
	if refund {
		b.refundAmount = RefundFor(b.paymentAmount)
		b.paymentStatus = PaymentRefunded
	}
	b.status = to
	b.updatedAt = now
	return t, nil
}

// MarkReturned records that the device came back after a granted booking.
func (b *Booking) MarkReturned(now time.Time) error {
	if b.status != StatusManagerApproved || b.returnedAt != nil {
		return ErrInvalidTransition
	}
	at := now
	b.returnedAt = &at
	b.updatedAt = now
	return nil
}
