package booking

type Event string

const (
	EventTeacherApprove       Event = "teacher_approve"
	EventTeacherReject        Event = "teacher_reject"
	EventAdminApproveInternal Event = "admin_approve_internal"
	EventAdminApproveExternal Event = "admin_approve_external"
	EventAdminReject          Event = "admin_reject"
	EventManagerApprove       Event = "manager_approve"
	EventManagerReject        Event = "manager_reject"
	EventPaymentConfirmed     Event = "payment_confirmed"
	EventCancel               Event = "cancel"
	EventDisplace             Event = "displace"
	EventExpire               Event = "expire"
)

type transitionKey struct {
	from  Status
	event Event
}

var transitions = map[transitionKey]Status{
	{StatusTeacherPending, EventTeacherApprove}:   StatusPending,
	{StatusTeacherPending, EventTeacherReject}:    StatusTeacherRejected,
	{StatusPending, EventAdminApproveInternal}:    StatusManagerApproved,
	{StatusPending, EventAdminApproveExternal}:    StatusAdminApproved,
	{StatusPending, EventAdminReject}:             StatusAdminRejected,
	{StatusAdminApproved, EventManagerApprove}:    StatusPaymentPending,
	{StatusAdminApproved, EventManagerReject}:     StatusManagerRejected,
	{StatusPaymentPending, EventPaymentConfirmed}: StatusManagerApproved,
}

// releaseEvents move any occupying booking to cancelled.
var releaseEvents = map[Event]struct{}{
	EventCancel:   {},
	EventDisplace: {},
	EventExpire:   {},
}

// Next is the only place a booking status may change.
func Next(from Status, ev Event) (Status, error) {
	if _, ok := releaseEvents[ev]; ok {
		if !from.Occupies() {
			return "", ErrInvalidTransition
		}
		return StatusCancelled, nil
	}
	to, ok := transitions[transitionKey{from: from, event: ev}]
	if !ok {
		return "", ErrInvalidTransition
	}
	return to, nil
}

func decisionEvent(level Level, action Action, class ApplicantClass) Event {
	switch level {
	case LevelTeacher:
		if action == ActionApprove {
			return EventTeacherApprove
		}
		return EventTeacherReject
	case LevelAdmin:
		if action == ActionReject {
			return EventAdminReject
		}
		if class.IsInternal() {
			return EventAdminApproveInternal
		}
		return EventAdminApproveExternal
	default:
		if action == ActionApprove {
			return EventManagerApprove
		}
		return EventManagerReject
	}
}

// Transition describes one applied status change.
type Transition struct {
	From   Status
	To     Status
	Record *ApprovalRecord
}

// Grants reports entry into manager_approved, which requires a borrow entry.
func (t Transition) Grants() bool {
	return t.To == StatusManagerApproved && t.From != StatusManagerApproved
}

// RequestsPayment reports entry into payment_pending.
func (t Transition) RequestsPayment() bool {
	return t.To == StatusPaymentPending && t.From != StatusPaymentPending
}
