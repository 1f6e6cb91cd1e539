package booking

import "slices"

type Status string

const (
	StatusTeacherPending  Status = "teacher_pending"
	StatusPending         Status = "pending"
	StatusAdminApproved   Status = "admin_approved"
	StatusManagerApproved Status = "manager_approved"
	StatusPaymentPending  Status = "payment_pending"
	StatusTeacherRejected Status = "teacher_rejected"
	StatusAdminRejected   Status = "admin_rejected"
	StatusManagerRejected Status = "manager_rejected"
	StatusCancelled       Status = "cancelled"
)

// OccupiedStatuses is the occupancy set: a booking in one of these statuses
// holds its (device, date, slot). Availability, conflict resolution,
// cancellation and the SQL filters all read this one list.
var OccupiedStatuses = []Status{
	StatusTeacherPending,
	StatusPending,
	StatusAdminApproved,
	StatusManagerApproved,
	StatusPaymentPending,
}

// AllStatuses lists every status a booking can be stored with.
var AllStatuses = []Status{
	StatusTeacherPending,
	StatusPending,
	StatusAdminApproved,
	StatusManagerApproved,
	StatusPaymentPending,
	StatusTeacherRejected,
	StatusAdminRejected,
	StatusManagerRejected,
	StatusCancelled,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return slices.Contains(AllStatuses, s)
}

func (s Status) Occupies() bool {
	for _, o := range OccupiedStatuses {
		if s == o {
			return true
		}
	}
	return false
}

// IsTerminal covers cancelled and every rejection.
func (s Status) IsTerminal() bool {
	return s.IsValid() && !s.Occupies()
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

func OccupiedStatusStrings() []string {
	out := make([]string, len(OccupiedStatuses))
	for i, s := range OccupiedStatuses {
		out[i] = string(s)
	}
	return out
}

type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

func NewPaymentStatus(s string) (PaymentStatus, error) {
	switch PaymentStatus(s) {
	case PaymentUnpaid, PaymentPaid, PaymentRefunded:
		return PaymentStatus(s), nil
	default:
		return "", ErrInvalidStatus
	}
}
