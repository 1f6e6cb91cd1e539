package device

type PhysicalStatus string

const (
	StatusAvailable   PhysicalStatus = "available"
	StatusMaintenance PhysicalStatus = "maintenance"
	StatusDiscarded   PhysicalStatus = "discarded"
)

func (s PhysicalStatus) String() string {
	return string(s)
}

func (s PhysicalStatus) IsValid() bool {
	switch s {
	case StatusAvailable, StatusMaintenance, StatusDiscarded:
		return true
	default:
		return false
	}
}

func NewPhysicalStatus(s string) (PhysicalStatus, error) {
	st := PhysicalStatus(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}
