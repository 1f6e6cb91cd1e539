package booking

import "lab-reservation/internal/domain/user"

type ApplicantClass string

const (
	ClassStudent  ApplicantClass = "student"
	ClassTeacher  ApplicantClass = "teacher"
	ClassExternal ApplicantClass = "external"
)

func (c ApplicantClass) String() string {
	return string(c)
}

func (c ApplicantClass) IsValid() bool {
	switch c {
	case ClassStudent, ClassTeacher, ClassExternal:
		return true
	default:
		return false
	}
}

func (c ApplicantClass) IsInternal() bool {
	return c == ClassStudent || c == ClassTeacher
}

func NewApplicantClass(s string) (ApplicantClass, error) {
	c := ApplicantClass(s)
	if !c.IsValid() {
		return "", ErrNotApplicant
	}
	return c, nil
}

// ClassOf derives the applicant class from a role set. Teacher wins over
// student for staff who are also enrolled.
func ClassOf(roles user.Roles) (ApplicantClass, error) {
	switch {
	case roles.Has(user.RoleTeacher):
		return ClassTeacher, nil
	case roles.Has(user.RoleStudent):
		return ClassStudent, nil
	case roles.Has(user.RoleExternal):
		return ClassExternal, nil
	default:
		return "", ErrNotApplicant
	}
}
