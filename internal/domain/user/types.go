package user

import "slices"

type Role string

const (
	RoleStudent  Role = "student"
	RoleTeacher  Role = "teacher"
	RoleExternal Role = "external"
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleExternal, RoleAdmin, RoleManager:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// Roles is the set of roles held by one account. A lab user may be both a
// teacher and an admin, so authorization checks work on the whole set.
type Roles []Role

func NewRoles(values []string) (Roles, error) {
	if len(values) == 0 {
		return nil, ErrNoRoles
	}
	roles := make(Roles, 0, len(values))
	for _, v := range values {
		r, err := NewRole(v)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(roles, r) {
			roles = append(roles, r)
		}
	}
	return roles, nil
}

func (rs Roles) Has(r Role) bool {
	return slices.Contains(rs, r)
}

func (rs Roles) HasAny(candidates ...Role) bool {
	for _, c := range candidates {
		if rs.Has(c) {
			return true
		}
	}
	return false
}

func (rs Roles) Strings() []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = string(r)
	}
	return out
}
