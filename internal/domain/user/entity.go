package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is a lab account. userCode is the campus id (student number, staff
// number, or the external organisation's contact code).
type User struct {
	id           uuid.UUID
	email        Email
	name         string
	userCode     string
	passwordHash string
	roles        Roles
	lastLogin    *time.Time
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(email Email, name, userCode, passwordHash string, roles Roles, now time.Time) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if len(roles) == 0 {
		return nil, ErrNoRoles
	}
	return &User{
		id:           uuid.New(),
		email:        email,
		name:         name,
		userCode:     userCode,
		passwordHash: passwordHash,
		roles:        roles,
		isActive:     true,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(id uuid.UUID, email Email, name, userCode, passwordHash string, roles Roles, lastLogin *time.Time, isActive bool, createdAt, updatedAt time.Time) *User {
	return &User{
		id:           id,
		email:        email,
		name:         name,
		userCode:     userCode,
		passwordHash: passwordHash,
		roles:        roles,
		lastLogin:    lastLogin,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) ID() uuid.UUID         { return u.id }
func (u *User) Email() Email          { return u.email }
func (u *User) Name() string          { return u.name }
func (u *User) UserCode() string      { return u.userCode }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) Roles() Roles          { return u.roles }
func (u *User) LastLogin() *time.Time { return u.lastLogin }
func (u *User) IsActive() bool        { return u.isActive }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() time.Time  { return u.updatedAt }

func (u *User) HasRole(r Role) bool {
	return u.roles.Has(r)
}
