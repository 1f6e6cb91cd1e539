//go:build unit || e2e

package builder

import (
	"time"

	"lab-reservation/internal/domain/identity"
	"lab-reservation/internal/domain/user"
	"lab-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID           uuid.UUID
	Email        string
	Name         string
	UserCode     string
	PasswordHash string
	Roles        []string
	IsActive     bool
	Now          time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.New(),
		Email:        "test@example.com",
		Name:         "Test User",
		UserCode:     "S2024001",
		PasswordHash: "hashed_password",
		Roles:        []string{"student"},
		IsActive:     true,
		Now:          time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	roles, err := user.NewRoles(u.Roles)
	if err != nil {
		return nil, err
	}

	return user.NewUser(email, u.Name, u.UserCode, u.PasswordHash, roles, u.Now)
}

// BuildStored returns a user as loaded from storage, keeping the builder's ID.
func (u *UserBuilder) BuildStored() *user.User {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		panic(err)
	}
	roles, err := user.NewRoles(u.Roles)
	if err != nil {
		panic(err)
	}
	return user.ReconstructUser(u.ID, email, u.Name, u.UserCode, u.PasswordHash, roles, nil, u.IsActive, u.Now, u.Now)
}

func (u *UserBuilder) BuildActor() identity.Actor {
	roles, err := user.NewRoles(u.Roles)
	if err != nil {
		panic(err)
	}
	return identity.NewActor(u.ID, roles)
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       u.ID,
		Email:    u.Email,
		Name:     u.Name,
		UserCode: u.UserCode,
		Roles:    append([]string(nil), u.Roles...),
		IsActive: u.IsActive,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithID(id uuid.UUID) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithName(name string) *UserBuilder {
	u.Name = name
	return u
}

func (u *UserBuilder) WithRoles(roles ...string) *UserBuilder {
	u.Roles = roles
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}

func (u *UserBuilder) AsStudent() *UserBuilder {
	u.Roles = []string{"student"}
	u.UserCode = "S2024001"
	return u
}

func (u *UserBuilder) AsTeacher() *UserBuilder {
	u.Roles = []string{"teacher"}
	u.UserCode = "T1001"
	u.Email = "teacher@example.com"
	return u
}

func (u *UserBuilder) AsExternal() *UserBuilder {
	u.Roles = []string{"external"}
	u.UserCode = "EXT-ACME"
	u.Email = "external@example.com"
	return u
}

func (u *UserBuilder) AsAdmin() *UserBuilder {
	u.Roles = []string{"admin"}
	u.UserCode = "A01"
	u.Email = "admin@example.com"
	return u
}

func (u *UserBuilder) AsManager() *UserBuilder {
	u.Roles = []string{"manager"}
	u.UserCode = "M01"
	u.Email = "manager@example.com"
	return u
}
