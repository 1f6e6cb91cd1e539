package converter

import (
	"time"

	"lab-reservation/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

var UserColumns = []string{
	"id", "email", "name", "user_code", "password_hash", "roles",
	"last_login", "is_active", "created_at", "updated_at",
}

type UserRow struct {
	ID           uuid.UUID
	Email        string
	Name         string
	UserCode     string
	PasswordHash string
	Roles        []string
	LastLogin    pgtype.Timestamptz
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (r *UserRow) ScanTargets() []any {
	return []any{
		&r.ID, &r.Email, &r.Name, &r.UserCode, &r.PasswordHash, &r.Roles,
		&r.LastLogin, &r.IsActive, &r.CreatedAt, &r.UpdatedAt,
	}
}

func UserToDomain(r UserRow) (*user.User, error) {
	email, err := user.NewEmail(r.Email)
	if err != nil {
		return nil, err
	}
	roles, err := user.NewRoles(r.Roles)
	if err != nil {
		return nil, err
	}
	var lastLogin *time.Time
	if r.LastLogin.Valid {
		t := r.LastLogin.Time
		lastLogin = &t
	}
	return user.ReconstructUser(r.ID, email, r.Name, r.UserCode, r.PasswordHash, roles, lastLogin, r.IsActive, r.CreatedAt, r.UpdatedAt), nil
}
