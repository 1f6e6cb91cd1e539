package identity

import (
	"lab-reservation/internal/domain/user"

	"github.com/google/uuid"
)

// Actor is the acting identity passed into every core operation.
type Actor struct {
	UserID uuid.UUID
	Roles  user.Roles
}

func NewActor(userID uuid.UUID, roles user.Roles) Actor {
	return Actor{UserID: userID, Roles: roles}
}

func (a Actor) Has(r user.Role) bool {
	return a.Roles.Has(r)
}

func (a Actor) IsZero() bool {
	return a.UserID == uuid.Nil
}
