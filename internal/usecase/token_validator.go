package usecase

import (
	"lab-reservation/internal/domain/identity"
	"lab-reservation/internal/domain/user"
	"lab-reservation/internal/pkg/jwt"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (identity.Actor, error)
}

type tokenValidatorImpl struct {
	jwtService jwt.Service
}

func NewTokenValidator(jwtService jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

// ValidateToken accepts access tokens only.
func (t *tokenValidatorImpl) ValidateToken(tokenString string) (identity.Actor, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return identity.Actor{}, err
	}
	if claims.TokenType != jwt.TokenTypeAccess {
		return identity.Actor{}, jwt.ErrInvalidToken
	}

	roles, err := user.NewRoles(claims.Roles)
	if err != nil {
		return identity.Actor{}, err
	}

	return identity.NewActor(claims.UserID, roles), nil
}
