package jwt

import (
	"errors"
	"time"

	"lab-reservation/internal/domain/user"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

type Claims struct {
	UserID    uuid.UUID `json:"user_id"`
	Roles     []string  `json:"roles"`
	TokenType string    `json:"token_type"`
	jwt.RegisteredClaims
}

type Service interface {
	GenerateAccessToken(userID uuid.UUID, roles user.Roles) (string, error)
	GenerateRefreshToken(userID uuid.UUID, roles user.Roles) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
	AccessTokenDuration() time.Duration
	RefreshTokenDuration() time.Duration
}

type service struct {
	secretKey       []byte
	accessDuration  time.Duration
	refreshDuration time.Duration
	now             func() time.Time
}

func NewService(secretKey string, accessDuration, refreshDuration time.Duration) Service {
	return &service{
		secretKey:       []byte(secretKey),
		accessDuration:  accessDuration,
		refreshDuration: refreshDuration,
		now:             time.Now,
	}
}

func (s *service) GenerateAccessToken(userID uuid.UUID, roles user.Roles) (string, error) {
	return s.generate(userID, roles, TokenTypeAccess, s.accessDuration)
}

func (s *service) GenerateRefreshToken(userID uuid.UUID, roles user.Roles) (string, error) {
	return s.generate(userID, roles, TokenTypeRefresh, s.refreshDuration)
}

func (s *service) AccessTokenDuration() time.Duration  { return s.accessDuration }
func (s *service) RefreshTokenDuration() time.Duration { return s.refreshDuration }

func (s *service) generate(userID uuid.UUID, roles user.Roles, tokenType string, ttl time.Duration) (string, error) {
	now := s.now()
	claims := Claims{
		UserID:    userID,
		Roles:     roles.Strings(),
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
