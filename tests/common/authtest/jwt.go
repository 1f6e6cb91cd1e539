//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"lab-reservation/internal/domain/user"
	"lab-reservation/internal/pkg/config"
	"lab-reservation/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, roles ...user.Role) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, h.cfg.AccessTokenDuration, h.cfg.RefreshTokenDuration)
	token, err := service.GenerateAccessToken(userID, user.Roles(roles))
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, roles ...user.Role) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, time.Millisecond, h.cfg.RefreshTokenDuration)
	token, err := service.GenerateAccessToken(userID, user.Roles(roles))
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
