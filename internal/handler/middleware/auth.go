package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"lab-reservation/internal/domain/identity"
	"lab-reservation/internal/domain/user"
	"lab-reservation/internal/pkg/cookie"
	"lab-reservation/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxActorKey  = "actor"
	ctxUserIDKey = "user_id"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func bearerToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		actor, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		setActor(c, actor)
		c.Next()
	}
}

// RequireAnyRole must run after RequireAuth.
func (m *AuthMiddleware) RequireAnyRole(roles ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		if !actor.Roles.HasAny(roles...) {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func setActor(c *gin.Context, actor identity.Actor) {
	c.Set(ctxActorKey, actor)
	c.Set(ctxUserIDKey, actor.UserID)
	c.Set("jwt_claims", map[string]any{
		"user_id": actor.UserID.String(),
		"roles":   actor.Roles.Strings(),
	})
}

func GetActor(c *gin.Context) (identity.Actor, bool) {
	v, exists := c.Get(ctxActorKey)
	if !exists {
		return identity.Actor{}, false
	}
	actor, ok := v.(identity.Actor)
	return actor, ok && !actor.IsZero()
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}
