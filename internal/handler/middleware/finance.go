package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

const FinanceTokenHeader = "X-Finance-Token"

// RequireFinanceToken guards the payment callback with the shared secret
// configured for the finance office.
func RequireFinanceToken(expected string) gin.HandlerFunc {
	want := []byte(expected)
	return func(c *gin.Context) {
		got := []byte(c.GetHeader(FinanceTokenHeader))
		if len(want) == 0 || subtle.ConstantTimeCompare(got, want) != 1 {
			slog.Warn("Rejected finance callback", "remote_ip", c.ClientIP())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid finance token",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
