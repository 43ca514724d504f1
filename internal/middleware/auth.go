package middleware

import (
	"net/http"

	"fotokarte/internal/modules/auth"

	"github.com/gin-gonic/gin"
)

// SessionValidator is satisfied by auth.Store.
type SessionValidator interface {
	Validate(token string) bool
}

// RequireSession rejects requests that do not carry a valid session token.
func RequireSession(sessions SessionValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !sessions.Validate(auth.TokenFrom(c)) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   true,
				"message": "Unauthorized. Please log in first.",
			})
			return
		}
		c.Next()
	}
}
