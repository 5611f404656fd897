package middleware

import (
	"net/http"
	"strings"

	"github.com/erkebulan/recipeshare/internal/auth"
	"github.com/erkebulan/recipeshare/internal/identity"
	"github.com/gin-gonic/gin"
)

const (
	errUnauthorized = "Unauthorized"
	errTokenInvalid = "Invalid or expired token"
)

// Auth validates a Bearer JWT and attaches the authenticated user id to the
// request context. Handlers read it through the identity package; the legacy
// X-User-Id header is stripped so a client can never smuggle an identity in.
func Auth(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Header.Del("X-User-Id")

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errUnauthorized})
			return
		}

		rawToken := strings.TrimPrefix(header, "Bearer ")

		userID, err := tokens.Verify(rawToken)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errTokenInvalid})
			return
		}

		ctx := identity.WithUserID(c.Request.Context(), userID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
