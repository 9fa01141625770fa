package middleware

import (
	"net/http"
	"strings"

	"news-backend/internal/api/response"
	"news-backend/internal/auth"

	"github.com/gin-gonic/gin"
)

const claimsKey = "claims"

// RequireAuth verifies the bearer token and attaches its claims to the
// request context. Applied selectively; most read routes stay public.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "No token provided")
			c.Abort()
			return
		}

		claims, err := auth.Verify(strings.TrimPrefix(header, "Bearer "), secret)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// CurrentClaims returns the verified claims set by RequireAuth, or nil when
// the route was not authenticated.
func CurrentClaims(c *gin.Context) *auth.Claims {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*auth.Claims)
	return claims
}
