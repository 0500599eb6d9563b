// internal/middleware/auth.go
package middleware

import (
	"crypto/subtle"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bazaarworks/marketplace-backend/internal/config"
	"github.com/bazaarworks/marketplace-backend/internal/utils"
)

// AuthRequired gates a route on a valid bearer token. A missing header is a
// 403 per the documented surface; a bad signature or expired token is a 401.
// The middleware trusts the token's validity window and does not re-check
// that the principal still exists in storage.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ForbiddenResponse(c, "Authorization header missing")
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.UnauthorizedResponse(c, "Invalid token")
			c.Abort()
			return
		}

		claims, err := utils.ValidateJWT(parts[1])
		if err != nil {
			if errors.Is(err, utils.ErrTokenExpired) {
				utils.UnauthorizedResponse(c, "Token has expired")
			} else {
				utils.UnauthorizedResponse(c, "Invalid token")
			}
			c.Abort()
			return
		}

		// Set principal info in context
		c.Set("user_id", claims.UserID)
		c.Set("principal_type", claims.PrincipalType)
		c.Set("principal_name", claims.Name)
		c.Next()
	}
}

// APIKeyRequired gates admin-only routes on the configured shared secret.
// This check is independent of the bearer-token mechanism: routes behind it
// do not additionally require a token.
func APIKeyRequired(cfg config.AdminConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(cfg.APIKeyHeader)
		if key == "" {
			utils.ForbiddenResponse(c, "Access token header not found")
			c.Abort()
			return
		}

		if subtle.ConstantTimeCompare([]byte(key), []byte(cfg.APIKey)) != 1 {
			utils.ForbiddenResponse(c, "Invalid API Key")
			c.Abort()
			return
		}

		c.Next()
	}
}
