package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	pkgJWT "episode-srv/pkg/jwt"
	"episode-srv/pkg/response"
	"episode-srv/pkg/scope"
)

// Auth is the bearer-token gate. Each failure mode yields its own 401 reason
// so callers can tell a missing header from a stale token. Handlers behind it
// always see a resolved caller identity in the request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header missing")
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			response.Unauthorized(c, "Invalid authorization format")
			c.Abort()
			return
		}

		tokenString := strings.TrimSpace(authHeader[len("Bearer "):])
		if tokenString == "" {
			response.Unauthorized(c, "Token is missing")
			c.Abort()
			return
		}

		payload, err := m.jwtManager.Verify(tokenString)
		if err != nil {
			switch {
			case errors.Is(err, pkgJWT.ErrTokenExpired):
				response.Unauthorized(c, "Token has expired")
			case errors.Is(err, pkgJWT.ErrTokenInvalid):
				response.Unauthorized(c, "Token is invalid")
			default:
				m.l.Errorf(c.Request.Context(), "middleware.Auth: token verification failed: %v", err)
				response.Error(c, err)
			}
			c.Abort()
			return
		}

		ctx := c.Request.Context()
		ctx = scope.SetPayloadToContext(ctx, payload)
		ctx = scope.SetScopeToContext(ctx, scope.NewScope(payload))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
