package middleware

import (
	"strings"

	"bookshelf-be/internal/httpapi/response"
	"bookshelf-be/internal/user"

	"github.com/gin-gonic/gin"
)

const (
	ctxUserIDKey  = "userID"
	ctxIsAdminKey = "isAdmin"
)

// Auth validates the bearer token and injects the caller's identity into the
// gin context. Requests without a valid token are rejected; routes that allow
// anonymous access simply do not mount this middleware.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := user.ParseJWT(tokenStr)
		if err != nil {
			response.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ctxUserIDKey, claims.UserID)
		c.Set(ctxIsAdminKey, claims.IsAdmin)
		c.Next()
	}
}

// RequireAdmin gates admin-only routes. Authorization is a single boolean
// flag; there is no finer-grained role model.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsAdmin(c) {
			response.Forbidden(c, "admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated user's id, if any.
func UserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ctxUserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

func IsAdmin(c *gin.Context) bool {
	v, ok := c.Get(ctxIsAdminKey)
	if !ok {
		return false
	}
	admin, _ := v.(bool)
	return admin
}
