package middleware

import (
	"net/http"

	"carrental/internal/domain"
	"carrental/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequireRole ensures the authenticated caller carries the given role.
func RequireRole(required domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			c.Abort()
			return
		}

		if role.(string) != string(required) {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// AdminOnly restricts a route group to the admin account.
func AdminOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleAdmin)
}
