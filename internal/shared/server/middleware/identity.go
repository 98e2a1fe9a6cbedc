package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"readiness-backend/internal/shared/server/respond"
)

const (
	userIDKey    = "userId"
	companyIDKey = "companyId"
	userRoleKey  = "userRole"

	// RoleAdmin marks back-office users managing companies and call requests.
	RoleAdmin = "admin"
)

// Identity extracts the already-verified caller identity from trusted
// headers. Token verification happens upstream (the identity provider fronts
// this API); anonymous visitors identify themselves with a guest id so their
// submissions can be linked later.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		userID := strings.TrimSpace(c.GetHeader("X-User-Id"))
		if userID != "" {
			c.Set(userIDKey, userID)
			if companyID := strings.TrimSpace(c.GetHeader("X-Company-Id")); companyID != "" {
				c.Set(companyIDKey, companyID)
			}
			if role := strings.ToLower(strings.TrimSpace(c.GetHeader("X-User-Role"))); role != "" {
				c.Set(userRoleKey, role)
			}
			c.Set("isGuest", false)
			c.Next()
			return
		}

		guestID := strings.TrimSpace(c.GetHeader("X-Guest-Id"))
		if guestID == "" {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "Missing identity", nil)
			return
		}

		c.Set(userIDKey, "guest:"+guestID)
		c.Set("isGuest", true)
		c.Next()
	}
}

// RequireAdmin aborts with 403 unless the caller carries the admin role.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if RoleFromContext(c) != RoleAdmin {
			respond.Error(c, http.StatusForbidden, "forbidden", "Admin role required", nil)
			return
		}
		c.Next()
	}
}

// UserIDFromContext fetches the user ID set by the identity middleware.
func UserIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(userIDKey)
	if id, ok := val.(string); ok {
		return id
	}
	return ""
}

// CompanyIDFromContext fetches the company ID set by the identity middleware.
func CompanyIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(companyIDKey)
	if id, ok := val.(string); ok {
		return id
	}
	return ""
}

// RoleFromContext fetches the role set by the identity middleware.
func RoleFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(userRoleKey)
	if role, ok := val.(string); ok {
		return role
	}
	return ""
}

// IsGuest reports whether the caller is an anonymous visitor.
func IsGuest(c *gin.Context) bool {
	if c == nil {
		return false
	}
	val, _ := c.Get("isGuest")
	guest, ok := val.(bool)
	return ok && guest
}
