package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"surfbrew/services/user"
)

// Context keys populated by the auth middleware.
const (
	CtxUserID    = "userID"
	CtxUserEmail = "userEmail"
	CtxUserRole  = "userRole"
)

// OperatorAuthMiddleware authenticates the bearer token and checks the
// resolved role against the allowed set. Missing or invalid credentials
// abort with 401; a valid credential carrying a disallowed role aborts
// with 403.
func OperatorAuthMiddleware(authSvc user.UserService, allowedRoles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(allowedRoles))
	for _, role := range allowedRoles {
		allowed[role] = true
	}

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		account, err := authSvc.Authenticate(c.Request.Context(), tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		if !allowed[account.Role] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}

		c.Set(CtxUserID, account.ID)
		c.Set(CtxUserEmail, account.Email)
		c.Set(CtxUserRole, account.Role)
		c.Next()
	}
}
