package authorization

import (
	"github.com/gin-gonic/gin"
)

// RequireAdmin aborts the request unless the auth middleware stored a valid
// admin role in the context. Both admin and super_admin pass.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := AdminRole(c.GetString("admin_role"))
		if !role.IsValid() {
			c.JSON(403, gin.H{
				"error": "admin access required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
