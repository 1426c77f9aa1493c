package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/hourslot/booking-api/internal/authz"
	"github.com/hourslot/booking-api/internal/httperr"
	"github.com/hourslot/booking-api/internal/models"
)

// RequireRole gates a route on an exact role match. The response body is the
// same whether the claim is missing or merely insufficient, so a caller
// cannot probe which one it was.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authz.Allow(ClaimFromContext(c), role) {
			httperr.Forbidden(c, "You do not have permission to access this resource.")
			c.Abort()
			return
		}

		c.Next()
	}
}

func AdminOnly() gin.HandlerFunc {
	return RequireRole(models.RoleAdmin)
}
