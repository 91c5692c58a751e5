package middleware

import (
	"net/http"

	"brushfloss/services/user"

	"github.com/gin-gonic/gin"
)

// AdminOnlyMiddleware rejects authenticated callers whose user record does
// not carry the admin role. Must run after JWTAuthMiddleware.
func AdminOnlyMiddleware(userService user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := AuthenticatedEmail(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing authenticated identity"})
			return
		}

		isAdmin, err := userService.IsAdmin(c.Request.Context(), email)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to check role"})
			return
		}
		if !isAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden access"})
			return
		}
		c.Next()
	}
}
