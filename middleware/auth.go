package middleware

import (
	"net/http"
	"strings"

	"brushfloss/utils"

	"github.com/gin-gonic/gin"
)

// ContextEmailKey is the gin context key holding the authenticated email.
const ContextEmailKey = "email"

// JWTAuthMiddleware verifies the bearer token and puts the email claim into
// the request context. Token issuance lives in the auth handler.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		email, err := utils.ExtractEmailFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(ContextEmailKey, email)
		c.Next()
	}
}

// AuthenticatedEmail returns the email set by JWTAuthMiddleware.
func AuthenticatedEmail(c *gin.Context) (string, bool) {
	v, ok := c.Get(ContextEmailKey)
	if !ok {
		return "", false
	}
	email, ok := v.(string)
	return email, ok
}
