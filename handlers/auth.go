package handlers

import (
	"errors"
	"net/http"
	"time"

	"brushfloss/services/user"
	"brushfloss/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const tokenLifetime = time.Hour

// AuthHandler issues bearer tokens for known users.
type AuthHandler struct {
	Users user.UserService
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(users user.UserService) *AuthHandler {
	return &AuthHandler{Users: users}
}

// IssueToken handles GET /jwt?email=. A token is only issued for an email
// with an existing user record; anyone else gets 403 with an empty token.
func (h *AuthHandler) IssueToken(c *gin.Context) {
	logger := utils.GetLogger()
	email := c.Query("email")

	_, err := h.Users.GetByEmail(c.Request.Context(), email)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			logger.Error("Failed to look up user for token", zap.String("email", email), zap.Error(err))
		}
		c.JSON(http.StatusForbidden, gin.H{"accessToken": ""})
		return
	}

	token, err := utils.GenerateToken(email, tokenLifetime)
	if err != nil {
		logger.Error("Failed to sign token", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sign token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"accessToken": token})
}
