package handlers

import (
	"net/http"

	"brushfloss/models"
	"brushfloss/services/user"
	"brushfloss/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves account records and role management.
type UserHandler struct {
	Service user.UserService
}

// NewUserHandler constructs a UserHandler.
func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Service: svc}
}

// CreateUser handles POST /api/users.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var input models.User
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.Service.Create(c.Request.Context(), input)
	if err != nil {
		utils.GetLogger().Error("Failed to create user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}
	c.JSON(http.StatusOK, created)
}

// ListUsers handles GET /api/users.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.Service.List(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("Failed to list users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// CheckAdmin handles GET /api/users/admin/:email.
func (h *UserHandler) CheckAdmin(c *gin.Context) {
	email := c.Param("email")
	isAdmin, err := h.Service.IsAdmin(c.Request.Context(), email)
	if err != nil {
		utils.GetLogger().Error("Failed to check role", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check role"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"isAdmin": isAdmin})
}

// PromoteUser handles PUT /api/users/admin/:id (admin-gated).
func (h *UserHandler) PromoteUser(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.Promote(c.Request.Context(), id); err != nil {
		utils.GetLogger().Error("Failed to promote user", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to promote user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"modified": true})
}
