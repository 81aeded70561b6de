package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sharebnb-gmm/pool-party-api/internal/audit"
	"github.com/sharebnb-gmm/pool-party-api/internal/httperr"
	"github.com/sharebnb-gmm/pool-party-api/internal/httpresp"
	"github.com/sharebnb-gmm/pool-party-api/internal/middleware"
	"github.com/sharebnb-gmm/pool-party-api/internal/models"
)

type UserHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewUserHandler(db *gorm.DB, auditor *audit.Dispatcher) *UserHandler {
	return &UserHandler{db: db, audit: auditor}
}

// --------- Requests ---------

type UpdateUserRequest struct {
	Email    *string `json:"email,omitempty" binding:"omitempty,email"`
	Location *string `json:"location,omitempty"`
}

// --------- Handlers ---------

func (h *UserHandler) List(c *gin.Context) {
	var users []models.User
	if err := h.db.Order("username ASC").Find(&users).Error; err != nil {
		httperr.Internal(c, "failed_to_list_users", "Could not list users.")
		return
	}

	httpresp.List(c, users)
}

func (h *UserHandler) Get(c *gin.Context) {
	username := c.Param("username")

	var user models.User
	if err := h.db.First(&user, "username = ?", username).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "User not found.")
		return
	}

	httpresp.OK(c, user)
}

func (h *UserHandler) ListPools(c *gin.Context) {
	username := c.Param("username")

	var pools []models.Pool
	if err := h.db.
		Where("owner_username = ?", username).
		Order("id ASC").
		Find(&pools).Error; err != nil {
		httperr.Internal(c, "failed_to_list_pools", "Could not list pools.")
		return
	}

	httpresp.List(c, pools)
}

func (h *UserHandler) Update(c *gin.Context) {
	caller := c.MustGet(middleware.ContextUsername).(string)
	username := c.Param("username")

	if caller != username {
		httperr.Unauthorized(c, "not_authorized", "You can only edit your own profile.")
		return
	}

	var user models.User
	if err := h.db.First(&user, "username = ?", username).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "User not found.")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Email != nil {
		user.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Location != nil {
		user.Location = *req.Location
	}

	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_update_user", "Could not update user.")
		return
	}

	httpresp.OK(c, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	caller := c.MustGet(middleware.ContextUsername).(string)
	username := c.Param("username")

	if caller != username {
		httperr.Unauthorized(c, "not_authorized", "You can only delete your own profile.")
		return
	}

	var user models.User
	if err := h.db.First(&user, "username = ?", username).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "User not found.")
		return
	}

	// FK cascades take the user's pools, reservations (own and on their
	// pools), messages and images along.
	if err := h.db.Delete(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_user", "Could not delete user.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Username: caller,
		Action:   "user_deleted",
		Entity:   "user",
	})

	httpresp.OK(c, gin.H{"status": "deleted"})
}
