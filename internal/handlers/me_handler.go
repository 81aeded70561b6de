package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sharebnb-gmm/pool-party-api/internal/httperr"
	"github.com/sharebnb-gmm/pool-party-api/internal/httpresp"
	"github.com/sharebnb-gmm/pool-party-api/internal/middleware"
	"github.com/sharebnb-gmm/pool-party-api/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	caller := c.MustGet(middleware.ContextUsername).(string)

	var user models.User
	if err := h.db.First(&user, "username = ?", caller).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "User not found.")
		return
	}

	httpresp.OK(c, user)
}

// Logs returns the caller's own audit trail, newest first.
func (h *MeHandler) Logs(c *gin.Context) {
	caller := c.MustGet(middleware.ContextUsername).(string)

	var logs []models.AuditLog
	if err := h.db.
		Where("username = ?", caller).
		Order("id DESC").
		Limit(100).
		Find(&logs).Error; err != nil {
		httperr.Internal(c, "failed_to_list_logs", "Could not list logs.")
		return
	}

	httpresp.List(c, logs)
}
