package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sharebnb-gmm/pool-party-api/internal/httperr"
	"github.com/sharebnb-gmm/pool-party-api/internal/httpresp"
	"github.com/sharebnb-gmm/pool-party-api/internal/middleware"
	"github.com/sharebnb-gmm/pool-party-api/internal/models"
)

type MessageHandler struct {
	db *gorm.DB
}

func NewMessageHandler(db *gorm.DB) *MessageHandler {
	return &MessageHandler{db: db}
}

// --------- Requests ---------

type CreateMessageRequest struct {
	RecipientUsername string `json:"recipient_username" binding:"required"`
	Title             string `json:"title"`
	Body              string `json:"body" binding:"required"`
	Listing           uint   `json:"listing"`
}

// --------- Handlers ---------

// List returns the caller's inbox and outbox, newest first.
func (h *MessageHandler) List(c *gin.Context) {
	caller := c.MustGet(middleware.ContextUsername).(string)

	var inbox []models.Message
	if err := h.db.
		Where("recipient_username = ?", caller).
		Order("timestamp DESC").
		Find(&inbox).Error; err != nil {
		httperr.Internal(c, "failed_to_list_messages", "Could not list messages.")
		return
	}

	var outbox []models.Message
	if err := h.db.
		Where("sender_username = ?", caller).
		Order("timestamp DESC").
		Find(&outbox).Error; err != nil {
		httperr.Internal(c, "failed_to_list_messages", "Could not list messages.")
		return
	}

	httpresp.OK(c, gin.H{
		"inbox":  inbox,
		"outbox": outbox,
	})
}

func (h *MessageHandler) Create(c *gin.Context) {
	caller := c.MustGet(middleware.ContextUsername).(string)

	var req CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var count int64
	h.db.Model(&models.User{}).
		Where("username = ?", req.RecipientUsername).
		Count(&count)
	if count == 0 {
		httperr.NotFound(c, "user_not_found", "Recipient does not exist.")
		return
	}

	msg := models.Message{
		SenderUsername:    caller,
		RecipientUsername: req.RecipientUsername,
		Title:             req.Title,
		Body:              req.Body,
		Listing:           req.Listing,
		Timestamp:         time.Now().UTC(),
	}

	if err := h.db.Create(&msg).Error; err != nil {
		httperr.Internal(c, "failed_to_create_message", "Could not send message.")
		return
	}

	httpresp.Created(c, msg)
}

func (h *MessageHandler) Get(c *gin.Context) {
	caller := c.MustGet(middleware.ContextUsername).(string)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_message_id", "Message id must be numeric.")
		return
	}

	var msg models.Message
	if err := h.db.First(&msg, id).Error; err != nil {
		httperr.NotFound(c, "message_not_found", "Message not found.")
		return
	}

	if msg.SenderUsername != caller && msg.RecipientUsername != caller {
		httperr.Unauthorized(c, "not_authorized", "You are not part of this conversation.")
		return
	}

	httpresp.OK(c, msg)
}
