package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sharebnb-gmm/pool-party-api/internal/audit"
	"github.com/sharebnb-gmm/pool-party-api/internal/httperr"
	"github.com/sharebnb-gmm/pool-party-api/internal/httpresp"
	"github.com/sharebnb-gmm/pool-party-api/internal/middleware"
	"github.com/sharebnb-gmm/pool-party-api/internal/models"
	"github.com/sharebnb-gmm/pool-party-api/internal/storage"
)

type PoolHandler struct {
	db       *gorm.DB
	uploader storage.Uploader
	audit    *audit.Dispatcher
}

func NewPoolHandler(db *gorm.DB, uploader storage.Uploader, auditor *audit.Dispatcher) *PoolHandler {
	return &PoolHandler{db: db, uploader: uploader, audit: auditor}
}

// --------- Requests ---------

type CreatePoolRequest struct {
	Rate        *float64 `form:"rate" binding:"required,min=0"`
	Size        string   `form:"size" binding:"required"`
	Description string   `form:"description" binding:"required"`
	City        string   `form:"city" binding:"required"`
}

type UpdatePoolRequest struct {
	Rate        *float64 `json:"rate,omitempty" binding:"omitempty,min=0"`
	Size        *string  `json:"size,omitempty"`
	Description *string  `json:"description,omitempty"`
	City        *string  `json:"city,omitempty"`
}

// --------- Handlers ---------

func (h *PoolHandler) List(c *gin.Context) {
	var pools []models.Pool
	if err := h.db.Order("id ASC").Find(&pools).Error; err != nil {
		httperr.Internal(c, "failed_to_list_pools", "Could not list pools.")
		return
	}

	httpresp.List(c, pools)
}

// Get resolves a numeric segment as a pool id and anything else as an
// exact-match city filter.
func (h *PoolHandler) Get(c *gin.Context) {
	param := c.Param("id")

	if id, err := strconv.Atoi(param); err == nil {
		var pool models.Pool
		if err := h.db.First(&pool, id).Error; err != nil {
			httperr.NotFound(c, "pool_not_found", "Pool not found.")
			return
		}
		httpresp.OK(c, pool)
		return
	}

	var pools []models.Pool
	if err := h.db.
		Where("city = ?", param).
		Order("id ASC").
		Find(&pools).Error; err != nil {
		httperr.Internal(c, "failed_to_list_pools", "Could not list pools.")
		return
	}

	httpresp.List(c, pools)
}

func (h *PoolHandler) Create(c *gin.Context) {
	caller := c.MustGet(middleware.ContextUsername).(string)

	var req CreatePoolRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	// Listing photo is best-effort: the pool row is created either way.
	origURL, smallURL := "", ""
	if fh, err := c.FormFile("file"); err == nil && fh != nil {
		origURL, smallURL = uploadWithThumbnail(c.Request.Context(), h.uploader, fh)
	}

	pool := models.Pool{
		OwnerUsername: caller,
		Rate:          *req.Rate,
		Size:          req.Size,
		Description:   req.Description,
		City:          req.City,
		OrigImageURL:  origURL,
		SmallImageURL: smallURL,
	}

	if err := h.db.Create(&pool).Error; err != nil {
		httperr.Internal(c, "failed_to_create_pool", "Could not create pool.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Username: caller,
		Action:   "pool_created",
		Entity:   "pool",
		EntityID: &pool.ID,
	})

	httpresp.Created(c, pool)
}

func (h *PoolHandler) Update(c *gin.Context) {
	caller := c.MustGet(middleware.ContextUsername).(string)

	pool, ok := h.getOwnedPool(c, caller)
	if !ok {
		return
	}

	var req UpdatePoolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Rate != nil {
		pool.Rate = *req.Rate
	}
	if req.Size != nil {
		pool.Size = *req.Size
	}
	if req.Description != nil {
		pool.Description = *req.Description
	}
	if req.City != nil {
		pool.City = *req.City
	}

	if err := h.db.Save(pool).Error; err != nil {
		httperr.Internal(c, "failed_to_update_pool", "Could not update pool.")
		return
	}

	httpresp.OK(c, pool)
}

func (h *PoolHandler) Delete(c *gin.Context) {
	caller := c.MustGet(middleware.ContextUsername).(string)

	pool, ok := h.getOwnedPool(c, caller)
	if !ok {
		return
	}

	// Reservations on the pool cascade with it.
	if err := h.db.Delete(pool).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_pool", "Could not delete pool.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Username: caller,
		Action:   "pool_deleted",
		Entity:   "pool",
		EntityID: &pool.ID,
	})

	httpresp.OK(c, gin.H{"status": "deleted"})
}

// AddImage attaches a supplementary photo. Unlike creation flows, the upload
// IS the operation here, so a storage failure is a failed dependency.
func (h *PoolHandler) AddImage(c *gin.Context) {
	caller := c.MustGet(middleware.ContextUsername).(string)

	_, ok := h.getOwnedPool(c, caller)
	if !ok {
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "A file is required.")
		return
	}

	url, err := uploadOriginal(c.Request.Context(), h.uploader, fh)
	if err != nil {
		httperr.FailedDependency(c, "upload_failed", "Could not store the image.")
		return
	}

	img := models.PoolImage{
		PoolOwner: caller,
		ImageURL:  url,
	}

	if err := h.db.Create(&img).Error; err != nil {
		httperr.Internal(c, "failed_to_save_image", "Could not save the image.")
		return
	}

	httpresp.Created(c, img)
}

// --------- Helpers ---------

func (h *PoolHandler) getOwnedPool(c *gin.Context, caller string) (*models.Pool, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_pool_id", "Pool id must be numeric.")
		return nil, false
	}

	var pool models.Pool
	if err := h.db.First(&pool, id).Error; err != nil {
		httperr.NotFound(c, "pool_not_found", "Pool not found.")
		return nil, false
	}

	if pool.OwnerUsername != caller {
		httperr.Unauthorized(c, "not_authorized", "You do not own this pool.")
		return nil, false
	}

	return &pool, true
}
