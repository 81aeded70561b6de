package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sharebnb-gmm/pool-party-api/internal/dto"
	"github.com/sharebnb-gmm/pool-party-api/internal/httperr"
	"github.com/sharebnb-gmm/pool-party-api/internal/httpresp"
	"github.com/sharebnb-gmm/pool-party-api/internal/middleware"
	"github.com/sharebnb-gmm/pool-party-api/internal/models"
	ucReservation "github.com/sharebnb-gmm/pool-party-api/internal/usecase/reservation"
)

// ======================================================
// HANDLER
// ======================================================

type ReservationHandler struct {
	createUC      *ucReservation.CreateReservation
	getUC         *ucReservation.GetReservation
	listForPoolUC *ucReservation.ListReservationsForPool
	listForUserUC *ucReservation.ListReservationsForUser
	deleteUC      *ucReservation.DeleteReservation
}

func NewReservationHandler(
	createUC *ucReservation.CreateReservation,
	getUC *ucReservation.GetReservation,
	listForPoolUC *ucReservation.ListReservationsForPool,
	listForUserUC *ucReservation.ListReservationsForUser,
	deleteUC *ucReservation.DeleteReservation,
) *ReservationHandler {
	return &ReservationHandler{
		createUC:      createUC,
		getUC:         getUC,
		listForPoolUC: listForPoolUC,
		listForUserUC: listForUserUC,
		deleteUC:      deleteUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateReservationRequest struct {
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

// ======================================================
// HANDLERS
// ======================================================

// Create books a date range on the pool named in the path.
func (h *ReservationHandler) Create(c *gin.Context) {
	caller := c.MustGet(middleware.ContextUsername).(string)

	poolID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_pool_id", "Pool id must be numeric.")
		return
	}

	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "start_date must be YYYY-MM-DD.")
		return
	}

	end, err := parseDate(req.EndDate)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "end_date must be YYYY-MM-DD.")
		return
	}

	res, err := h.createUC.Execute(c.Request.Context(), ucReservation.CreateReservationInput{
		PoolID:    uint(poolID),
		BookedBy:  caller,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		writeReservationError(c, err)
		return
	}

	httpresp.Created(c, res)
}

// ListOwn returns the caller's bookings.
func (h *ReservationHandler) ListOwn(c *gin.Context) {
	caller := c.MustGet(middleware.ContextUsername).(string)

	out, err := h.listForUserUC.Execute(c.Request.Context(), caller, caller)
	if err != nil {
		writeReservationError(c, err)
		return
	}

	httpresp.List(c, toListDTO(out))
}

// ListForPool returns every booking on one of the caller's pools.
func (h *ReservationHandler) ListForPool(c *gin.Context) {
	caller := c.MustGet(middleware.ContextUsername).(string)

	poolID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_pool_id", "Pool id must be numeric.")
		return
	}

	out, err := h.listForPoolUC.Execute(c.Request.Context(), uint(poolID), caller)
	if err != nil {
		writeReservationError(c, err)
		return
	}

	httpresp.List(c, toListDTO(out))
}

func (h *ReservationHandler) Get(c *gin.Context) {
	caller := c.MustGet(middleware.ContextUsername).(string)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_reservation_id", "Reservation id must be numeric.")
		return
	}

	res, err := h.getUC.Execute(c.Request.Context(), uint(id), caller)
	if err != nil {
		writeReservationError(c, err)
		return
	}

	httpresp.OK(c, res)
}

func (h *ReservationHandler) Delete(c *gin.Context) {
	caller := c.MustGet(middleware.ContextUsername).(string)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_reservation_id", "Reservation id must be numeric.")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), uint(id), caller); err != nil {
		writeReservationError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"status": "deleted"})
}

// ======================================================
// HELPERS
// ======================================================

func toListDTO(in []models.Reservation) []dto.ReservationListDTO {
	out := make([]dto.ReservationListDTO, 0, len(in))
	for _, r := range in {
		out = append(out, dto.ReservationListDTO{
			ID:             r.ID,
			PoolID:         r.PoolID,
			BookedUsername: r.BookedUsername,
			StartDate:      r.StartDate,
			EndDate:        r.EndDate,
		})
	}
	return out
}

func writeReservationError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "pool_not_found"):
		httperr.NotFound(c, "pool_not_found", "Pool not found.")
	case httperr.IsBusiness(err, "reservation_not_found"):
		httperr.NotFound(c, "reservation_not_found", "Reservation not found.")
	case httperr.IsBusiness(err, "not_authorized"):
		httperr.Unauthorized(c, "not_authorized", "Not allowed.")
	case httperr.IsBusiness(err, "invalid_date_range"):
		httperr.BadRequest(c, "invalid_date_range", "start_date must be before end_date.")
	default:
		httperr.Internal(c, "reservation_error", "Could not process reservation.")
	}
}
