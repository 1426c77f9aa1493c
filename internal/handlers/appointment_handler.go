package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"github.com/hourslot/booking-api/internal/cache"
	"github.com/hourslot/booking-api/internal/httperr"
	"github.com/hourslot/booking-api/internal/httpresp"
	"github.com/hourslot/booking-api/internal/middleware"
	ucBooking "github.com/hourslot/booking-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC *ucBooking.CreateBooking
	listUC   *ucBooking.ListUserBookings
	deleteUC *ucBooking.DeleteBooking
	rdb      *redis.Client
}

func NewAppointmentHandler(
	createUC *ucBooking.CreateBooking,
	listUC *ucBooking.ListUserBookings,
	deleteUC *ucBooking.DeleteBooking,
	rdb *redis.Client,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC: createUC,
		listUC:   listUC,
		deleteUC: deleteUC,
		rdb:      rdb,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookAppointmentRequest struct {
	Date string `json:"date" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidInput, "A date is required.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		UserID: userID,
		Date:   req.Date,
	})
	if err != nil {
		switch httperr.BusinessCode(err) {
		case httperr.CodeInvalidDate:
			httperr.BadRequest(c, httperr.CodeInvalidDate, "The requested date could not be parsed.")
		case httperr.CodePastDate:
			httperr.BadRequest(c, httperr.CodePastDate, "The requested slot has already elapsed.")
		case httperr.CodeSlotConflict:
			httperr.BadRequest(c, httperr.CodeSlotConflict, "This slot is already booked.")
		default:
			httperr.Internal(c, "Failed to create appointment.")
		}
		return
	}

	h.invalidateDay(c, ap.Slot.Format("2006-01-02"))

	httpresp.Created(c, ap)
}

// ======================================================
// LIST (own appointments)
// ======================================================

func (h *AppointmentHandler) ListMine(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	aps, err := h.listUC.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "Failed to list appointments.")
		return
	}

	httpresp.List(c, aps)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidID, "Malformed appointment id.")
		return
	}

	ap, err := h.deleteUC.Execute(c.Request.Context(), userID, uint(id))
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeNotFound) {
			httperr.NotFound(c, httperr.CodeNotFound, "Appointment not found.")
			return
		}
		httperr.Internal(c, "Failed to delete appointment.")
		return
	}

	h.invalidateDay(c, ap.Slot.Format("2006-01-02"))

	httpresp.NoContent(c)
}

// ======================================================
// CACHE
// ======================================================

func (h *AppointmentHandler) invalidateDay(c *gin.Context, day string) {
	if err := cache.Delete(c.Request.Context(), h.rdb, cache.DayViewKey(day)); err != nil {
		logrus.WithError(err).Warn("day view cache invalidation failed")
	}
}
