package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"github.com/hourslot/booking-api/internal/cache"
	"github.com/hourslot/booking-api/internal/dto"
	"github.com/hourslot/booking-api/internal/httperr"
	"github.com/hourslot/booking-api/internal/httpresp"
	ucBooking "github.com/hourslot/booking-api/internal/usecase/booking"
)

type CalendarHandler struct {
	dayViewUC *ucBooking.DayView
	rdb       *redis.Client
}

func NewCalendarHandler(
	dayViewUC *ucBooking.DayView,
	rdb *redis.Client,
) *CalendarHandler {
	return &CalendarHandler{
		dayViewUC: dayViewUC,
		rdb:       rdb,
	}
}

// DayView serves GET /calendar?date=2006-01-02. Entries are cached per day
// and invalidated on every booking mutation touching that day.
func (h *CalendarHandler) DayView(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, httperr.CodeInvalidDate, "A date is required.")
		return
	}

	key := cache.DayViewKey(dateStr)

	var cached []dto.DayEntryDTO
	if hit, err := cache.Get(c.Request.Context(), h.rdb, key, &cached); err == nil && hit {
		httpresp.List(c, cached)
		return
	}

	entries, err := h.dayViewUC.Execute(c.Request.Context(), dateStr)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeInvalidDate) {
			httperr.BadRequest(c, httperr.CodeInvalidDate, "The date could not be parsed, expected YYYY-MM-DD.")
			return
		}
		httperr.Internal(c, "Failed to load calendar.")
		return
	}

	if err := cache.Set(c.Request.Context(), h.rdb, key, entries, cache.DayViewTTL); err != nil {
		logrus.WithError(err).Warn("day view cache write failed")
	}

	httpresp.List(c, entries)
}
