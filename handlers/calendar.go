package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"healthtick/models"
	"healthtick/services/booking"
)

// CalendarHandler serves the read side of the calendar: day views and
// availability probes.
type CalendarHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

func NewCalendarHandler(svc booking.BookingService, logger *zap.Logger) *CalendarHandler {
	return &CalendarHandler{Service: svc, Logger: logger}
}

// GetDayView returns the fixed grid with occupancy plus the effective
// bookings for a date.
func (h *CalendarHandler) GetDayView(c *gin.Context) {
	date := c.Param("date")
	day, err := h.Service.DayView(c.Request.Context(), date)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, day)
}

// CheckAvailability answers whether a call of the given type can start at the
// given time, with conflict details when it cannot. A slot that renders free
// in the grid can still be rejected here because of a duration overlap.
func (h *CalendarHandler) CheckAvailability(c *gin.Context) {
	date := c.Param("date")
	start := c.Query("time")
	callType := models.CallType(c.Query("type"))

	res, err := h.Service.CheckAvailability(c.Request.Context(), date, start, callType)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
