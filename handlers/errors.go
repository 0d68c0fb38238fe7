package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	bookingRepo "healthtick/database/repository/booking"
	"healthtick/models"
	"healthtick/services/booking"
	"healthtick/services/clientdir"
	"healthtick/utils"
)

// writeError maps service errors onto HTTP statuses: validation -> 400,
// conflict -> 409, not-found -> 404, anything else (storage failures) -> 500.
func writeError(c *gin.Context, err error) {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", verr.Error())
		return
	}

	var cerr *booking.ConflictError
	if errors.As(err, &cerr) {
		c.JSON(http.StatusConflict, gin.H{
			"message":   "slot conflict",
			"details":   cerr.Error(),
			"conflicts": cerr.Conflicts,
		})
		return
	}

	switch {
	case errors.Is(err, bookingRepo.ErrBookingNotFound),
		errors.Is(err, clientdir.ErrClientNotFound),
		errors.Is(err, booking.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "not found", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "internal error", err.Error())
	}
}
