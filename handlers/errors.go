package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"surfbrew/services/booking"
)

// respondServiceError translates the core error taxonomy into HTTP
// responses. Store failures surface as 503 so callers can tell "try
// later" from "this request is invalid".
func respondServiceError(c *gin.Context, err error) {
	var capErr *booking.CapacityError
	switch {
	case errors.As(err, &capErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     capErr.Error(),
			"available": capErr.Available,
		})
	case errors.Is(err, booking.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
	case errors.Is(err, booking.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
	case errors.Is(err, booking.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service temporarily unavailable, please retry"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
