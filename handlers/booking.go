package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	bookingRepo "surfbrew/database/repository/booking"
	"surfbrew/services/booking"
)

// BookingHandler exposes the booking admission and lifecycle endpoints.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// CreateBooking admits a public booking request against a session.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input booking.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.Service.Create(c.Request.Context(), input)
	if err != nil {
		h.Logger.Warn("booking rejected",
			zap.String("sessionID", input.SessionID), zap.Error(err))
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": created.ID, "status": created.Status})
}

// ListBookings returns bookings filtered by requester email or session.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	filter := bookingRepo.ListFilter{
		Email:     c.Query("email"),
		SessionID: c.Query("session_id"),
		Limit:     parseLimit(c.Query("limit"), 50),
	}

	items, err := h.Service.List(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "count": len(items)})
}

// AdminListBookings returns bookings with administrative filters.
func (h *BookingHandler) AdminListBookings(c *gin.Context) {
	filter := bookingRepo.ListFilter{
		Status:          c.Query("status"),
		ExperienceLevel: c.Query("experience_level"),
		Query:           c.Query("q"),
		Limit:           parseLimit(c.Query("limit"), 100),
	}

	items, err := h.Service.List(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "count": len(items)})
}

// CancelBooking transitions a booking to cancelled, freeing its capacity.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.Cancel(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// AttendBooking marks a booking as attended.
func (h *BookingHandler) AttendBooking(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.Attend(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func parseLimit(raw string, fallback int64) int64 {
	if raw == "" {
		return fallback
	}
	limit, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || limit < 1 {
		return fallback
	}
	if limit > 200 {
		return 200
	}
	return limit
}
