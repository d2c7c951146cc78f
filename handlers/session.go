package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	sessionRepo "surfbrew/database/repository/session"
	"surfbrew/services/session"
)

// SessionHandler exposes session listing and creation.
type SessionHandler struct {
	Service session.SessionService
	Logger  *zap.Logger
}

// NewSessionHandler creates a SessionHandler.
func NewSessionHandler(svc session.SessionService, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{Service: svc, Logger: logger}
}

// ListSessions lists sessions matching the query filters, each decorated
// with its current availability.
func (h *SessionHandler) ListSessions(c *gin.Context) {
	filter := sessionRepo.SearchFilter{
		Query:        c.Query("q"),
		Location:     c.Query("location"),
		Level:        c.Query("level"),
		SessionType:  c.Query("session_type"),
		CoachID:      c.Query("coach_id"),
		SchoolID:     c.Query("school_id"),
		UpcomingOnly: c.DefaultQuery("upcoming_only", "true") == "true",
		Limit:        parseLimit(c.Query("limit"), 50),
	}

	items, err := h.Service.Search(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "count": len(items)})
}

// CreateSession persists a new session. Operator-only.
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var input session.CreateSessionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.Service.Create(c.Request.Context(), input)
	if err != nil {
		h.Logger.Warn("session creation failed", zap.Error(err))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": created.ID})
}
