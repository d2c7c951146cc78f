package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"surfbrew/models"
	"surfbrew/services/directory"
)

// DirectoryHandler exposes coach and school CRUD.
type DirectoryHandler struct {
	Service directory.DirectoryService
	Logger  *zap.Logger
}

// NewDirectoryHandler creates a DirectoryHandler.
func NewDirectoryHandler(svc directory.DirectoryService, logger *zap.Logger) *DirectoryHandler {
	return &DirectoryHandler{Service: svc, Logger: logger}
}

// ListCoaches returns coaches sorted by name.
func (h *DirectoryHandler) ListCoaches(c *gin.Context) {
	items, err := h.Service.ListCoaches(c.Request.Context(), parseLimit(c.Query("limit"), 100))
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service temporarily unavailable, please retry"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "count": len(items)})
}

// CreateCoach persists a new coach record. Operator-only.
func (h *DirectoryHandler) CreateCoach(c *gin.Context) {
	var input models.Coach
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.Service.CreateCoach(c.Request.Context(), input)
	if err != nil {
		h.Logger.Warn("coach creation failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": created.ID})
}

// ListSchools returns schools sorted by name.
func (h *DirectoryHandler) ListSchools(c *gin.Context) {
	items, err := h.Service.ListSchools(c.Request.Context(), parseLimit(c.Query("limit"), 100))
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service temporarily unavailable, please retry"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "count": len(items)})
}

// CreateSchool persists a new school record. Operator-only.
func (h *DirectoryHandler) CreateSchool(c *gin.Context) {
	var input models.School
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.Service.CreateSchool(c.Request.Context(), input)
	if err != nil {
		h.Logger.Warn("school creation failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": created.ID})
}
