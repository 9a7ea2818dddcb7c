package handlers

import (
	"errors"
	"net/http"

	"carbontrack-api/middleware"
	"carbontrack-api/models"
	"carbontrack-api/services"

	"github.com/gin-gonic/gin"
)

type TargetHandler struct {
	Emissions *services.EmissionsService
	Targets   *services.TargetService
}

// GetTarget returns the effective monthly target and the progress derived
// from the current total.
func (h *TargetHandler) GetTarget(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	h.Targets.EnsureLoaded(c.Request.Context(), userID)
	h.Emissions.EnsureLoaded(c.Request.Context(), userID)

	c.JSON(http.StatusOK, h.Targets.Progress(userID, h.Emissions.Total(userID)))
}

// SetTarget validates and stores the user's monthly target. Non-positive
// values are rejected before any state changes.
func (h *TargetHandler) SetTarget(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.SetTargetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Targets.SetTarget(userID, req.TargetAmount); err != nil {
		if errors.Is(err, services.ErrInvalidTarget) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set target"})
		return
	}

	c.JSON(http.StatusOK, h.Targets.Progress(userID, h.Emissions.Total(userID)))
}
