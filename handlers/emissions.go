package handlers

import (
	"net/http"

	"carbontrack-api/middleware"
	"carbontrack-api/models"
	"carbontrack-api/services"

	"github.com/gin-gonic/gin"
)

type EmissionsHandler struct {
	Emissions *services.EmissionsService
	Targets   *services.TargetService
}

// CalculateTransportation runs the transportation calculator and, on
// success, forwards the figure to the aggregator.
func (h *EmissionsHandler) CalculateTransportation(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.TransportationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := services.CalculateTransportation(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.Emissions.EnsureLoaded(c.Request.Context(), userID)
	if err := h.Emissions.Update(userID, models.CategoryTransportation, result.Emission); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record emissions"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// CalculateWaste runs the waste calculator. Unlike the other two
// calculators it does not forward into the aggregator; see DESIGN.md open
// questions before changing that.
func (h *EmissionsHandler) CalculateWaste(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.WasteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := services.CalculateWaste(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// CalculateEnergy runs the energy calculator and forwards the total to the
// aggregator.
func (h *EmissionsHandler) CalculateEnergy(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.EnergyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := services.CalculateEnergy(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.Emissions.EnsureLoaded(c.Request.Context(), userID)
	if err := h.Emissions.Update(userID, models.CategoryEnergy, result.Emission); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record emissions"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetSummary is the dashboard read: snapshot, total, and target progress in
// one payload.
func (h *EmissionsHandler) GetSummary(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	// Load failures are swallowed: the dashboard renders the prior (or
	// zero) snapshot and a reload retries.
	h.Emissions.EnsureLoaded(c.Request.Context(), userID)
	h.Targets.EnsureLoaded(c.Request.Context(), userID)

	snapshot := h.Emissions.Snapshot(userID)
	total := snapshot.Total()

	c.JSON(http.StatusOK, models.SummaryResponse{
		Emissions: snapshot,
		Total:     total,
		Progress:  h.Targets.Progress(userID, total),
	})
}

// GetHistory returns the month's daily entries for the trend chart.
func (h *EmissionsHandler) GetHistory(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entries, err := h.Emissions.History(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch history"})
		return
	}
	if entries == nil {
		entries = []models.EmissionEntry{}
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// ClearEmissions zeroes the cache immediately; the month's rows are deleted
// in the background.
func (h *EmissionsHandler) ClearEmissions(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	h.Emissions.Clear(userID)
	c.JSON(http.StatusOK, gin.H{"message": "All emissions cleared for the current month"})
}
