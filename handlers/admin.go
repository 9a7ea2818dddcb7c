package handlers

import (
	"database/sql"
	"net/http"
	"os"

	"carbontrack-api/migration"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	DB *sql.DB
}

// authorized gates admin routes on the X-Admin-Secret header.
func (h *AdminHandler) authorized(c *gin.Context) bool {
	secret := os.Getenv("ADMIN_SECRET")
	if secret == "" || c.GetHeader("X-Admin-Secret") != secret {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return false
	}
	return true
}

// GetStats returns platform-wide counters for operations dashboards.
func (h *AdminHandler) GetStats(c *gin.Context) {
	if !h.authorized(c) {
		return
	}

	stats := gin.H{}

	var users, entries, targets int
	if err := h.DB.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&users); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if err := h.DB.QueryRow(`SELECT COUNT(*) FROM emissions WHERE date >= date_trunc('month', NOW() AT TIME ZONE 'utc')`).Scan(&entries); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if err := h.DB.QueryRow(`SELECT COUNT(*) FROM monthly_targets`).Scan(&targets); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	var totalThisMonth sql.NullFloat64
	if err := h.DB.QueryRow(`
		SELECT SUM(amount) FROM emissions
		WHERE date >= date_trunc('month', NOW() AT TIME ZONE 'utc')
	`).Scan(&totalThisMonth); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	stats["users"] = users
	stats["entries_this_month"] = entries
	stats["targets_set"] = targets
	stats["total_kg_this_month"] = totalThisMonth.Float64

	c.JSON(http.StatusOK, stats)
}

// RunDedupe re-runs the duplicate-row merge on demand.
func (h *AdminHandler) RunDedupe(c *gin.Context) {
	if !h.authorized(c) {
		return
	}

	removed, err := migration.MergeDuplicateEmissions(h.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"rows_removed": removed})
}
