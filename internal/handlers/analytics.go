package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/odryna/blog-platform/backend/internal/analytics"
)

type AnalyticsHandler struct {
	stats *analytics.Service
}

func NewAnalyticsHandler(stats *analytics.Service) *AnalyticsHandler {
	return &AnalyticsHandler{stats: stats}
}

// DailyBreakdown returns per-day comment counts (total and blocked) for the
// optional date_from/date_to range
func (h *AnalyticsHandler) DailyBreakdown(c *gin.Context) {
	from, to, err := analytics.ParseDates(c.Query("date_from"), c.Query("date_to"))
	if err != nil {
		respondError(c, err)
		return
	}

	breakdown, err := h.stats.DailyBreakdown(c.Request.Context(), from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch breakdown"})
		return
	}

	c.JSON(http.StatusOK, breakdown)
}
