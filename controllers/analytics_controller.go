package controllers

import (
	"net/http"
	"time"

	"github.com/berkaykan001/MacroBalance/services"
	"github.com/gin-gonic/gin"
)

// AnalyticsController serves the history series behind the trend charts.
type AnalyticsController struct {
	analytics *services.AnalyticsService
}

func NewAnalyticsController(analytics *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{analytics: analytics}
}

// parseRange reads from/to query params (yyyy-mm-dd). Defaults to the
// last 7 days ending today.
func parseRange(c *gin.Context) (time.Time, time.Time, bool) {
	now := time.Now()
	from, to := now.AddDate(0, 0, -6), now

	if v := c.Query("from"); v != "" {
		t, err := time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "from must be yyyy-mm-dd"})
			return time.Time{}, time.Time{}, false
		}
		from = t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "to must be yyyy-mm-dd"})
			return time.Time{}, time.Time{}, false
		}
		to = t
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to is before from"})
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

// GET /analytics/daily?from=&to=
func (ac *AnalyticsController) Daily(c *gin.Context) {
	from, to, ok := parseRange(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, ac.analytics.DailyTotals(from, to))
}

// GET /analytics/summary?from=&to=&include_missing=true
func (ac *AnalyticsController) Summary(c *gin.Context) {
	from, to, ok := parseRange(c)
	if !ok {
		return
	}
	includeMissing := c.DefaultQuery("include_missing", "true") == "true"
	c.JSON(http.StatusOK, ac.analytics.SummaryFor(from, to, includeMissing))
}
