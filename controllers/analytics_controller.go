// controllers/analytics_controller.go
package controllers

import (
	"net/http"
	"time"

	"backend/services"
	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	Svc *services.AnalyticsService
}

func NewAnalyticsController(svc *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{Svc: svc}
}

// GetDayView returns the aggregated day: entries, macro totals, inflammation
// metrics and any synced fitness data. ?date= defaults to today.
func (h *AnalyticsController) GetDayView(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok { c.JSON(http.StatusUnauthorized, gin.H{"error":"unauthorized"}); return }

	now := time.Now()
	date := now
	if v := c.Query("date"); v != "" {
		d, err := time.ParseInLocation("2006-01-02", v, now.Location())
		if err != nil { c.JSON(400, gin.H{"error":"invalid date"}); return }
		date = d
	}

	out, err := h.Svc.DayView(c.Request.Context(), userID, date)
	if err != nil { c.JSON(500, gin.H{"error": err.Error()}); return }
	c.JSON(200, out)
}

// GetWeekView returns the 7-day breakdown plus weekly averages. ?week_start=
// is snapped back to its Monday; weeks that start after the current week are
// refused.
func (h *AnalyticsController) GetWeekView(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok { c.JSON(http.StatusUnauthorized, gin.H{"error":"unauthorized"}); return }

	now := time.Now()
	weekStart := startOfWeek(now)
	if v := c.Query("week_start"); v != "" {
		ws, err := time.ParseInLocation("2006-01-02", v, now.Location())
		if err != nil { c.JSON(400, gin.H{"error":"invalid week_start"}); return }
		weekStart = startOfWeek(ws)
	}
	if weekStart.After(startOfWeek(now)) {
		c.JSON(400, gin.H{"error":"week_start is in the future"}); return
	}

	out, err := h.Svc.WeekView(c.Request.Context(), userID, weekStart)
	if err != nil { c.JSON(500, gin.H{"error": err.Error()}); return }
	c.JSON(200, out)
}

// --- helpers ---

func userIDFromCtx(c *gin.Context) (uint, bool) {
	v, ok := c.Get("userID")
	if !ok {
		return 0, false
	}
	switch id := v.(type) {
	case uint:
		return id, true
	case int:
		return uint(id), true
	case int64:
		return uint(id), true
	default:
		return 0, false
	}
}

func startOfWeek(t time.Time) time.Time {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7
	}
	tt := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return tt.AddDate(0, 0, -(wd - 1)) // Monday
}
