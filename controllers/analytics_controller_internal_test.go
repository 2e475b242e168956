package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestStartOfWeekSnapsToMonday(t *testing.T) {
	t.Parallel()

	loc := time.UTC
	cases := []struct {
		name string
		in   time.Time
		want string
	}{
		{"monday stays", time.Date(2025, 3, 10, 15, 4, 5, 0, loc), "2025-03-10"},
		{"wednesday", time.Date(2025, 3, 12, 0, 0, 0, 0, loc), "2025-03-10"},
		{"sunday goes back six days", time.Date(2025, 3, 16, 23, 59, 0, 0, loc), "2025-03-10"},
		{"across month boundary", time.Date(2025, 4, 1, 8, 0, 0, 0, loc), "2025-03-31"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := startOfWeek(tc.in)
			if got.Format("2006-01-02") != tc.want {
				t.Errorf("startOfWeek(%v) = %v, want %s", tc.in, got, tc.want)
			}
			if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 {
				t.Errorf("startOfWeek should be midnight, got %v", got)
			}
		})
	}
}

// Both rejections happen before the service is touched, so a nil service is
// enough to pin the policy.
func weekViewRequest(t *testing.T, weekStart string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("userID", uint(1))
	c.Request = httptest.NewRequest(http.MethodGet, "/analytics/week?week_start="+weekStart, nil)

	NewAnalyticsController(nil).GetWeekView(c)
	return w
}

func TestGetWeekViewRejectsFutureWeek(t *testing.T) {
	nextMonday := startOfWeek(time.Now()).AddDate(0, 0, 7)
	w := weekViewRequest(t, nextMonday.Format("2006-01-02"))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("future week_start: status = %d, want 400", w.Code)
	}

	// Any day inside a future week snaps to its Monday and is still refused.
	w = weekViewRequest(t, nextMonday.AddDate(0, 0, 3).Format("2006-01-02"))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("mid-future-week week_start: status = %d, want 400", w.Code)
	}
}

func TestGetWeekViewRejectsMalformedWeekStart(t *testing.T) {
	w := weekViewRequest(t, "not-a-date")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("malformed week_start: status = %d, want 400", w.Code)
	}
}
