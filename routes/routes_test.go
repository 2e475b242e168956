package routes_test

import (
	"testing"

	"backend/routes"
	"backend/services"

	"github.com/gin-gonic/gin"
)

// Pins the route surface: every endpoint the clients call must stay
// registered, and /entries/recent must keep its own recency handler rather
// than aliasing the date-filtering list.
func TestRouterSurface(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := routes.SetupRouter(services.NewRealtimeHub(), nil)

	type route struct{ method, path string }
	handlers := map[route]string{}
	for _, ri := range r.Routes() {
		handlers[route{ri.Method, ri.Path}] = ri.Handler
	}

	want := []route{
		{"POST", "/auth/register"},
		{"POST", "/auth/login"},
		{"POST", "/auth/verify-mfa"},
		{"POST", "/auth/forgot-password"},
		{"POST", "/auth/reset-password"},
		{"GET", "/user/profile"},
		{"PUT", "/user/profile"},
		{"POST", "/user/notifications/toggle"},
		{"POST", "/entries"},
		{"GET", "/entries"},
		{"GET", "/entries/recent"},
		{"GET", "/entries/:id"},
		{"PUT", "/entries/:id"},
		{"DELETE", "/entries/:id"},
		{"POST", "/entries/:id/photo"},
		{"GET", "/food/search"},
		{"GET", "/food/barcode/:code"},
		{"POST", "/food/recognize"},
		{"GET", "/analytics/day"},
		{"GET", "/analytics/week"},
		{"POST", "/fitness"},
		{"GET", "/fitness"},
		{"GET", "/goals"},
		{"PUT", "/goals"},
		{"GET", "/goals/by-date"},
		{"GET", "/recommendations"},
		{"POST", "/devices/register"},
		{"GET", "/ws/events"},
		{"POST", "/dev/push-test"},
		{"POST", "/dev/log-reminder"},
		{"POST", "/dev/upload-image"},
	}
	for _, rt := range want {
		if _, ok := handlers[rt]; !ok {
			t.Errorf("route %s %s not registered", rt.method, rt.path)
		}
	}

	if h := handlers[route{"GET", "/entries/recent"}]; h == handlers[route{"GET", "/entries"}] {
		t.Errorf("/entries/recent shares handler %q with the dated list", h)
	}
}
