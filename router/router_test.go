// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/danielhkuo/gift-draw/auth"
	"github.com/danielhkuo/gift-draw/metrics"
	"github.com/danielhkuo/gift-draw/middleware"
	"github.com/danielhkuo/gift-draw/models"
	"github.com/danielhkuo/gift-draw/testutil"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	store := testutil.SetupTestStore(t)
	return NewRouter(store, testutil.GetTestConfig(), zap.NewNop(), metrics.New(zap.NewNop()))
}

func TestHealthEndpoint(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if !strings.Contains(w.Body.String(), "gift-draw") {
		t.Errorf("Unexpected root body '%s'", w.Body.String())
	}
}

func TestUnknownPath(t *testing.T) {
	mux := newTestRouter(t)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/nope", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	mux := newTestRouter(t)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/api/select", nil))

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405, got %d", w.Code)
	}
}

func TestAdminRoutesRequireSession(t *testing.T) {
	mux := newTestRouter(t)
	cookie := testutil.AdminCookie(t, testutil.GetTestConfig())

	routes := []struct {
		method string
		path   string
		body   interface{}
	}{
		{"POST", "/api/admin/seed", models.SeedRequest{Names: []string{"Alice", "Bob"}}},
		{"GET", "/api/admin/seed", nil},
		{"GET", "/api/admin/players", nil},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, testutil.MakeRequest(rt.method, rt.path, rt.body, nil))
			testutil.AssertStatus(t, w, http.StatusUnauthorized)

			req := testutil.MakeRequest(rt.method, rt.path, rt.body, nil)
			req.AddCookie(cookie)
			w = httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			testutil.AssertStatus(t, w, http.StatusOK)
		})
	}
}

func TestRequestIDAndCORSHeaders(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest("GET", "/api/names", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Header().Get(middleware.RequestIDHeader) == "" {
		t.Error("Expected a request id header")
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "http://localhost:5173" {
		t.Errorf("Expected CORS origin echo, got %q", w.Header().Get("Access-Control-Allow-Origin"))
	}
}

func TestCORSUnlistedOriginGetsNoCredentials(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest("OPTIONS", "/api/admin/seed", nil)
	req.Header.Set("Origin", "https://evil.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Expected no Access-Control-Allow-Origin for unlisted origin, got %q", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Credentials"); got != "" {
		t.Errorf("Expected no credentials for unlisted origin, got %q", got)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	mux := newTestRouter(t)

	// Generate one recorded request first
	mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/api/taken", nil))

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	if !strings.Contains(w.Body.String(), `gift_draw_http_requests_total{endpoint="/api/taken",method="GET",status="2xx"} 1`) {
		t.Errorf("Expected recorded /api/taken request in metrics output")
	}
}

func TestHealthAndMetricsAreWrapped(t *testing.T) {
	mux := newTestRouter(t)

	for _, path := range []string{"/health", "/metrics", "/health"} {
		req := httptest.NewRequest("GET", path, nil)
		req.Header.Set(middleware.RequestIDHeader, "lb-check-1")
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		if got := w.Header().Get(middleware.RequestIDHeader); got != "lb-check-1" {
			t.Errorf("Expected %s to echo the request id, got %q", path, got)
		}
	}

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))
	body := w.Body.String()
	if strings.Contains(body, `endpoint="/health"`) || strings.Contains(body, `endpoint="/metrics"`) {
		t.Errorf("Expected health checks and scrapes to stay out of request metrics:\n%s", body)
	}
}

func TestMetricsEndpointAbsentWithoutMetrics(t *testing.T) {
	mux := NewRouter(testutil.SetupTestStore(t), testutil.GetTestConfig(), zap.NewNop(), nil)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 without metrics, got %d", w.Code)
	}
}

// TestFullDrawFlow walks the public and admin endpoints end to end
func TestFullDrawFlow(t *testing.T) {
	mux := newTestRouter(t)
	cfg := testutil.GetTestConfig()

	// Admin logs in and seeds the roster
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/api/admin/login", models.AdminLoginRequest{Password: cfg.AdminPassword}, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var session *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == auth.SessionCookieName {
			session = c
		}
	}
	if session == nil {
		t.Fatal("Expected admin session cookie")
	}

	req := testutil.MakeRequest("POST", "/api/admin/seed", models.SeedRequest{Names: []string{"1. Alice", "2. Bob", "3. Carol"}}, nil)
	req.AddCookie(session)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	// Participant logs in by exact stored name
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/api/login", models.LoginRequest{Name: "2. Bob"}, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var login models.LoginResponse
	testutil.AssertJSON(t, w, &login)
	if login.Participant.ID != 2 {
		t.Fatalf("Expected Bob to be id 2, got %d", login.Participant.ID)
	}

	// Bob draws Carol
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/api/select", models.SelectRequest{PickerID: 2, TargetID: 3}, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	// Alice cannot take Carol too
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/api/select", models.SelectRequest{PickerID: 1, TargetID: 3}, nil))
	testutil.AssertStatus(t, w, http.StatusConflict)

	// Taken list reflects the claim
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("GET", "/api/taken", nil, nil))
	var taken models.TakenResponse
	testutil.AssertJSON(t, w, &taken)
	if len(taken.IDs) != 1 || taken.IDs[0] != 3 {
		t.Errorf("Expected taken [3], got %v", taken.IDs)
	}

	// Admin roster resolves the target name
	req = testutil.MakeRequest("GET", "/api/admin/players", nil, nil)
	req.AddCookie(session)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var players models.AdminRosterResponse
	testutil.AssertJSON(t, w, &players)
	bob := players.Participants[1]
	if bob.SelectedTargetName == nil || *bob.SelectedTargetName != "3. Carol" {
		t.Errorf("Expected Bob's target to be 3. Carol, got %v", bob.SelectedTargetName)
	}

	// Logout clears the cookie
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/api/admin/logout", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)
}
