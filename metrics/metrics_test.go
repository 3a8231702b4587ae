// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCategorizeStatus(t *testing.T) {
	tests := []struct {
		code     int
		expected string
	}{
		{200, "2xx"},
		{204, "2xx"},
		{302, "3xx"},
		{400, "4xx"},
		{409, "4xx"},
		{500, "5xx"},
		{503, "5xx"},
		{100, "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, categorizeStatus(tt.code), "code %d", tt.code)
	}
}

func TestShouldSkipEndpoint(t *testing.T) {
	assert.True(t, ShouldSkipEndpoint("/metrics"))
	assert.True(t, ShouldSkipEndpoint("/health"))
	assert.False(t, ShouldSkipEndpoint("/api/select"))
}

func TestRecorders(t *testing.T) {
	m := New(zap.NewNop())

	m.RecordHTTPRequest("POST", "/api/select", 409, 15*time.Millisecond)
	m.RecordHTTPRequest("POST", "/api/select", 200, 5*time.Millisecond)
	m.RecordSelection("success")
	m.RecordSelection("target_taken")
	m.RecordSelection("target_taken")
	m.RecordReseed(12)
	m.SetRosterSize(11)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("POST", "/api/select", "4xx")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("POST", "/api/select", "2xx")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.SelectionAttemptsTotal.WithLabelValues("target_taken")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RosterReseedsTotal))
	assert.Equal(t, 11.0, testutil.ToFloat64(m.RosterSize))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.RecordHTTPRequest("GET", "/api/names", 200, time.Millisecond)
		m.RecordSelection("success")
		m.RecordReseed(3)
		m.SetRosterSize(3)
	})
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := New(zap.NewNop())
	m.RecordSelection("already_assigned")
	m.SetRosterSize(5)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, strings.Contains(body, `gift_draw_selection_attempts_total{result="already_assigned"} 1`))
	assert.True(t, strings.Contains(body, "gift_draw_roster_participants 5"))
	assert.True(t, strings.Contains(body, "go_goroutines"))
}

func TestInstancesAreIndependent(t *testing.T) {
	a := New(zap.NewNop())
	b := New(zap.NewNop())

	a.RecordSelection("success")

	assert.Equal(t, 1.0, testutil.ToFloat64(a.SelectionAttemptsTotal.WithLabelValues("success")))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.SelectionAttemptsTotal.WithLabelValues("success")))
}
