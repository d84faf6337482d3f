// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.ObserveBackendCall("membership", "success", 10*time.Millisecond)
	m.ObserveBackendCall("membership", "success", 20*time.Millisecond)
	m.ObserveBackendCall("credits", "network", time.Millisecond)
	m.IncUserInitService("credits", "failed")
	m.IncSessionFailure("no_ssid")
	m.ObserveHTTPRequest(http.MethodGet, "/api/auth/user-init", http.StatusOK, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.backendCalls.WithLabelValues("membership", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.backendCalls.WithLabelValues("credits", "network")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.userInitServices.WithLabelValues("credits", "failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.sessionFailures.WithLabelValues("no_ssid")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues(http.MethodGet, "/api/auth/user-init", "200")))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.IncUserInitService("auth", "success")

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `remix_gateway_user_init_services_total{outcome="success",service="auth"} 1`)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveBackendCall("x", "y", time.Second)
		m.ObserveHTTPRequest("GET", "/", 200, time.Second)
		m.IncUserInitService("x", "y")
		m.IncSessionFailure("x")
	})
	assert.Nil(t, m.Registry())

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
