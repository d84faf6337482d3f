// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics exposes the gateway's Prometheus instruments.
//
// All methods are safe on a nil *Metrics, which records nothing.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "remix_gateway"

// Metrics holds the gateway's collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
	backendCalls     *prometheus.CounterVec
	backendDuration  *prometheus.HistogramVec
	userInitServices *prometheus.CounterVec
	sessionFailures  *prometheus.CounterVec
}

// New registers all collectors on a fresh registry together with the Go
// runtime and process collectors.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,

		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Inbound HTTP requests by route pattern and status.",
		}, []string{"method", "route", "status"}),

		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Inbound HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),

		backendCalls: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "backend_calls_total",
			Help:      "Outbound backend calls by operation and outcome.",
		}, []string{"operation", "outcome"}),

		backendDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "backend_call_duration_seconds",
			Help:      "Outbound backend call latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),

		userInitServices: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "user_init_services_total",
			Help:      "User-init sub-service outcomes.",
		}, []string{"service", "outcome"}),

		sessionFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "session_validation_failures_total",
			Help:      "Session validation failures by error type.",
		}, []string{"error_type"}),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) ObserveHTTPRequest(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

func (m *Metrics) ObserveBackendCall(operation, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.backendCalls.WithLabelValues(operation, outcome).Inc()
	m.backendDuration.WithLabelValues(operation).Observe(d.Seconds())
}

func (m *Metrics) IncUserInitService(service, outcome string) {
	if m == nil {
		return
	}
	m.userInitServices.WithLabelValues(service, outcome).Inc()
}

func (m *Metrics) IncSessionFailure(errorType string) {
	if m == nil {
		return
	}
	m.sessionFailures.WithLabelValues(errorType).Inc()
}
