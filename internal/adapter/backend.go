// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/MKhiriev/remix-gateway/internal/config"
	"github.com/MKhiriev/remix-gateway/internal/logger"
	"github.com/MKhiriev/remix-gateway/internal/metrics"
	"github.com/MKhiriev/remix-gateway/internal/utils"
)

const tracerName = "github.com/MKhiriev/remix-gateway/internal/adapter"

type httpBackendAdapter struct {
	client  *utils.HTTPClient
	baseURL string
	timeout time.Duration

	tracer  trace.Tracer
	metrics *metrics.Metrics
	logger  *logger.Logger
}

// NewHTTPBackendAdapter constructs the HTTP implementation of [Backend].
// An empty base URL is accepted: every call then fails with
// [ErrBackendNotConfigured] so routes can answer CONFIG_001.
func NewHTTPBackendAdapter(cfg config.Backend, m *metrics.Metrics, l *logger.Logger) Backend {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &httpBackendAdapter{
		client:  utils.NewHTTPClient(baseURL, 0),
		baseURL: baseURL,
		timeout: timeout,
		tracer:  otel.Tracer(tracerName),
		metrics: m,
		logger:  l,
	}
}

// Do implements [Backend].
func (a *httpBackendAdapter) Do(ctx context.Context, endpoint, ssid string, opts RequestOptions) ([]byte, error) {
	return a.call(ctx, endpoint, ssid, opts)
}

// DoAnonymous implements [Backend].
func (a *httpBackendAdapter) DoAnonymous(ctx context.Context, endpoint string, opts RequestOptions) ([]byte, error) {
	return a.call(ctx, endpoint, "", opts)
}

func (a *httpBackendAdapter) call(ctx context.Context, endpoint, ssid string, opts RequestOptions) ([]byte, error) {
	if a.baseURL == "" {
		return nil, ErrBackendNotConfigured
	}

	method := strings.ToUpper(opts.Method)
	if method == "" {
		method = http.MethodGet
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = a.timeout
	}
	if !strings.HasPrefix(endpoint, "/") {
		endpoint = "/" + endpoint
	}
	operation := opts.Operation
	if operation == "" {
		operation = endpoint
	}

	ctx, span := a.tracer.Start(ctx, "backend "+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", method),
			attribute.String("backend.operation", operation),
			attribute.Bool("backend.authenticated", ssid != ""),
		),
	)
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")
	if ssid != "" {
		req.SetHeader("Authorization", "Bearer "+ssid)
	}
	if method != http.MethodGet && opts.Body != nil {
		req.SetBody(opts.Body)
	}

	requestID, _ := utils.GetRequestIDFromContext(ctx)

	start := time.Now()
	resp, err := req.Execute(method, endpoint)
	elapsed := time.Since(start)

	if err != nil {
		outcome := "network"
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			outcome = "timeout"
			err = ErrRequestTimeout
		} else {
			err = fmt.Errorf("%w: %s %s: %w", ErrNetwork, method, endpoint, err)
		}

		a.finish(span, operation, outcome, elapsed, err)
		a.logger.Warn().
			Err(err).
			Str("requestId", requestID).
			Str("operation", operation).
			Dur("elapsed", elapsed).
			Msg("backend call failed")
		return nil, err
	}

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode()))

	if err = mapHTTPError(resp); err != nil {
		a.finish(span, operation, "http_"+strconv.Itoa(resp.StatusCode()), elapsed, err)
		a.logger.Info().
			Int("status", resp.StatusCode()).
			Str("requestId", requestID).
			Str("operation", operation).
			Msg("backend rejected call")
		return nil, err
	}

	a.finish(span, operation, "success", elapsed, nil)
	return resp.Body(), nil
}

func (a *httpBackendAdapter) finish(span trace.Span, operation, outcome string, elapsed time.Duration, err error) {
	a.metrics.ObserveBackendCall(operation, outcome, elapsed)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
	}
}
