// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the gateway's HTTP API.
//
// Every protected route runs the session validator first and returns its
// failure response unchanged. Backend failures are translated into the
// stable error codes of the models package in errors_mapper.go. Request
// tracing, access logging, metrics and panic recovery are middlewares of
// this package.
package http
