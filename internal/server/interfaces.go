// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract of the gateway server.
type Server interface {
	// RunServer serves requests until SIGTERM, SIGINT or SIGQUIT arrives and
	// then shuts down gracefully.
	RunServer()

	// Run serves requests until ctx is done and then shuts down gracefully.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
