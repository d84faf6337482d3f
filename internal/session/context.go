// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

// ExecutionContext tells the projector who the session view is built for.
type ExecutionContext int

const (
	// ClientContext is the browser-facing projection. It is the zero value,
	// so an unset context never exposes the ssid.
	ClientContext ExecutionContext = iota
	// ServerContext is the request-scoped projection used by route handlers.
	ServerContext
)

func (c ExecutionContext) String() string {
	switch c {
	case ServerContext:
		return "server"
	default:
		return "client"
	}
}
