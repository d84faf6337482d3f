// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withMetrics, h.withRecover)
	router.Use(middleware.Compress(5, "application/json", "text/plain"))

	router.Get("/metrics", h.metrics.Handler().ServeHTTP)
	router.Get("/api/version", h.getServerVersion)

	// routes that establish or describe a session
	router.Group(func(r chi.Router) {
		r.Get("/api/auth/session", h.session)
		r.Post("/api/auth/callback/credentials", h.callbackCredentials)
		r.Post("/api/auth/callback/social", h.callbackSocial)
	})

	// routes acting on behalf of a session
	router.Group(func(r chi.Router) {
		r.Use(h.sessions.Refresher.Middleware)

		r.Get("/api/auth/user-init", h.userInit)
		r.Get("/api/auth/session-verify", h.sessionVerify)
		r.Post("/api/auth/newbie-confirm", h.newbieConfirm)
		r.Post("/api/auth/signout", h.signout)

		r.Post("/api/playlist/add", h.addToPlaylist)

		r.Get("/api/user/channels", h.channels)
		r.Post("/api/user/channels", h.channels)
		r.Delete("/api/user/channels", h.channels)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
