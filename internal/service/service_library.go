// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/remix-gateway/internal/adapter"
	"github.com/MKhiriev/remix-gateway/internal/logger"
)

type libraryService struct {
	backend adapter.Backend

	logger *logger.Logger
}

func NewLibraryService(backend adapter.Backend, logger *logger.Logger) LibraryService {
	return &libraryService{
		backend: backend,
		logger:  logger,
	}
}

func (s *libraryService) AddToPlaylist(ctx context.Context, ssid string, body json.RawMessage) (json.RawMessage, error) {
	if len(body) == 0 {
		return nil, ErrInvalidDataProvided
	}

	resp, err := s.backend.Do(ctx, "/playlist/add", ssid, adapter.RequestOptions{
		Method:    http.MethodPost,
		Body:      body,
		Operation: "playlist-add",
	})
	if err != nil {
		return nil, fmt.Errorf("adding to playlist failed: %w", err)
	}
	return resp, nil
}

func (s *libraryService) Channels(ctx context.Context, ssid, method string, body json.RawMessage) (json.RawMessage, error) {
	switch method {
	case http.MethodGet, http.MethodPost, http.MethodDelete:
	default:
		return nil, fmt.Errorf("%w: method %s", ErrInvalidDataProvided, method)
	}

	opts := adapter.RequestOptions{Method: method, Operation: "channels"}
	if method != http.MethodGet && len(body) > 0 {
		opts.Body = body
	}

	resp, err := s.backend.Do(ctx, "/user/channels", ssid, opts)
	if err != nil {
		return nil, fmt.Errorf("channels %s failed: %w", method, err)
	}
	return resp, nil
}
