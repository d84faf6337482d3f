// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/remix-gateway/internal/adapter"
	"github.com/MKhiriev/remix-gateway/internal/logger"
	"github.com/MKhiriev/remix-gateway/internal/metrics"
	"github.com/MKhiriev/remix-gateway/internal/utils"
	"github.com/MKhiriev/remix-gateway/models"
)

// Names of the aggregated sub-services, used as keys of the errors map.
const (
	ServiceAuth            = "auth"
	ServiceMembership      = "membership"
	ServiceCredits         = "credits"
	ServiceDownloadPoints  = "downloadPoints"
	ServiceDownloadHistory = "downloadHistory"
	ServiceFavorite        = "favorite"
	ServiceFavoriteMusics  = "favoriteMusics"
)

// apply writes a mapped backend answer onto the profile.
type apply func(user *models.UserData)

// mapper turns a successful backend answer into an apply. extra carries
// failures of nested calls that do not fail the service itself.
type mapper func(ctx context.Context, ssid string, payload json.RawMessage) (fn apply, extra map[string]models.ServiceError, err error)

type subService struct {
	name     string
	endpoint string
	mapper   mapper
}

// slot is the outcome of one sub-service. Each goroutine owns exactly one.
type slot struct {
	fetched bool
	apply   apply
	err     *models.ServiceError
	extra   map[string]models.ServiceError
}

type userInitService struct {
	backend adapter.Backend
	metrics *metrics.Metrics
	now     func() time.Time

	logger *logger.Logger
}

func NewUserInitService(backend adapter.Backend, m *metrics.Metrics, logger *logger.Logger) UserInitService {
	return &userInitService{
		backend: backend,
		metrics: m,
		now:     time.Now,
		logger:  logger,
	}
}

func (s *userInitService) subServices() []subService {
	return []subService{
		{name: ServiceAuth, endpoint: "/auth/isLogged", mapper: func(_ context.Context, _ string, payload json.RawMessage) (apply, map[string]models.ServiceError, error) {
			isNewbie, err := mapAuth(payload)
			if err != nil {
				return nil, nil, err
			}
			return func(user *models.UserData) { user.IsNewbie = isNewbie }, nil, nil
		}},
		{name: ServiceMembership, endpoint: "/user/membership", mapper: func(_ context.Context, _ string, payload json.RawMessage) (apply, map[string]models.ServiceError, error) {
			tier := mapMembership(payload)
			return func(user *models.UserData) { user.Membership.Tier = tier }, nil, nil
		}},
		{name: ServiceCredits, endpoint: "/user/credits", mapper: func(_ context.Context, _ string, payload json.RawMessage) (apply, map[string]models.ServiceError, error) {
			balance, err := mapCredits(payload)
			if err != nil {
				return nil, nil, err
			}
			return func(user *models.UserData) { user.Credits.Balance = balance }, nil, nil
		}},
		{name: ServiceDownloadPoints, endpoint: "/user/download-points", mapper: func(_ context.Context, _ string, payload json.RawMessage) (apply, map[string]models.ServiceError, error) {
			points, ok, err := mapDownloadPoints(payload)
			if err != nil || !ok {
				return nil, nil, err
			}
			return func(user *models.UserData) { user.DownloadPoints = points }, nil, nil
		}},
		{name: ServiceDownloadHistory, endpoint: "/user/download-history", mapper: func(_ context.Context, _ string, payload json.RawMessage) (apply, map[string]models.ServiceError, error) {
			history, err := mapDownloadHistory(payload)
			if err != nil {
				return nil, nil, err
			}
			return func(user *models.UserData) { user.DownloadHistory = history }, nil, nil
		}},
		{name: ServiceFavorite, endpoint: "/user/favorite", mapper: s.mapFavorite},
	}
}

// mapFavorite resolves the favorite playlist and then, sequentially, its
// music ids. A failing music lookup keeps the playlist with no musics.
func (s *userInitService) mapFavorite(ctx context.Context, ssid string, payload json.RawMessage) (apply, map[string]models.ServiceError, error) {
	id, ok, err := mapFavorite(payload)
	if err != nil {
		return nil, nil, err
	}
	if !ok {
		return func(user *models.UserData) { user.Favorite = nil }, nil, nil
	}

	segment, err := idPathSegment(id)
	if err != nil {
		return nil, nil, err
	}

	favorite := &models.Favorite{ID: id, MusicIDs: []json.RawMessage{}}
	fn := func(user *models.UserData) { user.Favorite = favorite }

	endpoint := "/playlist/" + url.PathEscape(segment) + "/musics"
	body, err := s.backend.Do(ctx, endpoint, ssid, adapter.RequestOptions{Operation: ServiceFavoriteMusics})
	if err != nil {
		s.metrics.IncUserInitService(ServiceFavoriteMusics, models.ErrorTypeService)
		return fn, map[string]models.ServiceError{ServiceFavoriteMusics: serviceError(ServiceFavoriteMusics, err)}, nil
	}

	musicIDs, err := idList(unwrapData(body))
	if err != nil {
		s.metrics.IncUserInitService(ServiceFavoriteMusics, models.ErrorTypeProcessing)
		return fn, map[string]models.ServiceError{ServiceFavoriteMusics: processingError(ServiceFavoriteMusics, err)}, nil
	}

	s.metrics.IncUserInitService(ServiceFavoriteMusics, "success")
	favorite.MusicIDs = musicIDs
	return fn, nil, nil
}

// Init runs every sub-service concurrently and waits for all of them. Each
// goroutine reports into its own slot and always returns nil, so one failing
// endpoint never cancels the others.
func (s *userInitService) Init(ctx context.Context, ssid string) (response models.UserInitResponse, err error) {
	log := logger.FromContext(ctx)

	defer func() {
		if r := recover(); r != nil {
			log.Error().Any("panic", r).Msg("user-init aggregation panicked")
			response = models.UserInitResponse{}
			err = fmt.Errorf("%w: %v", ErrAggregationFailed, r)
		}
	}()

	subServices := s.subServices()
	slots := make([]slot, len(subServices))

	var g errgroup.Group
	for i, sub := range subServices {
		i, sub := i, sub
		g.Go(func() error {
			slots[i] = s.run(ctx, ssid, sub)
			return nil
		})
	}
	_ = g.Wait()

	user := models.DefaultUserData()
	errs := make(map[string]models.ServiceError)
	successful := 0

	for i, sub := range subServices {
		result := slots[i]
		if result.fetched {
			successful++
		}
		if result.err != nil {
			errs[sub.name] = *result.err
			if result.fetched {
				successful--
			}
		} else if result.apply != nil {
			result.apply(&user)
		}
		for name, serviceErr := range result.extra {
			errs[name] = serviceErr
		}
	}

	total := len(subServices)
	requestID, _ := utils.GetRequestIDFromContext(ctx)

	// Any single success is enough, even when auth itself failed.
	// TODO: require the auth slot once clients stop relying on partial profiles.
	response = models.UserInitResponse{
		Success: successful > 0,
		Data:    models.UserInitData{User: user},
		Meta: models.UserInitMeta{
			Timestamp: utils.Timestamp(s.now()),
			RequestID: requestID,
			ServiceStats: models.ServiceStats{
				Total:       total,
				Successful:  successful,
				Failed:      total - successful,
				SuccessRate: fmt.Sprintf("%.1f%%", float64(successful)/float64(total)*100),
			},
		},
	}
	if len(errs) > 0 {
		response.Errors = errs
		response.Meta.HasPartialFailures = true
	}

	log.Info().
		Int("successful", successful).
		Int("failed", total-successful).
		Strs("failedServices", mapKeys(errs)).
		Msg("user-init aggregated")

	return response, nil
}

// run fetches and maps one sub-service. A panic while mapping is reported as
// a processing error of that service only.
func (s *userInitService) run(ctx context.Context, ssid string, sub subService) (result slot) {
	defer func() {
		if r := recover(); r != nil {
			processing := processingError(sub.name, fmt.Errorf("%w: %v", ErrUnexpectedPayload, r))
			result = slot{fetched: result.fetched, err: &processing}
			s.metrics.IncUserInitService(sub.name, models.ErrorTypeProcessing)
		}
	}()

	body, err := s.backend.Do(ctx, sub.endpoint, ssid, adapter.RequestOptions{Method: http.MethodGet, Operation: sub.name})
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("service", sub.name).Msg("user-init service failed")
		s.metrics.IncUserInitService(sub.name, models.ErrorTypeService)
		failure := serviceError(sub.name, err)
		return slot{err: &failure}
	}
	result.fetched = true

	fn, extra, err := sub.mapper(ctx, ssid, unwrapData(body))
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("service", sub.name).Msg("user-init response could not be processed")
		s.metrics.IncUserInitService(sub.name, models.ErrorTypeProcessing)
		processing := processingError(sub.name, err)
		return slot{fetched: true, err: &processing}
	}

	s.metrics.IncUserInitService(sub.name, "success")
	return slot{fetched: true, apply: fn, extra: extra}
}

func serviceError(name string, err error) models.ServiceError {
	return models.ServiceError{
		Type:    models.ErrorTypeService,
		Message: "Failed to fetch " + name,
		Details: err.Error(),
	}
}

func processingError(name string, err error) models.ServiceError {
	return models.ServiceError{
		Type:    models.ErrorTypeProcessing,
		Message: "Failed to process " + name + " response",
		Details: err.Error(),
	}
}

func mapKeys(m map[string]models.ServiceError) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
