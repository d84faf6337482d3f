// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/remix-gateway/internal/adapter"
	"github.com/MKhiriev/remix-gateway/internal/logger"
	"github.com/MKhiriev/remix-gateway/internal/validators"
	"github.com/MKhiriev/remix-gateway/models"
)

// authService is the concrete implementation of AuthService.
// It forwards auth calls to the backend and turns login answers into
// unsigned session tokens. Signing them is left to the caller.
type authService struct {
	// backend is the transport to the backend REST service.
	backend adapter.Backend

	// validator checks login payloads before they are forwarded.
	validator validators.Validator

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService on top of backend.
//
// The returned service is safe for concurrent use; it holds no per-user
// state.
func NewAuthService(backend adapter.Backend, logger *logger.Logger) AuthService {
	return &authService{
		backend:   backend,
		validator: validators.NewLoginValidator(),
		logger:    logger,
	}
}

// VerifySession asks the backend about ssid. An explicit isLogged:false is
// reported as adapter.ErrUnauthorized, the same as a 401 answer.
func (a *authService) VerifySession(ctx context.Context, ssid string) (json.RawMessage, error) {
	body, err := a.backend.Do(ctx, "/auth/isLogged", ssid, adapter.RequestOptions{Operation: "session-verify"})
	if err != nil {
		return nil, fmt.Errorf("session verification failed: %w", err)
	}
	if logged, ok := loggedFlag(body); ok && !logged {
		return nil, fmt.Errorf("session verification failed: %w: backend reports session is not logged in", adapter.ErrUnauthorized)
	}
	return body, nil
}

func (a *authService) ConfirmNewbie(ctx context.Context, ssid string, body json.RawMessage) (json.RawMessage, error) {
	opts := adapter.RequestOptions{Method: http.MethodPost, Operation: "newbie-confirm"}
	if len(body) > 0 {
		opts.Body = body
	}

	resp, err := a.backend.Do(ctx, "/auth/newbie-confirm", ssid, opts)
	if err != nil {
		return nil, fmt.Errorf("newbie confirmation failed: %w", err)
	}
	return resp, nil
}

func (a *authService) SignOut(ctx context.Context, ssid string) (json.RawMessage, error) {
	resp, err := a.backend.Do(ctx, "/auth/signout", ssid, adapter.RequestOptions{Method: http.MethodPost, Operation: "signout"})
	if err != nil {
		return nil, fmt.Errorf("signout failed: %w", err)
	}
	return resp, nil
}

// CheckSession asks the backend whether ssid is still logged in.
//
// A 401 answer, or an explicit isLogged:false, means the session is gone and
// is reported as (false, nil). Every other failure is returned as an error so
// that callers can keep the session untouched.
func (a *authService) CheckSession(ctx context.Context, ssid string) (bool, error) {
	body, err := a.backend.Do(ctx, "/auth/isLogged", ssid, adapter.RequestOptions{Operation: "session-check"})
	if err != nil {
		if errors.Is(err, adapter.ErrUnauthorized) {
			return false, nil
		}
		return false, fmt.Errorf("session check failed: %w", err)
	}

	if logged, ok := loggedFlag(body); ok {
		return logged, nil
	}
	return true, nil
}

// loggedFlag reads the isLogged (or isLoggedIn) boolean of an isLogged answer.
// ok is false when the flag is missing or not a boolean.
func loggedFlag(body []byte) (logged, ok bool) {
	v, found := field(unwrapData(body), "isLogged", "isLoggedIn")
	if !found {
		return false, false
	}
	if err := json.Unmarshal(v, &logged); err != nil {
		return false, false
	}
	return logged, true
}

// Reestablish logs a social-provider user in again with the identity stored
// in token and returns the new ssid.
func (a *authService) Reestablish(ctx context.Context, token *models.Token) (string, error) {
	if err := a.validator.Validate(ctx, token, validators.FieldSocialID); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	social := models.SocialLogin{
		Provider: token.ProviderOrDefault(),
		SocialID: *token.SocialID,
	}
	if token.Email != nil {
		social.Email = *token.Email
	}
	if token.Name != nil {
		social.Name = *token.Name
	}

	fresh, err := a.LoginWithSocial(ctx, social)
	if err != nil {
		return "", err
	}

	ssid, _ := fresh.SSIDString()
	return ssid, nil
}

// LoginWithCredentials verifies email and password with POST /auth/verify.
//
// Returns:
//   - ErrInvalidDataProvided if email or password is empty.
//   - ErrInvalidCredentials if the backend rejects the credentials.
//   - ErrNoSessionIssued if the backend accepted them without an ssid.
func (a *authService) LoginWithCredentials(ctx context.Context, creds models.CredentialsLogin) (*models.Token, error) {
	log := logger.FromContext(ctx)

	creds.Email = strings.TrimSpace(creds.Email)
	if err := a.validator.Validate(ctx, creds); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	body, err := a.backend.DoAnonymous(ctx, "/auth/verify", adapter.RequestOptions{
		Method:    http.MethodPost,
		Body:      creds,
		Operation: "credentials-verify",
	})
	if err != nil {
		if errors.Is(err, adapter.ErrUnauthorized) || errors.Is(err, adapter.ErrBadRequest) || errors.Is(err, adapter.ErrNotFound) {
			log.Info().Str("email", creds.Email).Msg("credentials rejected by backend")
			return nil, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
		}
		return nil, fmt.Errorf("credentials verification failed: %w", err)
	}

	login, err := parseLogin(body)
	if err != nil {
		return nil, err
	}

	token := &models.Token{
		Name:     login.Name,
		Email:    login.Email,
		Provider: models.DefaultProvider,
	}
	if token.Email == nil {
		token.Email = &creds.Email
	}
	token.SetSSID(login.SSID)

	log.Info().Str("email", creds.Email).Msg("credentials login succeeded")
	return token, nil
}

// LoginWithSocial verifies a social identity with POST /auth/social/verify and
// falls back to POST /auth/social/register when the backend does not know it.
func (a *authService) LoginWithSocial(ctx context.Context, social models.SocialLogin) (*models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, social, validators.FieldProvider, validators.FieldSocialID, validators.FieldEmail); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	body, err := a.backend.DoAnonymous(ctx, "/auth/social/verify", adapter.RequestOptions{
		Method:    http.MethodPost,
		Body:      social,
		Operation: "social-verify",
	})
	if errors.Is(err, adapter.ErrNotFound) {
		log.Info().Str("provider", social.Provider).Msg("social identity unknown, registering")
		body, err = a.backend.DoAnonymous(ctx, "/auth/social/register", adapter.RequestOptions{
			Method:    http.MethodPost,
			Body:      social,
			Operation: "social-register",
		})
	}
	if err != nil {
		if errors.Is(err, adapter.ErrUnauthorized) || errors.Is(err, adapter.ErrBadRequest) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
		}
		return nil, fmt.Errorf("social login failed: %w", err)
	}

	login, err := parseLogin(body)
	if err != nil {
		return nil, err
	}

	socialID := social.SocialID
	token := &models.Token{
		Name:     login.Name,
		Email:    login.Email,
		Provider: social.Provider,
		SocialID: &socialID,
	}
	if token.Email == nil && social.Email != "" {
		token.Email = &social.Email
	}
	if token.Name == nil && social.Name != "" {
		token.Name = &social.Name
	}
	token.SetSSID(login.SSID)

	log.Info().Str("provider", social.Provider).Msg("social login succeeded")
	return token, nil
}

func parseLogin(body []byte) (models.BackendLogin, error) {
	var login models.BackendLogin
	if err := json.Unmarshal(unwrapData(body), &login); err != nil {
		return models.BackendLogin{}, fmt.Errorf("%w: login answer: %w", ErrUnexpectedPayload, err)
	}
	if login.SSID == "" {
		return models.BackendLogin{}, ErrNoSessionIssued
	}
	return login, nil
}
