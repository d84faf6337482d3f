// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/MKhiriev/remix-gateway/internal/logger"
	"github.com/MKhiriev/remix-gateway/internal/utils"
	"github.com/MKhiriev/remix-gateway/models"
)

// Result is the outcome of [Validator.Validate].
//
// On success SSID, Session, Token, RequestID and Timestamp are set. On
// failure Error and Status carry the response the route must return as is.
// Session is the server projection and must not be written to a response.
type Result struct {
	IsValid   bool
	SSID      string
	Session   models.SessionView
	Token     *models.Token
	RequestID string
	Timestamp string

	Error  *models.ErrorResponse
	Status int
}

// Option adjusts a single validation.
type Option func(*validateOptions)

type validateOptions struct {
	requireUser bool
}

// RequireUser makes a token without a name or email fail with no_user.
func RequireUser() Option {
	return func(o *validateOptions) { o.requireUser = true }
}

// Validator is the session check every protected route runs first.
type Validator struct {
	codec     *Codec
	cookies   *CookieManager
	projector *Projector
	ids       *utils.UUIDGenerator
	debug     bool
	now       func() time.Time
	logger    *logger.Logger
}

// NewValidator returns a validator reading tokens through cookies and codec.
// With debug set, failures carry a debug block.
func NewValidator(codec *Codec, cookies *CookieManager, projector *Projector, debug bool, l *logger.Logger) *Validator {
	return &Validator{
		codec:     codec,
		cookies:   cookies,
		projector: projector,
		ids:       utils.NewUUIDGenerator(),
		debug:     debug,
		now:       time.Now,
		logger:    l,
	}
}

// Validate checks the session of r. The first failing check wins:
// no token, no user (only with [RequireUser]), no ssid, non-string ssid.
// Expected failures are returned in the Result, never as a panic or error.
func (v *Validator) Validate(r *http.Request, opts ...Option) Result {
	var o validateOptions
	for _, opt := range opts {
		opt(&o)
	}

	requestID, ok := utils.GetRequestIDFromContext(r.Context())
	if !ok {
		requestID = v.ids.Generate()
	}
	timestamp := utils.Timestamp(v.now())
	log := logger.FromRequest(r)

	if !v.codec.Configured() {
		log.Error().Err(ErrSecretNotConfigured).Str("requestId", requestID).Msg("session validation failed")
		return v.fail(failFatal, requestID, timestamp, snapshot{})
	}

	var token *models.Token
	if raw, found := v.cookies.Read(r); found {
		decoded, err := v.codec.Decode(raw)
		switch {
		case errors.Is(err, ErrSecretNotConfigured):
			log.Error().Err(err).Str("requestId", requestID).Msg("session validation failed")
			return v.fail(failFatal, requestID, timestamp, snapshot{})
		case err != nil:
			log.Debug().Err(err).Str("requestId", requestID).Msg("session token rejected")
		default:
			token = decoded
		}
	}

	if token == nil {
		return v.fail(failNoSession, requestID, timestamp, snapshot{})
	}

	snap := snapshot{
		hasSession: true,
		hasUser:    token.HasIdentity(),
		hasSSID:    token.HasSSIDClaim(),
		userKeys:   claimKeys(token),
	}

	if o.requireUser && !snap.hasUser {
		return v.fail(failNoUser, requestID, timestamp, snap)
	}

	ssid, isString := token.SSIDString()
	if !snap.hasSSID || (isString && ssid == "") {
		return v.fail(failNoSSID, requestID, timestamp, snap)
	}
	if !isString {
		return v.fail(failInvalidSSID, requestID, timestamp, snap)
	}

	log.Debug().
		Str("requestId", requestID).
		Bool("hasUser", snap.hasUser).
		Msg("session validated")

	return Result{
		IsValid:   true,
		SSID:      ssid,
		Session:   v.projector.Project(token, ServerContext),
		Token:     token,
		RequestID: requestID,
		Timestamp: timestamp,
	}
}

func (v *Validator) fail(f failure, requestID, timestamp string, s snapshot) Result {
	v.logger.Info().
		Str("requestId", requestID).
		Str("errorType", f.errorType).
		Str("errorCode", f.code).
		Bool("hasSession", s.hasSession).
		Bool("hasUser", s.hasUser).
		Bool("hasSsid", s.hasSSID).
		Msg("session validation failed")

	return Result{
		IsValid:   false,
		RequestID: requestID,
		Timestamp: timestamp,
		Error:     f.response(requestID, timestamp, s, v.debug),
		Status:    f.status,
	}
}

// claimKeys lists the user claims present on token.
func claimKeys(token *models.Token) []string {
	keys := make([]string, 0, 5)
	if token.Name != nil {
		keys = append(keys, "name")
	}
	if token.Email != nil {
		keys = append(keys, "email")
	}
	if token.Provider != "" {
		keys = append(keys, "provider")
	}
	if len(token.SSID) > 0 {
		keys = append(keys, "ssid")
	}
	if token.SocialID != nil {
		keys = append(keys, "socialId")
	}
	return keys
}
