// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/remix-gateway/internal/adapter"
	"github.com/MKhiriev/remix-gateway/internal/logger"
	"github.com/MKhiriev/remix-gateway/internal/session"
	"github.com/MKhiriev/remix-gateway/internal/utils"
	"github.com/MKhiriev/remix-gateway/models"
)

const alreadyLoggedOut = "Already logged out"

// clientSession is the browser view of the session. User is null when there
// is no session.
type clientSession struct {
	User    *models.SessionUser `json:"user"`
	Expires string              `json:"expires,omitempty"`
}

func (h *Handler) userInit(w http.ResponseWriter, r *http.Request) {
	result, ok := h.validateSession(w, r, session.RequireUser())
	if !ok {
		return
	}

	resp, err := h.services.UserInitService.Init(r.Context(), result.SSID)
	if err != nil {
		h.writeError(w, r, result.RequestID, err)
		return
	}

	resp.Meta.RequestID = result.RequestID
	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) sessionVerify(w http.ResponseWriter, r *http.Request) {
	result, ok := h.validateSession(w, r)
	if !ok {
		return
	}

	data, err := h.services.AuthService.VerifySession(r.Context(), result.SSID)
	if err != nil {
		h.writeError(w, r, result.RequestID, err)
		return
	}

	writeData(w, result.RequestID, data, http.StatusOK)
}

func (h *Handler) newbieConfirm(w http.ResponseWriter, r *http.Request) {
	result, ok := h.validateSession(w, r, session.RequireUser())
	if !ok {
		return
	}

	body, err := readJSONBody(w, r)
	if err != nil {
		h.writeError(w, r, result.RequestID, err)
		return
	}

	data, err := h.services.AuthService.ConfirmNewbie(r.Context(), result.SSID, body)
	if err != nil {
		h.writeError(w, r, result.RequestID, err)
		return
	}

	writeData(w, result.RequestID, data, http.StatusOK)
}

// signout ends the backend session and always clears the cookie. Without a
// usable session there is nothing to end and the call succeeds.
func (h *Handler) signout(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	result := h.sessions.Validator.Validate(r)
	if !result.IsValid {
		if result.Status == http.StatusInternalServerError {
			utils.WriteJSON(w, result.Error, result.Status)
			return
		}
		h.sessions.Cookies.Clear(w)
		utils.WriteJSON(w, models.Envelope{
			Success:   true,
			Message:   alreadyLoggedOut,
			Timestamp: result.Timestamp,
			RequestID: result.RequestID,
		}, http.StatusOK)
		return
	}

	h.sessions.Cookies.Clear(w)

	data, err := h.services.AuthService.SignOut(r.Context(), result.SSID)
	if err != nil {
		if errors.Is(err, adapter.ErrUnauthorized) {
			log.Info().Str("requestId", result.RequestID).Msg("backend session was already gone")
			utils.WriteJSON(w, models.Envelope{
				Success:   true,
				Message:   alreadyLoggedOut,
				Timestamp: utils.Now(),
				RequestID: result.RequestID,
			}, http.StatusOK)
			return
		}
		h.writeError(w, r, result.RequestID, err)
		return
	}

	utils.WriteJSON(w, models.Envelope{
		Success:   true,
		Data:      data,
		Message:   "Logged out",
		Timestamp: utils.Now(),
		RequestID: result.RequestID,
	}, http.StatusOK)
}

// session returns the client projection of the session token. It never
// carries the ssid.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) {
	raw, found := h.sessions.Cookies.Read(r)
	if !found {
		utils.WriteJSON(w, clientSession{}, http.StatusOK)
		return
	}

	token, err := h.sessions.Codec.Decode(raw)
	if err != nil {
		if errors.Is(err, session.ErrSecretNotConfigured) {
			h.writeError(w, r, requestIDFrom(r), err)
			return
		}
		logger.FromRequest(r).Debug().Err(err).Msg("session token rejected")
		utils.WriteJSON(w, clientSession{}, http.StatusOK)
		return
	}

	view := h.sessions.Projector.Project(token, session.ClientContext)
	utils.WriteJSON(w, clientSession{User: &view.User, Expires: view.Expires}, http.StatusOK)
}

func (h *Handler) callbackCredentials(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)

	var creds models.CredentialsLogin
	if err := decodeJSONBody(w, r, &creds); err != nil {
		h.writeError(w, r, requestID, err)
		return
	}

	token, err := h.services.AuthService.LoginWithCredentials(r.Context(), creds)
	if err != nil {
		h.writeError(w, r, requestID, err)
		return
	}

	h.issueSession(w, r, requestID, token)
}

func (h *Handler) callbackSocial(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)

	var social models.SocialLogin
	if err := decodeJSONBody(w, r, &social); err != nil {
		h.writeError(w, r, requestID, err)
		return
	}

	token, err := h.services.AuthService.LoginWithSocial(r.Context(), social)
	if err != nil {
		h.writeError(w, r, requestID, err)
		return
	}

	h.issueSession(w, r, requestID, token)
}

// issueSession signs token, sets the session cookie and answers with the
// client projection.
func (h *Handler) issueSession(w http.ResponseWriter, r *http.Request, requestID string, token *models.Token) {
	signed, err := h.sessions.Codec.Encode(token)
	if err != nil {
		h.writeError(w, r, requestID, err)
		return
	}

	issued, err := h.sessions.Codec.Decode(signed)
	if err != nil {
		h.writeError(w, r, requestID, err)
		return
	}

	h.sessions.Cookies.Set(w, signed)

	view := h.sessions.Projector.Project(issued, session.ClientContext)
	writeData(w, requestID, clientSession{User: &view.User, Expires: view.Expires}, http.StatusOK)
}
