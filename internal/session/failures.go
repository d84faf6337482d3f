// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"net/http"

	"github.com/MKhiriev/remix-gateway/models"
)

// failure describes one terminal state of session validation.
type failure struct {
	errorType       string
	code            string
	status          int
	step            string
	err             string
	message         string
	logout          bool
	possibleCauses  []string
	troubleshooting []string
}

var (
	failNoSession = failure{
		errorType: models.ErrorTypeNoSession,
		code:      models.CodeNoSession,
		status:    http.StatusUnauthorized,
		step:      "session_check",
		err:       "Unauthorized - No valid session found",
		message:   "Your session has ended. Please log in again.",
		logout:    true,
		possibleCauses: []string{
			"The session cookie is missing",
			"The session token expired",
			"The session token was signed with a different secret",
		},
		troubleshooting: []string{
			"Log in again",
			"Check that cookies are enabled for this site",
		},
	}

	failNoUser = failure{
		errorType: models.ErrorTypeNoUser,
		code:      models.CodeNoUser,
		status:    http.StatusUnauthorized,
		step:      "user_check",
		err:       "Unauthorized - No user information in session",
		message:   "Your account information could not be found. Please log in again.",
		logout:    true,
		possibleCauses: []string{
			"The login provider returned no name or email",
			"The session was issued by an older version of the application",
		},
		troubleshooting: []string{
			"Log out and log in again",
		},
	}

	failNoSSID = failure{
		errorType: models.ErrorTypeNoSSID,
		code:      models.CodeNoSSID,
		status:    http.StatusUnauthorized,
		step:      "ssid_check",
		err:       "Unauthorized - No session ID found",
		message:   "Your login session is incomplete. Please log in again.",
		logout:    true,
		possibleCauses: []string{
			"The backend did not return a session id at login",
			"The session id was cleared after a failed refresh",
		},
		troubleshooting: []string{
			"Log out and log in again",
			"Check that the backend login endpoint returns an ssid",
		},
	}

	failInvalidSSID = failure{
		errorType: models.ErrorTypeInvalidSSID,
		code:      models.CodeInvalidSSID,
		status:    http.StatusUnauthorized,
		step:      "ssid_validation",
		err:       "Unauthorized - Invalid session ID format",
		message:   "Your login session is invalid. Please log in again.",
		logout:    true,
		possibleCauses: []string{
			"The session id claim is not a string",
		},
		troubleshooting: []string{
			"Log out and log in again",
			"Check the type of the ssid returned by the backend",
		},
	}

	failFatal = failure{
		errorType: models.ErrorTypeFatal,
		code:      models.CodeFatalValidation,
		status:    http.StatusInternalServerError,
		step:      "internal",
		err:       "Internal server error during session validation",
		message:   "Something went wrong. Please try again later.",
	}
)

// snapshot records what the validator had seen when it stopped.
type snapshot struct {
	hasSession bool
	hasUser    bool
	hasSSID    bool
	userKeys   []string
}

func (f failure) response(requestID, timestamp string, s snapshot, debug bool) *models.ErrorResponse {
	resp := &models.ErrorResponse{
		Success:   false,
		Error:     f.err,
		ErrorType: f.errorType,
		ErrorCode: f.code,
		Message:   f.message,
		Logout:    f.logout,
		Timestamp: timestamp,
		RequestID: requestID,
	}

	if debug && f.errorType != models.ErrorTypeFatal {
		keys := s.userKeys
		if keys == nil {
			keys = []string{}
		}
		resp.Debug = &models.AuthDebug{
			Step:            f.step,
			HasSession:      s.hasSession,
			HasUser:         s.hasUser,
			HasSSID:         s.hasSSID,
			UserKeys:        keys,
			PossibleCauses:  f.possibleCauses,
			Troubleshooting: f.troubleshooting,
		}
	}

	return resp
}
