// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Error types reported in the errorType field of an [ErrorResponse].
const (
	ErrorTypeNoSession   = "no_session"
	ErrorTypeNoUser      = "no_user"
	ErrorTypeNoSSID      = "no_ssid"
	ErrorTypeInvalidSSID = "invalid_ssid"

	ErrorTypeConfig         = "config_error"
	ErrorTypeNetwork        = "network_error"
	ErrorTypeBackend        = "backend_error"
	ErrorTypeSessionExpired = "session_expired"
	ErrorTypeForbidden      = "forbidden"
	ErrorTypeInvalidRequest = "invalid_request"
	ErrorTypeInvalidLogin   = "invalid_credentials"
	ErrorTypeFatal          = "fatal_error"

	// ErrorTypeService and ErrorTypeProcessing classify per-service failures
	// of the user-init aggregation.
	ErrorTypeService    = "service_error"
	ErrorTypeProcessing = "processing_error"
)

// Stable error codes. Clients may branch on them.
const (
	CodeNoSession   = "AUTH_001"
	CodeNoUser      = "AUTH_002"
	CodeNoSSID      = "AUTH_003"
	CodeInvalidSSID = "AUTH_004"

	CodeConfig          = "CONFIG_001"
	CodeNetwork         = "NETWORK_001"
	CodeBackend401      = "BACKEND_401"
	CodeBackend403      = "BACKEND_403"
	CodeBackendError    = "BACKEND_ERROR"
	CodeInvalidRequest  = "REQUEST_001"
	CodeInvalidLogin    = "AUTH_005"
	CodeFatal           = "FATAL_ERROR"
	CodeFatalValidation = "FATAL_001"
)

// ErrorResponse is the JSON body of every failed API call.
type ErrorResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	ErrorType string `json:"errorType,omitempty"`
	ErrorCode string `json:"errorCode,omitempty"`
	Message   string `json:"message,omitempty"`
	// Logout asks the client to tear down its local session.
	Logout    bool       `json:"logout,omitempty"`
	Timestamp string     `json:"timestamp,omitempty"`
	RequestID string     `json:"requestId,omitempty"`
	Debug     *AuthDebug `json:"debug,omitempty"`
}

// AuthDebug is attached to session failures when debug output is enabled.
type AuthDebug struct {
	Step            string   `json:"step"`
	HasSession      bool     `json:"hasSession"`
	HasUser         bool     `json:"hasUser"`
	HasSSID         bool     `json:"hasSsid"`
	UserKeys        []string `json:"userKeys"`
	PossibleCauses  []string `json:"possibleCauses"`
	Troubleshooting []string `json:"troubleshooting"`
}
