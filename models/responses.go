// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Envelope is the JSON body of every successful API call.
type Envelope struct {
	Success   bool   `json:"success"`
	Data      any    `json:"data,omitempty"`
	Message   string `json:"message,omitempty"`
	Timestamp string `json:"timestamp"`
	RequestID string `json:"requestId,omitempty"`
}

// UserInitResponse is the payload of the user-init aggregation endpoint.
type UserInitResponse struct {
	Success bool                    `json:"success"`
	Data    UserInitData            `json:"data"`
	Errors  map[string]ServiceError `json:"errors,omitempty"`
	Meta    UserInitMeta            `json:"meta"`
}

// UserInitData wraps the aggregated user profile.
type UserInitData struct {
	User UserData `json:"user"`
}

// UserInitMeta carries observability data about the aggregation.
type UserInitMeta struct {
	Timestamp          string       `json:"timestamp"`
	RequestID          string       `json:"requestId"`
	ServiceStats       ServiceStats `json:"serviceStats"`
	HasPartialFailures bool         `json:"hasPartialFailures,omitempty"`
}

// ServiceStats summarises the outcome of the aggregated backend calls.
type ServiceStats struct {
	Total      int    `json:"total"`
	Successful int    `json:"successful"`
	Failed     int    `json:"failed"`
	// SuccessRate is a percentage string such as "83.3%".
	SuccessRate string `json:"successRate"`
}

// ServiceError describes why one aggregated backend call failed.
type ServiceError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}
