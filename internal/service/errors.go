// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrNoSessionIssued     = errors.New("backend issued no session")

	ErrAggregationFailed = errors.New("user-init aggregation failed")
	ErrUnexpectedPayload = errors.New("unexpected backend payload")
)
