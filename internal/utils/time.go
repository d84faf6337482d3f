// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "time"

// Timestamp formats t the way every API payload reports time.
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// Now is [Timestamp] of the current time.
func Now() string {
	return Timestamp(time.Now())
}
