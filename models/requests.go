// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CredentialsLogin is the body of the email/password login callback.
type CredentialsLogin struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SocialLogin is the body of the social-provider login callback, also sent
// as is to the backend verify and register endpoints.
type SocialLogin struct {
	Provider string `json:"provider"`
	SocialID string `json:"socialId"`
	Email    string `json:"email,omitempty"`
	Name     string `json:"name,omitempty"`
}

// BackendLogin is what the backend answers to a successful login.
type BackendLogin struct {
	SSID  string  `json:"ssid"`
	Name  *string `json:"name"`
	Email *string `json:"email"`
}
