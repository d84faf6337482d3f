// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/remix-gateway/models"
)

// Field names accepted by [LoginValidator.Validate].
const (
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldProvider = "provider"
	FieldSocialID = "social_id"
)

// LoginValidator validates login payloads and the social identity stored in
// session tokens.
type LoginValidator struct{}

func NewLoginValidator() Validator {
	return &LoginValidator{}
}

func (v *LoginValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CredentialsLogin:
		return v.validateCredentials(value, fields...)
	case *models.CredentialsLogin:
		return v.validateCredentials(*value, fields...)

	case models.SocialLogin:
		return v.validateSocial(value, fields...)
	case *models.SocialLogin:
		return v.validateSocial(*value, fields...)

	case *models.Token:
		if value == nil {
			return ErrNoIdentity
		}
		return v.validateToken(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *LoginValidator) validateCredentials(creds models.CredentialsLogin, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if err := checkEmail(creds.Email); err != nil {
				return err
			}
		case FieldPassword:
			if creds.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *LoginValidator) validateSocial(social models.SocialLogin, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldProvider, FieldSocialID}
	}

	for _, f := range fields {
		switch f {
		case FieldProvider:
			if strings.TrimSpace(social.Provider) == "" {
				return ErrEmptyProvider
			}
		case FieldSocialID:
			if strings.TrimSpace(social.SocialID) == "" {
				return ErrEmptySocialID
			}
		case FieldEmail:
			// optional for social logins, checked only when present
			if social.Email != "" {
				if err := checkEmail(social.Email); err != nil {
					return err
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *LoginValidator) validateToken(token models.Token, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSocialID}
	}

	for _, f := range fields {
		switch f {
		case FieldSocialID:
			if token.SocialID == nil || *token.SocialID == "" {
				return ErrNoIdentity
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func checkEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmptyEmail
	}
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return ErrMalformedEmail
	}
	return nil
}
