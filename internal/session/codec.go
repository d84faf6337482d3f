// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/remix-gateway/internal/utils"
	"github.com/MKhiriev/remix-gateway/models"
)

// Codec signs and verifies session tokens with HMAC-SHA256.
type Codec struct {
	secret []byte
	maxAge time.Duration
	ids    *utils.UUIDGenerator
	now    func() time.Time
}

// NewCodec returns a codec for secret. Tokens it encodes live for maxAge.
// An empty secret is accepted here and reported by every Encode and Decode.
func NewCodec(secret string, maxAge time.Duration) *Codec {
	return &Codec{
		secret: []byte(secret),
		maxAge: maxAge,
		ids:    utils.NewUUIDGenerator(),
		now:    time.Now,
	}
}

// Configured reports whether the codec has a signing secret.
func (c *Codec) Configured() bool {
	return len(c.secret) > 0
}

// MaxAge returns the lifetime of encoded tokens.
func (c *Codec) MaxAge() time.Duration {
	return c.maxAge
}

// Encode signs token. Issued-at and expiry are reset on every call, so
// re-encoding a token slides its lifetime; a missing token id is generated.
func (c *Codec) Encode(token *models.Token) (string, error) {
	if !c.Configured() {
		return "", ErrSecretNotConfigured
	}
	if token == nil {
		return "", ErrNilToken
	}

	now := c.now()
	claims := *token
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(c.maxAge))
	if claims.ID == "" {
		claims.ID = c.ids.Generate()
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("error signing session token: %w", err)
	}

	return signed, nil
}

// Decode verifies raw and returns its claims.
func (c *Codec) Decode(raw string) (*models.Token, error) {
	if !c.Configured() {
		return nil, ErrSecretNotConfigured
	}

	token := new(models.Token)
	_, err := jwt.ParseWithClaims(raw, token, func(t *jwt.Token) (any, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return token, nil
}
