// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
)

// SessionView is the projection of a [Token] handed to callers. It is derived
// fresh on every access and is never persisted.
type SessionView struct {
	User    SessionUser `json:"user"`
	Expires string      `json:"expires"`
}

// SessionUser is the user part of a [SessionView].
//
// The ssid slot is unexported: it can only be filled by the server-context
// projection through [SessionUser.ExposeSSID]. When it was never exposed the
// "ssid" key is absent from the encoded object, which is different from an
// exposed ssid whose value is null.
type SessionUser struct {
	Name     *string
	Email    *string
	Provider string
	HasAuth  bool

	ssid        *string
	ssidExposed bool
}

// ExposeSSID places ssid on the user. A nil ssid is kept as an explicit null.
func (u *SessionUser) ExposeSSID(ssid *string) {
	u.ssid = ssid
	u.ssidExposed = true
}

// SSID returns the exposed ssid. exposed is false for client projections.
func (u SessionUser) SSID() (ssid *string, exposed bool) {
	return u.ssid, u.ssidExposed
}

// Keys lists the keys the encoded user object contains, in encoding order.
func (u SessionUser) Keys() []string {
	keys := []string{"name", "email", "provider", "hasAuth"}
	if u.ssidExposed {
		keys = append(keys, "ssid")
	}
	return keys
}

// MarshalJSON encodes the user, emitting "ssid" only when it was exposed.
func (u SessionUser) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range u.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, _ := json.Marshal(key)
		buf.Write(k)
		buf.WriteByte(':')

		var value any
		switch key {
		case "name":
			value = u.Name
		case "email":
			value = u.Email
		case "provider":
			value = u.Provider
		case "hasAuth":
			value = u.HasAuth
		case "ssid":
			value = u.ssid
		}

		v, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
