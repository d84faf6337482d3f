// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/MKhiriev/remix-gateway/models"
)

// Backend answers come in loosely shaped variants. They are normalised here,
// at the boundary, so the aggregated profile only ever holds canonical values.

var jsonNull = []byte("null")

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, jsonNull)
}

// unwrapData returns the "data" member of an envelope, or raw itself when the
// answer is not enveloped.
func unwrapData(raw []byte) json.RawMessage {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return raw
	}
	if data, ok := envelope["data"]; ok {
		return data
	}
	return raw
}

// field returns the first present, non-null member of an object payload.
func field(raw json.RawMessage, names ...string) (json.RawMessage, bool) {
	var object map[string]json.RawMessage
	if err := json.Unmarshal(raw, &object); err != nil {
		return nil, false
	}
	for _, name := range names {
		if v, ok := object[name]; ok && !isNull(v) {
			return v, true
		}
	}
	return nil, false
}

// normalizeTier maps a numeric index or a case-insensitive tier name to a
// known tier. Anything else is free.
func normalizeTier(raw json.RawMessage) models.Tier {
	var number float64
	if err := json.Unmarshal(raw, &number); err == nil {
		if number != math.Trunc(number) || number < 0 || int(number) >= len(models.Tiers) {
			return models.TierFree
		}
		return models.Tiers[int(number)]
	}

	var name string
	if err := json.Unmarshal(raw, &name); err == nil {
		name = strings.ToLower(strings.TrimSpace(name))
		for _, tier := range models.Tiers {
			if string(tier) == name {
				return tier
			}
		}
	}

	return models.TierFree
}

// idList accepts a bare array or an object with an "items" array.
func idList(raw json.RawMessage) ([]json.RawMessage, error) {
	if isNull(raw) {
		return []json.RawMessage{}, nil
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		items, ok := field(raw, "items")
		if !ok {
			return nil, fmt.Errorf("%w: expected a list or an object with items", ErrUnexpectedPayload)
		}
		if err = json.Unmarshal(items, &entries); err != nil {
			return nil, fmt.Errorf("%w: items is not a list: %w", ErrUnexpectedPayload, err)
		}
	}

	ids := make([]json.RawMessage, 0, len(entries))
	for _, entry := range entries {
		ids = append(ids, entryID(entry))
	}
	return ids, nil
}

// entryID returns entry.id, or the entry itself when it has no id.
func entryID(entry json.RawMessage) json.RawMessage {
	if id, ok := field(entry, "id"); ok {
		return id
	}
	return entry
}

func decodeNumber(raw json.RawMessage) (float64, error) {
	var number float64
	if err := json.Unmarshal(raw, &number); err != nil {
		return 0, fmt.Errorf("%w: not a number: %s", ErrUnexpectedPayload, raw)
	}
	return number, nil
}

func mapAuth(raw json.RawMessage) (bool, error) {
	v, ok := field(raw, "isNewbie")
	if !ok {
		return false, nil
	}
	var isNewbie bool
	if err := json.Unmarshal(v, &isNewbie); err != nil {
		return false, fmt.Errorf("%w: isNewbie is not a boolean", ErrUnexpectedPayload)
	}
	return isNewbie, nil
}

func mapMembership(raw json.RawMessage) models.Tier {
	if v, ok := field(raw, "tier"); ok {
		return normalizeTier(v)
	}
	return normalizeTier(raw)
}

func mapCredits(raw json.RawMessage) (float64, error) {
	v, ok := field(raw, "balance", "credits")
	if !ok {
		return 0, nil
	}
	return decodeNumber(v)
}

// mapDownloadPoints reports ok=false for null or absent values so the default
// stays in place. An explicit 0 is a value.
func mapDownloadPoints(raw json.RawMessage) (points float64, ok bool, err error) {
	if isNull(raw) {
		return 0, false, nil
	}
	if v, found := field(raw, "downloadPoints", "points"); found {
		raw = v
	} else if bytes.HasPrefix(bytes.TrimSpace(raw), []byte("{")) {
		return 0, false, nil
	}
	points, err = decodeNumber(raw)
	if err != nil {
		return 0, false, err
	}
	return points, true, nil
}

func mapDownloadHistory(raw json.RawMessage) ([]json.RawMessage, error) {
	return idList(raw)
}

// mapFavorite extracts the favorite playlist id. ok is false when the user
// has no favorite playlist.
func mapFavorite(raw json.RawMessage) (id json.RawMessage, ok bool, err error) {
	if isNull(raw) {
		return nil, false, nil
	}
	if bytes.HasPrefix(bytes.TrimSpace(raw), []byte("{")) {
		id, ok = field(raw, "playlistId", "id")
		return id, ok, nil
	}

	var scalar any
	if err = json.Unmarshal(raw, &scalar); err != nil {
		return nil, false, fmt.Errorf("%w: favorite: %w", ErrUnexpectedPayload, err)
	}
	switch scalar.(type) {
	case string, float64:
		return raw, true, nil
	}
	return nil, false, fmt.Errorf("%w: favorite is neither an object nor an id", ErrUnexpectedPayload)
}

// idPathSegment renders a string or numeric id for use in a URL path.
func idPathSegment(id json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(id, &s); err == nil {
		if s == "" {
			return "", fmt.Errorf("%w: empty id", ErrUnexpectedPayload)
		}
		return s, nil
	}

	var n json.Number
	if err := json.Unmarshal(id, &n); err == nil {
		if _, err = strconv.ParseFloat(n.String(), 64); err == nil {
			return n.String(), nil
		}
	}
	return "", fmt.Errorf("%w: id %s is neither a string nor a number", ErrUnexpectedPayload, id)
}
