// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// Tier is a normalised membership tier.
type Tier string

const (
	TierFree   Tier = "free"
	TierBasic  Tier = "basic"
	TierPro    Tier = "pro"
	TierMaster Tier = "master"
)

// Tiers lists the valid tiers by their numeric index.
var Tiers = []Tier{TierFree, TierBasic, TierPro, TierMaster}

// UserData is the aggregated user profile returned by user-init. Fields that
// could not be fetched keep the defaults of [DefaultUserData].
type UserData struct {
	IsNewbie        bool              `json:"isNewbie"`
	Membership      Membership        `json:"membership"`
	Credits         Credits           `json:"credits"`
	DownloadPoints  float64           `json:"downloadPoints"`
	DownloadHistory []json.RawMessage `json:"downloadHistory"`
	Favorite        *Favorite         `json:"favorite"`
}

type Membership struct {
	Tier Tier `json:"tier"`
}

type Credits struct {
	Balance float64 `json:"balance"`
}

// Favorite is the user's favorite playlist. Ids are kept as the backend sent
// them, string or number.
type Favorite struct {
	ID       json.RawMessage   `json:"id"`
	MusicIDs []json.RawMessage `json:"musicIds"`
}

// DefaultUserData returns the profile used when every backend call fails.
func DefaultUserData() UserData {
	return UserData{
		IsNewbie:        false,
		Membership:      Membership{Tier: TierFree},
		Credits:         Credits{Balance: 0},
		DownloadPoints:  0,
		DownloadHistory: []json.RawMessage{},
		Favorite:        nil,
	}
}
