// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// human-readable durations.
type StructuredJSONConfig struct {
	App struct {
		SessionSecret          string   `json:"session_secret"`
		SessionCookieName      string   `json:"session_cookie_name"`
		SecureCookie           bool     `json:"secure_cookie"`
		TokenMaxAge            Duration `json:"token_max_age"`
		SessionRefreshInterval Duration `json:"session_refresh_interval"`
		AuthDebug              bool     `json:"auth_debug"`
		Version                string   `json:"version"`
	} `json:"app,omitempty"`

	Backend struct {
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"backend,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			SessionSecret:          jsonCfg.App.SessionSecret,
			SessionCookieName:      jsonCfg.App.SessionCookieName,
			SecureCookie:           jsonCfg.App.SecureCookie,
			TokenMaxAge:            time.Duration(jsonCfg.App.TokenMaxAge),
			SessionRefreshInterval: time.Duration(jsonCfg.App.SessionRefreshInterval),
			AuthDebug:              jsonCfg.App.AuthDebug,
			Version:                jsonCfg.App.Version,
		},
		Backend: Backend{
			BaseURL:        jsonCfg.Backend.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.Backend.RequestTimeout),
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
