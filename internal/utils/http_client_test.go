// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"
	"time"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient("http://localhost", time.Second)

	if client == nil || client.Client == nil {
		t.Fatal("expected non-nil client with embedded *resty.Client")
	}
	if client.BaseURL != "http://localhost" {
		t.Errorf("expected base URL http://localhost, got %s", client.BaseURL)
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("", 0)
	client2 := NewHTTPClient("", 0)

	if client1.Client == client2.Client {
		t.Fatal("expected independent *resty.Client instances")
	}
}

func TestNewHTTPClient_Timeout(t *testing.T) {
	client := NewHTTPClient("", 2*time.Second)
	if client.GetClient().Timeout != 2*time.Second {
		t.Errorf("expected timeout 2s, got %s", client.GetClient().Timeout)
	}

	if NewHTTPClient("", 0).GetClient().Timeout != 0 {
		t.Error("expected no client timeout for zero value")
	}
}
