// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the configuration flags found in args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-b backend base URL
//	-c/-config json file path with configs
//	-session-secret session token signing secret
//	-cookie-name session cookie name override
//	-secure-cookie mark the session cookie Secure
//	-token-max-age session token lifetime (e.g., "720h")
//	-refresh-interval backend re-check interval (e.g., "15m")
//	-auth-debug attach debug details to session failures
//	-backend-timeout single backend call timeout (e.g., "30s")
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("remix-gateway", flag.ContinueOnError)

	var serverAddress NetAddress
	var backendURL string
	var jsonConfigPath string
	var sessionSecret string
	var cookieName string
	var secureCookie bool
	var tokenMaxAge time.Duration
	var refreshInterval time.Duration
	var authDebug bool
	var backendTimeout time.Duration
	var requestTimeout time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&backendURL, "b", "", "Backend base URL")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&sessionSecret, "session-secret", "", "Session token signing secret")
	fs.StringVar(&cookieName, "cookie-name", "", "Session cookie name")
	fs.BoolVar(&secureCookie, "secure-cookie", false, "Mark the session cookie Secure")
	fs.DurationVar(&tokenMaxAge, "token-max-age", 0, "Session token lifetime (e.g., 720h)")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Backend session re-check interval (e.g., 15m)")
	fs.BoolVar(&authDebug, "auth-debug", false, "Attach debug details to session failures")
	fs.DurationVar(&backendTimeout, "backend-timeout", 0, "Backend call timeout (e.g., 30s)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			SessionSecret:          sessionSecret,
			SessionCookieName:      cookieName,
			SecureCookie:           secureCookie,
			TokenMaxAge:            tokenMaxAge,
			SessionRefreshInterval: refreshInterval,
			AuthDebug:              authDebug,
		},
		Backend: Backend{
			BaseURL:        backendURL,
			RequestTimeout: backendTimeout,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
