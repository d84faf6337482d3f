package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/remix-gateway/internal/config"
	"github.com/MKhiriev/remix-gateway/internal/session"
	"github.com/MKhiriev/remix-gateway/models"
)

var errNoSSID = errors.New("--ssid is required")

func mintCmd() *cobra.Command {
	var (
		ssid     string
		email    string
		name     string
		provider string
		socialID string
	)

	cmd := &cobra.Command{
		Use:   "mint",
		Short: "Sign a new session token",
		Long:  `Sign a session token carrying the given backend ssid and identity and print it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if ssid == "" {
				return errNoSSID
			}

			codec, err := codecFromFlags(cmd)
			if err != nil {
				return err
			}

			token := &models.Token{Provider: provider}
			if email != "" {
				token.Email = &email
			}
			if name != "" {
				token.Name = &name
			}
			if socialID != "" {
				token.SocialID = &socialID
			}
			token.SetSSID(ssid)

			signed, err := codec.Encode(token)
			if err != nil {
				return fmt.Errorf("sign token: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), signed)
			return nil
		},
	}

	cmd.Flags().StringVar(&ssid, "ssid", "", "backend session id")
	cmd.Flags().StringVar(&email, "email", "", "user email")
	cmd.Flags().StringVar(&name, "name", "", "user display name")
	cmd.Flags().StringVar(&provider, "provider", models.DefaultProvider, "login provider")
	cmd.Flags().StringVar(&socialID, "social-id", "", "social provider user id")

	return cmd
}

func codecFromFlags(cmd *cobra.Command) (*session.Codec, error) {
	secret, err := cmd.Flags().GetString("secret")
	if err != nil {
		return nil, err
	}
	if secret == "" {
		return nil, session.ErrSecretNotConfigured
	}

	maxAge, err := cmd.Flags().GetDuration("max-age")
	if err != nil {
		return nil, err
	}
	if maxAge <= 0 {
		maxAge = config.DefaultTokenMaxAge
	}

	return session.NewCodec(secret, maxAge), nil
}
