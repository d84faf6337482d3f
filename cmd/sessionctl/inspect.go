package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/remix-gateway/internal/logger"
	"github.com/MKhiriev/remix-gateway/internal/session"
)

func inspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <token>",
		Short: "Decode a session token",
		Long: `Verify a session token and print the session the browser would see.
The backend ssid is never printed; hasAuth tells whether one is present.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			codec, err := codecFromFlags(cmd)
			if err != nil {
				return err
			}

			token, err := codec.Decode(strings.TrimSpace(args[0]))
			if err != nil {
				return fmt.Errorf("decode token: %w", err)
			}

			view := session.NewProjector(logger.Nop()).Project(token, session.ClientContext)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(view)
		},
	}

	return cmd
}
