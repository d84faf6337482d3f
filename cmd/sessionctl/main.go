// Command sessionctl mints and inspects remix-gateway session tokens. It is
// meant for local debugging against a running gateway.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const secretEnv = "APP_SESSION_SECRET"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sessionctl",
		Short: "Mint and inspect remix-gateway session tokens",
		Long: `sessionctl signs session tokens with the gateway secret and decodes
existing ones. The secret is read from --secret or from ` + secretEnv + `.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("secret", os.Getenv(secretEnv), "session signing secret")
	rootCmd.PersistentFlags().Duration("max-age", 0, "token lifetime (default 30 days)")

	rootCmd.AddCommand(
		mintCmd(),
		inspectCmd(),
	)

	return rootCmd
}
