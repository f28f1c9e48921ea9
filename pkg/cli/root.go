// Package cli implements the corectl command line tool, which drives
// every SDK operation against a running core service.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root corectl command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "corectl",
		Short: "Operate a core service from the command line",
		Long: `corectl talks to a core service and its sidecars: it reads and
updates the shared configuration document, manages plugin records,
requests encryption and decryption from the crypto service, and sends
events to the logging webhook.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringP("profile", "p", "corectl.yaml", "Path to the corectl profile file")

	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewPluginCmd())
	rootCmd.AddCommand(NewCryptoCmd())
	rootCmd.AddCommand(NewLogCmd())
	rootCmd.AddCommand(NewStatusCmd())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// loadProfile reads the profile named by the --profile flag.
func loadProfile(cmd *cobra.Command) (*Profile, error) {
	path, err := cmd.Flags().GetString("profile")
	if err != nil {
		return nil, err
	}
	return FromFile(path)
}
