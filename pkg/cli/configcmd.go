package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/networkdirection/coresdk/pkg/config"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Read and update the core service configuration",
	}

	cmd.AddCommand(newConfigGetCmd())
	cmd.AddCommand(newConfigSetCmd())

	return cmd
}

func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Fetch the current configuration document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := configClient(cmd)
			if err != nil {
				return err
			}

			doc := client.Read(cmd.Context())

			heading.Println("Configuration:")
			out, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	var reloadFile string

	cmd := &cobra.Command{
		Use:   "set [document-file]",
		Short: "PATCH a configuration document to the core service",
		Long: `Send the JSON document in the given file to the core service. On
success the reload file is touched so dependent workers pick up the
change.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := configClient(cmd)
			if err != nil {
				return err
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read document file: %w", err)
			}

			var doc config.Document
			if err := json.Unmarshal(data, &doc); err != nil {
				return fmt.Errorf("document file is not valid JSON: %w", err)
			}

			ok, msg := client.Update(cmd.Context(), doc, reloadFile)
			if !ok {
				fail.Printf("Update failed: %s\n", msg)
				return fmt.Errorf("configuration update rejected")
			}

			success.Println(msg)
			return nil
		},
	}

	cmd.Flags().StringVar(&reloadFile, "reload-file", "reload.txt", "File touched to signal workers to reload")

	return cmd
}

func configClient(cmd *cobra.Command) (*config.Client, error) {
	p, err := loadProfile(cmd)
	if err != nil {
		return nil, err
	}

	url, err := requireEndpoint(p.Endpoints.Config, "config")
	if err != nil {
		return nil, err
	}

	opts := []config.Option{}
	if d := p.Timeout(); d > 0 {
		opts = append(opts, config.WithTimeout(d))
	}
	return config.New(url, opts...), nil
}
