package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/networkdirection/coresdk/pkg/plugins"
)

// NewPluginCmd creates the plugin command group.
func NewPluginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plugin",
		Short: "Manage plugin records on the core service",
	}

	cmd.AddCommand(newPluginListCmd())
	cmd.AddCommand(newPluginMutateCmd("create", "Register a new plugin record", (*plugins.Client).Create))
	cmd.AddCommand(newPluginMutateCmd("update", "Replace an existing plugin record", (*plugins.Client).Update))
	cmd.AddCommand(newPluginMutateCmd("delete", "Remove a plugin record", (*plugins.Client).Delete))

	return cmd
}

func newPluginListCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List plugin records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := pluginClient(cmd)
			if err != nil {
				return err
			}

			records := client.Read(cmd.Context(), name)

			heading.Printf("Plugins (%d):\n", len(records))
			for _, rec := range records {
				out, err := json.Marshal(rec)
				if err != nil {
					return err
				}
				fmt.Printf("  %s\t%s\n", rec.Name(), string(out))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", plugins.All, "Plugin name to fetch")

	return cmd
}

func newPluginMutateCmd(verb, short string, call func(*plugins.Client, context.Context, plugins.Record) bool) *cobra.Command {
	return &cobra.Command{
		Use:   verb + " [record-file]",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := pluginClient(cmd)
			if err != nil {
				return err
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read record file: %w", err)
			}

			var rec plugins.Record
			if err := json.Unmarshal(data, &rec); err != nil {
				return fmt.Errorf("record file is not valid JSON: %w", err)
			}

			if !call(client, cmd.Context(), rec) {
				fail.Printf("Plugin %s failed\n", verb)
				return fmt.Errorf("core service did not accept the %s", verb)
			}

			success.Printf("Plugin %s succeeded\n", verb)
			return nil
		},
	}
}

func pluginClient(cmd *cobra.Command) (*plugins.Client, error) {
	p, err := loadProfile(cmd)
	if err != nil {
		return nil, err
	}

	url, err := requireEndpoint(p.Endpoints.Plugins, "plugins")
	if err != nil {
		return nil, err
	}

	opts := []plugins.Option{}
	if d := p.Timeout(); d > 0 {
		opts = append(opts, plugins.WithTimeout(d))
	}
	return plugins.New(url, opts...), nil
}
