package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/networkdirection/coresdk/pkg/config"
	"github.com/networkdirection/coresdk/pkg/plugins"
)

// NewStatusCmd creates the status command, a quick snapshot of what
// the core service currently holds.
func NewStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Summarize the core service's configuration and plugins",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgClient, err := configClient(cmd)
			if err != nil {
				return err
			}
			plgClient, err := pluginClient(cmd)
			if err != nil {
				return err
			}

			var (
				doc     config.Document
				records []plugins.Record
			)

			// Both reads swallow their own failures, so the group only
			// coordinates the fan-out.
			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error {
				doc = cfgClient.Read(ctx)
				return nil
			})
			g.Go(func() error {
				records = plgClient.Read(ctx, plugins.All)
				return nil
			})
			if err := g.Wait(); err != nil {
				return err
			}

			heading.Println("Core service status")
			fmt.Printf("  configuration keys: %d\n", len(doc))
			fmt.Printf("  plugins:            %d\n", len(records))
			for _, rec := range records {
				fmt.Printf("    - %s\n", rec.Name())
			}
			return nil
		},
	}
}
