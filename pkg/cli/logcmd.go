package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/networkdirection/coresdk/pkg/systemlog"
)

// NewLogCmd creates the log command group.
func NewLogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Send events to the logging service",
	}

	cmd.AddCommand(newLogSendCmd())

	return cmd
}

func newLogSendCmd() *cobra.Command {
	var (
		message     string
		source      string
		destination []string
		group       string
		category    string
		alert       string
		severity    string
	)

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a single log event",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProfile(cmd)
			if err != nil {
				return err
			}

			url, err := requireEndpoint(p.Endpoints.Logging, "logging")
			if err != nil {
				return err
			}

			opts := []systemlog.Option{}
			if d := p.Timeout(); d > 0 {
				opts = append(opts, systemlog.WithTimeout(d))
			}

			client := systemlog.New(url, systemlog.Defaults{
				Source:      p.Log.Source,
				Destination: p.Log.Destination,
				Group:       p.Log.Group,
				Category:    p.Log.Category,
				Alert:       p.Log.Alert,
				Severity:    p.Log.Severity,
			}, opts...)

			overrides := []systemlog.Override{}
			if source != "" {
				overrides = append(overrides, systemlog.Source(source))
			}
			if len(destination) > 0 {
				overrides = append(overrides, systemlog.Destination(destination))
			}
			if group != "" {
				overrides = append(overrides, systemlog.Group(group))
			}
			if category != "" {
				overrides = append(overrides, systemlog.Category(category))
			}
			if alert != "" {
				overrides = append(overrides, systemlog.Alert(alert))
			}
			if severity != "" {
				overrides = append(overrides, systemlog.Severity(severity))
			}

			if !client.Log(cmd.Context(), message, overrides...) {
				fail.Println("Log delivery failed")
				return fmt.Errorf("logging service did not accept the event")
			}

			success.Println("Log delivered")
			return nil
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Log message (required)")
	cmd.Flags().StringVar(&source, "source", "", "Override the event source")
	cmd.Flags().StringSliceVar(&destination, "destination", nil, "Override the event destinations")
	cmd.Flags().StringVar(&group, "group", "", "Override the event group")
	cmd.Flags().StringVar(&category, "category", "", "Override the event category")
	cmd.Flags().StringVar(&alert, "alert", "", "Override the event alert type")
	cmd.Flags().StringVar(&severity, "severity", "", "Override the event severity")
	_ = cmd.MarkFlagRequired("message")

	return cmd
}
