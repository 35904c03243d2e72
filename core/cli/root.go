package cli

import (
	"github.com/spf13/cobra"

	"github.com/relcut-labs/relcut/pkg/logging"
)

// NewRootCmd creates the top-level relcut command.
func NewRootCmd(version string) *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   "relcut",
		Short: "Automated release bookkeeping tool",
		Long:  "Relcut turns commit messages into a structured changelog, computes the next semantic version and keeps version-bearing files in sync.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Configure(logLevel)
		},
	}

	cmd.Version = version
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	return cmd
}
