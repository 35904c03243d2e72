package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// BootstrapOptions holds the parsed flags for "bootstrap".
type BootstrapOptions struct {
	Repo   string
	Force  bool
	DryRun bool
}

// BootstrapRunFunc is the function signature for the bootstrap command handler.
type BootstrapRunFunc func(ctx context.Context, opts BootstrapOptions) error

// NewBootstrapCmd creates the "bootstrap" command.
func NewBootstrapCmd(runFunc BootstrapRunFunc) *cobra.Command {
	var opts BootstrapOptions

	cmd := &cobra.Command{
		Use:   "bootstrap",
		Short: "Import the full commit history as an initial changelog",
		Long:  "Partition the entire commit history into synthetic release groups and persist them as the initial changelog history.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFunc(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.Repo, "repo", ".", "Path to the repository")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "Replace an existing changelog history")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Show the synthetic releases without writing anything")

	return cmd
}
