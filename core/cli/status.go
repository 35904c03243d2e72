package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// StatusOptions holds the parsed flags for "status".
type StatusOptions struct {
	Repo string
}

// StatusRunFunc is the function signature for the status command handler.
type StatusRunFunc func(ctx context.Context, opts StatusOptions) error

// NewStatusCmd creates the "status" command.
func NewStatusCmd(runFunc StatusRunFunc) *cobra.Command {
	var opts StatusOptions

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the current version and pending commits",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFunc(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.Repo, "repo", ".", "Path to the repository")

	return cmd
}
