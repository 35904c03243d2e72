package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// CutOptions holds the parsed flags for "cut".
type CutOptions struct {
	Repo       string
	Type       string
	Channel    string
	DryRun     bool
	AllowDirty bool
}

// CutRunFunc is the function signature for the cut command handler. It is
// injected by the wiring layer (cmd/relcut/main.go).
type CutRunFunc func(ctx context.Context, opts CutOptions) error

// NewCutCmd creates the "cut" command.
func NewCutCmd(runFunc CutRunFunc) *cobra.Command {
	var opts CutOptions

	cmd := &cobra.Command{
		Use:   "cut",
		Short: "Compute and record the next version",
		Long:  "Compute the next version from the commits since the last release, record it in the changelog history and sync version-bearing files.",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return validateCutFlags(opts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFunc(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.Repo, "repo", ".", "Path to the repository")
	cmd.Flags().StringVar(&opts.Type, "type", "", "Force the bump type (major, minor, patch)")
	cmd.Flags().StringVar(&opts.Channel, "channel", "", "Override the release channel (pre-alpha, alpha, beta, rc, stable)")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Show what would change without writing anything")
	cmd.Flags().BoolVar(&opts.AllowDirty, "allow-dirty", false, "Allow cutting from a dirty working tree")

	return cmd
}

func validateCutFlags(opts CutOptions) error {
	switch opts.Type {
	case "", "major", "minor", "patch":
	default:
		return fmt.Errorf("--type must be one of major, minor, patch (got %q)", opts.Type)
	}

	info, err := os.Stat(opts.Repo)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("repo path does not exist: %s", opts.Repo)
		}
		return fmt.Errorf("cannot access repo path: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("repo path is not a directory: %s", opts.Repo)
	}

	return nil
}
