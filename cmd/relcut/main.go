package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/relcut-labs/relcut/core/app"
	"github.com/relcut-labs/relcut/core/cli"
	"github.com/relcut-labs/relcut/core/gitlog"
	"github.com/relcut-labs/relcut/core/release"
	"github.com/relcut-labs/relcut/core/syncer"
	"github.com/relcut-labs/relcut/pkg/histstore"
	"github.com/relcut-labs/relcut/pkg/logging"
)

const version = "0.1.0"

// newApp assembles the pipeline for one repository.
func newApp(repoPath string) (app.App, error) {
	manifest, err := syncer.LoadManifest(repoPath)
	if err != nil {
		return app.App{}, err
	}

	return app.App{
		Source: gitlog.Collector{RepoPath: repoPath},
		Store:  histstore.New(repoPath),
		Sync:   syncer.Syncer{RepoPath: repoPath, Manifest: manifest},
		Log:    logging.Logger,
	}, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runCut := func(ctx context.Context, opts cli.CutOptions) error {
		a, err := newApp(opts.Repo)
		if err != nil {
			return err
		}

		result, err := a.Cut(app.CutOptions{
			Type:       release.BumpType(opts.Type),
			Channel:    opts.Channel,
			DryRun:     opts.DryRun,
			AllowDirty: opts.AllowDirty,
		})
		if err != nil {
			if errors.Is(err, app.ErrNoNewCommits) {
				fmt.Println("Nothing to release: no new commits since the last cut.")
				return nil
			}
			return err
		}

		inc := result.Increment
		fmt.Printf("Previous version: %s\n", inc.Previous)
		fmt.Printf("Next version:     %s\n", inc.Next)
		fmt.Printf("Bump:             %s (detected %s)\n", inc.Applied, inc.Detected)
		fmt.Printf("Channel:          %s\n", inc.Next.Channel())
		fmt.Printf("Commits:          %d\n", result.Commits)
		fmt.Printf("Title:            %s\n", result.Record.Title)

		if result.DryRun {
			fmt.Println("[dry-run] No changes written.")
			return nil
		}
		for _, s := range result.Synced {
			fmt.Printf("Synced %s (%s = %s)\n", s.File, s.Repr, s.Value)
		}
		return nil
	}

	runBootstrap := func(ctx context.Context, opts cli.BootstrapOptions) error {
		a, err := newApp(opts.Repo)
		if err != nil {
			return err
		}

		result, err := a.Bootstrap(app.BootstrapOptions{
			Force:  opts.Force,
			DryRun: opts.DryRun,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Imported %d commits into %d synthetic releases.\n", result.Commits, result.Groups)
		for _, rec := range result.History.Versions {
			fmt.Printf("  %s  %s  %-8s %s\n", rec.Version, rec.Date, rec.Type, rec.Title)
		}
		if result.DryRun {
			fmt.Println("[dry-run] No changes written.")
		}
		return nil
	}

	runStatus := func(ctx context.Context, opts cli.StatusOptions) error {
		a, err := newApp(opts.Repo)
		if err != nil {
			return err
		}

		status, err := a.Status()
		if err != nil {
			return err
		}

		fmt.Printf("Current version: %s\n", status.Full)
		fmt.Printf("Strict semver:   %s\n", status.Strict)
		fmt.Printf("Channel:         %s\n", status.Channel)
		fmt.Printf("Releases:        %d\n", status.Recorded)
		fmt.Printf("Unreleased:      %d commits\n", status.Unreleased)
		return nil
	}

	root := cli.NewRootCmd(version)
	root.AddCommand(cli.NewCutCmd(runCut))
	root.AddCommand(cli.NewBootstrapCmd(runBootstrap))
	root.AddCommand(cli.NewStatusCmd(runStatus))

	if err := root.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
