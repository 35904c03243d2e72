package app

import (
	"errors"

	"github.com/relcut-labs/relcut/core/backfill"
	"github.com/relcut-labs/relcut/core/release"
)

// BootstrapOptions control a one-time history import.
type BootstrapOptions struct {
	// Force replaces an existing history document.
	Force bool

	// DryRun computes the synthetic records but writes nothing.
	DryRun bool
}

// BootstrapResult reports an imported history.
type BootstrapResult struct {
	History release.History
	Groups  int
	Commits int
	DryRun  bool
}

// Bootstrap partitions the entire commit history into synthetic release
// groups and persists them as the initial changelog history. The synthetic
// numbering is a one-time convenience; the live increment engine never
// consults it again.
func (a App) Bootstrap(opts BootstrapOptions) (BootstrapResult, error) {
	_, found, err := a.Store.Load()
	if err != nil {
		return BootstrapResult{}, err
	}
	if found && !opts.Force {
		return BootstrapResult{}, ErrHistoryExists
	}

	commits, err := a.Source.AllCommits()
	if err != nil {
		return BootstrapResult{}, err
	}
	if len(commits) == 0 {
		return BootstrapResult{}, errors.New("repository has no commits to bootstrap from")
	}

	groups := backfill.Partition(commits)
	records := backfill.Records(groups)

	hist := release.History{
		CurrentVersion: records[0].Version,
		Versions:       records,
	}

	result := BootstrapResult{
		History: hist,
		Groups:  len(groups),
		Commits: len(commits),
		DryRun:  opts.DryRun,
	}
	if opts.DryRun {
		return result, nil
	}

	if err := a.Store.Save(hist); err != nil {
		return BootstrapResult{}, err
	}
	return result, nil
}
