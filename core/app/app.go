// Package app wires the release pipeline together: it reads commit streams
// from the version-control collaborator, runs them through classification
// and the increment engine, and persists the outcome. State handling is a
// strict read-entire-history, compute-in-memory, write-entire-history
// cycle; nothing is persisted until the whole computation has succeeded.
package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/relcut-labs/relcut/core/changelog"
	"github.com/relcut-labs/relcut/core/release"
	"github.com/relcut-labs/relcut/core/source"
	"github.com/relcut-labs/relcut/core/syncer"
	"github.com/relcut-labs/relcut/core/version"
)

// ErrNoNewCommits reports that nothing has landed since the last recorded
// cut. Callers treat it as a normal no-op, not a failure.
var ErrNoNewCommits = errors.New("no new commits since the last release")

// ErrHistoryExists guards bootstrap against clobbering a live history.
var ErrHistoryExists = errors.New("changelog history already exists")

// App bundles the collaborators every operation needs.
type App struct {
	Source source.CommitSource
	Store  source.HistoryStore
	Sync   syncer.Syncer
	Log    *log.Logger

	// Now is injectable for tests; zero value means time.Now.
	Now func() time.Time
}

func (a App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// CutOptions control one version cut.
type CutOptions struct {
	// Type forces the bump magnitude; empty means detect from entries.
	Type release.BumpType

	// Channel overrides the prerelease prefix ("stable" clears it);
	// empty carries the current prefix forward.
	Channel string

	// DryRun computes everything but writes nothing.
	DryRun bool

	// AllowDirty skips the working-tree safety gate.
	AllowDirty bool
}

// CutResult reports one computed cut.
type CutResult struct {
	Increment version.Increment
	Record    release.VersionRecord
	Commits   int
	Synced    []syncer.Result
	DryRun    bool
}

// Cut computes the next version from the commits since the last cut,
// appends the new record to the history and projects the version onto the
// sync targets. Structural errors surface before any write.
func (a App) Cut(opts CutOptions) (CutResult, error) {
	if err := a.gate(opts.AllowDirty); err != nil {
		return CutResult{}, err
	}

	hist, found, err := a.Store.Load()
	if err != nil {
		return CutResult{}, err
	}
	if !found {
		a.Log.Debug("no history document found, starting from the initial version", "version", hist.CurrentVersion)
	}

	current, err := version.Parse(hist.CurrentVersion)
	if err != nil {
		return CutResult{}, fmt.Errorf("persisted current version: %w", err)
	}

	commits, err := a.unreleased(hist)
	if err != nil {
		return CutResult{}, err
	}
	if len(commits) == 0 {
		return CutResult{}, ErrNoNewCommits
	}

	var entries []release.Entry
	for _, c := range commits {
		entries = append(entries, changelog.EntriesFromCommit(c)...)
	}

	prefixOverride, err := parseChannelOverride(opts.Channel)
	if err != nil {
		return CutResult{}, err
	}

	inc, err := version.Next(current, entries, opts.Type, prefixOverride)
	if err != nil {
		return CutResult{}, err
	}
	if inc.ChannelRegression {
		a.Log.Warn("channel is moving backwards on the maturity order",
			"from", prefixName(current.Prefix), "to", prefixName(inc.Next.Prefix))
	}
	if opts.Type != "" && opts.Type != inc.Detected {
		a.Log.Info("forced bump type overrides detection",
			"forced", opts.Type, "detected", inc.Detected)
	}

	rec := changelog.BuildRecord(changelog.RecordInput{
		Version: inc.Next.String(),
		Prefix:  string(inc.Next.Prefix),
		Date:    a.now(),
		Type:    inc.Applied,
		Commits: commits,
	})
	hist.Prepend(rec)

	result := CutResult{
		Increment: inc,
		Record:    rec,
		Commits:   len(commits),
		DryRun:    opts.DryRun,
	}
	if opts.DryRun {
		return result, nil
	}

	if err := a.Store.Save(hist); err != nil {
		return CutResult{}, err
	}

	synced, err := a.Sync.Apply(inc.Next)
	if err != nil {
		return result, fmt.Errorf("history saved but artifact sync failed: %w", err)
	}
	result.Synced = synced
	return result, nil
}

// gate refuses to cut from a dirty working tree and warns when the
// checked-out branch is not a default branch.
func (a App) gate(allowDirty bool) error {
	if allowDirty {
		return nil
	}

	clean, err := a.Source.IsClean()
	if err != nil {
		return err
	}
	if !clean {
		return errors.New("working tree has uncommitted changes (use --allow-dirty to override)")
	}

	branch, err := a.Source.CurrentBranch()
	if err != nil {
		return err
	}
	if branch != "main" && branch != "master" {
		a.Log.Warn("cutting a release from a non-default branch", "branch", branch)
	}
	return nil
}

// unreleased returns the commits after the last recorded anchor, or the
// entire history when no cut has been recorded yet.
func (a App) unreleased(hist release.History) ([]release.Commit, error) {
	anchor := hist.LastCommitHash()
	if anchor == "" {
		return a.Source.AllCommits()
	}
	return a.Source.CommitsAfter(anchor)
}

func parseChannelOverride(channel string) (*version.Prefix, error) {
	if channel == "" {
		return nil, nil
	}
	p, err := version.ParsePrefix(channel)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func prefixName(p version.Prefix) string {
	if p == version.PrefixStable {
		return "stable"
	}
	return string(p)
}
