package app

import (
	"fmt"

	"github.com/relcut-labs/relcut/core/version"
)

// Status is a read-only snapshot of the release state.
type Status struct {
	Current    version.Identifier
	Channel    version.Channel
	Strict     string
	Full       string
	Unreleased int
	Recorded   int
}

// Status reports the current version, its projections and how many commits
// are waiting for the next cut. It never writes.
func (a App) Status() (Status, error) {
	hist, _, err := a.Store.Load()
	if err != nil {
		return Status{}, err
	}

	current, err := version.Parse(hist.CurrentVersion)
	if err != nil {
		return Status{}, fmt.Errorf("persisted current version: %w", err)
	}

	commits, err := a.unreleased(hist)
	if err != nil {
		return Status{}, err
	}

	return Status{
		Current:    current,
		Channel:    current.Channel(),
		Strict:     current.Strict(),
		Full:       current.Full(),
		Unreleased: len(commits),
		Recorded:   len(hist.Versions),
	}, nil
}
