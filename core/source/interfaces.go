package source

import (
	"github.com/relcut-labs/relcut/core/release"
)

// CommitSource is the version-control collaborator: it supplies ordered
// commit streams and repository safety state.
type CommitSource interface {
	// CommitsAfter returns every commit after the given hash, ordered
	// oldest to newest, with full message bodies.
	CommitsAfter(hash string) ([]release.Commit, error)

	// AllCommits returns the entire history, ordered oldest to newest.
	AllCommits() ([]release.Commit, error)

	// CurrentBranch returns the checked-out branch name. Consumed only by
	// the orchestration layer for safety gating.
	CurrentBranch() (string, error)

	// IsClean reports whether the working tree has no uncommitted changes.
	IsClean() (bool, error)
}

// HistoryStore persists the changelog history document. Implementations
// read and write the entire document; there is no partial update.
type HistoryStore interface {
	// Load returns the persisted history. A missing document is not an
	// error: it returns an empty history and found=false so first runs
	// bootstrap implicitly.
	Load() (hist release.History, found bool, err error)

	// Save atomically replaces the persisted history.
	Save(hist release.History) error
}
