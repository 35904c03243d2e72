package release

import "time"

// EntryKind classifies one user-visible unit of change.
type EntryKind string

const (
	EntryKindFeature     EntryKind = "feature"
	EntryKindFix         EntryKind = "fix"
	EntryKindImprovement EntryKind = "improvement"
	EntryKindBreaking    EntryKind = "breaking"
)

// Entry is one classified changelog line. Kind is always inferred from the
// surrounding heading or the commit title, never supplied by the raw text.
type Entry struct {
	Kind        EntryKind `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
}

// Commit is a read-only snapshot of one source-control commit as supplied
// by the version-control collaborator.
type Commit struct {
	Hash      string
	Timestamp time.Time
	Title     string
	RawBody   string
}

// BumpType is the magnitude of a version increment.
type BumpType string

const (
	BumpInitial BumpType = "initial"
	BumpMajor   BumpType = "major"
	BumpMinor   BumpType = "minor"
	BumpPatch   BumpType = "patch"
)

// VersionRecord is one entry in the persisted changelog history.
// Records are created once per version cut and never mutated afterwards.
type VersionRecord struct {
	Version         string   `json:"version"`
	Date            string   `json:"date"`
	Type            BumpType `json:"type"`
	Title           string   `json:"title"`
	Changes         []Entry  `json:"changes"`
	TechnicalNotes  string   `json:"technical_notes,omitempty"`
	BreakingChanges []string `json:"breaking_changes,omitempty"`
	CommitHash      string   `json:"commit_hash,omitempty"`
	Prefix          string   `json:"prefix,omitempty"`
}

// History is the persisted changelog state: the current version plus all
// recorded cuts, most recent first.
type History struct {
	CurrentVersion string          `json:"currentVersion"`
	Versions       []VersionRecord `json:"versions"`
}

// DateLayout is the day-resolution format used for VersionRecord.Date.
const DateLayout = "2006-01-02"

// InitialVersion is the implicit current version of an empty history.
const InitialVersion = "0.1.0"

// NewHistory returns an empty history at the implicit initial version.
func NewHistory() History {
	return History{CurrentVersion: InitialVersion}
}

// Prepend inserts a freshly cut record at the front and advances the
// current version to the record's version.
func (h *History) Prepend(rec VersionRecord) {
	h.Versions = append([]VersionRecord{rec}, h.Versions...)
	h.CurrentVersion = rec.Version
}

// Latest returns the most recent record, or false when the history is empty.
func (h History) Latest() (VersionRecord, bool) {
	if len(h.Versions) == 0 {
		return VersionRecord{}, false
	}
	return h.Versions[0], true
}

// LastCommitHash returns the source commit anchor of the most recent cut.
// Empty when no cut has recorded an anchor yet.
func (h History) LastCommitHash() string {
	rec, ok := h.Latest()
	if !ok {
		return ""
	}
	return rec.CommitHash
}
