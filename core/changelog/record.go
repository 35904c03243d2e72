package changelog

import (
	"fmt"
	"strings"
	"time"

	"github.com/relcut-labs/relcut/core/release"
)

// RecordInput carries everything needed to assemble one VersionRecord.
// Version and Prefix arrive pre-serialized so this package stays free of
// version-model concerns.
type RecordInput struct {
	Version string
	Prefix  string
	Date    time.Time
	Type    release.BumpType
	Commits []release.Commit
}

// BuildRecord assembles the persisted record for one version cut: it
// classifies every contributing commit, concatenates technical notes,
// collects breaking-change descriptions and anchors the record on the
// oldest contributing commit's hash. Commits must be ordered oldest first.
func BuildRecord(in RecordInput) release.VersionRecord {
	var (
		entries  []release.Entry
		notes    []string
		breaking []string
	)

	for _, c := range in.Commits {
		m := ParseMessage(c.RawBody)
		if m.HasTechnical {
			notes = append(notes, m.Technical)
		}
		entries = append(entries, EntriesFromCommit(c)...)
	}

	for _, e := range entries {
		if e.Kind == release.EntryKindBreaking {
			breaking = append(breaking, e.Description)
		}
	}

	rec := release.VersionRecord{
		Version:         in.Version,
		Date:            in.Date.Format(release.DateLayout),
		Type:            in.Type,
		Title:           RecordTitle(entries),
		Changes:         entries,
		TechnicalNotes:  strings.Join(notes, "\n\n"),
		BreakingChanges: breaking,
		Prefix:          in.Prefix,
	}
	if len(in.Commits) > 0 {
		rec.CommitHash = in.Commits[0].Hash
	}
	return rec
}

// RecordTitle generates the human summary for a batch of entries, worded
// by the most newsworthy kind present: features beat fixes beat generic
// improvements. The leading entry of that kind is quoted when available.
func RecordTitle(entries []release.Entry) string {
	wording := "Improvements"
	lead := ""

	if e, ok := firstOfKind(entries, release.EntryKindFeature); ok {
		wording = "New features"
		lead = e.Title
	} else if e, ok := firstOfKind(entries, release.EntryKindFix); ok {
		wording = "Fixes"
		lead = e.Title
	} else if len(entries) > 0 {
		lead = entries[0].Title
	}

	if lead == "" {
		return wording
	}
	return fmt.Sprintf("%s: %s", wording, lead)
}

func firstOfKind(entries []release.Entry, kind release.EntryKind) (release.Entry, bool) {
	for _, e := range entries {
		if e.Kind == kind {
			return e, true
		}
	}
	return release.Entry{}, false
}
