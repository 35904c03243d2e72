package changelog

import (
	"strings"
	"testing"
	"time"

	"github.com/relcut-labs/relcut/core/release"
)

func commitAt(hash, body string, day int) release.Commit {
	ts := time.Date(2026, 3, 1+day, 12, 0, 0, 0, time.UTC)
	return release.Commit{Hash: hash, Timestamp: ts, Title: firstNonBlankLine(body), RawBody: body}
}

func TestBuildRecordAssemblesEverything(t *testing.T) {
	commits := []release.Commit{
		commitAt("aaa111", `feat: add sync targets

<technical>
New syncer package; manifest is validated on load.
</technical>

<changelog>
## Features ✨
- Added sync targets for version-bearing files.
## Breaking Changes
- Removed the legacy --output flag.
</changelog>`, 0),
		commitAt("bbb222", `fix: handle empty manifest

<technical>
Missing manifest now yields an empty target list.
</technical>

<changelog>
## Fixed 🐛
- Handled repositories without a sync manifest.
</changelog>`, 1),
	}

	rec := BuildRecord(RecordInput{
		Version: "beta-1.3.0",
		Prefix:  "beta",
		Date:    time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		Type:    release.BumpMajor,
		Commits: commits,
	})

	if rec.Version != "beta-1.3.0" || rec.Prefix != "beta" {
		t.Errorf("version/prefix = %q/%q", rec.Version, rec.Prefix)
	}
	if rec.Date != "2026-03-02" {
		t.Errorf("Date = %q, want 2026-03-02", rec.Date)
	}
	if len(rec.Changes) != 3 {
		t.Fatalf("got %d changes, want 3", len(rec.Changes))
	}
	if rec.CommitHash != "aaa111" {
		t.Errorf("CommitHash = %q, want the oldest contributing commit", rec.CommitHash)
	}
	if len(rec.BreakingChanges) != 1 || rec.BreakingChanges[0] != "Removed the legacy --output flag." {
		t.Errorf("BreakingChanges = %v", rec.BreakingChanges)
	}
	if !strings.Contains(rec.TechnicalNotes, "New syncer package") ||
		!strings.Contains(rec.TechnicalNotes, "empty target list") {
		t.Errorf("TechnicalNotes = %q, want notes from both commits", rec.TechnicalNotes)
	}
	if !strings.HasPrefix(rec.Title, "New features") {
		t.Errorf("Title = %q, want feature wording", rec.Title)
	}
}

func TestRecordTitleWordingPriority(t *testing.T) {
	tests := []struct {
		name    string
		entries []release.Entry
		want    string
	}{
		{
			name: "features beat fixes",
			entries: []release.Entry{
				{Kind: release.EntryKindFix, Title: "A fix"},
				{Kind: release.EntryKindFeature, Title: "A feature"},
			},
			want: "New features: A feature",
		},
		{
			name: "fixes beat improvements",
			entries: []release.Entry{
				{Kind: release.EntryKindImprovement, Title: "A tweak"},
				{Kind: release.EntryKindFix, Title: "A fix"},
			},
			want: "Fixes: A fix",
		},
		{
			name: "improvements as fallback",
			entries: []release.Entry{
				{Kind: release.EntryKindImprovement, Title: "A tweak"},
			},
			want: "Improvements: A tweak",
		},
		{
			name:    "no entries at all",
			entries: nil,
			want:    "Improvements",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RecordTitle(tt.entries); got != tt.want {
				t.Errorf("RecordTitle = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildRecordWithoutSections(t *testing.T) {
	commits := []release.Commit{
		commitAt("ccc333", "chore: routine cleanup", 0),
	}

	rec := BuildRecord(RecordInput{
		Version: "1.0.1",
		Date:    time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
		Type:    release.BumpPatch,
		Commits: commits,
	})

	if rec.TechnicalNotes != "" {
		t.Errorf("TechnicalNotes = %q, want empty", rec.TechnicalNotes)
	}
	if len(rec.Changes) != 1 {
		t.Fatalf("got %d changes, want 1 synthetic entry", len(rec.Changes))
	}
	if rec.Changes[0].Kind != release.EntryKindImprovement {
		t.Errorf("synthetic kind = %q, want improvement", rec.Changes[0].Kind)
	}
	if len(rec.BreakingChanges) != 0 {
		t.Errorf("BreakingChanges = %v, want none", rec.BreakingChanges)
	}
}
