package gitlog

import (
	"testing"
	"time"
)

func TestParseLog(t *testing.T) {
	out := "abc123" + fieldSep + "2026-03-01T10:00:00+00:00" + fieldSep + "feat: first" + fieldSep +
		"feat: first\n\nBody text.\n" + recordSep + "\n" +
		"def456" + fieldSep + "2026-03-02T11:30:00+02:00" + fieldSep + "fix: second" + fieldSep +
		"fix: second\n\n<changelog>\n- A change.\n</changelog>\n" + recordSep

	commits, err := ParseLog(out)
	if err != nil {
		t.Fatalf("ParseLog: %v", err)
	}
	if len(commits) != 2 {
		t.Fatalf("got %d commits, want 2", len(commits))
	}

	first := commits[0]
	if first.Hash != "abc123" {
		t.Errorf("Hash = %q", first.Hash)
	}
	if first.Title != "feat: first" {
		t.Errorf("Title = %q", first.Title)
	}
	want := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	if !first.Timestamp.Equal(want) {
		t.Errorf("Timestamp = %v, want %v", first.Timestamp, want)
	}

	second := commits[1]
	if second.RawBody == "" || second.Hash != "def456" {
		t.Errorf("second commit parsed as %+v", second)
	}
}

func TestParseLogEmpty(t *testing.T) {
	commits, err := ParseLog("")
	if err != nil {
		t.Fatalf("ParseLog: %v", err)
	}
	if len(commits) != 0 {
		t.Errorf("got %d commits from empty output, want 0", len(commits))
	}
}

func TestParseLogMalformedRecord(t *testing.T) {
	if _, err := ParseLog("justonefield" + recordSep); err == nil {
		t.Fatal("ParseLog accepted a record with missing fields")
	}
}

func TestParseLogBadDate(t *testing.T) {
	out := "abc" + fieldSep + "not-a-date" + fieldSep + "title" + fieldSep + "body" + recordSep
	if _, err := ParseLog(out); err == nil {
		t.Fatal("ParseLog accepted an unparseable commit date")
	}
}
