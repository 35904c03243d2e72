// Package changelog extracts structured changelog data from free-form
// commit messages and assembles persisted version records from it.
//
// Input text originates from human- or AI-authored commit messages, so
// malformed markup is the normal case, not the exception: every routine in
// this package degrades to a documented fallback instead of failing.
package changelog

import (
	"regexp"
	"strings"
)

var (
	technicalRe = regexp.MustCompile(`(?s)<technical>(.*?)</technical>`)
	changelogRe = regexp.MustCompile(`(?s)<changelog>(.*?)</changelog>`)
)

// Message is the structured view of one commit's raw text body.
type Message struct {
	Title       string
	Description string

	Technical    string
	HasTechnical bool

	Changelog    string
	HasChangelog bool
}

// ParseMessage splits a raw commit message into title, description and the
// optional technical and changelog sections. Sections are delimited by
// literal, case-sensitive <technical> and <changelog> tag pairs; the first
// non-overlapping match of each pair wins. An unmatched tag simply leaves
// that section absent.
func ParseMessage(raw string) Message {
	var m Message

	m.Title = firstNonBlankLine(raw)

	firstMarker := len(raw)
	if loc := technicalRe.FindStringSubmatchIndex(raw); loc != nil {
		m.Technical = strings.TrimSpace(raw[loc[2]:loc[3]])
		m.HasTechnical = true
		if loc[0] < firstMarker {
			firstMarker = loc[0]
		}
	}
	if loc := changelogRe.FindStringSubmatchIndex(raw); loc != nil {
		m.Changelog = strings.TrimSpace(raw[loc[2]:loc[3]])
		m.HasChangelog = true
		if loc[0] < firstMarker {
			firstMarker = loc[0]
		}
	}

	m.Description = descriptionBetween(raw, m.Title, firstMarker)
	return m
}

// firstNonBlankLine returns the commit title line.
func firstNonBlankLine(raw string) string {
	for _, line := range strings.Split(raw, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

// descriptionBetween extracts the free text after the title line and
// before the first recognized section marker.
func descriptionBetween(raw, title string, firstMarker int) string {
	head := raw[:firstMarker]
	if title != "" {
		if idx := strings.Index(head, title); idx >= 0 {
			head = head[idx+len(title):]
		}
	}
	return strings.TrimSpace(head)
}
