package changelog

import (
	"regexp"
	"strings"

	"github.com/relcut-labs/relcut/core/release"
)

// titleConventionRe matches conventional-commit style titles such as
// "feat(parser): ..." or "fix: ...".
var titleConventionRe = regexp.MustCompile(`^(feat|fix)(\([^)]*\))?!?:`)

// EntriesFromCommit turns one commit into its changelog entries. A commit
// carrying a changelog section contributes one entry per bulleted line;
// a commit without one falls back to a single synthetic entry classified
// from its title. Classification is total: every commit yields at least
// one entry and every non-empty changelog line yields exactly one.
func EntriesFromCommit(c release.Commit) []release.Entry {
	m := ParseMessage(c.RawBody)
	if m.HasChangelog {
		return ClassifyBlock(m.Changelog)
	}

	title := m.Title
	if title == "" {
		title = c.Title
	}
	return []release.Entry{syntheticEntry(title)}
}

// ClassifyBlock splits a changelog section into subsections by "##"
// heading lines and turns each "-" bulleted line into a typed entry. A
// heading with no bullets under it contributes nothing.
func ClassifyBlock(block string) []release.Entry {
	var entries []release.Entry

	// Bullets above the first heading fall into the default bucket.
	kind := release.EntryKindImprovement

	for _, line := range strings.Split(block, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "##"):
			kind = kindForHeading(trimmed)
		case strings.HasPrefix(trimmed, "-"):
			text := strings.TrimSpace(strings.TrimPrefix(trimmed, "-"))
			if text == "" {
				continue
			}
			entries = append(entries, release.Entry{
				Kind:        kind,
				Title:       entryTitle(text),
				Description: text,
			})
		}
	}
	return entries
}

// kindForHeading classifies a subsection heading by substring, checked in
// priority order. Headings that match nothing are improvements; the
// fallback must never fail.
func kindForHeading(heading string) release.EntryKind {
	lower := strings.ToLower(heading)
	switch {
	case strings.Contains(lower, "breaking"):
		return release.EntryKindBreaking
	case strings.Contains(lower, "fix"), strings.Contains(lower, "🐛"):
		return release.EntryKindFix
	case strings.Contains(lower, "feature"), strings.Contains(lower, "✨"):
		return release.EntryKindFeature
	default:
		return release.EntryKindImprovement
	}
}

// syntheticEntry classifies a commit title by the conventional-commit
// prefix when present, defaulting to improvement.
func syntheticEntry(title string) release.Entry {
	kind := release.EntryKindImprovement
	if m := titleConventionRe.FindStringSubmatch(title); m != nil {
		switch m[1] {
		case "feat":
			kind = release.EntryKindFeature
		case "fix":
			kind = release.EntryKindFix
		}
	}
	return release.Entry{
		Kind:        kind,
		Title:       entryTitle(title),
		Description: title,
	}
}

// entryTitle truncates a line at the first sentence boundary.
func entryTitle(text string) string {
	if idx := strings.Index(text, "."); idx >= 0 {
		return text[:idx]
	}
	return text
}
