// Package backfill bootstraps a changelog history from an existing commit
// log by partitioning it into synthetic release groups. It exists for
// one-time history imports; the live increment engine never consults it.
package backfill

import (
	"fmt"
	"time"

	"github.com/relcut-labs/relcut/core/changelog"
	"github.com/relcut-labs/relcut/core/release"
	"github.com/relcut-labs/relcut/core/version"
)

const (
	// MaxGroupSize caps how many commits one synthetic release may hold.
	MaxGroupSize = 10

	// MaxGroupGap is the largest span between a commit and its group's
	// anchor date before a new group starts.
	MaxGroupGap = 7 * 24 * time.Hour
)

// Group is one synthetic release: a run of commits anchored on the date of
// its oldest member.
type Group struct {
	Commits []release.Commit
	Anchor  time.Time
}

// Partition walks commits oldest to newest and splits them into groups. A
// new group starts at the first commit, when a commit lands more than
// MaxGroupGap after the running group's anchor, or when the running group
// is already full.
func Partition(commits []release.Commit) []Group {
	var groups []Group
	var current *Group

	for _, c := range commits {
		if current == nil ||
			c.Timestamp.Sub(current.Anchor) > MaxGroupGap ||
			len(current.Commits) >= MaxGroupSize {
			groups = append(groups, Group{Anchor: c.Timestamp})
			current = &groups[len(groups)-1]
		}
		current.Commits = append(current.Commits, c)
	}
	return groups
}

// Records turns partitioned groups into a most-recent-first sequence of
// version records with synthetic version numbers. The exact numbers are a
// bootstrap convenience; only their ordering matters (newer groups get
// higher versions).
func Records(groups []Group) []release.VersionRecord {
	records := make([]release.VersionRecord, 0, len(groups))

	// Most recent group first.
	for i := len(groups) - 1; i >= 0; i-- {
		g := groups[i]

		var entries []release.Entry
		for _, c := range g.Commits {
			entries = append(entries, changelog.EntriesFromCommit(c)...)
		}

		bump := version.DetectBump(entries)
		if i == 0 {
			bump = release.BumpInitial
		}

		rec := changelog.BuildRecord(changelog.RecordInput{
			Version: syntheticVersion(len(records), len(groups)),
			Date:    g.Anchor,
			Type:    bump,
			Commits: g.Commits,
		})
		records = append(records, rec)
	}
	return records
}

// syntheticVersion numbers a group by recency rank (0 = most recent): the
// newest group is 1.0.0, the next three descend through the 0.x.0 minors,
// and anything older descends through 0.1.x patches.
func syntheticVersion(rank, total int) string {
	switch {
	case rank == 0:
		return "1.0.0"
	case rank <= 3:
		return fmt.Sprintf("0.%d.0", 5-rank)
	default:
		return fmt.Sprintf("0.1.%d", total-rank)
	}
}
