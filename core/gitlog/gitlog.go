// Package gitlog reads commit streams and working-tree state from a git
// repository by shelling out to the git CLI.
package gitlog

import (
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/relcut-labs/relcut/core/release"
)

// Field and record separators used in the git log pretty format. Unit and
// record separator control characters cannot appear in commit text.
const (
	fieldSep  = "\x1f"
	recordSep = "\x1e"
)

// logFormat emits hash, strict-ISO committer date, subject and full body
// per commit, one record per commit.
const logFormat = "%H" + fieldSep + "%cI" + fieldSep + "%s" + fieldSep + "%B" + recordSep

// Collector wraps git operations for one repository.
type Collector struct {
	RepoPath string
}

// CommitsAfter returns every commit after the given hash up to HEAD,
// ordered oldest to newest.
func (c Collector) CommitsAfter(hash string) ([]release.Commit, error) {
	return c.log(hash + "..HEAD")
}

// AllCommits returns the entire history, ordered oldest to newest.
func (c Collector) AllCommits() ([]release.Commit, error) {
	return c.log("HEAD")
}

func (c Collector) log(rangeSpec string) ([]release.Commit, error) {
	cmd := exec.Command("git", "-C", c.RepoPath, "log", "--reverse", "--pretty=format:"+logFormat, rangeSpec)
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("git log %s: %w", rangeSpec, err)
	}
	return ParseLog(string(out))
}

// ParseLog decodes the separator-delimited git log output into commit
// records.
func ParseLog(out string) ([]release.Commit, error) {
	var commits []release.Commit
	for _, record := range strings.Split(out, recordSep) {
		record = strings.TrimSpace(record)
		if record == "" {
			continue
		}

		parts := strings.SplitN(record, fieldSep, 4)
		if len(parts) < 4 {
			return nil, fmt.Errorf("malformed git log record: %q", record)
		}

		ts, err := time.Parse(time.RFC3339, strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("parsing commit date of %s: %w", parts[0], err)
		}

		commits = append(commits, release.Commit{
			Hash:      strings.TrimSpace(parts[0]),
			Timestamp: ts,
			Title:     strings.TrimSpace(parts[2]),
			RawBody:   strings.TrimSpace(parts[3]),
		})
	}
	return commits, nil
}

// CurrentBranch returns the checked-out branch name.
func (c Collector) CurrentBranch() (string, error) {
	cmd := exec.Command("git", "-C", c.RepoPath, "rev-parse", "--abbrev-ref", "HEAD")
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git rev-parse: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// IsClean reports whether the working tree has no uncommitted changes.
func (c Collector) IsClean() (bool, error) {
	cmd := exec.Command("git", "-C", c.RepoPath, "status", "--porcelain")
	out, err := cmd.Output()
	if err != nil {
		return false, fmt.Errorf("git status: %w", err)
	}
	return strings.TrimSpace(string(out)) == "", nil
}
