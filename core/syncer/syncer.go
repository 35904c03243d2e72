package syncer

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	modsemver "golang.org/x/mod/semver"

	"github.com/relcut-labs/relcut/core/version"
)

// Syncer rewrites the declared artifact files with the projections of one
// resolved version identifier.
type Syncer struct {
	RepoPath string
	Manifest Manifest
}

// Result reports one applied target.
type Result struct {
	File  string
	Repr  Representation
	Value string
}

// Apply projects id onto every manifest target and rewrites the capture
// region of each pattern in place. It fails on the first target whose file
// cannot be read, whose pattern does not match, or whose strict projection
// is not a valid semantic version.
func (s Syncer) Apply(id version.Identifier) ([]Result, error) {
	results := make([]Result, 0, len(s.Manifest.Targets))

	for _, t := range s.Manifest.Targets {
		value, err := project(id, t.Repr)
		if err != nil {
			return results, err
		}

		path := filepath.Join(s.RepoPath, t.File)
		if err := replaceCapture(path, t.Pattern, value); err != nil {
			return results, fmt.Errorf("syncing %s: %w", t.File, err)
		}
		results = append(results, Result{File: t.File, Repr: t.Repr, Value: value})
	}
	return results, nil
}

// project renders the representation a target asked for. The strict form
// is checked against the semver grammar before it leaves this package.
func project(id version.Identifier, repr Representation) (string, error) {
	switch repr {
	case ReprStrict:
		strict := id.Strict()
		if !modsemver.IsValid("v" + strict) {
			return "", fmt.Errorf("strict projection %q is not valid semver", strict)
		}
		return strict, nil
	case ReprChannel:
		return string(id.Channel()), nil
	default:
		return id.Full(), nil
	}
}

// replaceCapture substitutes value into the first match's capture group,
// leaving the rest of the file untouched.
func replaceCapture(path, pattern, value string) error {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return fmt.Errorf("compiling pattern: %w", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	loc := re.FindSubmatchIndex(data)
	if loc == nil || loc[2] < 0 {
		return fmt.Errorf("pattern %q matched nothing", pattern)
	}

	updated := make([]byte, 0, len(data)+len(value))
	updated = append(updated, data[:loc[2]]...)
	updated = append(updated, value...)
	updated = append(updated, data[loc[3]:]...)

	return os.WriteFile(path, updated, info.Mode().Perm())
}
