// Package version models release version identifiers with an optional
// prerelease channel prefix, computes version increments from classified
// changelog entries, and projects identifiers onto distribution channels.
package version

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Prefix is a prerelease channel tag. The empty prefix means stable.
type Prefix string

const (
	PrefixStable   Prefix = ""
	PrefixPreAlpha Prefix = "pre-alpha"
	PrefixAlpha    Prefix = "alpha"
	PrefixBeta     Prefix = "beta"
	PrefixRC       Prefix = "rc"
)

// knownPrefixes is ordered by maturity, least stable first. The stable
// (empty) prefix sits above all of them.
var knownPrefixes = []Prefix{PrefixPreAlpha, PrefixAlpha, PrefixBeta, PrefixRC}

var (
	// ErrInvalidVersion reports a version string whose base is not three
	// dot-separated non-negative integers.
	ErrInvalidVersion = errors.New("invalid version format")

	// ErrInvalidPrefix reports an explicitly requested channel prefix
	// outside the recognized enumeration.
	ErrInvalidPrefix = errors.New("invalid channel prefix")
)

// Identifier is a release version: an optional channel prefix plus a
// major.minor.patch base triple.
type Identifier struct {
	Prefix Prefix
	Base   *semver.Version
}

// Parse reads a version string of the form "<prefix>-<base>" or "<base>".
// A leading token is only treated as a prefix when it is in the known
// enumeration; anything else must parse as a bare base triple.
func Parse(s string) (Identifier, error) {
	trimmed := strings.TrimSpace(s)
	for _, p := range knownPrefixes {
		rest, ok := strings.CutPrefix(trimmed, string(p)+"-")
		if !ok {
			continue
		}
		base, err := parseBase(rest)
		if err != nil {
			return Identifier{}, err
		}
		return Identifier{Prefix: p, Base: base}, nil
	}

	base, err := parseBase(trimmed)
	if err != nil {
		return Identifier{}, err
	}
	return Identifier{Base: base}, nil
}

// parseBase parses a strict major.minor.patch triple. Prerelease or build
// metadata inside the base is rejected; the channel prefix is the only
// prerelease mechanism this model recognizes.
func parseBase(s string) (*semver.Version, error) {
	v, err := semver.StrictNewVersion(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
	}
	if v.Prerelease() != "" || v.Metadata() != "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
	}
	return v, nil
}

// MustParse is Parse for trusted literals; it panics on error.
func MustParse(s string) Identifier {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

// ParsePrefix resolves a user-supplied channel name. "stable" and the
// empty string both mean the stable (absent) prefix.
func ParsePrefix(s string) (Prefix, error) {
	switch name := strings.TrimSpace(strings.ToLower(s)); name {
	case "", "stable":
		return PrefixStable, nil
	default:
		for _, p := range knownPrefixes {
			if name == string(p) {
				return p, nil
			}
		}
		return PrefixStable, fmt.Errorf("%w: %q", ErrInvalidPrefix, s)
	}
}

// String renders the standard serialized form: the base alone when stable,
// otherwise "<prefix>-<base>".
func (id Identifier) String() string {
	if id.Prefix == PrefixStable {
		return id.Base.String()
	}
	return fmt.Sprintf("%s-%s", id.Prefix, id.Base)
}

// Stable reports whether the identifier carries no prerelease prefix.
func (id Identifier) Stable() bool {
	return id.Prefix == PrefixStable
}

// CompareBase orders two identifiers by their base triples alone, ignoring
// prefixes. Negative when id is older than other.
func (id Identifier) CompareBase(other Identifier) int {
	return id.Base.Compare(other.Base)
}

// maturityIndex positions a prefix on the fixed maturity order
// pre-alpha < alpha < beta < rc < stable.
func maturityIndex(p Prefix) int {
	for i, known := range knownPrefixes {
		if p == known {
			return i
		}
	}
	return len(knownPrefixes) // stable outranks every prerelease channel
}

// MaturityRegression reports whether the transition walks the maturity
// order backwards, e.g. beta to alpha or stable to rc.
func MaturityRegression(from, to Prefix) bool {
	return maturityIndex(to) < maturityIndex(from)
}
