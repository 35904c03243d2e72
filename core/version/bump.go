package version

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	modsemver "golang.org/x/mod/semver"

	"github.com/relcut-labs/relcut/core/release"
)

// Increment describes one computed version step. Detected is always the
// bump type derived from the entries, even when a forced type overrode it.
type Increment struct {
	Previous Identifier
	Next     Identifier
	Detected release.BumpType
	Applied  release.BumpType

	// ChannelRegression is set when the resolved prefix moved backwards on
	// the maturity order. Non-fatal; the caller decides how loudly to warn.
	ChannelRegression bool
}

// DetectBump derives the bump magnitude from a batch of entries: any
// breaking change forces major, otherwise any feature forces minor,
// otherwise patch.
func DetectBump(entries []release.Entry) release.BumpType {
	bump := release.BumpPatch
	for _, e := range entries {
		switch e.Kind {
		case release.EntryKindBreaking:
			return release.BumpMajor
		case release.EntryKindFeature:
			bump = release.BumpMinor
		}
	}
	return bump
}

// Next computes the version following current for the given entry batch.
// forced, when non-empty, overrides the detected bump type. newPrefix,
// when non-nil, replaces the current channel prefix (PrefixStable clears
// it); nil carries the current prefix forward.
//
// The computation is pure: persistence and warning output belong to the
// caller.
func Next(current Identifier, entries []release.Entry, forced release.BumpType, newPrefix *Prefix) (Increment, error) {
	inc := Increment{
		Previous: current,
		Detected: DetectBump(entries),
	}

	inc.Applied = inc.Detected
	if forced != "" {
		inc.Applied = forced
	}

	prefix := current.Prefix
	if newPrefix != nil {
		prefix = *newPrefix
	}
	if prefix != PrefixStable && maturityIndex(prefix) == len(knownPrefixes) {
		return Increment{}, fmt.Errorf("%w: %q", ErrInvalidPrefix, prefix)
	}
	inc.ChannelRegression = MaturityRegression(current.Prefix, prefix)

	inc.Next = Identifier{
		Prefix: prefix,
		Base:   bumpBase(current.Base, inc.Applied),
	}

	// Recognized bumps must move the base strictly forward.
	if isRecognizedBump(inc.Applied) {
		if modsemver.Compare("v"+inc.Next.Base.String(), "v"+current.Base.String()) <= 0 {
			return Increment{}, fmt.Errorf("computed version %s does not advance past %s", inc.Next.Base, current.Base)
		}
	}

	return inc, nil
}

// bumpBase applies a bump to the base triple. An unrecognized bump type is
// a defensive no-op that leaves the base unchanged.
func bumpBase(base *semver.Version, bump release.BumpType) *semver.Version {
	var next semver.Version
	switch bump {
	case release.BumpMajor:
		next = base.IncMajor()
	case release.BumpMinor:
		next = base.IncMinor()
	case release.BumpPatch:
		next = base.IncPatch()
	default:
		return base
	}
	return &next
}

func isRecognizedBump(b release.BumpType) bool {
	switch b {
	case release.BumpMajor, release.BumpMinor, release.BumpPatch:
		return true
	}
	return false
}
