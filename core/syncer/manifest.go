// Package syncer projects a computed version onto version-bearing artifact
// files declared in a YAML manifest.
package syncer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// ManifestFileName is the sync manifest name at the repository root.
const ManifestFileName = ".relcut.yaml"

// Representation selects which projection of the version a target records.
type Representation string

const (
	// ReprFull is the standard serialized form, prefix included.
	ReprFull Representation = "full"

	// ReprStrict is the base triple alone for consumers that only accept
	// pure semantic-versioning strings. The channel prefix is dropped.
	ReprStrict Representation = "strict"

	// ReprChannel is the distribution channel tag rather than a version.
	ReprChannel Representation = "channel"
)

// Target is one artifact file to keep in sync. Pattern is a regular
// expression with exactly one capture group marking the region to replace.
type Target struct {
	File    string         `yaml:"file"`
	Pattern string         `yaml:"pattern"`
	Repr    Representation `yaml:"repr"`
}

// Manifest declares every artifact the syncer maintains.
type Manifest struct {
	Targets []Target `yaml:"targets"`
}

// Validate checks one target declaration.
func (t Target) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.File, validation.Required),
		validation.Field(&t.Pattern, validation.Required, validation.By(validPattern)),
		validation.Field(&t.Repr, validation.Required, validation.In(ReprFull, ReprStrict, ReprChannel)),
	)
}

func validPattern(value interface{}) error {
	pattern, _ := value.(string)
	re, err := regexp.Compile(pattern)
	if err != nil {
		return fmt.Errorf("not a valid regular expression: %v", err)
	}
	if re.NumSubexp() != 1 {
		return errors.New("must contain exactly one capture group")
	}
	return nil
}

// LoadManifest reads the manifest inside repoPath. A missing manifest is
// not an error; it yields an empty target list.
func LoadManifest(repoPath string) (Manifest, error) {
	path := filepath.Join(repoPath, ManifestFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Manifest{}, nil
		}
		return Manifest{}, fmt.Errorf("reading sync manifest %s: %w", path, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("parsing sync manifest %s: %w", path, err)
	}

	for i, t := range m.Targets {
		if err := t.Validate(); err != nil {
			return Manifest{}, fmt.Errorf("sync manifest target %d (%s): %w", i, t.File, err)
		}
	}
	return m, nil
}
