// Package histstore persists the changelog history as a JSON document on
// disk. The whole document is read and written in one piece; writes go
// through a temp file and rename so a crash never leaves a torn document.
package histstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/relcut-labs/relcut/core/release"
)

// DefaultFileName is the history document name at the repository root.
const DefaultFileName = "changelog.json"

// Store reads and writes one history document.
type Store struct {
	Path string
}

// New returns a store for the history document inside repoPath.
func New(repoPath string) Store {
	return Store{Path: filepath.Join(repoPath, DefaultFileName)}
}

// Load reads the persisted history. A missing file is not an error: the
// returned history is empty at the initial version and found is false.
func (s Store) Load() (release.History, bool, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return release.NewHistory(), false, nil
		}
		return release.History{}, false, fmt.Errorf("reading history at %s: %w", s.Path, err)
	}

	var hist release.History
	if err := json.Unmarshal(data, &hist); err != nil {
		return release.History{}, false, fmt.Errorf("parsing history at %s: %w", s.Path, err)
	}
	if hist.CurrentVersion == "" {
		hist.CurrentVersion = release.InitialVersion
	}
	return hist, true, nil
}

// Save atomically replaces the history document.
func (s Store) Save(hist release.History) error {
	data, err := json.MarshalIndent(hist, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding history: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.Path)
	tmp, err := os.CreateTemp(dir, ".changelog-*.json")
	if err != nil {
		return fmt.Errorf("creating temp history file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing history: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing history file: %w", err)
	}

	if err := os.Rename(tmpName, s.Path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing history at %s: %w", s.Path, err)
	}
	return nil
}
