package syncer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/relcut-labs/relcut/core/version"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestApplyProjections(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "package.json", `{
  "name": "demo",
  "version": "1.2.0"
}`)
	writeFile(t, dir, "app.cfg", "channel = stable\nfull = 1.2.0\n")

	s := Syncer{
		RepoPath: dir,
		Manifest: Manifest{Targets: []Target{
			{File: "package.json", Pattern: `"version": "([^"]*)"`, Repr: ReprStrict},
			{File: "app.cfg", Pattern: `channel = (\S+)`, Repr: ReprChannel},
			{File: "app.cfg", Pattern: `full = (\S+)`, Repr: ReprFull},
		}},
	}

	results, err := s.Apply(version.MustParse("beta-1.3.0"))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}

	pkg, _ := os.ReadFile(filepath.Join(dir, "package.json"))
	if !strings.Contains(string(pkg), `"version": "1.3.0"`) {
		t.Errorf("package.json = %s, want strict version without prefix", pkg)
	}

	cfg, _ := os.ReadFile(filepath.Join(dir, "app.cfg"))
	if !strings.Contains(string(cfg), "channel = beta") {
		t.Errorf("app.cfg = %s, want beta channel", cfg)
	}
	if !strings.Contains(string(cfg), "full = beta-1.3.0") {
		t.Errorf("app.cfg = %s, want full prefixed version", cfg)
	}
}

func TestApplyPatternMustMatch(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "file.txt", "nothing to see here\n")

	s := Syncer{
		RepoPath: dir,
		Manifest: Manifest{Targets: []Target{
			{File: "file.txt", Pattern: `version=(\S+)`, Repr: ReprFull},
		}},
	}

	if _, err := s.Apply(version.MustParse("1.0.0")); err == nil {
		t.Fatal("Apply succeeded on a non-matching pattern, want error")
	}
}

func TestTargetValidation(t *testing.T) {
	tests := []struct {
		name    string
		target  Target
		wantErr bool
	}{
		{
			name:   "valid target",
			target: Target{File: "a.json", Pattern: `"v": "(.*)"`, Repr: ReprStrict},
		},
		{
			name:    "missing file",
			target:  Target{Pattern: `(.*)`, Repr: ReprFull},
			wantErr: true,
		},
		{
			name:    "unknown repr",
			target:  Target{File: "a", Pattern: `(.*)`, Repr: Representation("loose")},
			wantErr: true,
		},
		{
			name:    "pattern without capture group",
			target:  Target{File: "a", Pattern: `version`, Repr: ReprFull},
			wantErr: true,
		},
		{
			name:    "pattern with two capture groups",
			target:  Target{File: "a", Pattern: `(v)(.*)`, Repr: ReprFull},
			wantErr: true,
		},
		{
			name:    "broken regular expression",
			target:  Target{File: "a", Pattern: `([`, Repr: ReprFull},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.target.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ManifestFileName, `targets:
  - file: package.json
    pattern: '"version": "([^"]*)"'
    repr: strict
  - file: ota.yaml
    pattern: 'channel: (\S+)'
    repr: channel
`)

	m, err := LoadManifest(dir)
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if len(m.Targets) != 2 {
		t.Fatalf("got %d targets, want 2", len(m.Targets))
	}
	if m.Targets[0].Repr != ReprStrict || m.Targets[1].Repr != ReprChannel {
		t.Errorf("reprs = %q, %q", m.Targets[0].Repr, m.Targets[1].Repr)
	}
}

func TestLoadManifestMissingIsEmpty(t *testing.T) {
	m, err := LoadManifest(t.TempDir())
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if len(m.Targets) != 0 {
		t.Errorf("got %d targets from a missing manifest, want 0", len(m.Targets))
	}
}

func TestLoadManifestRejectsInvalidTarget(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ManifestFileName, "targets:\n  - file: a.json\n    pattern: 'no group'\n    repr: strict\n")

	if _, err := LoadManifest(dir); err == nil {
		t.Fatal("LoadManifest accepted a pattern without a capture group")
	}
}
