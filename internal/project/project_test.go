package project

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDecodeConfigDefaults(t *testing.T) {
	cfg, err := DecodeConfig("[compress]\npasses = 3\n")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Compress.Passes != 3 {
		t.Errorf("passes = %d, want 3", cfg.Compress.Passes)
	}
	if !cfg.Compress.Unused || cfg.Output.OutDir != "dist" || !cfg.Cache.Enabled {
		t.Errorf("defaults lost: %+v", cfg)
	}
	opts := cfg.CompressOptions()
	if opts.Passes != 3 || !opts.Unused || opts.PreserveArgPositions {
		t.Errorf("options = %+v", opts)
	}
}

func TestDecodeConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"syntax", "[compress\n", "failed to parse TOML"},
		{"unknown key", "[compress]\ninline = true\n", "unknown keys: compress.inline"},
		{"unknown table", "[mangle]\ntoplevel = true\n", "unknown keys"},
		{"zero passes", "[compress]\npasses = 0\n", "passes must be at least 1"},
		{"empty out_dir", "[output]\nout_dir = \"  \"\n", "out_dir must not be empty"},
		{"bad suffix", "[output]\nsuffix = \".min\"\n", "suffix must end in .js"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeConfig(tt.text)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestWriteAndLoadManifest(t *testing.T) {
	root := t.TempDir()
	path, err := WriteManifest(root)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := WriteManifest(root); err == nil {
		t.Error("second init must fail")
	}

	nested := filepath.Join(root, "src", "lib")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	m, ok, err := LoadManifest(nested)
	if err != nil || !ok {
		t.Fatalf("LoadManifest = %v, %v", ok, err)
	}
	if m.Path != path || m.Root != root {
		t.Errorf("manifest at %q (root %q), want %q", m.Path, m.Root, path)
	}
	if m.Config != DefaultConfig() {
		t.Errorf("round trip changed config: %+v", m.Config)
	}
}

func TestLoadManifestMissing(t *testing.T) {
	m, ok, err := LoadManifest(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if ok || m.Config != DefaultConfig() {
		t.Errorf("expected defaults without manifest, got ok=%v %+v", ok, m)
	}
}

func TestCombine(t *testing.T) {
	var d Digest
	d[0] = 1
	a := Combine(d, "ab", "c")
	b := Combine(d, "a", "bc")
	if a == b {
		t.Error("salt boundaries must matter")
	}
	if Combine(d, "ab", "c") != a {
		t.Error("Combine must be deterministic")
	}
	if a.IsZero() || len(a.String()) != 64 {
		t.Errorf("digest %s", a)
	}
}
