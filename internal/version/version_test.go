package version

import (
	"strings"
	"testing"
)

func TestVersion_DefaultValues(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
	if p := Plain(); !strings.HasSuffix(p, "-dev") || strings.ContainsRune(p, 0x1b) {
		t.Errorf("Plain() = %q", p)
	}
}

func TestVersion_CanBeOverridden(t *testing.T) {
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	defer func() { Version, GitCommit, BuildDate = origVersion, origCommit, origDate }()

	Version = "1.2.3"
	GitCommit = "abc123def456"
	BuildDate = "2024-01-15T10:30:00Z"

	if Plain() != "1.2.3" {
		t.Errorf("Plain() = %q, want %q", Plain(), "1.2.3")
	}
	if GitCommit != "abc123def456" || BuildDate != "2024-01-15T10:30:00Z" {
		t.Errorf("overrides lost: %q %q", GitCommit, BuildDate)
	}
}

func TestStripANSI(t *testing.T) {
	tests := []struct{ in, want string }{
		{"\x1b[33;1m0\x1b[0m.\x1b[32;1m3\x1b[0m", "0.3"},
		{"plain", "plain"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := stripANSI(tt.in); got != tt.want {
			t.Errorf("stripANSI(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
