package version

import (
	"strings"
	"testing"
)

func TestVersion_DefaultValues(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
	if strings.Contains(Version, "\x1b") {
		t.Errorf("Version must be plain text, got %q", Version)
	}
}

func TestColored(t *testing.T) {
	tests := []struct {
		in      string
		enabled bool
		plain   bool
	}{
		{in: "0.1.0-dev", enabled: true},
		{in: "1.2.3", enabled: true},
		{in: "1.2.3-rc.1+build.123", enabled: true},
		{in: "1.2.3", enabled: false, plain: true},
		{in: "dev", enabled: true, plain: true},
		{in: "1.2", enabled: true, plain: true},
	}
	for _, tt := range tests {
		got := Colored(tt.in, tt.enabled)
		if tt.plain {
			if got != tt.in {
				t.Errorf("Colored(%q, %v) = %q, want unchanged", tt.in, tt.enabled, got)
			}
			continue
		}
		if !strings.Contains(got, "\x1b[") {
			t.Errorf("Colored(%q) = %q, want ANSI escapes", tt.in, got)
		}
		if stripANSI(got) != tt.in {
			t.Errorf("Colored(%q) without escapes = %q", tt.in, stripANSI(got))
		}
	}
}

func stripANSI(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b {
			for i < len(s) && s[i] != 'm' {
				i++
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func TestVersion_CanBeOverridden(t *testing.T) {
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	t.Cleanup(func() { Version, GitCommit, BuildDate = origVersion, origCommit, origDate })

	Version = "1.2.3"
	GitCommit = "abc123def456"
	BuildDate = "2024-01-15T10:30:00Z"
	if Version != "1.2.3" || GitCommit != "abc123def456" || BuildDate != "2024-01-15T10:30:00Z" {
		t.Fatalf("overrides lost: %q %q %q", Version, GitCommit, BuildDate)
	}
}
