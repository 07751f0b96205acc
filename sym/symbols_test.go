package sym

import (
	"testing"
	"unicode/utf8"
)

func TestForStatus(t *testing.T) {
	tests := []struct {
		status string
		want   string
	}{
		{"created", Step},
		{"overwritten", Reload},
		{"skipped", Warn},
		{"missing", Fail},
		{"stale", Stale},
		{"exploded", ""},
	}
	for _, tt := range tests {
		if got := ForStatus(tt.status); got != tt.want {
			t.Errorf("ForStatus(%q) = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestGlyphsAreSingleRunes(t *testing.T) {
	for _, glyph := range []string{Start, Step, Done, Total, DryRun, Fail, Stale, Warn, Watch, Reload, AM, Catalog} {
		if n := utf8.RuneCountInString(glyph); n != 1 {
			t.Errorf("glyph %q has %d runes, want 1", glyph, n)
		}
	}
}

func TestCommandGlyphsAreDistinct(t *testing.T) {
	seen := make(map[string]string)
	for cmd, glyph := range CommandGlyphs {
		if other, ok := seen[glyph]; ok {
			t.Errorf("commands %q and %q share glyph %q", cmd, other, glyph)
		}
		seen[glyph] = cmd
	}
}
