// Package sym defines the canonical glyphs scaffold prints.
// They are stable across commands so that output stays greppable and the
// progress lines keep matching what earlier generators printed.
package sym

// Progress markers.
const (
	Start  = "🚀" // generation run started
	Step   = "✓"  // component rendered, check passed, file written
	Done   = "✅" // run finished with every file in place
	Total  = "📊" // summary count line
	DryRun = "🔎" // nothing was written
	Fail   = "✗"  // missing file, invalid catalog
	Stale  = "~"  // on-disk file differs from its rendering
	Warn   = "⚠"  // overwrite or config warning
	Watch  = "👀" // file under watch
	Reload = "↻"  // watched file changed
)

// Command glyphs.
const (
	AM      = "≡" // am - configuration and settings
	Catalog = "▤" // catalog - component tables
)

// statusGlyphs maps write and check statuses to their marker.
var statusGlyphs = map[string]string{
	"created":     Step,
	"overwritten": Reload,
	"unchanged":   Step,
	"skipped":     Warn,
	"ok":          Step,
	"missing":     Fail,
	"stale":       Stale,
}

// ForStatus returns the glyph for a file status name, or "" when unknown.
func ForStatus(status string) string {
	return statusGlyphs[status]
}

// CommandGlyphs maps command names to their glyph.
var CommandGlyphs = map[string]string{
	"am":      AM,
	"catalog": Catalog,
}
