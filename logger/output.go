package logger

// OutputCategory defines a category of terminal output that can be enabled/disabled.
//
// Unlike log levels (which filter by severity), output categories control
// WHAT types of information the progress emitter prints.
type OutputCategory int

const (
	// Level 0 (default) - Always shown
	OutputProgress OutputCategory = iota // One line per component
	OutputSummary                        // Final count
	OutputWarnings                       // Overwritten hand edits, skipped files

	// Level 1 (-v)
	OutputFileStatus   // created / overwritten / unchanged / skipped per file
	OutputConfigSource // Which config file and catalog were used

	// Level 2 (-vv)
	OutputRenderDetail // Renderer names, byte counts

	// Level 3 (-vvv)
	OutputHookCommand // Formatter command line
)

// categoryLevels maps each output category to its minimum verbosity level
var categoryLevels = map[OutputCategory]int{
	OutputProgress: VerbosityUser,
	OutputSummary:  VerbosityUser,
	OutputWarnings: VerbosityUser,

	OutputFileStatus:   VerbosityInfo,
	OutputConfigSource: VerbosityInfo,

	OutputRenderDetail: VerbosityDebug,

	OutputHookCommand: VerbosityTrace,
}

// ShouldOutput returns true if the given category should be shown at the given verbosity
func ShouldOutput(verbosity int, category OutputCategory) bool {
	minLevel, ok := categoryLevels[category]
	if !ok {
		// Unknown category, require the highest verbosity
		return verbosity >= VerbosityTrace
	}
	return verbosity >= minLevel
}
