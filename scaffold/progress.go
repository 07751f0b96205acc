package scaffold

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pterm/pterm"

	"github.com/teranos/scaffold/errors"
	"github.com/teranos/scaffold/logger"
	"github.com/teranos/scaffold/sym"
)

// ProgressEmitter receives generation progress.
//
// Implementations include:
// - CLIEmitter: terminal output using pterm
// - JSONEmitter: one JSON event per line for tooling
type ProgressEmitter interface {
	// EmitStart announces a run over components entries of the given tier
	EmitStart(catalog string, tier string, components int)

	// EmitComponent announces that a component is being generated
	EmitComponent(name string)

	// EmitFile reports the outcome for one file
	EmitFile(result FileResult)

	// EmitWarning reports a non-fatal problem
	EmitWarning(message string)

	// EmitComplete prints the run summary
	EmitComplete(report *Report)

	// EmitError reports the failure that ended the run
	EmitError(stage string, err error)
}

// ProgressEvent represents a structured JSON progress event
type ProgressEvent struct {
	Type      string                 `json:"type"` // "start", "component", "file", "warning", "complete", "error"
	Timestamp time.Time              `json:"timestamp"`
	Data      map[string]interface{} `json:"data"`
}

// CLIEmitter outputs progress to a terminal using pterm
type CLIEmitter struct {
	out       io.Writer
	verbosity int
	tier      string
}

// NewCLIEmitter creates a CLI emitter writing to stdout
func NewCLIEmitter(verbosity int) *CLIEmitter {
	return NewCLIEmitterTo(os.Stdout, verbosity)
}

// NewCLIEmitterTo creates a CLI emitter writing to out
func NewCLIEmitterTo(out io.Writer, verbosity int) *CLIEmitter {
	return &CLIEmitter{out: out, verbosity: verbosity, tier: "organism"}
}

// EmitStart prints the opening line
func (e *CLIEmitter) EmitStart(catalog string, tier string, components int) {
	if tier != "" {
		e.tier = tier
	}
	fmt.Fprintf(e.out, "%s Generating content for all %s components...\n", sym.Start, e.tier)
	if logger.ShouldOutput(e.verbosity, logger.OutputConfigSource) {
		fmt.Fprintf(e.out, "   catalog: %s (%d components)\n", catalog, components)
	}
}

// EmitComponent prints the per-component progress line
func (e *CLIEmitter) EmitComponent(name string) {
	fmt.Fprintf(e.out, "%s Generating %s...\n", sym.Step, name)
}

// EmitFile prints file status at -v and above
func (e *CLIEmitter) EmitFile(result FileResult) {
	if !logger.ShouldOutput(e.verbosity, logger.OutputFileStatus) {
		return
	}
	status := string(result.Status)
	switch result.Status {
	case StatusCreated:
		status = pterm.Green(status)
	case StatusOverwritten:
		status = pterm.Yellow(status)
	case StatusSkipped:
		status = pterm.Gray(status)
	}
	fmt.Fprintf(e.out, "    %s %-11s %s\n", sym.ForStatus(string(result.Status)), status, result.Path)
}

// EmitWarning prints a warning
func (e *CLIEmitter) EmitWarning(message string) {
	pterm.Warning.WithWriter(e.out).Println(message)
}

// EmitComplete prints the summary lines
func (e *CLIEmitter) EmitComplete(report *Report) {
	if report.DryRun {
		fmt.Fprintf(e.out, "%s Dry run: %d files would be written, nothing was changed\n", sym.DryRun, len(report.Written()))
	} else {
		pterm.Fprintln(e.out, pterm.Green(fmt.Sprintf("%s All %s component files generated successfully!", sym.Done, e.tier)))
	}
	fmt.Fprintf(e.out, "%s Total: %d components × %d files = %d files\n",
		sym.Total, report.Components, report.FilesPerComponent, report.TotalFiles())

	if logger.ShouldOutput(e.verbosity, logger.OutputFileStatus) {
		fmt.Fprintf(e.out, "   created %d, overwritten %d, unchanged %d, skipped %d\n",
			report.Count(StatusCreated), report.Count(StatusOverwritten),
			report.Count(StatusUnchanged), report.Count(StatusSkipped))
	}
}

// EmitError prints an error
func (e *CLIEmitter) EmitError(stage string, err error) {
	pterm.Error.WithWriter(e.out).Printf("Error in %s: %v\n", stage, err)
}

// JSONEmitter outputs structured JSON events, one per line
type JSONEmitter struct {
	encoder *json.Encoder
	now     func() time.Time
}

// NewJSONEmitter creates a JSON emitter writing to stdout
func NewJSONEmitter() *JSONEmitter {
	return NewJSONEmitterTo(os.Stdout)
}

// NewJSONEmitterTo creates a JSON emitter writing to out
func NewJSONEmitterTo(out io.Writer) *JSONEmitter {
	return &JSONEmitter{encoder: json.NewEncoder(out), now: time.Now}
}

func (e *JSONEmitter) emit(eventType string, data map[string]interface{}) {
	event := ProgressEvent{Type: eventType, Timestamp: e.now(), Data: data}
	if err := e.encoder.Encode(event); err != nil {
		logger.Debugw("Failed to encode progress event", logger.FieldError, err)
	}
}

// EmitStart emits a start event
func (e *JSONEmitter) EmitStart(catalog string, tier string, components int) {
	e.emit("start", map[string]interface{}{"catalog": catalog, "tier": tier, "components": components})
}

// EmitComponent emits a component event
func (e *JSONEmitter) EmitComponent(name string) {
	e.emit("component", map[string]interface{}{"name": name})
}

// EmitFile emits a file event
func (e *JSONEmitter) EmitFile(result FileResult) {
	e.emit("file", map[string]interface{}{
		"component": result.Component,
		"kind":      result.Kind,
		"path":      result.Path,
		"status":    result.Status,
		"modified":  result.Modified,
		"bytes":     result.Bytes,
	})
}

// EmitWarning emits a warning event
func (e *JSONEmitter) EmitWarning(message string) {
	e.emit("warning", map[string]interface{}{"message": message})
}

// EmitComplete emits the summary
func (e *JSONEmitter) EmitComplete(report *Report) {
	e.emit("complete", report.Summary())
}

// EmitError emits an error event with its hints
func (e *JSONEmitter) EmitError(stage string, err error) {
	data := map[string]interface{}{"stage": stage, "error": err.Error()}
	if hints := errors.FlattenHints(err); hints != "" {
		data["hint"] = hints
	}
	e.emit("error", data)
}

// NopEmitter discards progress
type NopEmitter struct{}

func (NopEmitter) EmitStart(string, string, int) {}
func (NopEmitter) EmitComponent(string)          {}
func (NopEmitter) EmitFile(FileResult)           {}
func (NopEmitter) EmitWarning(string)            {}
func (NopEmitter) EmitComplete(*Report)          {}
func (NopEmitter) EmitError(string, error)       {}
