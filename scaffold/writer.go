package scaffold

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/teranos/scaffold/am"
	"github.com/teranos/scaffold/errors"
	"github.com/teranos/scaffold/logger"
)

// Policy decides what happens to files that already exist
type Policy string

const (
	// PolicyOverwrite replaces existing files (the historical behavior)
	PolicyOverwrite Policy = am.OverwriteAlways
	// PolicySkip leaves existing files alone
	PolicySkip Policy = am.OverwriteSkip
	// PolicyPrompt asks once per component before replacing files with different content
	PolicyPrompt Policy = am.OverwritePrompt
)

// ParsePolicy validates a policy name
func ParsePolicy(s string) (Policy, error) {
	if !am.IsOverwritePolicy(s) {
		err := errors.NewInvalidConfigError("unknown overwrite policy %q", s)
		return "", errors.WithHintf(err, "use one of: %s", strings.Join(am.OverwritePolicies, ", "))
	}
	return Policy(s), nil
}

// ConfirmFunc asks the user a yes/no question
type ConfirmFunc func(prompt string) (bool, error)

// FilePerm is the mode for generated files
const FilePerm = 0o644

// Writer persists rendered files according to a policy
type Writer struct {
	Policy     Policy
	CreateDirs bool
	DryRun     bool

	// Confirm is used by PolicyPrompt. When nil, prompting declines.
	Confirm ConfirmFunc

	logger *zap.SugaredLogger
}

// NewWriter creates a writer
func NewWriter(policy Policy, createDirs, dryRun bool) *Writer {
	return &Writer{
		Policy:     policy,
		CreateDirs: createDirs,
		DryRun:     dryRun,
		logger:     logger.ComponentLogger("writer"),
	}
}

type existing int

const (
	existingMissing existing = iota
	existingSame
	existingDiffers
)

// inspect compares path on disk with content
func inspect(path, content string) (existing, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return existingMissing, nil
		}
		return existingMissing, errors.ClassifyRead(err, path)
	}
	if bytes.Equal(data, []byte(content)) {
		return existingSame, nil
	}
	return existingDiffers, nil
}

// WriteComponent applies the policy to one component's files. Results are
// returned for every file handled before a failure; the error, if any, is
// fatal for the run.
func (w *Writer) WriteComponent(ctx context.Context, files []File) ([]FileResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "generation cancelled")
	}
	if len(files) == 0 {
		return nil, nil
	}

	log := logger.ChildLogger(w.log(), logger.FieldComponent, files[0].Component)

	states := make([]existing, len(files))
	differing := 0
	for i, f := range files {
		state, err := inspect(f.Path, f.Content)
		if err != nil {
			return nil, err
		}
		states[i] = state
		if state == existingDiffers {
			differing++
		}
	}

	replace, err := w.decide(files[0].Component, differing)
	if err != nil {
		return nil, err
	}

	results := make([]FileResult, 0, len(files))
	for i, f := range files {
		res := FileResult{
			Component: f.Component,
			Kind:      f.Kind.String(),
			Path:      f.Path,
			Bytes:     len(f.Content),
		}
		switch states[i] {
		case existingMissing:
			res.Status = StatusCreated
		case existingSame:
			res.Status = StatusUnchanged
		case existingDiffers:
			res.Modified = true
			if replace {
				res.Status = StatusOverwritten
			} else {
				res.Status = StatusSkipped
			}
		}

		if !w.DryRun && (res.Status == StatusCreated || res.Status == StatusOverwritten) {
			if err := w.write(f); err != nil {
				return results, err
			}
		}
		log.Debugw("File handled", logger.FieldFile, f.Path, logger.FieldStatus, res.Status, logger.FieldSize, res.Bytes)
		results = append(results, res)
	}
	return results, nil
}

// decide reports whether files whose content differs should be replaced
func (w *Writer) decide(component string, differing int) (bool, error) {
	switch w.Policy {
	case PolicyOverwrite, "":
		return true, nil
	case PolicySkip:
		return false, nil
	case PolicyPrompt:
		if differing == 0 {
			return true, nil
		}
		if w.Confirm == nil {
			w.log().Warnw("No confirmation available, keeping modified files",
				logger.FieldComponent, component, logger.FieldCount, differing)
			return false, nil
		}
		noun := "files"
		if differing == 1 {
			noun = "file"
		}
		ok, err := w.Confirm(fmt.Sprintf("%s: overwrite %d modified %s?", component, differing, noun))
		if err != nil {
			return false, errors.Wrap(err, "confirmation failed")
		}
		return ok, nil
	default:
		return false, errors.NewInvalidConfigError("unknown overwrite policy %q", w.Policy)
	}
}

func (w *Writer) write(f File) error {
	if w.CreateDirs {
		if err := os.MkdirAll(filepath.Dir(f.Path), am.DefaultDirPermissions); err != nil {
			return errors.ClassifyIO(err, filepath.Dir(f.Path))
		}
	}
	if err := os.WriteFile(f.Path, []byte(f.Content), FilePerm); err != nil {
		return errors.ClassifyIO(err, f.Path)
	}
	return nil
}

func (w *Writer) log() *zap.SugaredLogger {
	if w.logger == nil {
		w.logger = logger.ComponentLogger("writer")
	}
	return w.logger
}
