package scaffold

import (
	"os"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/teranos/scaffold/catalog"
	"github.com/teranos/scaffold/errors"
)

// CheckStatus is the state of one file compared with its rendering
type CheckStatus string

const (
	CheckOK      CheckStatus = "ok"
	CheckMissing CheckStatus = "missing"
	CheckStale   CheckStatus = "stale"
)

// CheckEntry is the comparison result for one file
type CheckEntry struct {
	Component string      `json:"component"`
	Kind      string      `json:"kind"`
	Path      string      `json:"path"`
	Status    CheckStatus `json:"status"`
	Diff      string      `json:"diff,omitempty"`
}

// CheckResult holds the result of comparing a catalog's rendering with disk
type CheckResult struct {
	UpToDate bool         `json:"up_to_date"`
	Entries  []CheckEntry `json:"entries"`
}

// Problems returns the entries that are missing or stale
func (r *CheckResult) Problems() []CheckEntry {
	var out []CheckEntry
	for _, e := range r.Entries {
		if e.Status != CheckOK {
			out = append(out, e)
		}
	}
	return out
}

// Err returns an ErrOutOfDate error when anything differs
func (r *CheckResult) Err() error {
	problems := r.Problems()
	if len(problems) == 0 {
		return nil
	}
	err := errors.Mark(errors.Newf("%d of %d generated files are missing or stale", len(problems), len(r.Entries)), errors.ErrOutOfDate)
	return errors.WithHint(err, "run 'scaffold generate' to regenerate them")
}

// Check renders cat in memory and compares each file with disk. Nothing is
// written. withDiff adds unified diffs for stale files.
func (g *Generator) Check(cat *catalog.Catalog, baseDir string, withDiff bool) (*CheckResult, error) {
	files, err := g.RenderCatalog(cat, baseDir)
	if err != nil {
		return nil, err
	}

	result := &CheckResult{UpToDate: true, Entries: make([]CheckEntry, 0, len(files))}
	for _, f := range files {
		entry := CheckEntry{Component: f.Component, Kind: f.Kind.String(), Path: f.Path, Status: CheckOK}

		data, err := os.ReadFile(f.Path)
		switch {
		case os.IsNotExist(err):
			entry.Status = CheckMissing
		case err != nil:
			return nil, errors.ClassifyRead(err, f.Path)
		case string(data) != f.Content:
			entry.Status = CheckStale
			if withDiff {
				entry.Diff = UnifiedDiff(f.Path, string(data), f.Content)
			}
		}

		if entry.Status != CheckOK {
			result.UpToDate = false
		}
		result.Entries = append(result.Entries, entry)
	}
	return result, nil
}

// UnifiedDiff returns a unified diff from the on-disk text to the rendered text
func UnifiedDiff(path, onDisk, rendered string) string {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(onDisk),
		B:        difflib.SplitLines(rendered),
		FromFile: path + " (on disk)",
		ToFile:   path + " (rendered)",
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "diff failed: " + err.Error()
	}
	if !strings.HasSuffix(text, "\n") && text != "" {
		text += "\n"
	}
	return text
}
