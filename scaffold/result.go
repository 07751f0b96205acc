package scaffold

// Status is the outcome for one file
type Status string

const (
	StatusCreated     Status = "created"
	StatusOverwritten Status = "overwritten"
	StatusUnchanged   Status = "unchanged"
	StatusSkipped     Status = "skipped"
)

// FileResult records what happened (or would happen, in a dry run) to one file
type FileResult struct {
	Component string `json:"component"`
	Kind      string `json:"kind"`
	Path      string `json:"path"`
	Status    Status `json:"status"`
	// Modified is set when the file existed with different content
	Modified bool `json:"modified,omitempty"`
	Bytes    int  `json:"bytes"`
}

// Report summarizes a generation run
type Report struct {
	Catalog           string       `json:"catalog"`
	BaseDir           string       `json:"base_dir"`
	DryRun            bool         `json:"dry_run"`
	Components        int          `json:"components"`
	FilesPerComponent int          `json:"files_per_component"`
	Files             []FileResult `json:"files"`
}

// TotalFiles is components × files per component, the count the summary line prints
func (r *Report) TotalFiles() int {
	return r.Components * r.FilesPerComponent
}

// Count returns how many files ended with status s
func (r *Report) Count(s Status) int {
	n := 0
	for _, f := range r.Files {
		if f.Status == s {
			n++
		}
	}
	return n
}

// Written returns paths whose content was written, in order
func (r *Report) Written() []string {
	var paths []string
	for _, f := range r.Files {
		if f.Status == StatusCreated || f.Status == StatusOverwritten {
			paths = append(paths, f.Path)
		}
	}
	return paths
}

// Modified returns results for files that existed with different content and
// were replaced or kept
func (r *Report) Modified() []FileResult {
	var out []FileResult
	for _, f := range r.Files {
		if f.Modified {
			out = append(out, f)
		}
	}
	return out
}

// Summary returns status counts keyed by status name
func (r *Report) Summary() map[string]interface{} {
	return map[string]interface{}{
		"components":  r.Components,
		"files":       r.TotalFiles(),
		"created":     r.Count(StatusCreated),
		"overwritten": r.Count(StatusOverwritten),
		"unchanged":   r.Count(StatusUnchanged),
		"skipped":     r.Count(StatusSkipped),
		"dry_run":     r.DryRun,
	}
}
