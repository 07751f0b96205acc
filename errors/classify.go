package errors

import (
	"io/fs"
	"os"
	"path/filepath"
)

// IOClass names one of the filesystem failure classes a generation run can stop on.
type IOClass string

const (
	ClassTargetDirectoryMissing IOClass = "TargetDirectoryMissing"
	ClassWritePermissionDenied  IOClass = "WritePermissionDenied"
	ClassOtherIO                IOClass = "OtherIO"
)

// ClassifyIO marks a filesystem error with its failure class and a user hint.
// path is the file the operation targeted. Returns nil for a nil error.
func ClassifyIO(err error, path string) error {
	if err == nil {
		return nil
	}

	switch {
	case os.IsNotExist(err) || Is(err, fs.ErrNotExist):
		dir := filepath.Dir(path)
		marked := Mark(Wrapf(err, "cannot write %s", path), ErrTargetDirectoryMissing)
		return WithHintf(marked, "directory %s does not exist; create it or pass --mkdir", dir)
	case os.IsPermission(err) || Is(err, fs.ErrPermission):
		marked := Mark(Wrapf(err, "cannot write %s", path), ErrWritePermissionDenied)
		return WithHint(marked, "check ownership and permissions of the output directory")
	default:
		return Mark(Wrapf(err, "cannot write %s", path), ErrOtherIO)
	}
}

// ClassifyRead marks a failure to read an existing file. A file that cannot
// be inspected stops the run as OtherIO.
func ClassifyRead(err error, path string) error {
	if err == nil {
		return nil
	}
	marked := Mark(Wrapf(err, "cannot read %s", path), ErrOtherIO)
	if os.IsPermission(err) || Is(err, fs.ErrPermission) {
		return WithHint(marked, "check read permissions of the existing file")
	}
	return marked
}

// ClassOf reports which IOClass an error belongs to, or "" when it is not an I/O failure.
func ClassOf(err error) IOClass {
	switch {
	case err == nil:
		return ""
	case Is(err, ErrTargetDirectoryMissing):
		return ClassTargetDirectoryMissing
	case Is(err, ErrWritePermissionDenied):
		return ClassWritePermissionDenied
	case Is(err, ErrOtherIO):
		return ClassOtherIO
	default:
		var pathErr *os.PathError
		if As(err, &pathErr) {
			return ClassOtherIO
		}
		return ""
	}
}
