// Package errors provides error handling for scaffold.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints and details
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Add hints for users
//	return errors.WithHint(err, "pass --mkdir to create missing directories")
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
	Mark         = crdb.Mark
)

// User-facing messages and details
var (
	WithHint           = crdb.WithHint
	WithHintf          = crdb.WithHintf
	WithDetail         = crdb.WithDetail
	WithDetailf        = crdb.WithDetailf
	WithSecondaryError = crdb.WithSecondaryError
)

// Error inspection
var (
	Is             = crdb.Is
	IsAny          = crdb.IsAny
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Sentinel errors. Match with errors.Is(); wrap with errors.Wrap() or
// errors.Mark() to add context while preserving the class.
var (
	// ErrTargetDirectoryMissing indicates a component directory does not exist
	ErrTargetDirectoryMissing = New("target directory missing")

	// ErrWritePermissionDenied indicates the process may not write a generated file
	ErrWritePermissionDenied = New("write permission denied")

	// ErrOtherIO covers every other filesystem failure
	ErrOtherIO = New("i/o failure")

	// ErrInvalidCatalog indicates a catalog file that cannot be decoded or fails validation
	ErrInvalidCatalog = New("invalid catalog")

	// ErrDuplicateComponent indicates two catalog entries share a name
	ErrDuplicateComponent = New("duplicate component")

	// ErrIncompatibleCatalog indicates the catalog's requires constraint excludes this build
	ErrIncompatibleCatalog = New("incompatible catalog")

	// ErrOutOfDate indicates generated files on disk differ from what would be rendered
	ErrOutOfDate = New("generated files out of date")

	// ErrInvalidConfig indicates a configuration value failed validation
	ErrInvalidConfig = New("invalid configuration")
)

// IsTargetDirectoryMissing checks if an error is or wraps ErrTargetDirectoryMissing
func IsTargetDirectoryMissing(err error) bool {
	return err != nil && Is(err, ErrTargetDirectoryMissing)
}

// IsWritePermissionDenied checks if an error is or wraps ErrWritePermissionDenied
func IsWritePermissionDenied(err error) bool {
	return err != nil && Is(err, ErrWritePermissionDenied)
}

// IsInvalidCatalog checks if an error is or wraps ErrInvalidCatalog
func IsInvalidCatalog(err error) bool {
	return err != nil && Is(err, ErrInvalidCatalog)
}

// NewInvalidCatalogError creates an invalid-catalog error with a formatted message
func NewInvalidCatalogError(format string, args ...interface{}) error {
	return Mark(Newf(format, args...), ErrInvalidCatalog)
}

// NewInvalidConfigError creates an invalid-config error with a formatted message
func NewInvalidConfigError(format string, args ...interface{}) error {
	return Mark(Newf(format, args...), ErrInvalidConfig)
}
