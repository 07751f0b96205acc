package logger

import (
	"go.uber.org/zap"
)

// Standard field names for consistent structured logging.
// Use these constants instead of raw strings.
const (
	FieldComponent = "component"
	FieldArtifact  = "artifact"
	FieldFile      = "file"
	FieldPath      = "path"
	FieldCatalog   = "catalog"
	FieldPolicy    = "policy"
	FieldStatus    = "status"
	FieldCount     = "count"
	FieldSize      = "size"
	FieldError     = "error"
	FieldErrorType = "error_type"
	FieldCommand   = "command"
)

// ComponentLogger returns a named logger for a specific subsystem.
//
// Example:
//
//	type Writer struct {
//	    logger *zap.SugaredLogger
//	}
//
//	func NewWriter() *Writer {
//	    return &Writer{logger: logger.ComponentLogger("writer")}
//	}
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}

// ChildLogger creates a child logger with additional context.
//
// Example:
//
//	compLogger := logger.ChildLogger(w.logger, logger.FieldComponent, spec.Name)
func ChildLogger(parent *zap.SugaredLogger, keysAndValues ...interface{}) *zap.SugaredLogger {
	return parent.With(keysAndValues...)
}
