// File: errors.go
// Title: Initialization Errors
// Description: Typed errors returned by logger initialization. Filtered
//              messages and writes against a closed handle are not errors;
//              Log reports those through its boolean return.
// Author: wnxy
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation

package log

// InitFailure classifies why logger initialization failed
type InitFailure int

const (
	// MissingFileName means file output was requested without a file name
	MissingFileName InitFailure = iota

	// FileOpenFailed means the log directory or file could not be
	// created or opened
	FileOpenFailed
)

// String returns the string representation of the failure reason
func (f InitFailure) String() string {
	switch f {
	case MissingFileName:
		return "missing file name"
	case FileOpenFailed:
		return "file open failed"
	default:
		return "unknown failure"
	}
}

// InitError reports a failed logger initialization
type InitError struct {
	Reason   InitFailure
	FileName string
	Err      error
}

// Error implements the error interface
func (e *InitError) Error() string {
	msg := "log init: " + e.Reason.String()
	if e.FileName != "" {
		msg += ": " + e.FileName
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying OS error, if any
func (e *InitError) Unwrap() error {
	return e.Err
}
