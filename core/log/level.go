// File: level.go
// Title: Log Level Definitions
// Description: Defines the severity levels of the logging facility and the
//              threshold comparison that decides whether a message is
//              emitted. The ordering is ascending severity with None as the
//              floor value.
// Author: wnxy
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation with threshold filtering

package log

import (
	"strings"
)

// Level represents the severity of a log message. Levels are ordered
// ascending: None < Info < Warning < Error.
type Level int

const (
	// LevelNone is the floor of the ordering. It is not a message level;
	// as a threshold it lets every leveled message through.
	LevelNone Level = iota

	// LevelInfo represents general informational messages
	LevelInfo

	// LevelWarning indicates potentially harmful situations
	LevelWarning

	// LevelError represents error conditions that need attention
	LevelError
)

// String returns the string representation of the log level
func (l Level) String() string {
	switch l {
	case LevelNone:
		return "none"
	case LevelInfo:
		return "info"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// Tag returns the bracketed tag the level carries in an emitted line.
// Unrecognized levels, including None, carry an empty tag.
func (l Level) Tag() string {
	switch l {
	case LevelInfo:
		return "[INFO]"
	case LevelWarning:
		return "[WARNING]"
	case LevelError:
		return "[ERROR]"
	default:
		return ""
	}
}

// IsValid returns true if the level is one of the defined constants
func (l Level) IsValid() bool {
	return l >= LevelNone && l <= LevelError
}

// ShouldEmit returns true if a message at this level passes the given
// threshold. The threshold excludes its own level: a message is emitted
// only when its level is strictly greater. A threshold of LevelError
// therefore silences everything, errors included.
func (l Level) ShouldEmit(threshold Level) bool {
	return l > threshold
}

// MarshalText implements encoding.TextMarshaler
func (l Level) MarshalText() ([]byte, error) {
	if !l.IsValid() {
		return nil, &ParseError{Input: l.String(), Type: "level"}
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ParseLevel parses a string into a log level
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "none", "off":
		return LevelNone, nil
	case "info", "information":
		return LevelInfo, nil
	case "warning", "warn":
		return LevelWarning, nil
	case "error", "err":
		return LevelError, nil
	default:
		return LevelNone, &ParseError{
			Input: level,
			Type:  "level",
		}
	}
}

// ParseError represents an error parsing a log configuration value
type ParseError struct {
	Input string
	Type  string
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return "invalid " + e.Type + ": " + e.Input
}

// AllLevels returns all defined log levels in ascending order
func AllLevels() []Level {
	return []Level{
		LevelNone,
		LevelInfo,
		LevelWarning,
		LevelError,
	}
}

// DefaultThreshold returns the threshold a fresh logger starts with.
// LevelNone suppresses nothing, so an unconfigured logger emits every
// leveled message.
func DefaultThreshold() Level {
	return LevelNone
}
