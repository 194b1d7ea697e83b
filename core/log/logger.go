// File: logger.go
// Title: Core Logger Implementation
// Description: Implements the synchronous leveled Logger with console and
//              file destinations. Lines are formatted outside the emission
//              lock and written under it; file-backed writes are forced to
//              storage before Log returns. A package-level default instance
//              mirrors the full API.
// Author: wnxy
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-20
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation
// - 2026-08-20 v0.1.0: Emission reworked around the sink abstraction

package log

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// MaxMessageLength is the cap applied to a message body when truncation
// is enabled. The header is never truncated.
const MaxMessageLength = 256

// Logger is a synchronous leveled logger writing to a console stream or a
// single append-only file. Every emission happens under one mutex; a
// file-backed write is synced to storage before Log returns.
//
// Configuration is applied by Init and is not safe against Init or
// Shutdown running concurrently with other calls. Callers configure once
// at startup, log from any goroutine, and shut down at exit. The level
// threshold is the one field that may be adjusted between calls.
type Logger struct {
	// Configuration, fixed between Init calls
	toFile   bool
	fileName string
	truncate bool

	// Separately settable filter threshold
	threshold Level

	// Destinations
	file    sink // non-nil only while file-backed and open
	console sink

	// mu guards emission and the file handle
	mu sync.Mutex
}

// Config collects the initialization parameters of a Logger
type Config struct {
	ToFile          bool   `toml:"to_file" yaml:"to_file" json:"to_file"`
	FileName        string `toml:"file_name" yaml:"file_name" json:"file_name"`
	TruncateLongLog bool   `toml:"truncate_long_log" yaml:"truncate_long_log" json:"truncate_long_log"`
	LevelThreshold  Level  `toml:"level_threshold" yaml:"level_threshold" json:"level_threshold"`
}

// DefaultConfig returns the configuration a fresh logger starts with:
// console destination, no truncation, threshold None.
func DefaultConfig() Config {
	return Config{
		LevelThreshold: DefaultThreshold(),
	}
}

// New creates a console logger with default configuration. It is usable
// without calling Init.
func New() *Logger {
	return &Logger{
		threshold: DefaultThreshold(),
		console:   &consoleSink{w: os.Stdout},
	}
}

// NewWithConfig creates a logger and initializes it from config. The
// logger is returned even when initialization fails, in its post-failure
// state.
func NewWithConfig(config Config) (*Logger, error) {
	logger := New()
	err := logger.InitWithConfig(config)
	return logger, err
}

// Init configures the logger destination.
//
// With toFile false the destination is the console and fileName is
// ignored. With toFile true the file named fileName is opened for
// appending inside the Log directory under the current working directory,
// creating directory and file as needed. An empty fileName yields an
// InitError with reason MissingFileName before any file-system access; a
// directory or open failure yields reason FileOpenFailed.
//
// A handle left open by a previous initialization is closed first, so
// re-entrant Init never leaks file handles.
func (l *Logger) Init(toFile bool, truncate bool, fileName string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		_ = l.file.close()
		l.file = nil
	}

	l.toFile = toFile
	l.truncate = truncate
	l.fileName = fileName

	if !toFile {
		return nil
	}
	if fileName == "" {
		return &InitError{Reason: MissingFileName}
	}

	fs, err := openFileSink(fileName)
	if err != nil {
		return &InitError{Reason: FileOpenFailed, FileName: fileName, Err: err}
	}
	l.file = fs
	return nil
}

// InitWithConfig applies a full Config, threshold included
func (l *Logger) InitWithConfig(config Config) error {
	l.threshold = config.LevelThreshold
	return l.Init(config.ToFile, config.TruncateLongLog, config.FileName)
}

// Shutdown closes the log file handle if one is open. Idempotent; a no-op
// for console loggers.
func (l *Logger) Shutdown() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	err := l.file.close()
	l.file = nil
	return err
}

// SetLevelThreshold adjusts the filter threshold. Messages are emitted
// only when their level is strictly greater than the threshold.
func (l *Logger) SetLevelThreshold(level Level) {
	l.threshold = level
}

// LevelThreshold returns the current filter threshold
func (l *Logger) LevelThreshold() Level {
	return l.threshold
}

// FileBacked returns true when the destination is the log file
func (l *Logger) FileBacked() bool {
	return l.toFile
}

// FilePath returns the path of the open log file. It is empty for
// console loggers, after Shutdown, and after a failed initialization.
func (l *Logger) FilePath() string {
	l.mu.Lock()
	defer l.mu.Unlock()

	if fs, ok := l.file.(*fileSink); ok {
		return fs.path
	}
	return ""
}

// SetConsoleWriter redirects console output to w. Tools and tests use
// this to capture emitted lines.
func (l *Logger) SetConsoleWriter(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.console = &consoleSink{w: w}
}

// Log formats and emits one message. The caller supplies the source file
// name, function name, and line number recorded in the line header;
// Logf and the level methods capture them automatically instead.
//
// Returns false when the message is filtered by the threshold, when the
// destination is the file but no handle is open, or when the write or
// sync fails. Console emission always returns true.
func (l *Logger) Log(level Level, sourceFile string, functionName string, lineNumber int, format string, args ...any) bool {
	// Filter before any formatting work
	if !level.ShouldEmit(l.threshold) {
		return false
	}

	header := fmt.Sprintf("%s %s [ThreadID: %d] [%s Line: %d] [Function: %s] Message: ",
		Timestamp(), level.Tag(), goroutineID(), sourceFile, lineNumber, functionName)

	body := fmt.Sprintf(format, args...)
	if l.truncate {
		body = truncateBody(body, MaxMessageLength)
	}

	line := []byte(header + body + "\r\n")

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.toFile {
		if l.file == nil {
			return false
		}
		if err := l.file.writeAppend(line); err != nil {
			return false
		}
		if err := l.file.sync(); err != nil {
			return false
		}
		return true
	}

	// The console branch has no failure path
	_ = l.console.writeAppend(line)
	return true
}

// Logf emits a message at the given level, capturing the call site
func (l *Logger) Logf(level Level, format string, args ...any) bool {
	return l.logAuto(level, 2, format, args...)
}

// Infof emits an informational message, capturing the call site
func (l *Logger) Infof(format string, args ...any) bool {
	return l.logAuto(LevelInfo, 2, format, args...)
}

// Warningf emits a warning message, capturing the call site
func (l *Logger) Warningf(format string, args ...any) bool {
	return l.logAuto(LevelWarning, 2, format, args...)
}

// Errorf emits an error message, capturing the call site
func (l *Logger) Errorf(format string, args ...any) bool {
	return l.logAuto(LevelError, 2, format, args...)
}

// logAuto captures the call site skip frames up and delegates to Log.
// The threshold check runs first so filtered calls skip the stack
// inspection as well as the formatting.
func (l *Logger) logAuto(level Level, skip int, format string, args ...any) bool {
	if !level.ShouldEmit(l.threshold) {
		return false
	}
	ci := caller(skip)
	if ci == nil {
		ci = &CallerInfo{File: "unknown", Function: "unknown"}
	}
	return l.Log(level, ci.File, ci.Function, ci.Line, format, args...)
}

// truncateBody clips s to at most max characters (runes)
func truncateBody(s string, max int) string {
	if len(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// Default logger instance
var defaultLogger = New()

// Default returns the default logger instance
func Default() *Logger {
	return defaultLogger
}

// SetDefault replaces the default logger instance
func SetDefault(logger *Logger) {
	defaultLogger = logger
}

// Init configures the default logger destination
func Init(toFile bool, truncate bool, fileName string) error {
	return defaultLogger.Init(toFile, truncate, fileName)
}

// InitWithConfig applies a full Config to the default logger
func InitWithConfig(config Config) error {
	return defaultLogger.InitWithConfig(config)
}

// Shutdown closes the default logger's file handle if one is open
func Shutdown() error {
	return defaultLogger.Shutdown()
}

// Log emits one message through the default logger with an explicit
// call site
func Log(level Level, sourceFile string, functionName string, lineNumber int, format string, args ...any) bool {
	return defaultLogger.Log(level, sourceFile, functionName, lineNumber, format, args...)
}

// Logf emits a message at the given level through the default logger
func Logf(level Level, format string, args ...any) bool {
	return defaultLogger.logAuto(level, 2, format, args...)
}

// Infof emits an informational message through the default logger
func Infof(format string, args ...any) bool {
	return defaultLogger.logAuto(LevelInfo, 2, format, args...)
}

// Warningf emits a warning message through the default logger
func Warningf(format string, args ...any) bool {
	return defaultLogger.logAuto(LevelWarning, 2, format, args...)
}

// Errorf emits an error message through the default logger
func Errorf(format string, args ...any) bool {
	return defaultLogger.logAuto(LevelError, 2, format, args...)
}

// SetLevelThreshold adjusts the default logger's filter threshold
func SetLevelThreshold(level Level) {
	defaultLogger.SetLevelThreshold(level)
}

// LevelThreshold returns the default logger's filter threshold
func LevelThreshold() Level {
	return defaultLogger.LevelThreshold()
}

// SetConsoleWriter redirects the default logger's console output
func SetConsoleWriter(w io.Writer) {
	defaultLogger.SetConsoleWriter(w)
}
