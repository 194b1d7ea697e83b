// File: logger_test.go
// Title: Core Logger Tests
// Description: Tests initialization, destination handling, filtering,
//              line formatting, truncation, durability, shutdown, and
//              concurrent emission.
// Author: wnxy
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-20
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation
// - 2026-08-20 v0.1.0: Concurrency and durability coverage

package log

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"
	"unicode/utf8"
)

// linePattern matches one complete emitted line, header through CR-LF
var linePattern = regexp.MustCompile(`^\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2} \d{4}\] (\[INFO\]|\[WARNING\]|\[ERROR\]|) ?\[ThreadID: \d+\] \[.+ Line: \d+\] \[Function: .+\] Message: .*$`)

// failingWriter always errors; the console branch must shrug it off
type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("writer broken")
}

// newBufferLogger returns a console logger capturing output in a buffer
func newBufferLogger() (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := New()
	logger.SetConsoleWriter(&buf)
	return logger, &buf
}

// chdir moves the test into dir and restores the previous working
// directory when the test ends. Stand-in for testing.T.Chdir, which
// needs Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("cannot read working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("cannot enter %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			// Tests cannot safely continue outside their working directory
			panic(err)
		}
	})
}

func TestNewDefaults(t *testing.T) {
	logger := New()

	if logger.FileBacked() {
		t.Error("fresh logger must default to the console destination")
	}
	if got := logger.LevelThreshold(); got != LevelNone {
		t.Errorf("fresh logger threshold = %v, want LevelNone", got)
	}
}

func TestInitConsole(t *testing.T) {
	logger, buf := newBufferLogger()

	// The file name is ignored for console destinations
	if err := logger.Init(false, true, "ignored.log"); err != nil {
		t.Fatalf("console Init failed: %v", err)
	}

	if !logger.Log(LevelInfo, "a.go", "fn", 1, "hello") {
		t.Fatal("console Log returned false")
	}
	if !strings.Contains(buf.String(), "Message: hello") {
		t.Errorf("console output missing message: %q", buf.String())
	}
}

func TestInitMissingFileName(t *testing.T) {
	chdir(t, t.TempDir())

	logger := New()
	err := logger.Init(true, false, "")
	if err == nil {
		t.Fatal("Init(true, _, \"\") must fail")
	}

	var initErr *InitError
	if !errors.As(err, &initErr) {
		t.Fatalf("expected *InitError, got %T", err)
	}
	if initErr.Reason != MissingFileName {
		t.Errorf("Reason = %v, want MissingFileName", initErr.Reason)
	}

	// The failure happens before any file-system access
	if _, statErr := os.Stat(LogDirName); !os.IsNotExist(statErr) {
		t.Error("no Log directory may be created when the file name is missing")
	}

	// File destination without a handle refuses to log
	if logger.Log(LevelError, "a.go", "fn", 1, "dropped") {
		t.Error("Log must return false after failed file initialization")
	}
}

func TestInitCreatesLogDirAndFile(t *testing.T) {
	chdir(t, t.TempDir())

	logger := New()
	if err := logger.Init(true, false, "app.log"); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer logger.Shutdown()

	if fi, err := os.Stat(LogDirName); err != nil || !fi.IsDir() {
		t.Fatalf("Log directory not created: %v", err)
	}
	path := filepath.Join(LogDirName, "app.log")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("log file not created: %v", err)
	}
	if got := logger.FilePath(); !strings.HasSuffix(got, path) {
		t.Errorf("FilePath() = %q, want suffix %q", got, path)
	}

	if !logger.Log(LevelInfo, "main.go", "main", 10, "started") {
		t.Fatal("file-backed Log returned false")
	}
}

func TestFilePathConsole(t *testing.T) {
	logger := New()
	if got := logger.FilePath(); got != "" {
		t.Errorf("console FilePath() = %q, want empty", got)
	}
}

func TestInitReusesExistingFile(t *testing.T) {
	chdir(t, t.TempDir())
	path := filepath.Join(LogDirName, "app.log")

	logger := New()
	if err := logger.Init(true, false, "app.log"); err != nil {
		t.Fatalf("first Init failed: %v", err)
	}
	if !logger.Log(LevelInfo, "a.go", "fn", 1, "first") {
		t.Fatal("first Log failed")
	}

	// Re-initialization closes the prior handle and appends to the same file
	if err := logger.Init(true, false, "app.log"); err != nil {
		t.Fatalf("second Init failed: %v", err)
	}
	if !logger.Log(LevelInfo, "a.go", "fn", 2, "second") {
		t.Fatal("second Log failed")
	}
	if err := logger.Shutdown(); err != nil {
		t.Fatalf("Shutdown failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("cannot read log file: %v", err)
	}
	if !strings.Contains(string(content), "first") || !strings.Contains(string(content), "second") {
		t.Errorf("log file missing lines across re-init: %q", content)
	}
	if got := strings.Count(string(content), "\r\n"); got != 2 {
		t.Errorf("log file has %d lines, want 2", got)
	}
}

func TestInitSwitchesFileToConsole(t *testing.T) {
	chdir(t, t.TempDir())

	logger, buf := newBufferLogger()
	if err := logger.Init(true, false, "app.log"); err != nil {
		t.Fatalf("file Init failed: %v", err)
	}
	logger.Log(LevelInfo, "a.go", "fn", 1, "to file")

	if err := logger.Init(false, false, ""); err != nil {
		t.Fatalf("console re-Init failed: %v", err)
	}
	logger.Log(LevelInfo, "a.go", "fn", 2, "to console")

	if !strings.Contains(buf.String(), "to console") {
		t.Error("line after console re-Init missing from console output")
	}

	content, _ := os.ReadFile(filepath.Join(LogDirName, "app.log"))
	if strings.Contains(string(content), "to console") {
		t.Error("line after console re-Init must not reach the old file")
	}
}

// TestLogFilterMatrix fixes the emission rule across every combination of
// threshold and message level: emit iff level > threshold.
func TestLogFilterMatrix(t *testing.T) {
	for _, threshold := range AllLevels() {
		for _, level := range AllLevels() {
			name := fmt.Sprintf("threshold_%s_level_%s", threshold, level)
			t.Run(name, func(t *testing.T) {
				logger, buf := newBufferLogger()
				logger.SetLevelThreshold(threshold)

				want := level > threshold
				got := logger.Log(level, "probe.go", "probe", 1, "probe message")

				if got != want {
					t.Errorf("Log returned %v, want %v", got, want)
				}
				if emitted := buf.Len() > 0; emitted != want {
					t.Errorf("output emitted = %v, want %v", emitted, want)
				}
			})
		}
	}
}

func TestSetLevelThreshold(t *testing.T) {
	logger, buf := newBufferLogger()

	logger.SetLevelThreshold(LevelWarning)
	if got := logger.LevelThreshold(); got != LevelWarning {
		t.Fatalf("LevelThreshold() = %v, want LevelWarning", got)
	}

	if logger.Log(LevelWarning, "a.go", "fn", 1, "suppressed") {
		t.Error("a message at the threshold level must be filtered")
	}
	if !logger.Log(LevelError, "a.go", "fn", 2, "emitted") {
		t.Error("a message above the threshold must pass")
	}
	if strings.Contains(buf.String(), "suppressed") {
		t.Error("filtered message reached the output")
	}
}

func TestLogHeaderFormat(t *testing.T) {
	logger, buf := newBufferLogger()

	if !logger.Log(LevelInfo, "main.go", "startup", 42, "hello %s", "world") {
		t.Fatal("Log returned false")
	}

	headerPattern := regexp.MustCompile(
		`^\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2} \d{4}\] \[INFO\] \[ThreadID: \d+\] \[main\.go Line: 42\] \[Function: startup\] Message: hello world\r\n$`)
	if !headerPattern.MatchString(buf.String()) {
		t.Errorf("line %q does not match the header contract", buf.String())
	}
}

func TestLogLevelTags(t *testing.T) {
	tests := []struct {
		level Level
		tag   string
	}{
		{LevelInfo, "[INFO]"},
		{LevelWarning, "[WARNING]"},
		{LevelError, "[ERROR]"},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			logger, buf := newBufferLogger()
			logger.Log(tt.level, "a.go", "fn", 1, "tagged")

			if !strings.Contains(buf.String(), " "+tt.tag+" [ThreadID: ") {
				t.Errorf("output %q missing tag %s", buf.String(), tt.tag)
			}
		})
	}
}

func TestLogUnrecognizedLevelEmptyTag(t *testing.T) {
	logger, buf := newBufferLogger()

	// An undefined level above the threshold still emits, with an empty tag
	if !logger.Log(Level(9), "a.go", "fn", 1, "untagged") {
		t.Fatal("Log returned false for an undefined level above the threshold")
	}

	out := buf.String()
	if strings.Contains(out, "[INFO]") || strings.Contains(out, "[WARNING]") || strings.Contains(out, "[ERROR]") {
		t.Errorf("undefined level must not carry a tag: %q", out)
	}
	// Empty tag leaves two spaces between timestamp and thread field
	if !strings.Contains(out, "]  [ThreadID: ") {
		t.Errorf("expected empty-tag spacing in %q", out)
	}
}

func TestLogTruncation(t *testing.T) {
	t.Run("body clipped to 256 characters", func(t *testing.T) {
		logger, buf := newBufferLogger()
		logger.Init(false, true, "")

		logger.Log(LevelInfo, "a.go", "fn", 1, "%s", strings.Repeat("x", 500))

		body := extractBody(t, buf.String())
		if len(body) != MaxMessageLength {
			t.Errorf("body length = %d, want %d", len(body), MaxMessageLength)
		}
	})

	t.Run("short body untouched", func(t *testing.T) {
		logger, buf := newBufferLogger()
		logger.Init(false, true, "")

		logger.Log(LevelInfo, "a.go", "fn", 1, "%s", strings.Repeat("x", 200))

		body := extractBody(t, buf.String())
		if len(body) != 200 {
			t.Errorf("body length = %d, want 200", len(body))
		}
	})

	t.Run("truncation disabled", func(t *testing.T) {
		logger, buf := newBufferLogger()
		logger.Init(false, false, "")

		logger.Log(LevelInfo, "a.go", "fn", 1, "%s", strings.Repeat("x", 500))

		body := extractBody(t, buf.String())
		if len(body) != 500 {
			t.Errorf("body length = %d, want 500", len(body))
		}
	})

	t.Run("counts characters not bytes", func(t *testing.T) {
		logger, buf := newBufferLogger()
		logger.Init(false, true, "")

		logger.Log(LevelInfo, "a.go", "fn", 1, "%s", strings.Repeat("ä", 300))

		body := extractBody(t, buf.String())
		if got := utf8.RuneCountInString(body); got != MaxMessageLength {
			t.Errorf("body rune count = %d, want %d", got, MaxMessageLength)
		}
	})

	t.Run("header never truncated", func(t *testing.T) {
		logger, buf := newBufferLogger()
		logger.Init(false, true, "")

		long := strings.Repeat("y", 400)
		logger.Log(LevelWarning, "very_long_source_file_name.go", "someFunction", 999, "%s", long)

		out := buf.String()
		if !strings.Contains(out, "[very_long_source_file_name.go Line: 999] [Function: someFunction] Message: ") {
			t.Errorf("header was damaged: %q", out)
		}
	})
}

func TestLogCRLFTerminator(t *testing.T) {
	logger, buf := newBufferLogger()
	logger.Log(LevelInfo, "a.go", "fn", 1, "terminated")

	if !strings.HasSuffix(buf.String(), "\r\n") {
		t.Errorf("line %q must end with CR-LF", buf.String())
	}
}

func TestLogConsoleIgnoresWriterErrors(t *testing.T) {
	logger := New()
	logger.SetConsoleWriter(failingWriter{})

	if !logger.Log(LevelError, "a.go", "fn", 1, "swallowed") {
		t.Error("the console branch has no failure path and must return true")
	}
}

func TestLogFileDurability(t *testing.T) {
	chdir(t, t.TempDir())

	logger := New()
	if err := logger.Init(true, false, "durable.log"); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer logger.Shutdown()

	if !logger.Log(LevelError, "crash.go", "failing", 7, "about to crash: %d", 42) {
		t.Fatal("Log returned false")
	}

	// The line is on disk before Log returns; a fresh read must see it
	// without any shutdown or flush.
	content, err := os.ReadFile(filepath.Join(LogDirName, "durable.log"))
	if err != nil {
		t.Fatalf("cannot read log file: %v", err)
	}
	if !strings.Contains(string(content), "about to crash: 42") {
		t.Errorf("synced line missing from file: %q", content)
	}
}

func TestShutdownThenLog(t *testing.T) {
	chdir(t, t.TempDir())
	path := filepath.Join(LogDirName, "closed.log")

	logger := New()
	if err := logger.Init(true, false, "closed.log"); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	logger.Log(LevelInfo, "a.go", "fn", 1, "before shutdown")

	if err := logger.Shutdown(); err != nil {
		t.Fatalf("Shutdown failed: %v", err)
	}

	before, _ := os.ReadFile(path)
	if logger.Log(LevelError, "a.go", "fn", 2, "after shutdown") {
		t.Error("Log after Shutdown must return false")
	}
	after, _ := os.ReadFile(path)

	if !bytes.Equal(before, after) {
		t.Error("Log after Shutdown must not write")
	}
}

func TestShutdownIdempotent(t *testing.T) {
	chdir(t, t.TempDir())

	logger := New()
	if err := logger.Init(true, false, "app.log"); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	if err := logger.Shutdown(); err != nil {
		t.Fatalf("first Shutdown failed: %v", err)
	}
	if err := logger.Shutdown(); err != nil {
		t.Fatalf("second Shutdown failed: %v", err)
	}

	// Console loggers shut down as a no-op
	console := New()
	if err := console.Shutdown(); err != nil {
		t.Errorf("console Shutdown failed: %v", err)
	}
}

func TestConcurrentFileLogging(t *testing.T) {
	chdir(t, t.TempDir())

	const goroutines = 50
	const messages = 20

	logger := New()
	if err := logger.Init(true, false, "concurrent.log"); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < messages; j++ {
				if !logger.Log(LevelInfo, "worker.go", "work", j, "worker-%d message-%d", id, j) {
					t.Errorf("Log failed for worker %d message %d", id, j)
					return
				}
			}
		}(i)
	}
	wg.Wait()

	if err := logger.Shutdown(); err != nil {
		t.Fatalf("Shutdown failed: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(LogDirName, "concurrent.log"))
	if err != nil {
		t.Fatalf("cannot read log file: %v", err)
	}

	lines := strings.Split(string(content), "\r\n")
	if last := lines[len(lines)-1]; last != "" {
		t.Errorf("file does not end with CR-LF, trailing %q", last)
	}
	lines = lines[:len(lines)-1]

	if len(lines) != goroutines*messages {
		t.Fatalf("got %d lines, want %d", len(lines), goroutines*messages)
	}
	for i, line := range lines {
		if !linePattern.MatchString(line) {
			t.Fatalf("line %d appears torn or garbled: %q", i, line)
		}
	}
}

func TestConcurrentConsoleLogging(t *testing.T) {
	const goroutines = 100

	logger, buf := newBufferLogger()

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func(id int) {
			defer wg.Done()
			logger.Log(LevelWarning, "worker.go", "work", id, "goroutine-%d", id)
		}(i)
	}
	wg.Wait()

	lines := strings.Split(buf.String(), "\r\n")
	lines = lines[:len(lines)-1]
	if len(lines) != goroutines {
		t.Fatalf("got %d lines, want %d", len(lines), goroutines)
	}
	for i, line := range lines {
		if !strings.Contains(line, "[WARNING]") || !strings.Contains(line, "goroutine-") {
			t.Fatalf("line %d appears garbled: %q", i, line)
		}
	}
}

func TestLogfCapturesCallSite(t *testing.T) {
	logger, buf := newBufferLogger()

	if !logger.Logf(LevelInfo, "captured %d", 1) {
		t.Fatal("Logf returned false")
	}

	out := buf.String()
	if !strings.Contains(out, "[logger_test.go Line: ") {
		t.Errorf("Logf did not capture the source file: %q", out)
	}
	if !strings.Contains(out, "[Function: TestLogfCapturesCallSite]") {
		t.Errorf("Logf did not capture the function name: %q", out)
	}
}

func TestLevelMethodsCaptureCallSite(t *testing.T) {
	tests := []struct {
		name string
		call func(l *Logger) bool
		tag  string
	}{
		{"Infof", func(l *Logger) bool { return l.Infof("via %s", "Infof") }, "[INFO]"},
		{"Warningf", func(l *Logger) bool { return l.Warningf("via %s", "Warningf") }, "[WARNING]"},
		{"Errorf", func(l *Logger) bool { return l.Errorf("via %s", "Errorf") }, "[ERROR]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger()
			if !tt.call(logger) {
				t.Fatalf("%s returned false", tt.name)
			}
			out := buf.String()
			if !strings.Contains(out, tt.tag) {
				t.Errorf("%s output missing %s: %q", tt.name, tt.tag, out)
			}
			if !strings.Contains(out, "[logger_test.go Line: ") {
				t.Errorf("%s did not capture the call site: %q", tt.name, out)
			}
		})
	}
}

func TestLogfFilteredSkipsCapture(t *testing.T) {
	logger, buf := newBufferLogger()
	logger.SetLevelThreshold(LevelError)

	if logger.Logf(LevelInfo, "filtered") {
		t.Error("filtered Logf must return false")
	}
	if buf.Len() != 0 {
		t.Error("filtered Logf must not emit")
	}
}

func TestInitWithConfig(t *testing.T) {
	chdir(t, t.TempDir())

	logger := New()
	cfg := Config{
		ToFile:          true,
		FileName:        "configured.log",
		TruncateLongLog: true,
		LevelThreshold:  LevelInfo,
	}
	if err := logger.InitWithConfig(cfg); err != nil {
		t.Fatalf("InitWithConfig failed: %v", err)
	}
	defer logger.Shutdown()

	if got := logger.LevelThreshold(); got != LevelInfo {
		t.Errorf("threshold = %v, want LevelInfo", got)
	}
	if logger.Log(LevelInfo, "a.go", "fn", 1, "filtered") {
		t.Error("Info at threshold Info must be filtered")
	}
	if !logger.Log(LevelWarning, "a.go", "fn", 2, "%s", strings.Repeat("z", 400)) {
		t.Fatal("Warning above threshold must emit")
	}

	content, err := os.ReadFile(filepath.Join(LogDirName, "configured.log"))
	if err != nil {
		t.Fatalf("cannot read log file: %v", err)
	}
	body := extractBody(t, string(content))
	if len(body) != MaxMessageLength {
		t.Errorf("configured truncation not applied, body length %d", len(body))
	}
}

func TestNewWithConfig(t *testing.T) {
	logger, err := NewWithConfig(Config{LevelThreshold: LevelWarning})
	if err != nil {
		t.Fatalf("NewWithConfig failed: %v", err)
	}
	if logger.LevelThreshold() != LevelWarning {
		t.Errorf("threshold = %v, want LevelWarning", logger.LevelThreshold())
	}

	// Initialization errors still hand back the logger
	bad, err := NewWithConfig(Config{ToFile: true})
	if err == nil {
		t.Fatal("NewWithConfig with a file destination and no name must fail")
	}
	if bad == nil {
		t.Fatal("NewWithConfig must return the logger alongside the error")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.ToFile || cfg.TruncateLongLog || cfg.FileName != "" {
		t.Errorf("DefaultConfig() = %+v, want console defaults", cfg)
	}
	if cfg.LevelThreshold != LevelNone {
		t.Errorf("default threshold = %v, want LevelNone", cfg.LevelThreshold)
	}
}

func TestDefaultLoggerPackageAPI(t *testing.T) {
	saved := Default()
	defer SetDefault(saved)

	var buf bytes.Buffer
	logger := New()
	logger.SetConsoleWriter(&buf)
	SetDefault(logger)

	if Default() != logger {
		t.Fatal("SetDefault did not replace the default instance")
	}

	if !Infof("package level %s", "info") {
		t.Fatal("package Infof returned false")
	}
	if !strings.Contains(buf.String(), "[Function: TestDefaultLoggerPackageAPI]") {
		t.Errorf("package Infof lost the call site: %q", buf.String())
	}

	buf.Reset()
	SetLevelThreshold(LevelError)
	if Warningf("filtered") {
		t.Error("package Warningf must honor the package threshold")
	}
	if LevelThreshold() != LevelError {
		t.Errorf("package LevelThreshold() = %v, want LevelError", LevelThreshold())
	}

	SetLevelThreshold(LevelNone)
	if !Errorf("unfiltered") {
		t.Error("package Errorf must emit at threshold None")
	}
	if !Logf(LevelWarning, "generic") {
		t.Error("package Logf must emit")
	}
	if !Log(LevelInfo, "explicit.go", "caller", 3, "explicit") {
		t.Error("package Log must emit")
	}
	if !strings.Contains(buf.String(), "[explicit.go Line: 3]") {
		t.Errorf("package Log dropped explicit call-site fields: %q", buf.String())
	}
}

// extractBody returns the message body of the first emitted line
func extractBody(t *testing.T, line string) string {
	t.Helper()

	marker := "Message: "
	idx := strings.Index(line, marker)
	if idx < 0 {
		t.Fatalf("no message marker in %q", line)
	}
	body := line[idx+len(marker):]
	end := strings.Index(body, "\r\n")
	if end < 0 {
		t.Fatalf("line %q not CR-LF terminated", line)
	}
	return body[:end]
}

func BenchmarkLogConsole(b *testing.B) {
	logger := New()
	logger.SetConsoleWriter(io.Discard)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Log(LevelInfo, "bench.go", "bench", i, "benchmark message %d", i)
	}
}

func BenchmarkLogFiltered(b *testing.B) {
	logger := New()
	logger.SetConsoleWriter(io.Discard)
	logger.SetLevelThreshold(LevelError)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Log(LevelInfo, "bench.go", "bench", i, "filtered message %d", i)
	}
}

func BenchmarkLogfCallerCapture(b *testing.B) {
	logger := New()
	logger.SetConsoleWriter(io.Discard)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Logf(LevelInfo, "benchmark message %d", i)
	}
}
