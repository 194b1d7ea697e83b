package integration

import (
	"io"
	"os"
	"testing"

	"github.com/wnxy/LogLibrary/core/log"
	"github.com/wnxy/LogLibrary/internal/tui/logviewer"
)

// ============================================================================
// Performance Benchmarks
// ============================================================================

// benchWorkDir moves the benchmark into a scratch directory and returns
// a restore function.
func benchWorkDir(b *testing.B) func() {
	b.Helper()

	dir, err := os.MkdirTemp("", "swlog-bench-*")
	if err != nil {
		b.Fatalf("Failed to create scratch directory: %v", err)
	}
	prev, err := os.Getwd()
	if err != nil {
		b.Fatalf("Failed to read working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		b.Fatalf("Failed to enter scratch directory: %v", err)
	}

	return func() {
		os.Chdir(prev)
		os.RemoveAll(dir)
	}
}

// BenchmarkFileLogging measures a full file emission. The per-call sync
// dominates; expect milliseconds per record on ordinary disks.
func BenchmarkFileLogging(b *testing.B) {
	restore := benchWorkDir(b)
	defer restore()

	logger := log.New()
	if err := logger.Init(true, false, "bench.log"); err != nil {
		b.Fatalf("Init failed: %v", err)
	}
	defer logger.Shutdown()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Infof("benchmark record %d", i)
	}
}

// BenchmarkConsoleLogging measures emission without file system cost
func BenchmarkConsoleLogging(b *testing.B) {
	logger := log.New()
	logger.SetConsoleWriter(io.Discard)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Infof("benchmark record %d", i)
	}
}

// BenchmarkFilteredLogging measures the early-out path of a filtered level
func BenchmarkFilteredLogging(b *testing.B) {
	logger := log.New()
	logger.SetConsoleWriter(io.Discard)
	logger.SetLevelThreshold(log.LevelError)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Infof("benchmark record %d", i)
	}
}

// BenchmarkParseLine measures the viewer's line parser
func BenchmarkParseLine(b *testing.B) {
	line := "[2026-08-19 09:15:02 0441] [WARNING] [ThreadID: 23] [engine.go Line: 87] [Function: startProcess] Message: queue depth 950 above soft limit"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logviewer.ParseLine(line)
	}
}
