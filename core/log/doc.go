// Package log provides a minimal synchronous leveled logging facility.
//
// Package: log
// Title: Synchronous Leveled Logging Facility
// Description: This package implements a process-wide logger that formats
//              leveled, timestamped, goroutine-tagged messages and writes
//              them either to a console stream or to a single append-only
//              log file. File-backed writes are synced to storage before the
//              call returns, trading throughput for crash-safe durability.
//              A single mutex serializes all emission, so concurrent callers
//              never produce torn lines.
// Author: wnxy
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-20
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation
// - 2026-08-20 v0.1.0: Sink abstraction, package-level default instance
//
// Features:
// - Four-value level ordering None < Info < Warning < Error with
//   strictly-greater threshold filtering, evaluated before any formatting
// - Console or single-file destination, chosen at Init
// - Log directory created under the process working directory on demand
// - Fixed line header: timestamp, level tag, goroutine ID, source file,
//   line number, function name
// - Optional truncation of message bodies to 256 characters
// - CR-LF terminated lines, identical across destinations
// - Durable (synced) file writes with per-call latency in the tens of
//   milliseconds; callers must expect blocking behavior
// - Independent Logger instances for test isolation plus a package-level
//   default instance
//
// Usage:
//   import "github.com/wnxy/LogLibrary/core/log"
//
//   // Console logging, no setup required
//   log.Infof("service started on port %d", 8080)
//
//   // File-backed logging
//   if err := log.Init(true, false, "app.log"); err != nil {
//     // handle InitError
//   }
//   defer log.Shutdown()
//
//   log.Warningf("cache miss for key %q", key)
//   log.Errorf("request failed: %v", err)
//
//   // Explicit call-site fields
//   log.Log(log.LevelInfo, "main.go", "main", 42, "pid %d", os.Getpid())
//
//   // Threshold: emit only messages above Warning
//   log.SetLevelThreshold(log.LevelWarning)
//
//   // Independent instance
//   logger, err := log.NewWithConfig(log.Config{
//     ToFile:   true,
//     FileName: "worker.log",
//   })
package log
