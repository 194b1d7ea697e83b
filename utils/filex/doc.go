// Package filex provides file-system helpers for the logging facility.
//
// Package: filex
// Title: File Utilities
// Description: Small helpers shared by the logger's file sink, the command
//              line tool, and the log viewer: existence and type checks,
//              directory creation, line-oriented reading of log files, and
//              directory listings with human-readable sizes.
// Author: wnxy
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation
//
// Usage:
//   if !filex.Exists(path) {
//     return fmt.Errorf("no such log file: %s", path)
//   }
//
//   lines, err := filex.ReadLastLines(path, 500)
//   if err != nil {
//     return err
//   }
package filex
