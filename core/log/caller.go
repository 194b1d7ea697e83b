// File: caller.go
// Title: Call-Site and Goroutine Identification
// Description: Captures the file, line, and function of a logging call site
//              and the numeric ID of the calling goroutine. The goroutine ID
//              fills the thread-identifier field of the line header; Go does
//              not expose OS thread identity to portable code.
// Author: wnxy
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation

package log

import (
	"bytes"
	"runtime"
	"strconv"
	"strings"
)

// CallerInfo identifies the source location of a logging call
type CallerInfo struct {
	File     string
	Line     int
	Function string
}

// caller returns information about the call site skip frames above the
// caller of this function. Returns nil if the stack cannot be inspected.
func caller(skip int) *CallerInfo {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return nil
	}

	function := "unknown"
	if fn := runtime.FuncForPC(pc); fn != nil {
		function = fn.Name()
		// Trim package path, keep the bare function name
		if idx := strings.LastIndex(function, "."); idx >= 0 {
			function = function[idx+1:]
		}
	}

	// Keep the base file name only
	if idx := strings.LastIndex(file, "/"); idx >= 0 {
		file = file[idx+1:]
	}

	return &CallerInfo{
		File:     file,
		Line:     line,
		Function: function,
	}
}

// goroutineID returns the numeric ID of the calling goroutine, parsed from
// the first line of its stack trace ("goroutine 42 [running]:"). Returns 0
// if the header cannot be parsed.
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	fields := bytes.Fields(buf[:n])
	if len(fields) < 2 {
		return 0
	}
	id, err := strconv.ParseUint(string(fields[1]), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
