// ============================================================================
// SWLog - Synchronous Leveled Logging
// ============================================================================
//
// Package:     logviewer
// Description: Log line parsing for the viewer
// Author:      wnxy
// Created:     2026-08-19
// License:     MIT
// ============================================================================

package logviewer

import (
	"regexp"
	"strconv"
	"time"
)

// Entry represents one parsed log line
type Entry struct {
	Timestamp time.Time
	Level     string // INFO, WARNING, ERROR, or empty for untagged lines
	ThreadID  uint64
	File      string
	Line      int
	Function  string
	Message   string
	Raw       string
	Parsed    bool
}

// headerTimeLayout matches the timestamp the logger writes
const headerTimeLayout = "2006-01-02 15:04:05"

// entryPattern captures the fixed header fields of an emitted line. The
// level tag group is absent on lines emitted with an undefined level.
var entryPattern = regexp.MustCompile(
	`^\[(\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}) (\d{4})\] (?:\[(INFO|WARNING|ERROR)\])? \[ThreadID: (\d+)\] \[(.+?) Line: (\d+)\] \[Function: (.+?)\] Message: (.*)$`)

// ParseLine parses one log line into an Entry. Lines that do not match
// the emission format come back as raw message-only entries.
func ParseLine(line string) Entry {
	m := entryPattern.FindStringSubmatch(line)
	if m == nil {
		return Entry{Message: line, Raw: line}
	}

	ts, err := time.ParseInLocation(headerTimeLayout, m[1], time.Local)
	if err != nil {
		return Entry{Message: line, Raw: line}
	}
	millis, _ := strconv.Atoi(m[2])
	threadID, _ := strconv.ParseUint(m[4], 10, 64)
	lineNo, _ := strconv.Atoi(m[6])

	return Entry{
		Timestamp: ts.Add(time.Duration(millis) * time.Millisecond),
		Level:     m[3],
		ThreadID:  threadID,
		File:      m[5],
		Line:      lineNo,
		Function:  m[7],
		Message:   m[8],
		Raw:       line,
		Parsed:    true,
	}
}

// ParseLines parses a batch of lines, skipping empty ones
func ParseLines(lines []string) []Entry {
	entries := make([]Entry, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			continue
		}
		entries = append(entries, ParseLine(line))
	}
	return entries
}
