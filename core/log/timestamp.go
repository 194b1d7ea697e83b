// File: timestamp.go
// Title: Timestamp Formatting
// Description: Formats the local wall-clock time into the fixed bracketed
//              layout every emitted line starts with. The millisecond field
//              is zero-padded to four digits even though its value range is
//              0-999; the visual field width is part of the line format.
// Author: wnxy
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation

package log

import (
	"fmt"
	"time"
)

// timestampLayout is the strftime-equivalent layout of the seconds part
const timestampLayout = "2006-01-02 15:04:05"

// Timestamp returns the current local time as "[YYYY-MM-DD HH:MM:SS mmmm]"
// where mmmm is the millisecond component zero-padded to four digits,
// e.g. "[2026-08-18 14:03:27 0083]". Pure function of the current time,
// safe to call from any goroutine.
func Timestamp() string {
	return formatTimestamp(time.Now())
}

// formatTimestamp renders t in the line-header layout
func formatTimestamp(t time.Time) string {
	millis := t.Nanosecond() / int(time.Millisecond)
	return fmt.Sprintf("[%s %04d]", t.Format(timestampLayout), millis)
}
