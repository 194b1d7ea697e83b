// File: timestamp_test.go
// Title: Timestamp Formatting Tests
// Description: Tests the bracketed line-header timestamp, in particular the
//              four-digit zero-padded millisecond field.
// Author: wnxy
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation

package log

import (
	"regexp"
	"testing"
	"time"
)

var timestampPattern = regexp.MustCompile(`^\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2} \d{4}\]$`)

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		name string
		time time.Time
		want string
	}{
		{
			name: "millis padded to four digits",
			time: time.Date(2026, 8, 18, 14, 3, 27, 83*int(time.Millisecond), time.Local),
			want: "[2026-08-18 14:03:27 0083]",
		},
		{
			name: "zero millis",
			time: time.Date(2026, 1, 2, 0, 0, 0, 0, time.Local),
			want: "[2026-01-02 00:00:00 0000]",
		},
		{
			name: "maximum millis",
			time: time.Date(2025, 12, 31, 23, 59, 59, 999*int(time.Millisecond), time.Local),
			want: "[2025-12-31 23:59:59 0999]",
		},
		{
			name: "sub-millisecond remainder discarded",
			time: time.Date(2026, 8, 18, 9, 15, 0, 7*int(time.Millisecond)+500*int(time.Microsecond), time.Local),
			want: "[2026-08-18 09:15:00 0007]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatTimestamp(tt.time); got != tt.want {
				t.Errorf("formatTimestamp() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTimestampShape(t *testing.T) {
	got := Timestamp()
	if !timestampPattern.MatchString(got) {
		t.Errorf("Timestamp() = %q, does not match %s", got, timestampPattern)
	}
}

func TestTimestampUsesLocalTime(t *testing.T) {
	before := time.Now()
	got := Timestamp()
	after := time.Now()

	parsed, err := time.ParseInLocation(timestampLayout, got[1:len(got)-6], time.Local)
	if err != nil {
		t.Fatalf("cannot parse %q back: %v", got, err)
	}

	// Second-level comparison; the parsed value has no sub-second part
	if parsed.Before(before.Truncate(time.Second)) || parsed.After(after) {
		t.Errorf("Timestamp() %v outside [%v, %v]", parsed, before, after)
	}
}
