// ============================================================================
// SWLog - Synchronous Leveled Logging
// ============================================================================
//
// Package:     logviewer
// Description: Message types for async operations in the viewer
// Author:      wnxy
// Created:     2026-08-19
// License:     MIT
// ============================================================================

package logviewer

import (
	"time"

	"github.com/wnxy/LogLibrary/utils/filex"
)

// Message types for tea.Cmd async operations

// entriesLoadedMsg is sent when a log file has been read and parsed
type entriesLoadedMsg struct {
	entries []Entry
	path    string
	size    int64
	err     error
}

// filesLoadedMsg is sent when the log directory has been scanned
type filesLoadedMsg struct {
	files []filex.FileInfo
	err   error
}

// tickMsg drives the periodic reload
type tickMsg time.Time
