// File: sink.go
// Title: Output Sinks
// Description: Destination abstraction for emitted lines. A sink provides
//              append, durable sync, and close. The file sink appends to a
//              log file under the Log directory of the process working
//              directory; the console sink wraps an io.Writer and never
//              needs syncing.
// Author: wnxy
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation

package log

import (
	"io"
	"os"
	"path/filepath"

	"github.com/wnxy/LogLibrary/utils/filex"
)

// LogDirName is the directory created under the working directory for
// file-backed logging
const LogDirName = "Log"

// sink is the capability a destination must provide: append a formatted
// line, force it to durable storage, release the resource.
type sink interface {
	writeAppend(p []byte) error
	sync() error
	close() error
}

// fileSink appends to an exclusively-owned log file
type fileSink struct {
	file *os.File
	path string
}

// openFileSink creates the Log directory under the current working
// directory if needed and opens the named file inside it for appending,
// creating it when absent.
func openFileSink(fileName string) (*fileSink, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	dir := filepath.Join(wd, LogDirName)
	if err := filex.EnsureDir(dir, 0o700); err != nil {
		return nil, err
	}

	path := filepath.Join(dir, fileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_RDWR, 0o644)
	if err != nil {
		return nil, err
	}

	return &fileSink{file: f, path: path}, nil
}

// writeAppend appends p to the file. The handle is opened O_APPEND, so the
// kernel positions every write at the current end of file.
func (s *fileSink) writeAppend(p []byte) error {
	_, err := s.file.Write(p)
	return err
}

// sync forces written data to storage before returning
func (s *fileSink) sync() error {
	return s.file.Sync()
}

// close releases the file handle
func (s *fileSink) close() error {
	return s.file.Close()
}

// consoleSink writes to a console stream
type consoleSink struct {
	w io.Writer
}

func (s *consoleSink) writeAppend(p []byte) error {
	_, err := s.w.Write(p)
	return err
}

func (s *consoleSink) sync() error {
	return nil
}

func (s *consoleSink) close() error {
	return nil
}
