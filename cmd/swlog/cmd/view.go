// ============================================================================
// SWLog - Synchronous Leveled Logging
// ============================================================================
//
// Package:     cmd
// Description: CLI command for the SWLog viewer TUI
// Author:      wnxy
// Created:     2026-08-19
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/wnxy/LogLibrary/internal/tui/logviewer"
	"github.com/wnxy/LogLibrary/utils/filex"
)

var (
	viewFile     string
	viewMaxLines int
	viewRefresh  time.Duration
)

var viewCmd = &cobra.Command{
	Use:     "view",
	Aliases: []string{"logs"},
	Short:   "Start the interactive log viewer",
	Long: `Starts the interactive SWLog viewer.

The viewer tails a log file from the log directory in an elegant
terminal UI:

  - Live refresh while the file grows
  - Filtering by log level (1-3)
  - Text search across message, function, and source file
  - Pause/resume and auto-scroll

Keyboard shortcuts:
  1-3         Toggle level (1=INFO, 2=WARNING, 3=ERROR)
  0           Show all levels
  /           Search (Enter applies, Esc clears)
  Tab         Switch to the next log file
  p / Space   Pause/Resume
  r           Refresh
  a           Toggle auto-scroll
  g / G       Jump to top / bottom
  PgUp/PgDn   Scroll
  c           Clear the view
  q / Ctrl+C  Quit`,
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)

	viewCmd.Flags().StringVar(&viewFile, "file", "",
		"log file to open (bare names are looked up in the log directory)")
	viewCmd.Flags().IntVar(&viewMaxLines, "max-lines", 1000,
		"maximum number of lines kept in the view")
	viewCmd.Flags().DurationVar(&viewRefresh, "refresh", 2*time.Second,
		"refresh interval")
}

func runView(cmd *cobra.Command, args []string) error {
	// Checked before the terminal switches to the alternate screen
	if !filex.IsDir(logDir) {
		err := fmt.Errorf("no log directory at %s", logDir)
		printError("starting viewer", err)
		return err
	}

	cfg := logviewer.Config{
		Dir:      logDir,
		File:     viewFile,
		MaxLines: viewMaxLines,
		Refresh:  viewRefresh,
	}

	return logviewer.Run(cfg)
}
