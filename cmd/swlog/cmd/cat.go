package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wnxy/LogLibrary/internal/tui/logviewer"
	"github.com/wnxy/LogLibrary/utils/filex"
)

var catTail int

var catCmd = &cobra.Command{
	Use:   "cat [file]",
	Short: "Print a log file with colored levels",
	Long: `Prints a log file to stdout with level badges and dimmed metadata.

Without an argument the newest file in the log directory is printed.
Bare file names are looked up in the log directory, paths are used
as given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCat,
}

func init() {
	rootCmd.AddCommand(catCmd)

	catCmd.Flags().IntVar(&catTail, "tail", 0, "print only the last N lines (0 = all)")
}

// resolveLogFile turns the optional argument into the path to print
func resolveLogFile(args []string) (string, error) {
	if len(args) == 1 {
		path := args[0]
		if !strings.ContainsAny(path, `/\`) {
			path = filepath.Join(logDir, path)
		}
		if !filex.IsFile(path) {
			return "", fmt.Errorf("no log file at %s", path)
		}
		return path, nil
	}

	files, err := filex.ListFiles(logDir, "")
	if err != nil {
		return "", fmt.Errorf("listing %s: %w", logDir, err)
	}
	if len(files) == 0 {
		return "", fmt.Errorf("no log files in %s", logDir)
	}

	newest := files[0]
	for _, f := range files[1:] {
		if f.ModTime.After(newest.ModTime) {
			newest = f
		}
	}
	return newest.Path, nil
}

func runCat(cmd *cobra.Command, args []string) error {
	path, err := resolveLogFile(args)
	if err != nil {
		printError("resolving log file", err)
		return err
	}

	var lines []string
	if catTail > 0 {
		lines, err = filex.ReadLastLines(path, catTail)
		if err == nil {
			if total, countErr := filex.LineCount(path); countErr == nil && total > len(lines) {
				fmt.Println(mutedStyle.Render(fmt.Sprintf("... %d earlier lines in %s", total-len(lines), filepath.Base(path))))
			}
		}
	} else {
		lines, err = filex.ReadLines(path)
	}
	if err != nil {
		printError("reading log file", err)
		return err
	}

	for _, line := range lines {
		if line == "" {
			continue
		}
		entry := logviewer.ParseLine(line)
		if !entry.Parsed {
			fmt.Println(mutedStyle.Render(line))
			continue
		}
		origin := fmt.Sprintf("%s:%d %s", entry.File, entry.Line, entry.Function)
		fmt.Printf("%s %s %s %s\n",
			mutedStyle.Render(entry.Timestamp.Format("2006-01-02 15:04:05.000")),
			logviewer.RenderLevelBadge(entry.Level),
			mutedStyle.Render(origin),
			entry.Message,
		)
	}
	return nil
}
