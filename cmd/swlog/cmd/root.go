package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wnxy/LogLibrary/core/log"
)

var (
	cfgFile string
	logDir  string
)

var rootCmd = &cobra.Command{
	Use:   "swlog",
	Short: "SWLog - synchronous leveled logging",
	Long: `SWLog is a minimal, synchronous, leveled logging facility.

Every emitted line carries a millisecond timestamp, the level tag, the
goroutine ID, and the call site, and is written durably before the call
returns.

Commands:
  emit     - drive the logger and produce output
  view     - interactive viewer for log files
  cat      - print a log file with level colors
  levels   - show the level ordering and filter rule
  version  - show version information`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "settings file, TOML or YAML")
	rootCmd.PersistentFlags().StringVar(&logDir, "dir", log.LogDirName, "log directory")
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
}
