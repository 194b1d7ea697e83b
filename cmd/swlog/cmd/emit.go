package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/wnxy/LogLibrary/core/config"
	"github.com/wnxy/LogLibrary/core/log"
)

var (
	emitConsole   bool
	emitFile      string
	emitTruncate  bool
	emitThreshold string
	emitCount     int
	emitInterval  time.Duration
	emitLong      bool
)

var emitCmd = &cobra.Command{
	Use:   "emit",
	Short: "Write demo log records through the facility",
	Long: `Initializes a logger and writes a batch of records through it,
cycling through the info, warning, and error levels. Useful for
producing sample output for the viewer and for trying out filter
thresholds.

Without --console the records go to a file under the Log directory
of the current working directory.

Examples:
  swlog emit
  swlog emit --console --count 5
  swlog emit --threshold warning
  swlog emit --config settings.toml --count 20 --interval 500ms`,
	RunE: runEmit,
}

func init() {
	rootCmd.AddCommand(emitCmd)

	emitCmd.Flags().BoolVar(&emitConsole, "console", false, "log to stdout instead of a file")
	emitCmd.Flags().StringVar(&emitFile, "file", "swlog_demo.log", "log file name (file destination only)")
	emitCmd.Flags().BoolVar(&emitTruncate, "truncate", false, "truncate messages longer than 256 characters")
	emitCmd.Flags().StringVar(&emitThreshold, "threshold", "none", "filter threshold (none, info, warning, error)")
	emitCmd.Flags().IntVar(&emitCount, "count", 10, "number of records to write")
	emitCmd.Flags().DurationVar(&emitInterval, "interval", 0, "pause between records")
	emitCmd.Flags().BoolVar(&emitLong, "long", false, "include an oversized message to demonstrate truncation")
}

func runEmit(cmd *cobra.Command, args []string) error {
	logger := log.New()

	if cfgFile != "" {
		settings, err := config.LoadInto(cfgFile, logger)
		if err != nil {
			printError("loading configuration", err)
			return err
		}
		fmt.Printf("Configuration: %s\n", settings)
	} else {
		threshold, err := log.ParseLevel(emitThreshold)
		if err != nil {
			printError("parsing threshold", err)
			return err
		}
		err = logger.InitWithConfig(log.Config{
			ToFile:          !emitConsole,
			FileName:        emitFile,
			TruncateLongLog: emitTruncate,
			LevelThreshold:  threshold,
		})
		if err != nil {
			printError("initializing logger", err)
			return err
		}
	}
	defer logger.Shutdown()

	// Tag the batch so its records are easy to find in a shared file
	runID := uuid.NewString()[:8]

	emitted := 0
	dropped := 0
	note := func(ok bool) {
		if ok {
			emitted++
		} else {
			dropped++
		}
	}

	for i := 1; i <= emitCount; i++ {
		switch i % 3 {
		case 1:
			note(logger.Infof("run %s message %d of %d", runID, i, emitCount))
		case 2:
			note(logger.Warningf("run %s message %d of %d", runID, i, emitCount))
		case 0:
			note(logger.Errorf("run %s message %d of %d", runID, i, emitCount))
		}
		if emitInterval > 0 && i < emitCount {
			time.Sleep(emitInterval)
		}
	}

	if emitLong {
		note(logger.Infof("run %s oversized payload %s", runID, strings.Repeat("x", 400)))
	}

	fmt.Printf("Run %s: %d emitted, %d filtered\n", runID, emitted, dropped)
	if logger.FileBacked() {
		fmt.Printf("Output: %s\n", logger.FilePath())
	} else {
		fmt.Println("Output: console")
	}
	return nil
}
