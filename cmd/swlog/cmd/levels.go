package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/wnxy/LogLibrary/core/log"
)

// Shared output styles, same palette as the viewer
var (
	headingStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8B5CF6"))
	mutedStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))
	levelNoneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#64748B"))
	levelInfoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4")).Bold(true)
	levelWarningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")).Bold(true)
	levelErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)
)

// styleFor picks the output style of a level
func styleFor(level log.Level) lipgloss.Style {
	switch level {
	case log.LevelInfo:
		return levelInfoStyle
	case log.LevelWarning:
		return levelWarningStyle
	case log.LevelError:
		return levelErrorStyle
	default:
		return levelNoneStyle
	}
}

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show the level ordering and filter rule",
	Long: `Shows the log levels, their numeric ordering, and which messages
pass which threshold.

A message is emitted when its level is numerically above the logger's
threshold. The threshold level itself is filtered.`,
	Run: runLevels,
}

func init() {
	rootCmd.AddCommand(levelsCmd)
}

func runLevels(cmd *cobra.Command, args []string) {
	fmt.Println(headingStyle.Render("SWLog Levels"))
	fmt.Println("============")
	fmt.Println()

	fmt.Printf("  %-6s %-10s %s\n", "VALUE", "NAME", "TAG")
	fmt.Println("  " + strings.Repeat("-", 30))
	for _, level := range log.AllLevels() {
		tag := level.Tag()
		if tag == "" {
			tag = "(untagged)"
		}
		// Pad before styling so the ANSI codes do not skew the columns
		name := styleFor(level).Render(fmt.Sprintf("%-10s", level.String()))
		fmt.Printf("  %-6d %s %s\n", int(level), name, tag)
	}

	fmt.Println()
	fmt.Println("A message is emitted when its level is above the threshold:")
	fmt.Println()

	emitters := []log.Level{log.LevelInfo, log.LevelWarning, log.LevelError}

	header := fmt.Sprintf("  %-11s", "THRESHOLD")
	for _, level := range emitters {
		header += fmt.Sprintf("%-9s", level.String())
	}
	fmt.Println(mutedStyle.Render(header))

	for _, threshold := range log.AllLevels() {
		row := fmt.Sprintf("  %-11s", threshold.String())
		for _, level := range emitters {
			mark := "-"
			if level.ShouldEmit(threshold) {
				mark = "yes"
			}
			row += fmt.Sprintf("%-9s", mark)
		}
		fmt.Println(row)
	}

	fmt.Println()
	fmt.Println(mutedStyle.Render("The default threshold is none: every tagged level is emitted."))
	fmt.Println(mutedStyle.Render("A threshold of error silences the logger entirely."))
}
