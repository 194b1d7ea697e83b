// ============================================================================
// SWLog - Synchronous Leveled Logging
// ============================================================================
//
// Package:     logviewer
// Description: Styles for the log viewer TUI
// Author:      wnxy
// Created:     2026-08-19
// License:     MIT
// ============================================================================

package logviewer

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette, shared with the other terminal tools of this project
var (
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorSuccess   = lipgloss.Color("#10B981") // Emerald
	ColorWarning   = lipgloss.Color("#F59E0B") // Amber
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorDimmed    = lipgloss.Color("#374151") // Dark Gray

	ColorBgPanel = lipgloss.Color("#1E293B") // Slate 800

	ColorText      = lipgloss.Color("#F8FAFC") // Slate 50
	ColorTextMuted = lipgloss.Color("#94A3B8") // Slate 400
	ColorTextDim   = lipgloss.Color("#64748B") // Slate 500
)

// Logo/Header styles
var (
	LogoStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)
)

// Log entry styles
var (
	LogTimestampStyle = lipgloss.NewStyle().
				Foreground(ColorTextDim)

	LogOriginStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	LogThreadStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	LogMessageStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	LogLevelInfoStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Bold(true)

	LogLevelWarningStyle = lipgloss.NewStyle().
				Foreground(ColorWarning).
				Bold(true)

	LogLevelErrorStyle = lipgloss.NewStyle().
				Foreground(ColorError).
				Bold(true)

	LogLevelUntaggedStyle = lipgloss.NewStyle().
				Foreground(ColorTextDim)
)

// Panel/Box styles
var (
	LogPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDimmed).
			Padding(0, 1)

	FilterBarStyle = lipgloss.NewStyle().
			Background(ColorBgPanel).
			Foreground(ColorText).
			Padding(0, 1)
)

// Status bar styles
var (
	StatusBarStyle = lipgloss.NewStyle().
			Background(ColorBgPanel).
			Foreground(ColorText).
			Padding(0, 1)

	StatusWatchingStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess).
				Bold(true)

	StatusPausedStyle = lipgloss.NewStyle().
				Foreground(ColorWarning).
				Bold(true)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(ColorError).
				Bold(true)
)

// Help styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// Filter badge styles
var (
	FilterActiveStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess).
				Bold(true)

	FilterInactiveStyle = lipgloss.NewStyle().
				Foreground(ColorTextDim)
)

// Title panel style
var (
	TitlePanelStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 2).
			MarginBottom(1)
)

// Status markers
const (
	IconWatching = "● "
	IconPaused   = "■ "
)

// Logo
const Logo = "SWLog Viewer"

// RenderKeyHint renders a keyboard shortcut hint
func RenderKeyHint(key, description string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(description)
}

// RenderLevelBadge renders a log level badge, padded so messages align
func RenderLevelBadge(level string) string {
	switch level {
	case "INFO":
		return LogLevelInfoStyle.Render("[INFO]   ")
	case "WARNING":
		return LogLevelWarningStyle.Render("[WARNING]")
	case "ERROR":
		return LogLevelErrorStyle.Render("[ERROR]  ")
	default:
		return LogLevelUntaggedStyle.Render("[     ]  ")
	}
}

// RenderFilterStatus renders a filter status indicator
func RenderFilterStatus(name string, active bool) string {
	if active {
		return FilterActiveStyle.Render(name)
	}
	return FilterInactiveStyle.Render(name)
}
