// ============================================================================
// SWLog - Synchronous Leveled Logging
// ============================================================================
//
// Package:     logviewer
// Description: Main Bubbletea model for the log viewer
// Author:      wnxy
// Created:     2026-08-19
// License:     MIT
// ============================================================================

package logviewer

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wnxy/LogLibrary/core/log"
	"github.com/wnxy/LogLibrary/utils/filex"
)

// Version is set during build
var Version = "0.1.0"

// LevelFilter tracks which log levels are shown. Untagged lines are not
// subject to level filtering.
type LevelFilter struct {
	Info    bool
	Warning bool
	Error   bool
}

// Model is the main Bubbletea model for the log viewer
type Model struct {
	// State
	width      int
	height     int
	ready      bool
	loading    bool
	paused     bool
	autoScroll bool
	searching  bool
	err        error

	// Components
	viewport viewport.Model
	spinner  spinner.Model
	search   textinput.Model

	// Log state
	entries      []Entry
	filtered     []Entry
	levelFilter  LevelFilter
	searchFilter string

	// File state
	files     []filex.FileInfo
	fileIndex int
	fileSize  int64

	// Configuration
	dir          string
	explicitFile string
	preferred    string
	maxLines     int
	refresh      time.Duration
}

// Config holds viewer configuration
type Config struct {
	Dir      string        // Directory scanned for log files
	File     string        // Specific file; bare names select within Dir
	MaxLines int           // Lines read from the end of the file
	Refresh  time.Duration // Reload interval
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		Dir:      log.LogDirName,
		MaxLines: 1000,
		Refresh:  2 * time.Second,
	}
}

// New creates a new viewer model
func New(cfg Config) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ColorPrimary)

	ti := textinput.New()
	ti.Placeholder = "search"
	ti.Prompt = "/"
	ti.CharLimit = 64
	ti.Width = 24

	m := Model{
		spinner: sp,
		search:  ti,
		entries: []Entry{},
		levelFilter: LevelFilter{
			Info:    true,
			Warning: true,
			Error:   true,
		},
		autoScroll: true,
		loading:    true,
		dir:        cfg.Dir,
		maxLines:   cfg.MaxLines,
		refresh:    cfg.Refresh,
	}

	if m.dir == "" {
		m.dir = log.LogDirName
	}
	if m.maxLines <= 0 {
		m.maxLines = 1000
	}
	if m.refresh <= 0 {
		m.refresh = 2 * time.Second
	}

	if cfg.File != "" {
		if strings.ContainsAny(cfg.File, `/\`) {
			m.explicitFile = cfg.File
		} else {
			m.preferred = cfg.File
		}
	}

	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.spinner.Tick,
		tea.EnterAltScreen,
		m.scheduleTick(),
	}

	if m.explicitFile != "" {
		cmds = append(cmds, m.loadEntries)
	} else {
		cmds = append(cmds, m.loadFiles)
	}

	return tea.Batch(cmds...)
}

// scheduleTick arms the next reload tick
func (m Model) scheduleTick() tea.Cmd {
	return tea.Tick(m.refresh, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 4 // Title + filter bar
		footerHeight := 4 // Status bar + help
		viewportHeight := msg.Height - headerHeight - footerHeight

		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = viewportHeight
		}
		m.updateViewportContent()

	case spinner.TickMsg:
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case filesLoadedMsg:
		if msg.err != nil {
			m.loading = false
			m.err = msg.err
		} else {
			m.err = nil
			m.reselectFile(msg.files)
			if len(m.files) > 0 {
				cmds = append(cmds, m.loadEntries)
			} else {
				m.loading = false
			}
		}

	case entriesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.err = nil
			m.entries = msg.entries
			m.fileSize = msg.size
			m.applyFilters()
			m.updateViewportContent()
			if m.autoScroll {
				m.viewport.GotoBottom()
			}
		}

	case tickMsg:
		if !m.paused {
			if m.currentPath() == "" {
				cmds = append(cmds, m.loadFiles)
			} else {
				cmds = append(cmds, m.loadEntries)
			}
		}
		cmds = append(cmds, m.scheduleTick())
	}

	// Update viewport
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The search input owns the keyboard while active
	if m.searching {
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit

		case tea.KeyEnter:
			m.searching = false
			m.search.Blur()
			m.searchFilter = m.search.Value()
			m.applyFilters()
			m.updateViewportContent()
			return m, nil

		case tea.KeyEsc:
			m.searching = false
			m.search.Blur()
			m.search.SetValue("")
			m.searchFilter = ""
			m.applyFilters()
			m.updateViewportContent()
			return m, nil
		}

		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}

	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyTab:
		return m.cycleFile(1)

	case tea.KeyShiftTab:
		return m.cycleFile(-1)

	case tea.KeySpace:
		m.paused = !m.paused
		return m, nil

	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "q":
			return m, tea.Quit

		// Log level filters - number keys
		case "1":
			m.levelFilter.Info = !m.levelFilter.Info
			m.applyFilters()
			m.updateViewportContent()
			return m, nil
		case "2":
			m.levelFilter.Warning = !m.levelFilter.Warning
			m.applyFilters()
			m.updateViewportContent()
			return m, nil
		case "3":
			m.levelFilter.Error = !m.levelFilter.Error
			m.applyFilters()
			m.updateViewportContent()
			return m, nil

		// Show all levels
		case "0":
			m.levelFilter = LevelFilter{
				Info:    true,
				Warning: true,
				Error:   true,
			}
			m.applyFilters()
			m.updateViewportContent()
			return m, nil

		// Pause/Resume
		case "p":
			m.paused = !m.paused
			return m, nil

		// Refresh, rescanning the directory
		case "r":
			m.loading = true
			if m.explicitFile != "" {
				return m, m.loadEntries
			}
			return m, m.loadFiles

		// Auto-scroll toggle
		case "a":
			m.autoScroll = !m.autoScroll
			if m.autoScroll {
				m.viewport.GotoBottom()
			}
			return m, nil

		// Clear display until the next reload
		case "c":
			m.entries = []Entry{}
			m.filtered = []Entry{}
			m.updateViewportContent()
			return m, nil

		// Search
		case "/":
			m.searching = true
			m.search.SetValue(m.searchFilter)
			return m, m.search.Focus()

		// Go to top
		case "g":
			m.viewport.GotoTop()
			m.autoScroll = false
			return m, nil

		// Go to bottom
		case "G":
			m.viewport.GotoBottom()
			m.autoScroll = true
			return m, nil
		}

	case tea.KeyPgUp:
		m.viewport.ViewUp()
		m.autoScroll = false
		return m, nil

	case tea.KeyPgDown:
		m.viewport.ViewDown()
		return m, nil

	case tea.KeyUp:
		m.viewport.LineUp(1)
		m.autoScroll = false
		return m, nil

	case tea.KeyDown:
		m.viewport.LineDown(1)
		return m, nil
	}

	return m, nil
}

// cycleFile moves the selection through the directory listing
func (m Model) cycleFile(step int) (tea.Model, tea.Cmd) {
	if m.explicitFile != "" || len(m.files) < 2 {
		return m, nil
	}

	m.fileIndex = (m.fileIndex + step + len(m.files)) % len(m.files)
	m.loading = true
	m.entries = []Entry{}
	m.filtered = []Entry{}
	m.updateViewportContent()
	return m, m.loadEntries
}

// reselectFile replaces the file listing, keeping the current selection
// when the file still exists and falling back to the newest file.
func (m *Model) reselectFile(files []filex.FileInfo) {
	current := m.preferred
	if len(m.files) > 0 && m.fileIndex < len(m.files) {
		current = m.files[m.fileIndex].Name
	}

	m.files = files
	m.fileIndex = 0
	if len(files) == 0 {
		return
	}

	if current != "" {
		for i, f := range files {
			if f.Name == current {
				m.fileIndex = i
				return
			}
		}
	}

	for i, f := range files {
		if f.ModTime.After(files[m.fileIndex].ModTime) {
			m.fileIndex = i
		}
	}
}

// currentPath returns the path of the file being viewed
func (m Model) currentPath() string {
	if m.explicitFile != "" {
		return m.explicitFile
	}
	if len(m.files) == 0 {
		return ""
	}
	return m.files[m.fileIndex].Path
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Loading viewer..."
	}

	var b strings.Builder

	// Header with logo and file
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	// Filter bar
	b.WriteString(m.renderFilterBar())
	b.WriteString("\n")

	// Log viewport
	b.WriteString(m.renderLogArea())
	b.WriteString("\n")

	// Status bar
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")

	// Help bar
	b.WriteString(m.renderHelpBar())

	return b.String()
}

// renderHeader renders the header with logo, file name, and watch state
func (m Model) renderHeader() string {
	logo := LogoStyle.Render(Logo)

	fileName := "no log file"
	if path := m.currentPath(); path != "" {
		fileName = filepath.Base(path)
	}
	file := HeaderStyle.Render(fileName)

	var status string
	if m.paused {
		status = StatusPausedStyle.Render(IconPaused + "PAUSED")
	} else {
		status = StatusWatchingStyle.Render(IconWatching + "watching")
	}

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		logo,
		strings.Repeat(" ", 3),
		file,
		strings.Repeat(" ", 3),
		status,
	)

	return TitlePanelStyle.Width(m.width - 4).Render(header)
}

// renderFilterBar renders the log level filter bar
func (m Model) renderFilterBar() string {
	filters := []string{
		fmt.Sprintf("1:%s", RenderFilterStatus("INFO", m.levelFilter.Info)),
		fmt.Sprintf("2:%s", RenderFilterStatus("WARNING", m.levelFilter.Warning)),
		fmt.Sprintf("3:%s", RenderFilterStatus("ERROR", m.levelFilter.Error)),
	}

	visibleCount := len(m.filtered)
	totalCount := len(m.entries)

	filterStr := strings.Join(filters, "  ")
	countStr := HelpDescStyle.Render(fmt.Sprintf("[%d/%d lines]", visibleCount, totalCount))

	scrollStr := ""
	if m.autoScroll {
		scrollStr = "  " + FilterActiveStyle.Render("[Auto-Scroll]")
	}

	searchStr := ""
	if m.searching {
		searchStr = "  " + m.search.View()
	} else if m.searchFilter != "" {
		searchStr = "  " + FilterActiveStyle.Render("[/"+m.searchFilter+"]")
	}

	content := filterStr + "  " + countStr + scrollStr + searchStr

	return FilterBarStyle.Width(m.width - 2).Render(content)
}

// renderLogArea renders the main log viewport
func (m Model) renderLogArea() string {
	style := LogPanelStyle.Width(m.width - 2).Height(m.viewport.Height + 2)
	return style.Render(m.viewport.View())
}

// renderStatusBar renders the status bar
func (m Model) renderStatusBar() string {
	// Left: file size
	leftPart := HelpDescStyle.Render(fmt.Sprintf("Size: %s", filex.FormatSize(m.fileSize)))

	// Center: Version
	centerPart := HelpDescStyle.Render("v" + Version)

	// Right: load state
	var rightPart string
	if m.loading {
		rightPart = m.spinner.View() + " loading..."
	} else if m.err != nil {
		rightPart = StatusErrorStyle.Render(m.err.Error())
	} else {
		rightPart = HelpDescStyle.Render(m.dir)
	}

	// Calculate padding
	leftLen := lipgloss.Width(leftPart)
	centerLen := lipgloss.Width(centerPart)
	rightLen := lipgloss.Width(rightPart)
	totalLen := leftLen + centerLen + rightLen
	availableSpace := m.width - totalLen - 4
	if availableSpace < 2 {
		availableSpace = 2
	}
	leftPadding := availableSpace / 2
	rightPadding := availableSpace - leftPadding

	content := leftPart + strings.Repeat(" ", leftPadding) + centerPart + strings.Repeat(" ", rightPadding) + rightPart

	return StatusBarStyle.Width(m.width - 2).Render(content)
}

// renderHelpBar renders the help shortcuts bar
func (m Model) renderHelpBar() string {
	items := []string{
		RenderKeyHint("1-3", "Levels"),
		RenderKeyHint("0", "All"),
		RenderKeyHint("/", "Search"),
		RenderKeyHint("Tab", "Next file"),
		RenderKeyHint("p", "Pause"),
		RenderKeyHint("r", "Refresh"),
		RenderKeyHint("a", "AutoScroll"),
		RenderKeyHint("g/G", "Top/Bottom"),
		RenderKeyHint("q", "Quit"),
	}

	return HelpStyle.Render(strings.Join(items, "  "))
}

// updateViewportContent updates the viewport with filtered entries
func (m *Model) updateViewportContent() {
	var content strings.Builder

	for _, e := range m.filtered {
		content.WriteString(m.renderEntry(e))
		content.WriteString("\n")
	}

	m.viewport.SetContent(content.String())
}

// renderEntry formats one entry as a viewer line
func (m Model) renderEntry(e Entry) string {
	if !e.Parsed {
		return LogLevelUntaggedStyle.Render(e.Message)
	}

	timeStr := LogTimestampStyle.Render(e.Timestamp.Format("15:04:05.000"))
	levelStr := RenderLevelBadge(e.Level)
	threadStr := LogThreadStyle.Render(fmt.Sprintf("#%-4d", e.ThreadID))

	origin := fmt.Sprintf("%s:%d %s", e.File, e.Line, e.Function)
	originStr := LogOriginStyle.Render(fmt.Sprintf("[%-28s]", truncateString(origin, 28)))

	msgStr := LogMessageStyle.Render(e.Message)

	return fmt.Sprintf("%s %s %s %s %s", timeStr, levelStr, threadStr, originStr, msgStr)
}

// applyFilters filters entries based on current filter settings
func (m *Model) applyFilters() {
	m.filtered = make([]Entry, 0, len(m.entries))

	for _, e := range m.entries {
		// Check level filter
		switch e.Level {
		case "INFO":
			if !m.levelFilter.Info {
				continue
			}
		case "WARNING":
			if !m.levelFilter.Warning {
				continue
			}
		case "ERROR":
			if !m.levelFilter.Error {
				continue
			}
		}

		// Check search filter
		if m.searchFilter != "" {
			needle := strings.ToLower(m.searchFilter)
			if !strings.Contains(strings.ToLower(e.Message), needle) &&
				!strings.Contains(strings.ToLower(e.Function), needle) &&
				!strings.Contains(strings.ToLower(e.File), needle) {
				continue
			}
		}

		m.filtered = append(m.filtered, e)
	}
}

// loadFiles scans the log directory
func (m Model) loadFiles() tea.Msg {
	files, err := filex.ListFiles(m.dir, "")
	if err != nil {
		return filesLoadedMsg{err: err}
	}
	return filesLoadedMsg{files: files}
}

// loadEntries reads and parses the tail of the current log file
func (m Model) loadEntries() tea.Msg {
	path := m.currentPath()
	if path == "" {
		return entriesLoadedMsg{err: fmt.Errorf("no log files in %s", m.dir)}
	}

	lines, err := filex.ReadLastLines(path, m.maxLines)
	if err != nil {
		return entriesLoadedMsg{path: path, err: err}
	}

	size, _ := filex.Size(path)

	return entriesLoadedMsg{
		entries: ParseLines(lines),
		path:    path,
		size:    size,
	}
}

// truncateString truncates a string to max length
func truncateString(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "~"
}

// Run starts the viewer TUI
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
