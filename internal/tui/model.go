package tui

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/studiowebux/markpad/internal/keybinds"
	"github.com/studiowebux/markpad/internal/session"
	"github.com/studiowebux/markpad/internal/store"
	"github.com/studiowebux/markpad/internal/tui/editor"
)

// Mode represents the current TUI mode
type Mode int

const (
	ModeEdit Mode = iota
	ModeHelp
	ModePalette
	ModeCheatSheet
	ModeExportConfirm
	ModeQuitConfirm
)

// Pane identifiers for focus handling
const (
	PaneEditor  = "editor"
	PanePreview = "preview"
)

// statusTimeout is how long transient status and error messages stay on
// the status bar before auto-clearing.
const statusTimeout = 4 * time.Second

// Model represents the TUI state
type Model struct {
	// Core state
	ctrl     *session.Controller
	store    *store.Manager // nil when the database is unavailable
	keybinds *keybinds.Registry
	mode     Mode
	version  string

	// Panes
	editor      editor.Model
	preview     viewport.Model
	helpView    viewport.Model
	modalView   viewport.Model // Scrollable cheat sheet content
	focusedPane string         // PaneEditor or PanePreview

	lastDocVersion int // Editor version at the last controller sync

	// Preview renderer state (rebuilt when width or theme changes)
	glam         *glamour.TermRenderer
	previewWidth int
	previewTheme session.Theme

	// UI state
	width      int
	height     int
	fullscreen bool
	statusMsg  string
	errorMsg   string

	// Palette state
	paletteQuery   string
	paletteIndex   int
	paletteMatches []keybinds.Action

	// Export confirm state: basename pinned when the modal opens so the
	// confirmation writes exactly the paths it showed
	exportBase string
}

// Init initializes the TUI
func (m *Model) Init() tea.Cmd {
	return editor.Blink
}

// Cleanup releases resources when the program exits
func (m *Model) Cleanup() {
	if m.store != nil {
		if err := m.store.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "error closing draft store: %v\n", err)
		}
	}
}

// Update handles messages and updates the model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd = m.handleKeyPress(msg)

	case tea.MouseMsg:
		cmd = m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.updatePreview()
		m.updateHelpView()
		if m.mode == ModeCheatSheet {
			m.updateCheatSheet()
		}

	case exportedMsg:
		m.errorMsg = ""
		cmd = m.setStatusMessage(fmt.Sprintf("Draft exported to %s.md and %s.html", msg.base, msg.base))

	case copiedMsg:
		m.errorMsg = ""
		cmd = m.setStatusMessage(string(msg) + " copied to clipboard")

	case errorMsg:
		cmd = m.setErrorMessage(string(msg))

	case clearStatusMsg:
		m.statusMsg = ""

	case clearErrorMsg:
		m.errorMsg = ""

	default:
		// Component messages (cursor blink ticks) reach the editor even
		// between key presses
		if m.mode == ModeEdit {
			m.editor, cmd = m.editor.Update(msg)
		}
	}

	return m, cmd
}

// View renders the TUI
func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	switch m.mode {
	case ModeHelp:
		return m.renderHelp()
	case ModePalette:
		return m.renderPalette()
	case ModeCheatSheet:
		return m.renderCheatSheet()
	case ModeExportConfirm:
		return m.renderExportConfirm()
	case ModeQuitConfirm:
		return m.renderQuitConfirm()
	default:
		return m.renderMain()
	}
}

// syncFromEditor pushes the editor state into the controller after the
// editor consumed input. An edit runs the full synchronization cycle; a
// pure cursor move only updates the tracked selection.
func (m *Model) syncFromEditor() {
	if m.editor.Version() != m.lastDocVersion {
		m.lastDocVersion = m.editor.Version()
		m.ctrl.SetDocument(m.editor.Value(), m.editor.Selection())
		m.updatePreview()
		return
	}
	m.ctrl.SetSelection(m.editor.Selection())
}

// Custom message types
type exportedMsg struct {
	base string // Path without extension, shared by the .md and .html files
}

type copiedMsg string // Label of what landed on the clipboard

type clearStatusMsg struct{}
type clearErrorMsg struct{}

type errorMsg string

// Helper methods for transient messages that clear themselves
func (m *Model) setStatusMessage(msg string) tea.Cmd {
	m.statusMsg = msg
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (m *Model) setErrorMessage(msg string) tea.Cmd {
	m.errorMsg = msg
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearErrorMsg{}
	})
}
