package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/studiowebux/markpad/internal/config"
	"github.com/studiowebux/markpad/internal/converter"
	"github.com/studiowebux/markpad/internal/keybinds"
	"github.com/studiowebux/markpad/internal/session"
	"github.com/studiowebux/markpad/internal/store"
	"github.com/studiowebux/markpad/internal/tui/editor"
)

// New creates a new TUI model around a loaded session controller
func New(ctrl *session.Controller, manager *store.Manager, kb *keybinds.Registry, version string) Model {
	ed := editor.New()
	ed.Language = "markdown"
	ed.Placeholder = "Start typing your draft..."
	ed.SetValue(string(ctrl.Document()))
	ed.SetSelection(ctrl.Selection())
	ed.Focus()

	m := Model{
		ctrl:         ctrl,
		store:        manager,
		keybinds:     kb,
		mode:         ModeEdit,
		version:      version,
		editor:       ed,
		preview:      viewport.New(80, 20),
		helpView:     viewport.New(80, 20),
		modalView:    viewport.New(80, 20),
		focusedPane:  PaneEditor,
		previewTheme: ctrl.Theme(),
	}
	m.lastDocVersion = m.editor.Version()
	m.applyTheme(ctrl.Theme())
	m.updateHelpView()

	return m
}

// Run starts the TUI
func Run(version string) error {
	// Initialize config
	if err := config.Initialize(); err != nil {
		return err
	}

	// Open the draft store. Editing continues in memory when it fails.
	manager, err := store.NewManager(config.DatabasePath)
	if err != nil {
		log.Warn().Err(err).Msg("Draft store unavailable, running without persistence")
		manager = nil
	}

	// Load session
	ctrl := session.NewController(converter.NewGoldmark(), manager)
	ctrl.Load()

	// Load keybinds. A broken config falls back to defaults so the editor
	// always starts.
	kb, err := keybinds.LoadOrDefault(config.GetKeybindsFilePath())
	if err != nil {
		log.Warn().Err(err).Msg("Ignoring keybinds config, using defaults")
		kb = keybinds.NewDefaultRegistry()
	}
	logKeybindWarnings(kb)

	// Create model
	m := New(ctrl, manager, kb, version)

	// Start TUI (pass pointer since Update uses pointer receiver)
	p := tea.NewProgram(&m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return err
	}

	return nil
}

// logKeybindWarnings surfaces validator warnings in the log file without
// blocking startup.
func logKeybindWarnings(kb *keybinds.Registry) {
	result := keybinds.NewValidator().ValidateRegistry(kb)
	for _, w := range result.Warnings {
		log.Warn().
			Str("context", string(w.Context)).
			Str("key", w.Key).
			Msg(w.Message)
	}
}
