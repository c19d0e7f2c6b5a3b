/*
Package tui implements the terminal user interface for markpad.

# Architecture

The TUI follows the Bubble Tea framework's Model-Update-View pattern:
  - Model: Maintains all application state
  - Update: Processes messages and updates the model
  - View: Renders the current state to the terminal

# Key Components

  - model.go: The Model struct, modes, and the Update message switch
  - init.go: Model construction and the Run entry point
  - keys.go: Keyboard and mouse routing per mode and focused pane
  - actions.go: Keybind action dispatch and side effects (save, export, copy)
  - render.go: Main split view, status bar, and layout math
  - modals.go: Help and confirmation modals
  - editor/: The Markdown source editing widget

# Editing Model

The editor widget owns raw text interaction (cursor, selection, insertion,
syntax highlighting). Every content or selection change is synchronized into
the session.Controller, which renders the preview HTML, recounts words and
characters, and persists the draft. The preview pane shows the same document
through a glamour terminal renderer.

# Modal System

A Mode enum drives both input routing and rendering: ModeEdit is the
split-pane editor; ModeHelp, ModeCheatSheet, and ModePalette are scrollable
overlays; ModeExportConfirm and ModeQuitConfirm gate destructive or
file-writing actions behind a y/n prompt.

# Keybind System

Keybinds are managed through the keybinds.Registry:
  - Context-aware bindings (global, editor, preview, modal-specific)
  - User-customizable via keybinds.json
  - Multi-key sequences (gg) in scrollable contexts
  - Validation with conflict and unbound-action warnings at startup

# Threading Model

The TUI runs in a single goroutine (Bubble Tea's event loop). The session
controller relies on that: one mutation cycle runs to completion before the
next key is processed. Clipboard writes and file exports run as tea.Cmd
functions and report back through messages.

# Example Usage

	ctrl := session.NewController(converter.NewGoldmark(), manager)
	ctrl.Load()

	m := New(ctrl, manager, keybinds.NewDefaultRegistry(), "dev")
	program := tea.NewProgram(&m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := program.Run(); err != nil {
		log.Fatal().Err(err).Msg("TUI crashed")
	}
*/
package tui
