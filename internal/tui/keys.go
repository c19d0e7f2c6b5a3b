package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/markpad/internal/keybinds"
)

// handleKeyPress routes key presses based on current mode
func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	// Global escape hatch, works even with a broken keybinds config
	if msg.String() == "ctrl+c" {
		m.Cleanup()
		return tea.Quit
	}

	// Mode-specific handling
	switch m.mode {
	case ModeHelp:
		return m.handleHelpKeys(msg)
	case ModePalette:
		return m.handlePaletteKeys(msg)
	case ModeCheatSheet:
		return m.handleCheatSheetKeys(msg)
	case ModeExportConfirm:
		return m.handleExportConfirmKeys(msg)
	case ModeQuitConfirm:
		return m.handleQuitConfirmKeys(msg)
	}

	if m.focusedPane == PanePreview {
		return m.handlePreviewKeys(msg)
	}
	return m.handleEditorKeys(msg)
}

// handleEditorKeys feeds keys to the editor pane. Registry-bound keys win,
// everything else is text input for the editor widget.
func (m *Model) handleEditorKeys(msg tea.KeyMsg) tea.Cmd {
	if action, ok := m.keybinds.Match(keybinds.ContextEditor, msg.String()); ok {
		return m.dispatchAction(action)
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	m.syncFromEditor()
	return cmd
}

// handlePreviewKeys handles navigation while the preview pane is focused
func (m *Model) handlePreviewKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok, partial := m.keybinds.MatchMultiKey(keybinds.ContextPreview, msg.String())
	if partial {
		// First key of a sequence (e.g. first 'g' in 'gg')
		return nil
	}
	if !ok {
		return nil
	}

	switch action {
	case keybinds.ActionNavigateUp:
		m.preview.LineUp(1)
	case keybinds.ActionNavigateDown:
		m.preview.LineDown(1)
	case keybinds.ActionPageUp:
		m.preview.ViewUp()
	case keybinds.ActionPageDown:
		m.preview.ViewDown()
	case keybinds.ActionHalfPageUp:
		m.preview.HalfViewUp()
	case keybinds.ActionHalfPageDown:
		m.preview.HalfViewDown()
	case keybinds.ActionGoToTop:
		m.preview.GotoTop()
	case keybinds.ActionGoToBottom:
		m.preview.GotoBottom()
	default:
		return m.dispatchAction(action)
	}

	return nil
}

// handleHelpKeys handles input in the help viewer
func (m *Model) handleHelpKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok, partial := m.keybinds.MatchMultiKey(keybinds.ContextHelp, msg.String())
	if partial || !ok {
		return nil
	}

	switch action {
	case keybinds.ActionCloseModal:
		m.closeModal(keybinds.ContextHelp)
	case keybinds.ActionNavigateUp:
		m.helpView.LineUp(1)
	case keybinds.ActionNavigateDown:
		m.helpView.LineDown(1)
	case keybinds.ActionPageUp:
		m.helpView.ViewUp()
	case keybinds.ActionPageDown:
		m.helpView.ViewDown()
	case keybinds.ActionGoToTop:
		m.helpView.GotoTop()
	case keybinds.ActionGoToBottom:
		m.helpView.GotoBottom()
	}

	return nil
}

// handleCheatSheetKeys handles input in the Markdown cheat sheet
func (m *Model) handleCheatSheetKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok, partial := m.keybinds.MatchMultiKey(keybinds.ContextCheatSheet, msg.String())
	if partial || !ok {
		return nil
	}

	switch action {
	case keybinds.ActionCloseModal:
		m.closeModal(keybinds.ContextCheatSheet)
	case keybinds.ActionNavigateUp:
		m.modalView.LineUp(1)
	case keybinds.ActionNavigateDown:
		m.modalView.LineDown(1)
	case keybinds.ActionPageUp:
		m.modalView.ViewUp()
	case keybinds.ActionPageDown:
		m.modalView.ViewDown()
	case keybinds.ActionGoToTop:
		m.modalView.GotoTop()
	case keybinds.ActionGoToBottom:
		m.modalView.GotoBottom()
	}

	return nil
}

// handlePaletteKeys handles input in the command palette
func (m *Model) handlePaletteKeys(msg tea.KeyMsg) tea.Cmd {
	if action, ok := m.keybinds.Match(keybinds.ContextPalette, msg.String()); ok {
		switch action {
		case keybinds.ActionTextCancel:
			m.mode = ModeEdit
			return nil

		case keybinds.ActionTextSubmit:
			if len(m.paletteMatches) == 0 {
				m.mode = ModeEdit
				return nil
			}
			selected := m.paletteMatches[m.paletteIndex]
			m.mode = ModeEdit
			return m.dispatchAction(selected)

		case keybinds.ActionTextBackspace:
			if m.paletteQuery != "" {
				runes := []rune(m.paletteQuery)
				m.paletteQuery = string(runes[:len(runes)-1])
				m.filterPalette()
			}
			return nil

		case keybinds.ActionNavigateUp:
			if m.paletteIndex > 0 {
				m.paletteIndex--
			}
			return nil

		case keybinds.ActionNavigateDown:
			if m.paletteIndex < len(m.paletteMatches)-1 {
				m.paletteIndex++
			}
			return nil
		}
		// Global bindings matched above fall through to text input
	}

	// Typed characters narrow the query
	if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
		m.paletteQuery += string(msg.Runes)
		m.filterPalette()
	}

	return nil
}

// handleExportConfirmKeys handles the export confirmation dialog
func (m *Model) handleExportConfirmKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keybinds.Match(keybinds.ContextExport, msg.String())
	if !ok {
		return nil
	}

	switch action {
	case keybinds.ActionConfirm:
		m.mode = ModeEdit
		return m.exportDraft()
	case keybinds.ActionCancel:
		m.mode = ModeEdit
	}

	return nil
}

// handleQuitConfirmKeys handles the unsaved-changes confirmation dialog
func (m *Model) handleQuitConfirmKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keybinds.Match(keybinds.ContextConfirm, msg.String())
	if !ok {
		return nil
	}

	switch action {
	case keybinds.ActionConfirm:
		m.Cleanup()
		return tea.Quit
	case keybinds.ActionCancel:
		m.mode = ModeEdit
	}

	return nil
}

// closeModal returns to the editor, dropping any half-typed key sequence
// in the modal's context.
func (m *Model) closeModal(context keybinds.Context) {
	m.keybinds.ClearMultiKeyState(context)
	m.mode = ModeEdit
}

// setFocus moves focus between the editor and preview panes
func (m *Model) setFocus(pane string) {
	m.focusedPane = pane
	if pane == PaneEditor {
		m.editor.Focus()
	} else {
		m.editor.Blur()
	}
	m.layout()
}

// handleMouse routes mouse events to the pane under the pointer
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.mode != ModeEdit {
		return nil
	}

	editorWidth, _ := m.paneWidths()
	overPreview := msg.X >= editorWidth

	switch {
	case msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown:
		if overPreview {
			if msg.Button == tea.MouseButtonWheelUp {
				m.preview.LineUp(3)
			} else {
				m.preview.LineDown(3)
			}
			return nil
		}

	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
		if overPreview {
			if m.focusedPane != PanePreview {
				m.setFocus(PanePreview)
			}
			return nil
		}
		if m.focusedPane != PaneEditor {
			m.setFocus(PaneEditor)
		}
	}

	// Shift into the editor's local coordinates (pane border is 1 cell).
	// Drags and releases are forwarded even when the pointer crosses into
	// the preview so a selection can finish where it started.
	local := msg
	local.X = msg.X - 1
	local.Y = msg.Y - 1

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(local)
	m.syncFromEditor()
	return cmd
}
