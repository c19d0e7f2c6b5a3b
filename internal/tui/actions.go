package tui

import (
	"fmt"
	"path/filepath"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/markpad/internal/config"
	"github.com/studiowebux/markpad/internal/export"
	"github.com/studiowebux/markpad/internal/keybinds"
	"github.com/studiowebux/markpad/internal/markup"
)

// formatActions maps keybind actions to the markup insertions they trigger
var formatActions = map[keybinds.Action]markup.Action{
	keybinds.ActionFormatBold:          markup.ActionBold,
	keybinds.ActionFormatItalic:        markup.ActionItalic,
	keybinds.ActionFormatHeading:       markup.ActionHeading,
	keybinds.ActionFormatUnorderedList: markup.ActionUnorderedList,
	keybinds.ActionFormatOrderedList:   markup.ActionOrderedList,
	keybinds.ActionFormatLink:          markup.ActionLink,
	keybinds.ActionFormatImage:         markup.ActionImage,
	keybinds.ActionFormatInlineCode:    markup.ActionInlineCode,
	keybinds.ActionFormatCodeBlock:     markup.ActionCodeBlock,
	keybinds.ActionFormatQuote:         markup.ActionQuote,
	keybinds.ActionFormatStrikethrough: markup.ActionStrikethrough,
}

// dispatchAction runs a registry action. Key handlers and the command
// palette both land here.
func (m *Model) dispatchAction(action keybinds.Action) tea.Cmd {
	if mk, ok := formatActions[action]; ok {
		return m.applyFormat(mk)
	}

	switch action {
	case keybinds.ActionQuit:
		if m.ctrl.Dirty() {
			m.mode = ModeQuitConfirm
			return nil
		}
		m.Cleanup()
		return tea.Quit

	case keybinds.ActionQuitForce:
		m.Cleanup()
		return tea.Quit

	case keybinds.ActionSaveDocument:
		return m.saveDraft()

	case keybinds.ActionExportDocument:
		m.openExportConfirm()

	case keybinds.ActionCopyMarkdown:
		return m.copyMarkdown()

	case keybinds.ActionCopyHTML:
		return m.copyHTML()

	case keybinds.ActionSwitchFocus:
		if m.focusedPane == PaneEditor {
			m.setFocus(PanePreview)
		} else {
			m.setFocus(PaneEditor)
		}

	case keybinds.ActionToggleFullscreen:
		m.fullscreen = !m.fullscreen
		m.layout()
		m.updatePreview()

	case keybinds.ActionToggleTheme:
		m.toggleTheme()

	case keybinds.ActionToggleLineNumbers:
		m.editor.ShowLineNumbers = !m.editor.ShowLineNumbers

	case keybinds.ActionOpenPalette:
		m.openPalette()

	case keybinds.ActionOpenHelp:
		m.openHelp()

	case keybinds.ActionOpenCheatSheet:
		m.openCheatSheet()
	}

	return nil
}

// applyFormat inserts markup around the current selection and mirrors the
// result back into the editor widget.
func (m *Model) applyFormat(action markup.Action) tea.Cmd {
	m.syncFromEditor()

	if err := m.ctrl.ApplyAction(action); err != nil {
		return m.setErrorMessage(categorizeError(err))
	}

	m.editor.SetValue(string(m.ctrl.Document()))
	m.editor.SetSelection(m.ctrl.Selection())
	m.lastDocVersion = m.editor.Version()
	m.updatePreview()
	return nil
}

// saveDraft forces a persistence attempt for the current draft
func (m *Model) saveDraft() tea.Cmd {
	if !m.ctrl.Persistent() {
		return m.setErrorMessage("No draft store, changes stay in memory")
	}
	if !m.ctrl.Save() {
		return m.setErrorMessage("Draft could not be saved, it stays in memory")
	}
	return m.setStatusMessage("Draft saved")
}

// openExportConfirm pins the export basename so the dialog shows exactly
// the files the confirmation will write.
func (m *Model) openExportConfirm() {
	m.exportBase = filepath.Join(config.ExportsDir, export.TimestampedBase())
	m.mode = ModeExportConfirm
}

// exportDraft writes the pinned export paths in the background
func (m *Model) exportDraft() tea.Cmd {
	base := m.exportBase
	doc := m.ctrl.Document()
	fragment := m.ctrl.HTML()
	theme := m.ctrl.Theme()

	return func() tea.Msg {
		if err := export.WriteMarkdown(base+".md", doc); err != nil {
			return errorMsg(fmt.Sprintf("Markdown export failed: %s", categorizeError(err)))
		}
		if err := export.WriteHTML(base+".html", doc, fragment, theme); err != nil {
			return errorMsg(fmt.Sprintf("HTML export failed: %s", categorizeError(err)))
		}
		return exportedMsg{base: base}
	}
}

// copyMarkdown copies the raw Markdown source to the system clipboard
func (m *Model) copyMarkdown() tea.Cmd {
	doc := string(m.ctrl.Document())
	return func() tea.Msg {
		if err := clipboard.WriteAll(doc); err != nil {
			return errorMsg(categorizeError(err))
		}
		return copiedMsg("Markdown")
	}
}

// copyHTML copies the rendered HTML fragment to the system clipboard
func (m *Model) copyHTML() tea.Cmd {
	fragment := m.ctrl.HTML()
	return func() tea.Msg {
		if err := clipboard.WriteAll(fragment); err != nil {
			return errorMsg(categorizeError(err))
		}
		return copiedMsg("HTML")
	}
}

// toggleTheme flips dark/light, persists the choice, and restyles both panes
func (m *Model) toggleTheme() {
	m.ctrl.SetTheme(m.ctrl.Theme().Toggle())
	m.applyTheme(m.ctrl.Theme())
	m.updatePreview()
}

// openPalette resets the query and shows every palette action
func (m *Model) openPalette() {
	m.paletteQuery = ""
	m.paletteIndex = 0
	m.filterPalette()
	m.mode = ModePalette
}

func (m *Model) openHelp() {
	m.updateHelpView()
	m.helpView.GotoTop()
	m.mode = ModeHelp
}

func (m *Model) openCheatSheet() {
	m.updateCheatSheet()
	m.modalView.GotoTop()
	m.mode = ModeCheatSheet
}
