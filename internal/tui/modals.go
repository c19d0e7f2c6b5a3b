package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/studiowebux/markpad/internal/keybinds"
)

// renderHelp renders the keybinding help screen
func (m Model) renderHelp() string {
	title := styleTitle.Render("Keyboard Shortcuts")

	footer := "↑/↓ j/k: scroll | gg/G: top/bottom | ESC/?: close"

	// Footer stays outside the viewport so it is always visible
	fullContent := title + "\n\n" + m.helpView.View() + "\n\n" + styleSubtle.Render(footer)

	helpView := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBlue).
		Width(m.width - ModalWidthMarginNarrow).
		Height(m.height - ModalHeightMarginMed).
		Padding(1, 2).
		Render(fullContent)

	// Center the help box
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		helpView,
	)
}

// updateHelpView rebuilds the help content from the active registry so a
// custom keybinds config shows its own keys instead of the defaults.
func (m *Model) updateHelpView() {
	sections := []struct {
		title   string
		context keybinds.Context
	}{
		{"Global", keybinds.ContextGlobal},
		{"Editor", keybinds.ContextEditor},
		{"Preview", keybinds.ContextPreview},
		{"Modals", keybinds.ContextHelp},
	}

	var b strings.Builder
	for i, s := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(styleTitle.Render(s.title) + "\n")
		for _, bind := range m.keybinds.ListBindings(s.context) {
			// ListBindings appends the global fallbacks, which have
			// their own section here
			if bind.Context != s.context {
				continue
			}
			info := keybinds.GetActionInfo(bind.Action)
			b.WriteString(fmt.Sprintf("  %-14s %s\n", bind.Key, info.Description))
		}
	}

	m.helpView.SetContent(b.String())
}

// min returns the smaller of two ints
func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// renderModalWithFooter renders a centered modal dialog with a fixed footer
func (m Model) renderModalWithFooter(title, content, footer string, width, height int) string {
	// For small terminals, shrink to fit
	if width > m.width-2 {
		width = m.width - 2
	}
	if height > m.height-1 {
		height = m.height - 1
	}

	fullContent := styleTitle.Render(title) + "\n\n" + content
	if footer != "" {
		fullContent += "\n\n" + styleSubtle.Render(footer)
	}

	modalBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBlue).
		Width(width).
		Height(height).
		Padding(1, 2).
		Render(fullContent)

	// Center the modal
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modalBox,
	)
}

// renderExportConfirm renders the export confirmation dialog
func (m Model) renderExportConfirm() string {
	content := "The current draft will be written to:\n\n"
	content += styleSuccess.Render(m.exportBase+".md") + "\n"
	content += styleSuccess.Render(m.exportBase+".html") + "\n\n"
	content += "Export now?"

	footer := "[y]es/Enter [n]o/ESC"
	return m.renderModalWithFooter("Export Draft", content, footer, 72, 12)
}

// renderQuitConfirm renders the unsaved-changes dialog
func (m Model) renderQuitConfirm() string {
	var content string
	if m.ctrl.Persistent() {
		content = "The draft has unsaved changes.\n\n"
	} else {
		content = "No draft store is attached, this draft only lives in memory.\n\n"
	}
	content += "Quit anyway?"

	footer := "[y]es [n]o/ESC"
	return m.renderModalWithFooter("Unsaved Changes", content, footer, 60, 10)
}
