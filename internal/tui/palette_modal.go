package tui

import (
	"fmt"
	"strings"

	"github.com/studiowebux/markpad/internal/keybinds"
)

// filterPalette recomputes the matches for the current query. Matching is a
// case-insensitive substring test against the action's label and category.
func (m *Model) filterPalette() {
	query := strings.ToLower(m.paletteQuery)

	m.paletteMatches = m.paletteMatches[:0]
	for _, action := range keybinds.PaletteActions() {
		info := keybinds.GetActionInfo(action)
		if query == "" ||
			strings.Contains(strings.ToLower(info.Description), query) ||
			strings.Contains(strings.ToLower(info.Category), query) {
			m.paletteMatches = append(m.paletteMatches, action)
		}
	}

	if m.paletteIndex >= len(m.paletteMatches) {
		m.paletteIndex = 0
	}
}

// paletteBinding shows which keys reach an action without the palette.
// Formatting keys live in the editor context, copy_html in the preview.
func (m Model) paletteBinding(action keybinds.Action) string {
	if s := m.keybinds.GetBindingString(keybinds.ContextEditor, action); s != "unbound" {
		return s
	}
	if s := m.keybinds.GetBindingString(keybinds.ContextPreview, action); s != "unbound" {
		return s
	}
	return ""
}

// renderPalette renders the command palette
func (m Model) renderPalette() string {
	width := min(m.width-ModalWidthMargin, 64)

	// Window the list so the selection stays visible in short terminals
	maxVisible := m.height - 12
	if maxVisible < 5 {
		maxVisible = 5
	}
	if maxVisible > len(m.paletteMatches) {
		maxVisible = len(m.paletteMatches)
	}

	start := 0
	if m.paletteIndex >= maxVisible {
		start = m.paletteIndex - maxVisible + 1
	}
	end := start + maxVisible
	if end > len(m.paletteMatches) {
		end = len(m.paletteMatches)
	}

	var content strings.Builder
	content.WriteString(fmt.Sprintf("> %s█\n\n", m.paletteQuery))

	if len(m.paletteMatches) == 0 {
		content.WriteString(styleSubtle.Render("No matching commands"))
	}

	for i := start; i < end; i++ {
		action := m.paletteMatches[i]
		info := keybinds.GetActionInfo(action)

		label := fmt.Sprintf("%-24s", info.Description)
		binding := m.paletteBinding(action)

		if i == m.paletteIndex {
			content.WriteString(styleSelected.Render(fmt.Sprintf("%s %s", label, binding)) + "\n")
		} else {
			content.WriteString(fmt.Sprintf("%s %s\n", label, styleSubtle.Render(binding)))
		}
	}

	footer := "[↑/↓] navigate [enter] run [esc] close"

	height := maxVisible + 10
	if height > m.height-2 {
		height = m.height - 2
	}

	return m.renderModalWithFooter("Command Palette", content.String(), footer, width, height)
}
