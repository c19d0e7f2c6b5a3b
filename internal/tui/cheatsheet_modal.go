package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// cheatSheet is the Markdown reference shown by the cheat sheet modal.
// Joined from lines because raw string literals cannot hold backticks.
var cheatSheet = strings.Join([]string{
	"## Headings",
	"",
	"    # Heading 1",
	"    ## Heading 2",
	"    ### Heading 3",
	"",
	"## Emphasis",
	"",
	"* `**bold text**`",
	"* `*italic text*`",
	"* `~~strikethrough~~`",
	"* `` `inline code` ``",
	"",
	"## Lists",
	"",
	"    - Bullet item",
	"    - Another item",
	"",
	"    1. First item",
	"    2. Second item",
	"",
	"## Links and Images",
	"",
	"* `[link text](url)`",
	"* `![alt text](image-url)`",
	"",
	"## Code Blocks",
	"",
	"Fence code with triple backticks, optionally naming the language:",
	"",
	"    ```go",
	"    fmt.Println(\"hello\")",
	"    ```",
	"",
	"## Quotes",
	"",
	"    > Quoted text",
	"",
	"## Tables",
	"",
	"    | Column | Column |",
	"    | ------ | ------ |",
	"    | Cell   | Cell   |",
	"",
	"## Task Lists",
	"",
	"    - [x] Done",
	"    - [ ] Pending",
	"",
	"## Line Breaks",
	"",
	"A single newline becomes a hard break in the preview and the",
	"exported HTML. A blank line starts a new paragraph.",
}, "\n")

// updateCheatSheet renders the cheat sheet for the current width and theme
func (m *Model) updateCheatSheet() {
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(string(m.ctrl.Theme())),
		glamour.WithWordWrap(m.modalView.Width),
	)
	if err != nil {
		m.modalView.SetContent(cheatSheet)
		return
	}

	out, err := r.Render(cheatSheet)
	if err != nil {
		m.modalView.SetContent(cheatSheet)
		return
	}

	m.modalView.SetContent(out)
}

// renderCheatSheet renders the Markdown cheat sheet modal
func (m Model) renderCheatSheet() string {
	title := styleTitle.Render("Markdown Cheat Sheet")

	footer := "↑/↓ j/k: scroll | gg/G: top/bottom | ESC/m: close"

	// Footer stays outside the viewport so it is always visible
	fullContent := title + "\n\n" + m.modalView.View() + "\n\n" + styleSubtle.Render(footer)

	sheetView := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBlue).
		Width(m.width - ModalWidthMarginNarrow).
		Height(m.height - ModalHeightMarginMed).
		Padding(1, 2).
		Render(fullContent)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		sheetView,
	)
}
