package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/studiowebux/markpad/internal/session"
)

// Adaptive color definitions for light/dark terminal support
var (
	colorGreen  = lipgloss.AdaptiveColor{Light: "#006400", Dark: "#00ff00"} // Dark green / Bright green
	colorRed    = lipgloss.AdaptiveColor{Light: "#8b0000", Dark: "#ff0000"} // Dark red / Bright red
	colorYellow = lipgloss.AdaptiveColor{Light: "#b8860b", Dark: "#ffff00"} // Dark goldenrod / Yellow
	colorBlue   = lipgloss.AdaptiveColor{Light: "#00008b", Dark: "#0000ff"} // Dark blue / Blue
	colorGray   = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"} // Dark gray / Light gray
	colorCyan   = lipgloss.AdaptiveColor{Light: "#008b8b", Dark: "#00ffff"} // Dark cyan / Cyan
)

// Style definitions
var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan)

	styleSelected = lipgloss.NewStyle().
			Background(lipgloss.AdaptiveColor{Light: "#d3d3d3", Dark: "#3a3a3a"}).
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"})

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorGreen)

	styleError = lipgloss.NewStyle().
			Foreground(colorRed)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorYellow)

	styleSubtle = lipgloss.NewStyle().
			Foreground(colorGray)
)

// applyTheme points the editor and the preview at the selected color scheme.
// The glamour renderer is dropped so the next preview render rebuilds it with
// the matching style.
func (m *Model) applyTheme(theme session.Theme) {
	m.previewTheme = theme
	m.glam = nil

	// Adaptive colors follow the app theme, not the terminal guess
	lipgloss.SetHasDarkBackground(theme != session.ThemeLight)

	if theme == session.ThemeLight {
		m.editor.SyntaxTheme = "github"
		m.editor.SelectionSty = lipgloss.NewStyle().
			Background(lipgloss.Color("#d0d7de")).
			Foreground(lipgloss.Color("#1f2328"))
	} else {
		m.editor.SyntaxTheme = "github-dark"
		m.editor.SelectionSty = lipgloss.NewStyle().
			Background(lipgloss.Color("#3a3a3a")).
			Foreground(lipgloss.Color("#ffffff"))
	}
	m.editor.LineNumStyle = lipgloss.NewStyle().Foreground(colorGray)
	m.editor.PlaceholderSty = lipgloss.NewStyle().Foreground(colorGray)
}

// renderMain renders the main TUI view (editor pane + preview pane)
func (m Model) renderMain() string {
	if m.width == 0 {
		return ""
	}

	editorWidth, previewWidth := m.paneWidths()

	// Highlight the focused pane
	editorBorderColor := colorGray
	previewBorderColor := colorGray
	if m.focusedPane == PaneEditor {
		editorBorderColor = colorGreen
	} else {
		previewBorderColor = colorGreen
	}

	var panes []string

	if editorWidth > 0 {
		editorBox := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(editorBorderColor).
			Width(editorWidth - 2).
			Height(m.height - 3). // Leave 1 line for status bar
			Render(m.editor.View())
		panes = append(panes, editorBox)
	}

	if previewWidth > 0 {
		previewBox := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(previewBorderColor).
			Width(previewWidth - 2).
			Height(m.height - 3).
			Padding(0, 1).
			Render(m.preview.View())
		panes = append(panes, previewBox)
	}

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, panes...)

	// Status bar
	statusBar := m.renderStatusBar()

	// Combine main view and status bar
	return lipgloss.JoinVertical(
		lipgloss.Left,
		mainView,
		statusBar,
	)
}

// paneWidths returns the outer widths of the editor and preview boxes.
// Fullscreen hands the whole row to the focused pane.
func (m Model) paneWidths() (editorWidth, previewWidth int) {
	if m.fullscreen {
		if m.focusedPane == PanePreview {
			return 0, m.width
		}
		return m.width, 0
	}
	editorWidth = m.width / 2
	return editorWidth, m.width - editorWidth
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// renderStatusBar renders the bottom status bar
func (m Model) renderStatusBar() string {
	st := m.ctrl.Stats()

	// Left side - app title, counters, draft state
	left := styleTitle.Render("markpad") + fmt.Sprintf(" | %d words | %d chars | %s", st.Words, st.Chars, m.ctrl.Theme())
	switch {
	case !m.ctrl.Persistent():
		left += " | " + styleWarning.Render("memory only")
	case m.ctrl.Dirty():
		left += " | " + styleWarning.Render("saving...")
	default:
		left += " | " + styleSuccess.Render("saved")
	}

	// Right side - messages or key hints
	right := ""
	if m.errorMsg != "" {
		right = styleError.Render(m.errorMsg)
	} else if m.statusMsg != "" {
		// Make success messages green
		if strings.Contains(m.statusMsg, "saved") || strings.Contains(m.statusMsg, "copied") ||
			strings.Contains(m.statusMsg, "exported") {
			right = styleSuccess.Render(m.statusMsg)
		} else {
			right = m.statusMsg
		}
	} else {
		right = styleSubtle.Render("ctrl+p commands | tab switch pane | ctrl+c quit")
	}

	// Center spacing
	spacing := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if spacing < 1 {
		spacing = 1
	}

	return left + strings.Repeat(" ", spacing) + right
}

// layout sizes the panes after a resize, focus change, or fullscreen toggle.
// The numbers here must match the box math in renderMain!
func (m *Model) layout() {
	if m.width == 0 || m.height == 0 {
		return
	}

	editorWidth, previewWidth := m.paneWidths()
	innerHeight := max(m.height-3, 1) // -1 (status) -2 (borders)

	if editorWidth > 0 {
		m.editor.SetWidth(max(editorWidth-2, 1))
		m.editor.SetHeight(innerHeight)
	}
	if previewWidth > 0 {
		m.preview.Width = max(previewWidth-4, 1) // -2 (borders) -2 (padding)
		m.preview.Height = innerHeight
	}

	// Modal viewports sit inside a bordered, padded box with a title and
	// a footer line, so they get less than the full modal size
	m.helpView.Width = max(m.width-ModalWidthMarginNarrow-ViewportPaddingHorizontal, 10)
	m.helpView.Height = max(m.height-ModalHeightMarginMed-ModalOverheadLines-2, 1)
	m.modalView.Width = m.helpView.Width
	m.modalView.Height = m.helpView.Height
}

// updatePreview re-renders the markdown preview. The glamour renderer is
// rebuilt when the pane width or the theme changed since the last render.
func (m *Model) updatePreview() {
	if m.width == 0 {
		return
	}

	wrap := max(m.preview.Width, 1)

	if m.glam == nil || wrap != m.previewWidth || m.ctrl.Theme() != m.previewTheme {
		r, err := glamour.NewTermRenderer(
			glamour.WithStylePath(string(m.ctrl.Theme())),
			glamour.WithWordWrap(wrap),
		)
		if err != nil {
			m.preview.SetContent(styleError.Render(fmt.Sprintf("Preview unavailable: %v", err)))
			return
		}
		m.glam = r
		m.previewWidth = wrap
	}
	m.previewTheme = m.ctrl.Theme()

	out, err := m.glam.Render(string(m.ctrl.Document()))
	if err != nil {
		m.preview.SetContent(styleError.Render(fmt.Sprintf("Preview unavailable: %v", err)))
		return
	}

	m.preview.SetContent(out)
	if m.preview.PastBottom() {
		m.preview.GotoBottom()
	}
}
