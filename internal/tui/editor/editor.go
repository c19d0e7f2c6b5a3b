// Package editor provides the Markdown editing pane for bubbletea.
// It keeps the draft as lines of runes, tracks the caret and selection as
// rune offsets into the joined document, and supports optional line
// numbers, Chroma syntax highlighting, keyboard (shift+arrow) and mouse
// selection, and a blinking cursor.
package editor

import (
	"fmt"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/studiowebux/markpad/internal/buffer"
)

// ---------------------------------------------------------------------------
// Highlight cache (global, shared across instances)
// ---------------------------------------------------------------------------

var (
	hlCache   = make(map[string]string)
	hlCacheMu sync.RWMutex
)

func cachedHighlight(text, language, theme string) string {
	cacheKey := language + ":" + theme + ":" + text
	hlCacheMu.RLock()
	if v, ok := hlCache[cacheKey]; ok {
		hlCacheMu.RUnlock()
		return v
	}
	hlCacheMu.RUnlock()

	lex := lexers.Get(language)
	if lex == nil {
		return text
	}
	lex = chroma.Coalesce(lex)
	sty := styles.Get(theme)
	fmtr := formatters.Get("terminal16m")
	if fmtr == nil {
		fmtr = formatters.Fallback
	}
	it, err := lex.Tokenise(nil, text)
	if err != nil {
		return text
	}
	var buf strings.Builder
	if err := fmtr.Format(&buf, sty, it); err != nil {
		return text
	}
	result := strings.TrimRight(buf.String(), "\n")

	hlCacheMu.Lock()
	if len(hlCache) > 2000 {
		hlCache = make(map[string]string)
	}
	hlCache[cacheKey] = result
	hlCacheMu.Unlock()
	return result
}

// themeBg extracts the background hex color from a Chroma style.
// Returns "" if no background is set.
func themeBg(theme string) string {
	sty := styles.Get(theme)
	if sty == nil {
		return ""
	}
	bg := sty.Get(chroma.Background).Background
	if !bg.IsSet() {
		return ""
	}
	return bg.String()
}

// ---------------------------------------------------------------------------
// Model
// ---------------------------------------------------------------------------

// Model is the Markdown editing pane.
type Model struct {
	// Public configuration, set before first Update/View.
	ShowLineNumbers bool
	Language        string // Chroma lexer name (empty = no highlighting)
	SyntaxTheme     string // Chroma style name (empty = no highlighting)
	Placeholder     string // Shown when the draft is empty

	// Styles, set by parent.
	LineNumStyle   lipgloss.Style // Line number gutter
	SelectionSty   lipgloss.Style // Highlighted selection span
	PlaceholderSty lipgloss.Style // Placeholder text
	BgColor        lipgloss.Color // Fallback bg when no syntax theme

	// Internal state
	lines  [][]rune // Backing store, one entry per line
	row    int      // Cursor row (0-indexed into lines)
	col    int      // Cursor column (0-indexed into line runes)
	scroll int      // First visible row

	width  int // Pane width (cells)
	height int // Pane height (rows)

	focus  bool
	cursor cursor.Model

	// Selection anchor. Nil means no selection; the caret is the whole
	// story. Set by shift+arrow movement and mouse press, cleared by plain
	// movement and edits.
	anchor *pos

	selecting bool // Mouse drag in progress

	version int // Bumped on every edit so the parent can detect mutations

	gutterWidth int // Width of line number gutter (0 if disabled)
}

type pos struct{ row, col int }

// New creates an editor holding an empty draft.
func New() Model {
	c := cursor.New()
	c.SetMode(cursor.CursorBlink)
	return Model{
		lines:  [][]rune{{}},
		cursor: c,
	}
}

// Blink returns the initial cursor blink message. Call from Init().
func Blink() tea.Msg { return cursor.Blink() }

// ---------------------------------------------------------------------------
// Public methods called by parent
// ---------------------------------------------------------------------------

func (m *Model) SetWidth(w int)  { m.width = w; m.followCursor() }
func (m *Model) SetHeight(h int) { m.height = h; m.followCursor() }

func (m *Model) Focus() {
	m.focus = true
	m.cursor.Focus()
}

func (m *Model) Blur() {
	m.focus = false
	m.cursor.Blur()
}

func (m Model) Focused() bool { return m.focus }

// SetValue replaces the draft and resets the caret to the start.
func (m *Model) SetValue(s string) {
	raw := strings.Split(s, "\n")
	m.lines = make([][]rune, len(raw))
	for i, l := range raw {
		m.lines[i] = []rune(l)
	}
	if len(m.lines) == 0 {
		m.lines = [][]rune{{}}
	}
	m.row = 0
	m.col = 0
	m.scroll = 0
	m.anchor = nil
}

// Value returns the draft as a single string.
func (m Model) Value() string {
	var sb strings.Builder
	for i, line := range m.lines {
		sb.WriteString(string(line))
		if i < len(m.lines)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Version increments on every mutation of the draft. Cursor and selection
// movement leave it untouched, so the parent can cheaply tell edits apart
// from navigation.
func (m Model) Version() int { return m.version }

// Selection returns the current caret or highlighted range as rune offsets
// into Value().
func (m Model) Selection() buffer.Selection {
	if m.anchor == nil {
		off := m.posToOffset(pos{row: m.row, col: m.col})
		return buffer.Caret(off)
	}
	s, e := m.selectionOrdered()
	return buffer.Selection{Start: m.posToOffset(s), End: m.posToOffset(e)}
}

// SetSelection moves the caret, or restores a highlighted range, from rune
// offsets. Out-of-range offsets are clamped to the draft.
func (m *Model) SetSelection(sel buffer.Selection) {
	if sel.Start == sel.End {
		m.anchor = nil
		p := m.offsetToPos(sel.Start)
		m.row, m.col = p.row, p.col
	} else {
		start := m.offsetToPos(sel.Start)
		end := m.offsetToPos(sel.End)
		m.anchor = &start
		m.row, m.col = end.row, end.col
	}
	m.clampCursor()
	m.followCursor()
}

// Line returns the 1-based cursor line for status display.
func (m Model) Line() int { return m.row + 1 }

// Column returns the 1-based cursor column for status display.
func (m Model) Column() int { return m.col + 1 }

// LineCount returns the number of lines in the draft.
func (m Model) LineCount() int { return len(m.lines) }

// ---------------------------------------------------------------------------
// Offset <-> position conversion
// ---------------------------------------------------------------------------

// offsetToPos converts an absolute rune offset into a row/col position.
// Each line break counts as one rune.
func (m *Model) offsetToPos(offset int) pos {
	if offset < 0 {
		offset = 0
	}
	for r, line := range m.lines {
		if offset <= len(line) {
			return pos{row: r, col: offset}
		}
		offset -= len(line) + 1
	}
	last := len(m.lines) - 1
	return pos{row: last, col: len(m.lines[last])}
}

// posToOffset converts a row/col position into an absolute rune offset.
func (m *Model) posToOffset(p pos) int {
	if p.row < 0 {
		return 0
	}
	if p.row >= len(m.lines) {
		p.row = len(m.lines) - 1
		p.col = len(m.lines[p.row])
	}
	off := 0
	for r := 0; r < p.row; r++ {
		off += len(m.lines[r]) + 1
	}
	return off + clampMax(p.col, len(m.lines[p.row]))
}

// ---------------------------------------------------------------------------
// Internal helpers
// ---------------------------------------------------------------------------

func (m *Model) currentLine() []rune { return m.lines[m.row] }

func (m *Model) clampCursor() {
	if m.row < 0 {
		m.row = 0
	}
	if m.row >= len(m.lines) {
		m.row = len(m.lines) - 1
	}
	if m.col < 0 {
		m.col = 0
	}
	if m.col > len(m.currentLine()) {
		m.col = len(m.currentLine())
	}
}

// followCursor scrolls just enough to keep the cursor row visible.
func (m *Model) followCursor() {
	if m.height <= 0 {
		return
	}
	if m.row < m.scroll {
		m.scroll = m.row
	}
	if m.row >= m.scroll+m.height {
		m.scroll = m.row - m.height + 1
	}
	maxScroll := len(m.lines) - m.height
	if maxScroll < 0 {
		maxScroll = 0
	}
	if m.scroll > maxScroll {
		m.scroll = maxScroll
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
}

const tabWidth = 4

// expandTabs replaces tabs with spaces (tabWidth-aligned).
func expandTabs(s string) string {
	var b strings.Builder
	col := 0
	for _, r := range s {
		if r == '\t' {
			spaces := tabWidth - (col % tabWidth)
			b.WriteString(strings.Repeat(" ", spaces))
			col += spaces
		} else {
			b.WriteRune(r)
			col++
		}
	}
	return b.String()
}

// textWidth returns the width available for text content.
func (m *Model) textWidth() int {
	m.gutterWidth = 0
	if m.ShowLineNumbers {
		digits := len(fmt.Sprintf("%d", len(m.lines)))
		if digits < 2 {
			digits = 2
		}
		m.gutterWidth = digits + 1 // digits + 1 space
	}
	w := m.width - m.gutterWidth
	if w < 1 {
		w = 1
	}
	return w
}

// bgForRender returns the background style. Extracts from syntax theme if
// available, falls back to BgColor.
func (m *Model) bgForRender() lipgloss.Style {
	if m.Language != "" && m.SyntaxTheme != "" {
		if hex := themeBg(m.SyntaxTheme); hex != "" {
			return lipgloss.NewStyle().Background(lipgloss.Color(hex))
		}
	}
	return lipgloss.NewStyle().Background(m.BgColor)
}

func clampMax(v, hi int) int {
	if v < 0 {
		return 0
	}
	if v > hi {
		return hi
	}
	return v
}

// ---------------------------------------------------------------------------
// Selection helpers
// ---------------------------------------------------------------------------

func (m *Model) hasSelection() bool {
	return m.anchor != nil && (m.anchor.row != m.row || m.anchor.col != m.col)
}

func (m *Model) selectionOrdered() (start, end pos) {
	s := *m.anchor
	e := pos{row: m.row, col: m.col}
	if s.row > e.row || (s.row == e.row && s.col > e.col) {
		s, e = e, s
	}
	return s, e
}

func (m *Model) clearSelection() {
	m.anchor = nil
	m.selecting = false
}

// startSelection pins the anchor at the current cursor if no selection is
// in progress. Used before shift+arrow movement.
func (m *Model) startSelection() {
	if m.anchor == nil {
		a := pos{row: m.row, col: m.col}
		m.anchor = &a
	}
}

// SelectedText returns the highlighted text, or "" without a selection.
func (m *Model) SelectedText() string {
	if !m.hasSelection() {
		return ""
	}
	s, e := m.selectionOrdered()
	if s.row == e.row {
		line := m.lines[s.row]
		return string(line[clampMax(s.col, len(line)):clampMax(e.col, len(line))])
	}
	var sb strings.Builder
	first := m.lines[s.row]
	sb.WriteString(string(first[clampMax(s.col, len(first)):]))
	for r := s.row + 1; r < e.row; r++ {
		sb.WriteByte('\n')
		sb.WriteString(string(m.lines[r]))
	}
	sb.WriteByte('\n')
	last := m.lines[e.row]
	sb.WriteString(string(last[:clampMax(e.col, len(last))]))
	return sb.String()
}

// SelectAll highlights the whole draft and parks the cursor at the end.
func (m *Model) SelectAll() {
	a := pos{}
	m.anchor = &a
	m.row = len(m.lines) - 1
	m.col = len(m.currentLine())
	m.followCursor()
}

// selectionSpan reports the selected column range on one row.
func (m *Model) selectionSpan(row int) (startCol, endCol int, ok bool) {
	if !m.hasSelection() {
		return 0, 0, false
	}
	s, e := m.selectionOrdered()
	if row < s.row || row > e.row {
		return 0, 0, false
	}
	startCol = 0
	if row == s.row {
		startCol = s.col
	}
	endCol = len(m.lines[row])
	if row == e.row {
		endCol = e.col
	}
	return startCol, endCol, endCol > startCol
}

// screenToPos converts pane-relative x,y to a buffer row,col.
func (m *Model) screenToPos(x, y int) pos {
	row := m.scroll + y
	if row < 0 {
		row = 0
	}
	if row >= len(m.lines) {
		row = len(m.lines) - 1
	}
	col := x - m.gutterWidth
	if col < 0 {
		col = 0
	}
	if col > len(m.lines[row]) {
		col = len(m.lines[row])
	}
	return pos{row: row, col: col}
}

// ---------------------------------------------------------------------------
// Editing operations
// ---------------------------------------------------------------------------

// deleteSelection removes the highlighted range and collapses the caret to
// its start. Reports whether anything was deleted.
func (m *Model) deleteSelection() bool {
	if !m.hasSelection() {
		return false
	}
	s, e := m.selectionOrdered()

	startLine := m.lines[s.row]
	endLine := m.lines[e.row]
	merged := make([]rune, 0, s.col+len(endLine)-clampMax(e.col, len(endLine)))
	merged = append(merged, startLine[:clampMax(s.col, len(startLine))]...)
	merged = append(merged, endLine[clampMax(e.col, len(endLine)):]...)

	newLines := make([][]rune, 0, len(m.lines)-(e.row-s.row))
	newLines = append(newLines, m.lines[:s.row]...)
	newLines = append(newLines, merged)
	newLines = append(newLines, m.lines[e.row+1:]...)
	m.lines = newLines

	m.row = s.row
	m.col = clampMax(s.col, len(merged))
	m.clearSelection()
	m.version++
	return true
}

func (m *Model) insertRune(r rune) {
	m.deleteSelection()
	line := m.currentLine()
	newLine := make([]rune, 0, len(line)+1)
	newLine = append(newLine, line[:m.col]...)
	newLine = append(newLine, r)
	newLine = append(newLine, line[m.col:]...)
	m.lines[m.row] = newLine
	m.col++
	m.version++
}

func (m *Model) insertNewline() {
	m.deleteSelection()
	line := m.currentLine()
	after := make([]rune, len(line[m.col:]))
	copy(after, line[m.col:])
	m.lines[m.row] = line[:m.col]
	newLines := make([][]rune, 0, len(m.lines)+1)
	newLines = append(newLines, m.lines[:m.row+1]...)
	newLines = append(newLines, after)
	newLines = append(newLines, m.lines[m.row+1:]...)
	m.lines = newLines
	m.row++
	m.col = 0
	m.version++
}

func (m *Model) deleteBack() {
	if m.deleteSelection() {
		return
	}
	if m.col > 0 {
		line := m.currentLine()
		m.lines[m.row] = append(line[:m.col-1], line[m.col:]...)
		m.col--
		m.version++
	} else if m.row > 0 {
		prev := m.lines[m.row-1]
		m.col = len(prev)
		m.lines[m.row-1] = append(prev, m.currentLine()...)
		m.lines = append(m.lines[:m.row], m.lines[m.row+1:]...)
		m.row--
		m.version++
	}
}

func (m *Model) deleteForward() {
	if m.deleteSelection() {
		return
	}
	line := m.currentLine()
	if m.col < len(line) {
		m.lines[m.row] = append(line[:m.col], line[m.col+1:]...)
		m.version++
	} else if m.row < len(m.lines)-1 {
		m.lines[m.row] = append(line, m.lines[m.row+1]...)
		m.lines = append(m.lines[:m.row+1], m.lines[m.row+2:]...)
		m.version++
	}
}

func (m *Model) paste(text string) {
	m.deleteSelection()
	for _, r := range text {
		if r == '\n' {
			m.insertNewline()
		} else if r != '\r' {
			m.insertRune(r)
		}
	}
}

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.focus {
			break
		}
		moved := true
		switch msg.String() {
		// Navigation
		case "up":
			m.clearSelection()
			m.row--
			m.clampCursor()
		case "down":
			m.clearSelection()
			m.row++
			m.clampCursor()
		case "left":
			m.clearSelection()
			m.moveLeft()
		case "right":
			m.clearSelection()
			m.moveRight()
		case "home":
			m.clearSelection()
			m.col = 0
		case "end":
			m.clearSelection()
			m.col = len(m.currentLine())
		case "pgup":
			m.clearSelection()
			m.row -= m.height
			m.clampCursor()
		case "pgdown":
			m.clearSelection()
			m.row += m.height
			m.clampCursor()
		case "ctrl+home":
			m.clearSelection()
			m.row = 0
			m.col = 0
		case "ctrl+end":
			m.clearSelection()
			m.row = len(m.lines) - 1
			m.col = len(m.currentLine())

		// Keyboard selection
		case "shift+up":
			m.startSelection()
			m.row--
			m.clampCursor()
		case "shift+down":
			m.startSelection()
			m.row++
			m.clampCursor()
		case "shift+left":
			m.startSelection()
			m.moveLeft()
		case "shift+right":
			m.startSelection()
			m.moveRight()
		case "shift+home":
			m.startSelection()
			m.col = 0
		case "shift+end":
			m.startSelection()
			m.col = len(m.currentLine())
		case "ctrl+a":
			m.SelectAll()

		// Editing
		case "backspace":
			m.deleteBack()
		case "delete":
			m.deleteForward()
		case "enter":
			m.insertNewline()
		case "tab":
			// Literal tabs wreck terminal column math, four spaces do not
			m.paste("    ")

		// Clipboard
		case "ctrl+v":
			if text, err := clipboard.ReadAll(); err == nil {
				m.paste(text)
			}

		default:
			moved = false
			if len(msg.Runes) > 0 {
				for _, r := range msg.Runes {
					m.insertRune(r)
				}
				moved = true
			}
		}

		if moved {
			m.clampCursor()
			m.followCursor()
			m.cursor.Blink = false
			cmds = append(cmds, m.cursor.BlinkCmd())
		}

	case tea.MouseMsg:
		if !m.focus {
			break
		}
		switch msg.Button {
		case tea.MouseButtonLeft:
			p := m.screenToPos(msg.X, msg.Y)
			switch msg.Action {
			case tea.MouseActionPress:
				m.selecting = true
				a := p
				m.anchor = &a
				m.row = p.row
				m.col = p.col
				m.clampCursor()
			case tea.MouseActionMotion:
				if m.selecting {
					m.row = p.row
					m.col = p.col
					m.clampCursor()
				}
			case tea.MouseActionRelease:
				m.selecting = false
				// A click without a drag is just a caret move
				if !m.hasSelection() {
					m.clearSelection()
				}
			}
		case tea.MouseButtonWheelUp:
			m.scroll -= 3
			if m.scroll < 0 {
				m.scroll = 0
			}
		case tea.MouseButtonWheelDown:
			m.scroll += 3
			maxScroll := len(m.lines) - m.height
			if maxScroll < 0 {
				maxScroll = 0
			}
			if m.scroll > maxScroll {
				m.scroll = maxScroll
			}
		}
	}

	// Forward to cursor for blink handling
	var cmd tea.Cmd
	m.cursor, cmd = m.cursor.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *Model) moveLeft() {
	if m.col > 0 {
		m.col--
	} else if m.row > 0 {
		m.row--
		m.col = len(m.currentLine())
	}
}

func (m *Model) moveRight() {
	if m.col < len(m.currentLine()) {
		m.col++
	} else if m.row < len(m.lines)-1 {
		m.row++
		m.col = 0
	}
}

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if len(m.lines) == 1 && len(m.lines[0]) == 0 && m.Placeholder != "" {
		return m.placeholderView()
	}

	tw := m.textWidth()
	bg := m.bgForRender()
	lineNumSty := m.LineNumStyle.Background(bg.GetBackground())

	var b strings.Builder

	for vi := 0; vi < m.height; vi++ {
		row := m.scroll + vi
		if vi > 0 {
			b.WriteByte('\n')
		}

		if row >= len(m.lines) {
			b.WriteString(bg.Render(strings.Repeat(" ", m.width)))
			continue
		}

		if m.ShowLineNumbers {
			digits := m.gutterWidth - 1
			num := fmt.Sprintf("%*d ", digits, row+1)
			b.WriteString(lineNumSty.Render(num))
		}

		rendered := m.renderRow(row)

		rw := lipgloss.Width(rendered)
		if rw > tw {
			rendered = ansi.Truncate(rendered, tw, "")
			rw = lipgloss.Width(rendered)
		}
		b.WriteString(rendered)
		if rw < tw {
			b.WriteString(bg.Render(strings.Repeat(" ", tw-rw)))
		}
	}

	return b.String()
}

// renderRow renders one buffer row: the selection span when the row
// intersects it, the cursor row with the blinking cursor, a highlighted
// line otherwise.
func (m Model) renderRow(row int) string {
	lineStr := expandTabs(string(m.lines[row]))

	if startCol, endCol, ok := m.selectionSpan(row); ok {
		return m.renderSelectedRow(row, startCol, endCol)
	}

	if m.focus && row == m.row {
		return m.renderCursorLine(lineStr)
	}

	if m.Language != "" && m.SyntaxTheme != "" {
		return cachedHighlight(lineStr, m.Language, m.SyntaxTheme)
	}
	return m.bgForRender().Render(lineStr)
}

// renderSelectedRow renders a row that intersects the selection. Syntax
// colors are dropped on these rows so the selection span stays readable.
func (m Model) renderSelectedRow(row, startCol, endCol int) string {
	bg := m.bgForRender()
	runes := m.lines[row]
	startCol = clampMax(startCol, len(runes))
	endCol = clampMax(endCol, len(runes))

	before := bg.Render(expandTabs(string(runes[:startCol])))
	selected := m.SelectionSty.Render(expandTabs(string(runes[startCol:endCol])))
	after := bg.Render(expandTabs(string(runes[endCol:])))
	return before + selected + after
}

// renderCursorLine renders the cursor row with the cursor character visible.
func (m Model) renderCursorLine(lineStr string) string {
	bg := m.bgForRender()
	runes := []rune(lineStr)

	col := m.col
	if col > len(runes) {
		col = len(runes)
	}

	before := string(runes[:col])
	after := ""
	cursorChar := " "
	if col < len(runes) {
		cursorChar = string(runes[col])
		after = string(runes[col+1:])
	}

	hasSyntax := m.Language != "" && m.SyntaxTheme != ""
	if hasSyntax {
		if before != "" {
			before = cachedHighlight(before, m.Language, m.SyntaxTheme)
		}
		if after != "" {
			after = cachedHighlight(after, m.Language, m.SyntaxTheme)
		}
	} else {
		before = bg.Render(before)
		after = bg.Render(after)
	}

	m.cursor.SetChar(cursorChar)
	m.cursor.TextStyle = bg
	cursorView := m.cursor.View()

	return before + cursorView + after
}

// placeholderView renders the empty-draft hint.
func (m Model) placeholderView() string {
	bg := m.bgForRender()
	tw := m.textWidth()

	var b strings.Builder
	if m.ShowLineNumbers {
		digits := m.gutterWidth - 1
		num := fmt.Sprintf("%*d ", digits, 1)
		b.WriteString(m.LineNumStyle.Background(bg.GetBackground()).Render(num))
	}

	if m.focus {
		phRunes := []rune(m.Placeholder)
		m.cursor.SetChar(string(phRunes[0]))
		m.cursor.TextStyle = m.PlaceholderSty
		b.WriteString(m.cursor.View())
		rest := m.PlaceholderSty.Render(string(phRunes[1:]))
		rw := lipgloss.Width(m.cursor.View()) + lipgloss.Width(rest)
		b.WriteString(rest)
		if rw < tw {
			b.WriteString(bg.Render(strings.Repeat(" ", tw-rw)))
		}
	} else {
		ph := m.PlaceholderSty.Render(m.Placeholder)
		pw := lipgloss.Width(ph)
		b.WriteString(ph)
		if pw < tw {
			b.WriteString(bg.Render(strings.Repeat(" ", tw-pw)))
		}
	}

	for vi := 1; vi < m.height; vi++ {
		b.WriteByte('\n')
		b.WriteString(bg.Render(strings.Repeat(" ", m.width)))
	}

	return b.String()
}
