package session

import (
	"github.com/rs/zerolog/log"

	"github.com/studiowebux/markpad/internal/buffer"
	"github.com/studiowebux/markpad/internal/converter"
	"github.com/studiowebux/markpad/internal/markup"
	"github.com/studiowebux/markpad/internal/stats"
	"github.com/studiowebux/markpad/internal/store"
)

// Theme selects the UI palette and the exported stylesheet variant.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// ParseTheme maps a stored string to a Theme. Anything unrecognized falls
// back to dark.
func ParseTheme(s string) Theme {
	if s == string(ThemeLight) {
		return ThemeLight
	}
	return ThemeDark
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// State reports whether the controller is mid-cycle.
type State int

const (
	StateIdle State = iota
	StateSyncing
)

// DefaultDocument is the built-in sample draft, used on first run and
// whenever the stored snapshot cannot be read.
const DefaultDocument = "# Welcome to markpad\n\n" +
	"Start typing to replace this sample draft. The preview follows along as you edit, " +
	"and every change is saved automatically.\n\n" +
	"## Formatting\n\n" +
	"Wrap text in **bold**, *italic* or ~~strikethrough~~, add `inline code`, " +
	"or drop into a fenced block:\n\n" +
	"```go\nfmt.Println(\"hello\")\n```\n\n" +
	"- Make lists\n" +
	"- Add [links](https://example.com) and images\n\n" +
	"> Select some text and hit a formatting shortcut to wrap it in place.\n"

// Controller owns the draft and everything derived from it: rendered HTML,
// word and character counts, and the persisted snapshot. Every mutation runs
// a full synchronization cycle (apply, render, recount, persist last), so no
// stale derived state is observable once the cycle returns.
//
// The controller is single-actor: one mutation runs to completion before the
// next is accepted. Both frontends (the TUI update loop and the CLI) call it
// from a single goroutine, so it carries no locks.
type Controller struct {
	conv    converter.Converter
	manager *store.Manager // nil when the database is unavailable

	state State
	doc   buffer.Document
	sel   buffer.Selection
	html  string
	stats stats.Stats
	theme Theme
	dirty bool
}

// NewController creates a controller around a converter and an optional
// store manager. A nil manager degrades to memory-only editing.
func NewController(conv converter.Converter, manager *store.Manager) *Controller {
	return &Controller{
		conv:    conv,
		manager: manager,
		theme:   ThemeDark,
		dirty:   true,
	}
}

// Load pulls the draft and theme out of the store, falling back to the
// built-in sample document and the dark theme when the store is empty or
// unreadable, then runs one synchronization cycle. First run persists the
// sample so the snapshot exists from the start.
func (c *Controller) Load() {
	c.doc = buffer.Document(c.loadDocument())
	c.sel = buffer.Caret(0)
	c.theme = ParseTheme(c.loadTheme())
	c.sync()
}

func (c *Controller) loadDocument() string {
	if c.manager == nil {
		return DefaultDocument
	}

	doc, found, err := c.manager.LoadDocument()
	if err != nil {
		log.Warn().Err(err).Msg("Failed to load draft, using default document")
		return DefaultDocument
	}
	if !found {
		return DefaultDocument
	}
	return doc
}

func (c *Controller) loadTheme() string {
	if c.manager == nil {
		return ""
	}

	theme, found, err := c.manager.LoadTheme()
	if err != nil {
		log.Warn().Err(err).Msg("Failed to load theme preference")
		return ""
	}
	if !found {
		return ""
	}
	return theme
}

// SetDocument replaces the draft after a direct edit and runs the
// synchronization cycle. The selection is clamped to the new document.
func (c *Controller) SetDocument(text string, sel buffer.Selection) {
	c.doc = buffer.Document(text)
	c.sel = sel.Clamp(c.doc)
	c.sync()
}

// ApplyAction routes a formatting action through the insertion engine at the
// current selection, then runs the synchronization cycle. An unknown action
// leaves the draft untouched; the error is logged and returned so the caller
// can surface it, but the session carries on either way.
func (c *Controller) ApplyAction(action markup.Action) error {
	newDoc, newSel, err := markup.Insert(c.doc, c.sel, action)
	if err != nil {
		log.Warn().Err(err).Str("action", string(action)).Msg("Ignoring unknown formatting action")
		return err
	}

	c.doc = newDoc
	c.sel = newSel
	c.sync()
	return nil
}

// SetSelection moves the caret or highlighted range. Selection changes do
// not mutate the draft, so no cycle runs.
func (c *Controller) SetSelection(sel buffer.Selection) {
	c.sel = sel.Clamp(c.doc)
}

// SetTheme switches the theme and persists the preference. A failed write is
// logged and skipped; the in-memory theme still changes.
func (c *Controller) SetTheme(theme Theme) {
	c.theme = theme
	if c.manager == nil {
		return
	}
	if err := c.manager.SaveTheme(string(theme)); err != nil {
		log.Error().Err(err).Msg("Failed to persist theme preference")
	}
}

// Save forces a persist attempt outside the regular cycle, for an explicit
// save shortcut. Reports whether the draft is on disk afterwards.
func (c *Controller) Save() bool {
	c.persist()
	return !c.dirty
}

// sync is the mutation cycle: render, recount, persist last. A converter
// failure keeps the previous rendered output for this cycle; a persistence
// failure leaves the snapshot stale and the controller dirty.
func (c *Controller) sync() {
	c.state = StateSyncing
	defer func() { c.state = StateIdle }()

	c.dirty = true

	html, err := c.conv.Convert(string(c.doc))
	if err != nil {
		log.Error().Err(err).Msg("Markdown conversion failed, keeping previous output")
	} else {
		c.html = html
	}

	c.stats = stats.Compute(c.doc)

	c.persist()
}

func (c *Controller) persist() {
	if c.manager == nil {
		return
	}
	if err := c.manager.SaveDocument(string(c.doc)); err != nil {
		log.Error().Err(err).Msg("Failed to persist draft, keeping previous snapshot")
		return
	}
	c.dirty = false
}

// Document returns the current draft.
func (c *Controller) Document() buffer.Document { return c.doc }

// Selection returns the current caret or highlighted range.
func (c *Controller) Selection() buffer.Selection { return c.sel }

// HTML returns the rendered output of the last successful conversion.
func (c *Controller) HTML() string { return c.html }

// Stats returns the word and character counts for the current draft.
func (c *Controller) Stats() stats.Stats { return c.stats }

// Theme returns the active theme.
func (c *Controller) Theme() Theme { return c.theme }

// State reports Idle outside a mutation cycle and Syncing inside one.
func (c *Controller) State() State { return c.state }

// Dirty reports whether the latest draft has not reached the store, either
// because a write failed or because no store is available.
func (c *Controller) Dirty() bool { return c.dirty }

// Persistent reports whether a store backs this session.
func (c *Controller) Persistent() bool { return c.manager != nil }
