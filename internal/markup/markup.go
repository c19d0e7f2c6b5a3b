package markup

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/studiowebux/markpad/internal/buffer"
)

// Action identifies a formatting operation applied to the document.
type Action string

const (
	ActionBold          Action = "bold"
	ActionItalic        Action = "italic"
	ActionHeading       Action = "heading"
	ActionUnorderedList Action = "unordered-list"
	ActionOrderedList   Action = "ordered-list"
	ActionLink          Action = "link"
	ActionImage         Action = "image"
	ActionInlineCode    Action = "inline-code"
	ActionCodeBlock     Action = "code-block"
	ActionQuote         Action = "quote"
	ActionStrikethrough Action = "strikethrough"
)

// ErrUnknownAction is returned when an action identifier is not recognized.
// Insert leaves the document untouched in that case, so callers can log the
// error and carry on.
var ErrUnknownAction = errors.New("unknown markup action")

// All returns every known action in menu order.
func All() []Action {
	return []Action{
		ActionBold,
		ActionItalic,
		ActionStrikethrough,
		ActionInlineCode,
		ActionHeading,
		ActionUnorderedList,
		ActionOrderedList,
		ActionQuote,
		ActionCodeBlock,
		ActionLink,
		ActionImage,
	}
}

// Label returns a human-readable name for the action.
func (a Action) Label() string {
	switch a {
	case ActionBold:
		return "Bold"
	case ActionItalic:
		return "Italic"
	case ActionHeading:
		return "Heading"
	case ActionUnorderedList:
		return "Bullet list"
	case ActionOrderedList:
		return "Numbered list"
	case ActionLink:
		return "Link"
	case ActionImage:
		return "Image"
	case ActionInlineCode:
		return "Inline code"
	case ActionCodeBlock:
		return "Code block"
	case ActionQuote:
		return "Quote"
	case ActionStrikethrough:
		return "Strikethrough"
	}
	return string(a)
}

// Insert applies a formatting action to the selected range of the document
// and returns the new document plus the caret as an empty selection.
//
// The selected text is wrapped or prefixed with the action's markup tokens;
// an empty selection inserts a placeholder instead. Block actions (heading,
// lists, quote, code block) get a leading newline so the token starts its
// own line.
//
// Caret placement: after the insertion for selected text; inside the
// placeholder (just past the opening token) for empty bold, italic, inline
// code and strikethrough; and for link and image always just before the
// "](...)" closing, so the label or URL can be finished immediately.
func Insert(doc buffer.Document, sel buffer.Selection, action Action) (buffer.Document, buffer.Selection, error) {
	sel = sel.Clamp(doc)
	selected := doc.Slice(sel.Start, sel.End)

	var insertion string
	caret := -1 // -1 means end of insertion

	switch action {
	case ActionBold:
		insertion = "**" + textOr(selected, "bold text") + "**"
		if selected == "" {
			caret = sel.Start + 2
		}
	case ActionItalic:
		insertion = "*" + textOr(selected, "italic text") + "*"
		if selected == "" {
			caret = sel.Start + 1
		}
	case ActionStrikethrough:
		insertion = "~~" + textOr(selected, "strikethrough") + "~~"
		if selected == "" {
			caret = sel.Start + 2
		}
	case ActionInlineCode:
		insertion = "`" + textOr(selected, "code") + "`"
		if selected == "" {
			caret = sel.Start + 1
		}
	case ActionHeading:
		insertion = "\n# " + textOr(selected, "Heading")
	case ActionUnorderedList:
		insertion = "\n- " + textOr(selected, "List item")
	case ActionOrderedList:
		insertion = "\n1. " + textOr(selected, "List item")
	case ActionQuote:
		insertion = "\n> " + textOr(selected, "Quote")
	case ActionCodeBlock:
		insertion = "\n```\n" + textOr(selected, "code block") + "\n```"
	case ActionLink:
		insertion = "[" + textOr(selected, "link text") + "](url)"
		caret = sel.Start + runeLen(insertion) - runeLen("](url)")
	case ActionImage:
		insertion = "![" + textOr(selected, "alt text") + "](image-url)"
		caret = sel.Start + runeLen(insertion) - runeLen("](image-url)")
	default:
		return doc, sel, fmt.Errorf("%q: %w", string(action), ErrUnknownAction)
	}

	if caret < 0 {
		caret = sel.Start + runeLen(insertion)
	}

	newDoc := doc.Splice(sel.Start, sel.End, insertion)
	return newDoc, buffer.Caret(caret), nil
}

func textOr(selected, placeholder string) string {
	if selected == "" {
		return placeholder
	}
	return selected
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
