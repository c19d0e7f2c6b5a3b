package markup

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/studiowebux/markpad/internal/buffer"
)

func TestInsert_WithSelection(t *testing.T) {
	// "hello world" with "world" selected
	doc := buffer.Document("hello world")
	sel := buffer.Selection{Start: 6, End: 11}

	tests := []struct {
		name      string
		action    Action
		wantDoc   buffer.Document
		wantCaret int
	}{
		{"bold", ActionBold, "hello **world**", 15},
		{"italic", ActionItalic, "hello *world*", 13},
		{"strikethrough", ActionStrikethrough, "hello ~~world~~", 15},
		{"inline code", ActionInlineCode, "hello `world`", 13},
		{"heading", ActionHeading, "hello \n# world", 14},
		{"unordered list", ActionUnorderedList, "hello \n- world", 14},
		{"ordered list", ActionOrderedList, "hello \n1. world", 15},
		{"quote", ActionQuote, "hello \n> world", 14},
		{"code block", ActionCodeBlock, "hello \n```\nworld\n```", 20},
		{"link", ActionLink, "hello [world](url)", 12},
		{"image", ActionImage, "hello ![world](image-url)", 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotDoc, gotSel, err := Insert(doc, sel, tt.action)
			if err != nil {
				t.Fatalf("Insert() error = %v", err)
			}
			if gotDoc != tt.wantDoc {
				t.Errorf("Insert() doc = %q, want %q", gotDoc, tt.wantDoc)
			}
			if !gotSel.IsEmpty() {
				t.Errorf("Insert() selection = %+v, want empty caret", gotSel)
			}
			if gotSel.Start != tt.wantCaret {
				t.Errorf("Insert() caret = %d, want %d", gotSel.Start, tt.wantCaret)
			}
		})
	}
}

func TestInsert_EmptySelection(t *testing.T) {
	tests := []struct {
		name      string
		doc       buffer.Document
		at        int
		action    Action
		wantDoc   buffer.Document
		wantCaret int
	}{
		{"bold mid-document", "hello world", 5, ActionBold, "hello**bold text** world", 7},
		{"bold empty document", "", 0, ActionBold, "**bold text**", 2},
		{"italic", "", 0, ActionItalic, "*italic text*", 1},
		{"strikethrough", "", 0, ActionStrikethrough, "~~strikethrough~~", 2},
		{"inline code", "", 0, ActionInlineCode, "`code`", 1},
		{"heading", "hi", 2, ActionHeading, "hi\n# Heading", 12},
		{"unordered list", "", 0, ActionUnorderedList, "\n- List item", 12},
		{"ordered list", "", 0, ActionOrderedList, "\n1. List item", 13},
		{"quote", "", 0, ActionQuote, "\n> Quote", 8},
		{"code block", "", 0, ActionCodeBlock, "\n```\ncode block\n```", 19},
		{"link", "", 0, ActionLink, "[link text](url)", 10},
		{"image", "", 0, ActionImage, "![alt text](image-url)", 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotDoc, gotSel, err := Insert(tt.doc, buffer.Caret(tt.at), tt.action)
			if err != nil {
				t.Fatalf("Insert() error = %v", err)
			}
			if gotDoc != tt.wantDoc {
				t.Errorf("Insert() doc = %q, want %q", gotDoc, tt.wantDoc)
			}
			if gotSel.Start != tt.wantCaret {
				t.Errorf("Insert() caret = %d, want %d", gotSel.Start, tt.wantCaret)
			}
		})
	}
}

func TestInsert_EmptyBoldPlacesPlaceholderAtOffset(t *testing.T) {
	doc := buffer.Document("before after")
	at := 7

	gotDoc, _, err := Insert(doc, buffer.Caret(at), ActionBold)
	if err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	runes := []rune(string(gotDoc))
	if got := string(runes[at : at+len("**bold text**")]); got != "**bold text**" {
		t.Errorf("document at offset %d = %q, want %q", at, got, "**bold text**")
	}
}

func TestInsert_LinkCaretInsideURLSlot(t *testing.T) {
	gotDoc, gotSel, err := Insert("hi", buffer.Selection{Start: 0, End: 2}, ActionLink)
	if err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	if gotDoc != "[hi](url)" {
		t.Errorf("Insert() doc = %q, want %q", gotDoc, "[hi](url)")
	}
	if gotSel.Start != 3 {
		t.Errorf("Insert() caret = %d, want 3", gotSel.Start)
	}
}

func TestInsert_UnknownAction(t *testing.T) {
	doc := buffer.Document("unchanged")
	sel := buffer.Selection{Start: 2, End: 5}

	gotDoc, gotSel, err := Insert(doc, sel, Action("frobnicate"))
	if !errors.Is(err, ErrUnknownAction) {
		t.Fatalf("Insert() error = %v, want ErrUnknownAction", err)
	}
	if gotDoc != doc {
		t.Errorf("Insert() doc = %q, want unchanged %q", gotDoc, doc)
	}
	if gotSel != sel {
		t.Errorf("Insert() selection = %+v, want unchanged %+v", gotSel, sel)
	}
	if !strings.Contains(err.Error(), "frobnicate") {
		t.Errorf("Insert() error %q should name the action", err)
	}
}

func TestInsert_PreservesSurroundingText(t *testing.T) {
	docs := []buffer.Document{
		"plain ascii text",
		"héllo wörld, café naïve",
		"line one\nline two\nline three",
	}
	sel := buffer.Selection{Start: 3, End: 8}

	for _, doc := range docs {
		for _, action := range All() {
			gotDoc, _, err := Insert(doc, sel, action)
			if err != nil {
				t.Fatalf("Insert(%q, %v) error = %v", doc, action, err)
			}

			prefix := doc.Slice(0, sel.Start)
			suffix := doc.Slice(sel.End, doc.RuneLen())
			got := string(gotDoc)

			if !strings.HasPrefix(got, prefix) {
				t.Errorf("%v on %q: prefix %q not preserved in %q", action, doc, prefix, got)
			}
			if !strings.HasSuffix(got, suffix) {
				t.Errorf("%v on %q: suffix %q not preserved in %q", action, doc, suffix, got)
			}

			// len(new) == len(old) - len(selected) + len(insertion)
			insertionLen := gotDoc.RuneLen() - doc.RuneLen() + (sel.End - sel.Start)
			selected := doc.Slice(sel.Start, sel.End)
			if insertionLen < utf8.RuneCountInString(selected) {
				t.Errorf("%v on %q: insertion shorter than the selection it wraps", action, doc)
			}
		}
	}
}

func TestInsert_ClampsHostileSelection(t *testing.T) {
	gotDoc, gotSel, err := Insert("abc", buffer.Selection{Start: 5, End: 99}, ActionBold)
	if err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	if gotDoc != "abc**bold text**" {
		t.Errorf("Insert() doc = %q, want %q", gotDoc, "abc**bold text**")
	}
	if gotSel.Start != 5 {
		t.Errorf("Insert() caret = %d, want 5", gotSel.Start)
	}
}

func TestAll_CoversEveryAction(t *testing.T) {
	actions := All()
	if len(actions) != 11 {
		t.Fatalf("All() returned %d actions, want 11", len(actions))
	}

	seen := make(map[Action]bool)
	for _, a := range actions {
		if seen[a] {
			t.Errorf("All() contains %q twice", a)
		}
		seen[a] = true
		if a.Label() == "" {
			t.Errorf("Label() empty for %q", a)
		}
	}
}
