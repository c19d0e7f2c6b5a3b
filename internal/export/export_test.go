package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/studiowebux/markpad/internal/buffer"
	"github.com/studiowebux/markpad/internal/session"
)

func TestTitle(t *testing.T) {
	tests := []struct {
		name string
		doc  buffer.Document
		want string
	}{
		{
			name: "front matter title wins",
			doc:  "---\ntitle: My Notes\nauthor: someone\n---\n\n# Other heading\n",
			want: "My Notes",
		},
		{
			name: "first heading",
			doc:  "some intro text\n\n## Second Level\n\n# Later\n",
			want: "Second Level",
		},
		{
			name: "no heading",
			doc:  "just a paragraph",
			want: DefaultTitle,
		},
		{
			name: "empty document",
			doc:  "",
			want: DefaultTitle,
		},
		{
			name: "malformed front matter falls back to heading",
			doc:  "---\ntitle: [unclosed\n---\n# Fallback\n",
			want: "Fallback",
		},
		{
			name: "front matter without title falls back",
			doc:  "---\nauthor: someone\n---\n# From Heading\n",
			want: "From Heading",
		},
		{
			name: "hash without space is not a heading",
			doc:  "#hashtag\n# Real Heading\n",
			want: "Real Heading",
		},
		{
			name: "unclosed front matter ignored",
			doc:  "---\ntitle: Dangling\n\n# Heading Instead\n",
			want: "Heading Instead",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Title(tt.doc); got != tt.want {
				t.Errorf("Title() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildHTMLDocument(t *testing.T) {
	page := BuildHTMLDocument("# Report\n", "<h1>Report</h1>", session.ThemeDark)

	for _, want := range []string{
		"<!doctype html>",
		"<meta charset=\"utf-8\">",
		"<title>Report</title>",
		"color-scheme: dark",
		"<h1>Report</h1>",
		"</html>",
	} {
		if !strings.Contains(page, want) {
			t.Errorf("BuildHTMLDocument() missing %q", want)
		}
	}
}

func TestBuildHTMLDocument_LightTheme(t *testing.T) {
	page := BuildHTMLDocument("x", "<p>x</p>", session.ThemeLight)

	if !strings.Contains(page, "color-scheme: light") {
		t.Error("BuildHTMLDocument() light theme missing light stylesheet")
	}
	if strings.Contains(page, "color-scheme: dark") {
		t.Error("BuildHTMLDocument() light theme must not embed the dark palette")
	}
}

func TestBuildHTMLDocument_EscapesTitle(t *testing.T) {
	page := BuildHTMLDocument("# <Tags> & Co\n", "<p>x</p>", session.ThemeDark)

	if !strings.Contains(page, "<title>&lt;Tags&gt; &amp; Co</title>") {
		t.Errorf("BuildHTMLDocument() title not escaped: %s", page)
	}
}

func TestWriteMarkdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.md")

	if err := WriteMarkdown(path, "# Draft\n\ncontent\n"); err != nil {
		t.Fatalf("WriteMarkdown() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "# Draft\n\ncontent\n" {
		t.Errorf("exported markdown = %q, want raw draft bytes", data)
	}
}

func TestWriteHTML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.html")

	if err := WriteHTML(path, "# Draft\n", "<h1>Draft</h1>", session.ThemeDark); err != nil {
		t.Fatalf("WriteHTML() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "<h1>Draft</h1>") {
		t.Error("exported html missing rendered fragment")
	}
	if !strings.Contains(string(data), "<style>") {
		t.Error("exported html missing inline stylesheet")
	}
}

func TestTimestampedBase(t *testing.T) {
	base := TimestampedBase()

	if !strings.HasPrefix(base, "draft_") {
		t.Errorf("TimestampedBase() = %q, want draft_ prefix", base)
	}
	if len(base) != len("draft_20060102_150405") {
		t.Errorf("TimestampedBase() = %q, unexpected length", base)
	}
}
