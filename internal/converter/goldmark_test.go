package converter

import (
	"strings"
	"testing"
)

func TestGoldmark_Convert(t *testing.T) {
	c := NewGoldmark()

	tests := []struct {
		name     string
		markdown string
		contains []string
	}{
		{
			name:     "paragraph",
			markdown: "hello world",
			contains: []string{"<p>hello world</p>"},
		},
		{
			name:     "soft break becomes hard break",
			markdown: "line one\nline two",
			contains: []string{"<br"},
		},
		{
			name:     "gfm strikethrough",
			markdown: "~~gone~~",
			contains: []string{"<del>gone</del>"},
		},
		{
			name:     "gfm table",
			markdown: "| a | b |\n| --- | --- |\n| c | d |",
			contains: []string{"<table>", "<td>c</td>"},
		},
		{
			name:     "heading anchor id",
			markdown: "# Hello World",
			contains: []string{`<h1 id="hello-world">Hello World</h1>`},
		},
		{
			name:     "email autolink stays readable",
			markdown: "write to support@example.com today",
			contains: []string{"mailto:support@example.com"},
		},
		{
			name:     "raw html passes through",
			markdown: "<div class=\"note\">raw</div>",
			contains: []string{`<div class="note">raw</div>`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Convert(tt.markdown)
			if err != nil {
				t.Fatalf("Convert() error = %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("Convert(%q) = %q, missing %q", tt.markdown, got, want)
				}
			}
		})
	}
}

func TestGoldmark_ConvertEmpty(t *testing.T) {
	c := NewGoldmark()

	got, err := c.Convert("")
	if err != nil {
		t.Fatalf("Convert(\"\") error = %v", err)
	}
	if strings.TrimSpace(got) != "" {
		t.Errorf("Convert(\"\") = %q, want empty fragment", got)
	}
}
