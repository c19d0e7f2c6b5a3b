package converter

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Goldmark is the production Converter. The configuration is fixed:
// GitHub-flavored extensions, soft line breaks rendered as hard breaks,
// auto-generated heading anchor IDs, and raw HTML passed through untouched
// (no escaping, no mangling of email-like text).
type Goldmark struct {
	md goldmark.Markdown
}

// NewGoldmark builds the converter with the fixed configuration.
func NewGoldmark() *Goldmark {
	return &Goldmark{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
			goldmark.WithRendererOptions(
				html.WithHardWraps(),
				html.WithUnsafe(),
			),
		),
	}
}

// Convert renders Markdown source to an HTML fragment.
func (g *Goldmark) Convert(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := g.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown: %w", err)
	}
	return buf.String(), nil
}
