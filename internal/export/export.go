package export

import (
	"fmt"
	"html"
	"os"
	"strings"
	"time"

	"github.com/studiowebux/markpad/internal/buffer"
	"github.com/studiowebux/markpad/internal/session"
)

// WriteMarkdown writes the raw draft bytes as a Markdown file.
func WriteMarkdown(path string, doc buffer.Document) error {
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		return fmt.Errorf("failed to write markdown file: %w", err)
	}
	return nil
}

// WriteHTML writes a standalone HTML page wrapping the rendered fragment.
func WriteHTML(path string, doc buffer.Document, fragment string, theme session.Theme) error {
	page := BuildHTMLDocument(doc, fragment, theme)
	if err := os.WriteFile(path, []byte(page), 0644); err != nil {
		return fmt.Errorf("failed to write html file: %w", err)
	}
	return nil
}

// BuildHTMLDocument wraps a rendered fragment in a complete HTML page with
// the fixed inline stylesheet. The page title comes from the document (front
// matter first, then the first heading).
func BuildHTMLDocument(doc buffer.Document, fragment string, theme session.Theme) string {
	var b strings.Builder

	b.WriteString("<!doctype html>\n")
	b.WriteString("<html lang=\"en\">\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(Title(doc)))
	b.WriteString("<style>\n")
	b.WriteString(styleLayout)
	if theme == session.ThemeLight {
		b.WriteString(styleLight)
	} else {
		b.WriteString(styleDark)
	}
	b.WriteString("</style>\n")
	b.WriteString("</head>\n<body>\n<main>\n")
	b.WriteString(fragment)
	b.WriteString("\n</main>\n</body>\n</html>\n")

	return b.String()
}

// TimestampedBase returns a unique-enough basename for TUI exports,
// e.g. draft_20250114_153042.
func TimestampedBase() string {
	return fmt.Sprintf("draft_%s", time.Now().Format("20060102_150405"))
}

const styleLayout = `main { max-width: 72ch; margin: 2rem auto; padding: 0 1rem; }
body { font-family: -apple-system, "Segoe UI", Roboto, sans-serif; line-height: 1.6; }
h1, h2, h3, h4, h5, h6 { line-height: 1.25; }
pre { padding: 1rem; overflow-x: auto; border-radius: 6px; }
code { font-family: "SF Mono", Consolas, monospace; font-size: 0.92em; }
blockquote { margin: 0; padding-left: 1rem; border-left: 4px solid; }
img { max-width: 100%; }
table { border-collapse: collapse; }
th, td { padding: 0.35rem 0.75rem; border: 1px solid; }
`

const styleDark = `:root { color-scheme: dark; }
body { background: #1a1b26; color: #c0caf5; }
a { color: #7aa2f7; }
pre, code { background: #24283b; }
blockquote { border-color: #414868; color: #9aa5ce; }
th, td { border-color: #414868; }
`

const styleLight = `:root { color-scheme: light; }
body { background: #ffffff; color: #24292f; }
a { color: #0969da; }
pre, code { background: #f6f8fa; }
blockquote { border-color: #d0d7de; color: #57606a; }
th, td { border-color: #d0d7de; }
`
