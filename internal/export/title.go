package export

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/studiowebux/markpad/internal/buffer"
)

// DefaultTitle is used when the document carries neither a front matter
// title nor a heading.
const DefaultTitle = "markpad document"

// Title extracts a page title from the document: a YAML front matter
// `title:` wins, then the first ATX heading, then DefaultTitle. Malformed
// front matter is ignored rather than reported; export never fails on it.
func Title(doc buffer.Document) string {
	text := string(doc)

	if meta, ok := parseFrontMatter(text); ok {
		if title, ok := meta["title"].(string); ok {
			if trimmed := strings.TrimSpace(title); trimmed != "" {
				return trimmed
			}
		}
	}

	for _, line := range strings.Split(text, "\n") {
		if heading, ok := headingText(line); ok {
			return heading
		}
	}

	return DefaultTitle
}

// parseFrontMatter reads an optional leading `---` fenced YAML block.
func parseFrontMatter(text string) (map[string]any, bool) {
	if !strings.HasPrefix(text, "---\n") {
		return nil, false
	}

	rest := text[len("---\n"):]
	end := strings.Index(rest, "\n---")
	if end < 0 {
		return nil, false
	}

	// The closing fence must sit on its own line
	after := rest[end+len("\n---"):]
	if after != "" && !strings.HasPrefix(after, "\n") {
		return nil, false
	}

	var meta map[string]any
	if err := yaml.Unmarshal([]byte(rest[:end]), &meta); err != nil {
		return nil, false
	}
	return meta, true
}

// headingText returns the text of an ATX heading line (1 to 6 hashes plus a
// space), or false when the line is not a heading.
func headingText(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)

	hashes := 0
	for hashes < len(trimmed) && trimmed[hashes] == '#' {
		hashes++
	}
	if hashes < 1 || hashes > 6 || hashes >= len(trimmed) || trimmed[hashes] != ' ' {
		return "", false
	}

	text := strings.TrimSpace(trimmed[hashes+1:])
	if text == "" {
		return "", false
	}
	return text, true
}
