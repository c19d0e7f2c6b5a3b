package stats

import (
	"strings"

	"github.com/studiowebux/markpad/internal/buffer"
)

// Stats holds the word and character counts derived from a document.
type Stats struct {
	Words int
	Chars int
}

// Compute counts words and characters in the document. Chars is the raw rune
// length, untrimmed. Words are runs of non-whitespace separated by any
// whitespace; an empty or all-whitespace document has zero words.
func Compute(doc buffer.Document) Stats {
	return Stats{
		Words: len(strings.Fields(string(doc))),
		Chars: doc.RuneLen(),
	}
}
