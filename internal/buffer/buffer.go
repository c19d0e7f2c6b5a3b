package buffer

import "unicode/utf8"

// Document is the full editable Markdown source. All offsets into a Document
// are rune offsets, never byte offsets.
type Document string

// RuneLen returns the number of runes in the document.
func (d Document) RuneLen() int {
	return utf8.RuneCountInString(string(d))
}

// Slice returns the text between two rune offsets. Offsets are clamped to
// the document bounds before slicing, so a hostile range cannot panic.
func (d Document) Slice(start, end int) string {
	runes := []rune(string(d))
	start = clampOffset(start, len(runes))
	end = clampOffset(end, len(runes))
	if start > end {
		start, end = end, start
	}
	return string(runes[start:end])
}

func clampOffset(offset, max int) int {
	if offset < 0 {
		return 0
	}
	if offset > max {
		return max
	}
	return offset
}

// Splice replaces the range [start, end) with text and returns the new
// document. Offsets are rune offsets, clamped like Slice.
func (d Document) Splice(start, end int, text string) Document {
	return Document(d.Slice(0, start) + text + d.Slice(end, d.RuneLen()))
}

// Selection is a caret or highlighted range as a pair of rune offsets into a
// Document, with 0 <= Start <= End <= RuneLen.
type Selection struct {
	Start int
	End   int
}

// Caret returns an empty selection at the given offset.
func Caret(offset int) Selection {
	return Selection{Start: offset, End: offset}
}

// IsEmpty reports whether the selection is a bare caret.
func (s Selection) IsEmpty() bool {
	return s.Start == s.End
}

// Clamp orders the selection offsets and bounds them to the document.
func (s Selection) Clamp(d Document) Selection {
	length := d.RuneLen()
	if s.Start > s.End {
		s.Start, s.End = s.End, s.Start
	}
	if s.Start < 0 {
		s.Start = 0
	}
	if s.End < 0 {
		s.End = 0
	}
	if s.Start > length {
		s.Start = length
	}
	if s.End > length {
		s.End = length
	}
	return s
}
