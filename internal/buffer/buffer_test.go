package buffer

import "testing"

func TestDocument_RuneLen(t *testing.T) {
	tests := []struct {
		name string
		doc  Document
		want int
	}{
		{"empty", "", 0},
		{"ascii", "hello", 5},
		{"multibyte", "héllo wörld", 11},
		{"emoji", "a😀b", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.doc.RuneLen(); got != tt.want {
				t.Errorf("RuneLen() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDocument_Slice(t *testing.T) {
	tests := []struct {
		name       string
		doc        Document
		start, end int
		want       string
	}{
		{"middle", "hello world", 6, 11, "world"},
		{"full", "hi", 0, 2, "hi"},
		{"empty range", "hi", 1, 1, ""},
		{"multibyte", "héllo", 1, 4, "éll"},
		{"end past bounds", "abc", 1, 99, "bc"},
		{"negative start", "abc", -5, 2, "ab"},
		{"negative end", "abc", 0, -1, ""},
		{"reversed offsets", "abc", 2, 0, "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.doc.Slice(tt.start, tt.end); got != tt.want {
				t.Errorf("Slice(%d, %d) = %q, want %q", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestDocument_Splice(t *testing.T) {
	tests := []struct {
		name       string
		doc        Document
		start, end int
		text       string
		want       Document
	}{
		{"replace middle", "hello world", 6, 11, "there", "hello there"},
		{"insert at caret", "ab", 1, 1, "X", "aXb"},
		{"prepend", "tail", 0, 0, "head ", "head tail"},
		{"append", "head", 4, 4, " tail", "head tail"},
		{"replace all", "old", 0, 3, "new", "new"},
		{"multibyte boundary", "héllo", 1, 2, "E", "hEllo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.doc.Splice(tt.start, tt.end, tt.text); got != tt.want {
				t.Errorf("Splice(%d, %d, %q) = %q, want %q", tt.start, tt.end, tt.text, got, tt.want)
			}
		})
	}
}

func TestSelection_Clamp(t *testing.T) {
	doc := Document("hello")

	tests := []struct {
		name string
		sel  Selection
		want Selection
	}{
		{"in bounds", Selection{1, 3}, Selection{1, 3}},
		{"reversed", Selection{3, 1}, Selection{1, 3}},
		{"negative start", Selection{-2, 2}, Selection{0, 2}},
		{"end past length", Selection{2, 40}, Selection{2, 5}},
		{"both past length", Selection{10, 20}, Selection{5, 5}},
		{"caret", Selection{2, 2}, Selection{2, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sel.Clamp(doc); got != tt.want {
				t.Errorf("Clamp() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCaret(t *testing.T) {
	c := Caret(4)
	if c.Start != 4 || c.End != 4 {
		t.Errorf("Caret(4) = %+v, want empty selection at 4", c)
	}
	if !c.IsEmpty() {
		t.Error("Caret(4).IsEmpty() = false, want true")
	}
	if (Selection{1, 2}).IsEmpty() {
		t.Error("Selection{1, 2}.IsEmpty() = true, want false")
	}
}
