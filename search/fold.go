package search

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// Folder maps text to its Unicode case-folded form.
// A Folder is not safe for concurrent use.
type Folder struct {
	caser cases.Caser
}

// NewFolder creates a Folder using full Unicode case folding
func NewFolder() *Folder {
	return &Folder{caser: cases.Fold()}
}

// Fold returns the case-folded form of s
func (f *Folder) Fold(s string) string {
	folded, _ := f.fold(s, false)
	return folded
}

// FoldMapped folds s and remembers where every folded byte came from
func (f *Folder) FoldMapped(s string) Mapping {
	folded, offsets := f.fold(s, true)
	return Mapping{Folded: folded, src: s, offsets: offsets}
}

// fold works rune by rune so a folded byte can always be traced back to
// exactly one rune of the input. Invalid UTF-8 bytes are copied through.
func (f *Folder) fold(s string, track bool) (string, []int) {
	var b strings.Builder
	b.Grow(len(s))
	var offsets []int
	if track {
		offsets = make([]int, 0, len(s))
	}

	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		var piece string
		switch {
		case r < utf8.RuneSelf:
			c := s[i]
			if 'A' <= c && c <= 'Z' {
				c += 'a' - 'A'
			}
			b.WriteByte(c)
			if track {
				offsets = append(offsets, i)
			}
			i += size
			continue
		case r == utf8.RuneError && size == 1:
			piece = s[i : i+1]
		default:
			piece = f.caser.String(s[i : i+size])
		}
		b.WriteString(piece)
		if track {
			for range len(piece) {
				offsets = append(offsets, i)
			}
		}
		i += size
	}

	return b.String(), offsets
}

// Mapping is a folded string together with a map back to its source
type Mapping struct {
	Folded  string
	src     string
	offsets []int // offsets[i] is the start of the source rune behind Folded[i]
}

// Source converts the folded byte range [start, end) into the smallest range
// of whole runes in the source that produced it. end must be greater than start.
func (m Mapping) Source(start, end int) (int, int) {
	from := m.offsets[start]
	last := m.offsets[end-1]
	_, size := utf8.DecodeRuneInString(m.src[last:])
	return from, last + size
}

// Next returns the first folded offset at or after start whose source rune
// begins at or after srcPos. It returns len(Folded) when there is none.
func (m Mapping) Next(start, srcPos int) int {
	for i := start; i < len(m.offsets); i++ {
		if m.offsets[i] >= srcPos {
			return i
		}
	}
	return len(m.Folded)
}
