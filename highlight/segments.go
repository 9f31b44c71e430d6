// Package highlight marks every occurrence of a query inside a matched line.
package highlight

import (
	"strings"

	"github.com/takaishi/mgrep/search"
)

// Segment is a piece of a line, either plain text or a query occurrence
type Segment struct {
	Text  string
	Match bool
}

// Segments splits line into alternating plain and matched pieces.
// Concatenating the Text of all segments always gives back line. With
// ignoreCase, occurrences are found in the folded line but the matched text is
// cut from the original, so folds that change length (ß -> ss) stay correct.
// An empty query yields no matches.
func Segments(query string, ignoreCase bool, line string) []Segment {
	if query == "" {
		return plain(line)
	}
	if !ignoreCase {
		return exactSegments(query, line)
	}
	return foldedSegments(query, line)
}

func exactSegments(query, line string) []Segment {
	var segs []Segment
	cursor := 0
	for {
		i := strings.Index(line[cursor:], query)
		if i < 0 {
			break
		}
		start := cursor + i
		end := start + len(query)
		segs = appendPlain(segs, line[cursor:start])
		segs = append(segs, Segment{Text: line[start:end], Match: true})
		cursor = end
	}
	return appendPlain(segs, line[cursor:])
}

func foldedSegments(query, line string) []Segment {
	folder := search.NewFolder()
	needle := folder.Fold(query)
	if needle == "" {
		return plain(line)
	}
	m := folder.FoldMapped(line)

	var segs []Segment
	cursor, src := 0, 0
	for {
		i := strings.Index(m.Folded[cursor:], needle)
		if i < 0 {
			break
		}
		start := cursor + i
		end := start + len(needle)
		from, to := m.Source(start, end)
		segs = appendPlain(segs, line[src:from])
		segs = append(segs, Segment{Text: line[from:to], Match: true})
		src = to
		// skip folded bytes that belong to a rune already emitted
		cursor = m.Next(end, src)
	}
	return appendPlain(segs, line[src:])
}

func plain(line string) []Segment {
	return appendPlain(nil, line)
}

func appendPlain(segs []Segment, text string) []Segment {
	if text == "" {
		return segs
	}
	return append(segs, Segment{Text: text})
}
