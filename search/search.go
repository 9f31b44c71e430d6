package search

import (
	"strings"
)

// Lines splits contents on '\n'. A '\r' directly before a '\n' is dropped and
// a final newline does not produce an empty last line.
// The returned lines share memory with contents.
func Lines(contents string) []string {
	lines := make([]string, 0, strings.Count(contents, "\n")+1)
	for len(contents) > 0 {
		line := contents
		if i := strings.IndexByte(contents, '\n'); i >= 0 {
			line = strings.TrimSuffix(contents[:i], "\r")
			contents = contents[i+1:]
		} else {
			contents = ""
		}
		lines = append(lines, line)
	}
	return lines
}

// Search returns every line of contents that contains query, in document order.
// Lines are returned as they appear in contents; case folding only affects the comparison.
// An empty query matches every line.
func Search(query string, ignoreCase bool, contents string) []string {
	match := Matcher(query, ignoreCase)

	results := make([]string, 0)
	for _, line := range Lines(contents) {
		if match(line) {
			results = append(results, line)
		}
	}
	return results
}

// Matcher returns a line predicate for query.
// With ignoreCase the query is folded once here, and each line once per call.
func Matcher(query string, ignoreCase bool) func(line string) bool {
	if !ignoreCase {
		return func(line string) bool {
			return strings.Contains(line, query)
		}
	}

	folder := NewFolder()
	folded := folder.Fold(query)
	return func(line string) bool {
		return strings.Contains(folder.Fold(line), folded)
	}
}
