package highlight

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// Printer writes matched lines with their query occurrences in red
type Printer struct {
	out     io.Writer
	profile termenv.Profile
}

// NewPrinter creates a Printer. With termenv.Ascii no escape sequences are written.
func NewPrinter(out io.Writer, profile termenv.Profile) *Printer {
	return &Printer{out: out, profile: profile}
}

// Render returns line with occurrences of query marked, plus a trailing newline
func (p *Printer) Render(query string, ignoreCase bool, line string) string {
	var b strings.Builder
	b.Grow(len(line) + 1)
	for _, seg := range Segments(query, ignoreCase, line) {
		if seg.Match {
			b.WriteString(p.mark(seg.Text))
			continue
		}
		b.WriteString(seg.Text)
	}
	b.WriteByte('\n')
	return b.String()
}

// PrintLine writes the rendered line to the output
func (p *Printer) PrintLine(query string, ignoreCase bool, line string) error {
	if _, err := io.WriteString(p.out, p.Render(query, ignoreCase, line)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (p *Printer) mark(s string) string {
	return p.profile.String(s).Foreground(termenv.ANSIRed).String()
}
