package highlight

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	red   = "\x1b[31m"
	reset = "\x1b[0m"
)

func joined(segs []Segment) string {
	var b strings.Builder
	for _, s := range segs {
		b.WriteString(s.Text)
	}
	return b.String()
}

func TestSegments_CaseSensitive(t *testing.T) {
	segs := Segments("ab", false, "xabyabAB")

	assert.Equal(t, []Segment{
		{Text: "x"},
		{Text: "ab", Match: true},
		{Text: "y"},
		{Text: "ab", Match: true},
		{Text: "AB"},
	}, segs)
}

func TestSegments_CaseInsensitiveKeepsOriginalText(t *testing.T) {
	segs := Segments("rust", true, "Rust and TRUST")

	assert.Equal(t, []Segment{
		{Text: "Rust", Match: true},
		{Text: " and T"},
		{Text: "RUST", Match: true},
	}, segs)
}

func TestSegments_EmptyQueryHasNoMatches(t *testing.T) {
	assert.Equal(t, []Segment{{Text: "anything"}}, Segments("", false, "anything"))
	assert.Equal(t, []Segment{{Text: "anything"}}, Segments("", true, "anything"))
}

func TestSegments_NoOccurrence(t *testing.T) {
	assert.Equal(t, []Segment{{Text: "plain"}}, Segments("zz", true, "plain"))
}

func TestSegments_AdjacentOccurrences(t *testing.T) {
	segs := Segments("aa", false, "aaaaa")

	assert.Equal(t, []Segment{
		{Text: "aa", Match: true},
		{Text: "aa", Match: true},
		{Text: "a"},
	}, segs)
}

func TestSegments_LengthChangingFold(t *testing.T) {
	tests := []struct {
		name  string
		query string
		line  string
		want  []Segment
	}{
		{
			name:  "sharp s in line",
			query: "strasse",
			line:  "Die Straße hier",
			want: []Segment{
				{Text: "Die "},
				{Text: "Straße", Match: true},
				{Text: " hier"},
			},
		},
		{
			name:  "sharp s in query",
			query: "ß",
			line:  "GROSS und groß",
			want: []Segment{
				{Text: "GRO"},
				{Text: "SS", Match: true},
				{Text: " und gro"},
				{Text: "ß", Match: true},
			},
		},
		{
			name:  "partial expansion highlights whole rune",
			query: "s",
			line:  "aßb",
			want: []Segment{
				{Text: "a"},
				{Text: "ß", Match: true},
				{Text: "b"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segs := Segments(tt.query, true, tt.line)
			assert.Equal(t, tt.want, segs)
			assert.Equal(t, tt.line, joined(segs))
		})
	}
}

func TestPrinter_RenderANSI(t *testing.T) {
	p := NewPrinter(nil, termenv.ANSI)

	got := p.Render("duct", false, "safe, fast, productive.")

	assert.Equal(t, "safe, fast, pro"+red+"duct"+reset+"ive.\n", got)
}

func TestPrinter_RenderAsciiHasNoEscapes(t *testing.T) {
	p := NewPrinter(nil, termenv.Ascii)

	got := p.Render("rust", true, "Trust me.")

	assert.Equal(t, "Trust me.\n", got)
}

func TestPrinter_RoundTrip(t *testing.T) {
	lines := []struct {
		query      string
		ignoreCase bool
		line       string
	}{
		{"duct", false, "safe, fast, productive."},
		{"a", false, "banana"},
		{"RuSt", true, "Rust: trust the rust"},
		{"ss", true, "Straße and STRASSE"},
		{"\t", false, "tab\tseparated\tline"},
		{"é", true, "Été, café"},
	}

	p := NewPrinter(nil, termenv.ANSI)
	for _, tt := range lines {
		t.Run(tt.line, func(t *testing.T) {
			got := p.Render(tt.query, tt.ignoreCase, tt.line)

			assert.Contains(t, got, red)
			assert.Equal(t, tt.line+"\n", ansi.Strip(got))
		})
	}
}

func TestPrinter_PrintLineWrites(t *testing.T) {
	buf := &bytes.Buffer{}
	p := NewPrinter(buf, termenv.Ascii)

	require.NoError(t, p.PrintLine("b", false, "abc"))
	require.NoError(t, p.PrintLine("b", false, "bcd"))

	assert.Equal(t, "abc\nbcd\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestPrinter_PrintLineWriteError(t *testing.T) {
	p := NewPrinter(failingWriter{}, termenv.Ascii)

	err := p.PrintLine("a", false, "a")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken pipe")
}
