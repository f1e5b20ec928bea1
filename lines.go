package csvgrid

import (
	"iter"
	"strings"
)

// Option adjusts formatting for a single export call. Options never stick
// to the Table.
type Option func(*settings)

type settings struct {
	delim  rune
	header bool
	hint   bool
}

func newSettings(opts []Option) settings {
	s := settings{delim: ',', header: true}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithDelimiter sets the field delimiter.
// Default: comma.
func WithDelimiter(d rune) Option {
	return func(s *settings) { s.delim = d }
}

// WithoutHeader suppresses the column-name header line.
// Default: header on.
func WithoutHeader() Option {
	return func(s *settings) { s.header = false }
}

// WithSeparatorHint emits a leading "sep=<delimiter>" line. Excel and
// compatible tools read it to override locale-based delimiter guessing.
// Default: off.
func WithSeparatorHint() Option {
	return func(s *settings) { s.hint = true }
}

// Lines returns the export as a lazy, forward-only sequence of lines: the
// optional separator hint, the optional header, then one line per row in
// insertion order. Each line is built only when consumed, so a caller that
// stops iterating early pays nothing for the remaining rows.
//
// Every cell goes through the quoting rules, with cells the row never set
// reading as empty. Header names are joined as-is, without escaping.
func (t *Table) Lines(opts ...Option) iter.Seq[string] {
	s := newSettings(opts)
	return func(yield func(string) bool) {
		if s.hint && !yield("sep="+string(s.delim)) {
			return
		}
		if s.header && !yield(strings.Join(t.cols, string(s.delim))) {
			return
		}
		var b strings.Builder
		for _, row := range t.rows {
			b.Reset()
			for i, col := range t.cols {
				if i > 0 {
					b.WriteRune(s.delim)
				}
				b.WriteString(formatCell(row[col], s.delim))
			}
			if !yield(b.String()) {
				return
			}
		}
	}
}
