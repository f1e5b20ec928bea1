package csvgrid

import (
	"io"
	"os"
	"strings"
)

// Every exported line ends with this terminator, matching what spreadsheet
// tools expect regardless of platform.
const lineEnding = "\r\n"

// ExportText renders the whole table as one string.
func (t *Table) ExportText(opts ...Option) string {
	var b strings.Builder
	for line := range t.Lines(opts...) {
		b.WriteString(line)
		b.WriteString(lineEnding)
	}
	return b.String()
}

// ExportTo encodes and writes the table to w one line at a time, never
// holding more than a single line in memory. The encoding's preamble, if
// any, is written first. The first encode or write error aborts the export;
// anything already written stays written.
func (t *Table) ExportTo(w io.Writer, enc Encoding, opts ...Option) error {
	if p := enc.Preamble(); len(p) > 0 {
		if _, err := w.Write(p); err != nil {
			return err
		}
	}
	for line := range t.Lines(opts...) {
		data, err := enc.Encode(line + lineEnding)
		if err != nil {
			return err
		}
		if _, err := w.Write(data); err != nil {
			return err
		}
	}
	return nil
}

// ExportBytes renders the table as encoded bytes, preamble first.
func (t *Table) ExportBytes(enc Encoding, opts ...Option) ([]byte, error) {
	data, err := enc.Encode(t.ExportText(opts...))
	if err != nil {
		return nil, err
	}
	return append(enc.Preamble(), data...), nil
}

// ExportFile writes the table to the file at path, truncating any existing
// file. A failed export can leave a partial file behind; callers needing
// atomicity should export to a temp file and rename.
func (t *Table) ExportFile(path string, enc Encoding, opts ...Option) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := t.ExportTo(f, enc, opts...); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
