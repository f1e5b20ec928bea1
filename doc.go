// Package csvgrid serializes a dynamically built grid of named columns and
// rows into delimiter-separated text for spreadsheet consumption.
//
// A [Table] is populated incrementally: start a row, set cells by column
// name, repeat. No schema is declared up front — a column exists once any
// row uses its name, and the header keeps the first-seen order. Rows may
// set any subset of columns in any order; cells a row never set export as
// empty.
//
// # Building a Table
//
//	t := csvgrid.New()
//	t.StartRow()
//	t.SetCell("Region", "New York, USA")
//	t.SetCell("Sales", 100000)
//	t.StartRow()
//	t.SetCell("Region", "Sydney")
//	t.SetCell("Opened", time.Date(2005, 1, 1, 9, 30, 0, 0, time.UTC))
//
// Use [Table.AddRows] to populate from structs, one row per record with
// one cell per exported field. Records can bypass reflection by
// implementing [Celler].
//
// # Exporting
//
// Three surfaces share one lazy line generator, [Table.Lines]:
//
//   - [Table.ExportText] — the whole export as one string
//   - [Table.ExportTo] — streamed to an [io.Writer], one encoded line per
//     write
//   - [Table.ExportBytes] — encoded bytes with the encoding's preamble
//     prepended
//   - [Table.ExportFile] — [Table.ExportTo] into a freshly created file
//
// Exports are read-only passes over the current table state; the same
// table can be exported repeatedly, with different options each time:
//
//	text := t.ExportText()
//	err := t.ExportTo(w, csvgrid.UTF8, csvgrid.WithDelimiter(';'),
//		csvgrid.WithSeparatorHint())
//
// # Formatting Rules
//
// Cells containing the delimiter, a double quote, or a line break are
// quote-wrapped with embedded quotes doubled. [time.Time] values render as
// "2006-01-02", or "2006-01-02 15:04:05" when the clock is not midnight.
// Nil renders empty. Cells are capped for spreadsheet compatibility:
// truncated at 30,000 characters (with the closing quote re-balanced),
// never exceeding the legacy 32,767-character cell ceiling. Lines always
// end with CRLF.
//
// [WithSeparatorHint] prepends a "sep=<delimiter>" line so Excel uses the
// export's delimiter instead of guessing from the locale.
//
// # Encodings
//
// Byte-producing exports take an [Encoding], which pairs a character
// encoding with its preamble (byte-order mark): [UTF8], [UTF8BOM],
// [UTF16LE], [UTF16BE], [Windows1252]. Use [ParseEncoding] to resolve a
// CLI flag string. Text the target encoding cannot represent surfaces as
// an encode error.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrNoRow] — SetCell before any StartRow
//   - [ErrBadRecord] — AddRows record that is neither a struct nor a Celler
//   - [ErrUnsupportedEncoding] — unknown encoding name
//
// I/O and encode errors pass through from the writer and encoding
// unchanged; no operation retries or downgrades an error.
//
// # Concurrency
//
// Table has no internal locking: single writer, and an export drains the
// state present when it started. Concurrent mutation during an export is
// undefined; serialize access externally if needed.
package csvgrid
