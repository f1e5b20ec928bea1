package csvgrid

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Encoding pairs a character encoding with the preamble (byte-order mark)
// written ahead of the encoded text so downstream tools can detect it.
// The zero value encodes as UTF-8 with no preamble.
type Encoding struct {
	name     string
	enc      encoding.Encoding
	preamble []byte
}

// Provided encodings. UTF8 writes no preamble; UTF8BOM writes one for
// tools (notably Excel) that otherwise fall back to the locale codepage.
var (
	UTF8        = Encoding{name: "utf-8", enc: unicode.UTF8}
	UTF8BOM     = Encoding{name: "utf-8-bom", enc: unicode.UTF8, preamble: []byte{0xEF, 0xBB, 0xBF}}
	UTF16LE     = Encoding{name: "utf-16le", enc: unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), preamble: []byte{0xFF, 0xFE}}
	UTF16BE     = Encoding{name: "utf-16be", enc: unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), preamble: []byte{0xFE, 0xFF}}
	Windows1252 = Encoding{name: "windows-1252", enc: charmap.Windows1252}
)

var encodings = []Encoding{UTF8, UTF8BOM, UTF16LE, UTF16BE, Windows1252}

// String returns the encoding name.
func (e Encoding) String() string { return e.name }

// Preamble returns a copy of the encoding's byte-order mark, empty for
// encodings without one.
func (e Encoding) Preamble() []byte {
	out := make([]byte, len(e.preamble))
	copy(out, e.preamble)
	return out
}

// Encode converts s to the encoding's byte representation, without the
// preamble. Text the target encoding cannot represent is an error.
func (e Encoding) Encode(s string) ([]byte, error) {
	if e.enc == nil {
		e.enc = unicode.UTF8
	}
	return e.enc.NewEncoder().Bytes([]byte(s))
}

// ParseEncoding resolves an encoding by name ("utf-8", "utf-8-bom",
// "utf-16le", "utf-16be", "windows-1252").
func ParseEncoding(s string) (Encoding, error) {
	for _, e := range encodings {
		if e.name == s {
			return e, nil
		}
	}
	return Encoding{}, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, s)
}
