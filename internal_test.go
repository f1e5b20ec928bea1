package csvgrid

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCell(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		value any
		want  string
	}{
		"nil":             {value: nil, want: ""},
		"typed nil":       {value: (*int)(nil), want: ""},
		"plain string":    {value: "hello", want: "hello"},
		"int":             {value: 100000, want: "100000"},
		"float":           {value: 0.25, want: "0.25"},
		"bool":            {value: true, want: "true"},
		"embedded comma":  {value: "New York, USA", want: `"New York, USA"`},
		"embedded quote":  {value: `say "hi"`, want: `"say ""hi"""`},
		"embedded lf":     {value: "a\nb", want: "\"a\nb\""},
		"embedded cr":     {value: "a\rb", want: "\"a\rb\""},
		"midnight date":   {value: time.Date(2003, 12, 31, 0, 0, 0, 0, time.UTC), want: "2003-12-31"},
		"date with clock": {value: time.Date(2005, 1, 1, 9, 30, 0, 0, time.UTC), want: "2005-01-01 09:30:00"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, formatCell(tt.value, ','))
		})
	}
}

func TestFormatCellCustomDelimiter(t *testing.T) {
	t.Parallel()
	// Only the active delimiter triggers quoting.
	assert.Equal(t, "a,b", formatCell("a,b", ';'))
	assert.Equal(t, `"a;b"`, formatCell("a;b", ';'))
}

func TestFormatCellStringer(t *testing.T) {
	t.Parallel()
	d := 90 * time.Second
	assert.Equal(t, "1m30s", formatCell(d, ','))
}

func TestFormatCellSoftCap(t *testing.T) {
	t.Parallel()
	got := formatCell(strings.Repeat("x", 40000), ',')
	assert.Len(t, got, softCap)
	assert.NotContains(t, got, `"`)
}

func TestFormatCellSoftCapRebalancesQuote(t *testing.T) {
	t.Parallel()
	// Quoted because of the comma; truncation must keep the closing quote.
	got := formatCell(strings.Repeat("x", 35000)+",", ',')
	require.Len(t, got, softCap+1)
	assert.Equal(t, byte('"'), got[0])
	assert.Equal(t, byte('"'), got[softCap])
}

func TestCapCellUnderLimit(t *testing.T) {
	t.Parallel()
	s := strings.Repeat("y", softCap)
	assert.Equal(t, s, capCell(s))
}

func TestCapCellCountsRunes(t *testing.T) {
	t.Parallel()
	// Multi-byte runes: the cap is measured in characters, not bytes.
	s := strings.Repeat("ü", softCap+10)
	got := capCell(s)
	assert.Equal(t, softCap, len([]rune(got)))
}

// Re-parsing a formatted cell with standard quote-unescaping must yield the
// original text, as long as no cap was hit.
func TestFormatCellRoundTrip(t *testing.T) {
	t.Parallel()
	values := []string{
		"plain",
		"New York, USA",
		`Sydney "in" Australia`,
		"multi\nline\r\nvalue",
		`""`,
		",",
	}
	for _, v := range values {
		got := formatCell(v, ',')
		assert.Equal(t, v, unquoteCSV(got), "value %q", v)
	}
}

func unquoteCSV(s string) string {
	if !strings.HasPrefix(s, `"`) {
		return s
	}
	s = strings.TrimPrefix(s, `"`)
	s = strings.TrimSuffix(s, `"`)
	return strings.ReplaceAll(s, `""`, `"`)
}
