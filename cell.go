package csvgrid

import (
	"fmt"
	"strings"
	"time"
)

// Spreadsheet tools choke on oversized cells: values are cut at softCap,
// and hardCap is the legacy per-cell ceiling that wins over everything
// else, including quote re-balancing.
const (
	softCap = 30000
	hardCap = 32767
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
)

// formatCell renders one value as a delimited-text field. Nil values render
// empty, [time.Time] as a date (date-time when the clock is not midnight),
// and everything else through its default string form. A field containing
// the delimiter, a double quote, or a line break is wrapped in quotes with
// every embedded quote doubled.
func formatCell(v any, delim rune) string {
	if v == nil || isNil(v) {
		return ""
	}
	var s string
	switch x := v.(type) {
	case time.Time:
		if x.Hour() == 0 && x.Minute() == 0 && x.Second() == 0 {
			s = x.Format(dateLayout)
		} else {
			s = x.Format(dateTimeLayout)
		}
	case string:
		s = x
	case fmt.Stringer:
		s = x.String()
	default:
		s = fmt.Sprintf("%v", x)
	}
	if strings.ContainsRune(s, delim) || strings.ContainsAny(s, "\"\n\r") {
		s = `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return capCell(s)
}

// capCell enforces the cell-size limits on an already formatted field.
// Truncating a quoted field at softCap re-appends the closing quote to keep
// the quoting balanced; anything still over hardCap is cut there outright.
func capCell(s string) string {
	if len(s) <= softCap {
		return s
	}
	r := []rune(s)
	if len(r) > softCap {
		quoted := r[len(r)-1] == '"'
		r = r[:softCap]
		if quoted {
			r = append(r, '"')
		}
	}
	if len(r) > hardCap {
		r = r[:hardCap]
	}
	return string(r)
}
