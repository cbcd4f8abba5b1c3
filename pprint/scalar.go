package pprint

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/uxfio/uxf/value"
)

// escapeStr escapes the three characters spec.md §6.1 reserves inside
// a string body, mirroring the lexer's readEscapedUntil in reverse.
func escapeStr(s string) string {
	if !strings.ContainsAny(s, "&<>") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// formatReal renders a Real per spec.md §4.3's realdp rule: a fixed
// fractional-digit count if configured, else the shortest round-trip
// representation with an explicit ".0" when the result would otherwise
// look like an integer (Open Question decision 1, DESIGN.md).
func formatReal(r value.Real, f Format) string {
	if dp, ok := f.realDP(); ok {
		return strconv.FormatFloat(float64(r), 'f', dp, 64)
	}
	s := strconv.FormatFloat(float64(r), 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// formatScalar renders one non-collection Value as UXF text, Null
// included (as "?").
func formatScalar(v value.Value, f Format) string {
	switch x := v.(type) {
	case value.Null:
		return "?"
	case value.Bool:
		if x {
			return "yes"
		}
		return "no"
	case value.Int:
		return strconv.FormatInt(int64(x), 10)
	case value.Real:
		return formatReal(x, f)
	case value.Date:
		return x.String()
	case value.DateTime:
		return formatDateTime(x)
	case value.Str:
		return "<" + escapeStr(string(x)) + ">"
	case value.Bytes:
		return "(:" + strings.ToUpper(hex.EncodeToString(x)) + ":)"
	default:
		return "?"
	}
}

func formatDateTime(dt value.DateTime) string {
	return dt.Date.String() + "T" + twoDigit(dt.Hour) + ":" + twoDigit(dt.Minute) + ":" + twoDigit(dt.Second)
}

func twoDigit(n int) string {
	s := strconv.Itoa(n)
	if len(s) < 2 {
		return "0" + s
	}
	return s
}
