// Package naturalize implements the deterministic string-to-scalar
// coercion spec.md §9 calls "naturalize-on-demand": used by the lexer
// to classify a bareword number as Int/Real/Date/DateTime, and by the
// parser's type-check/repair step (spec.md §4.2.4) to coerce a Str
// value into the type a list/map/field declares. Both call sites share
// the same rule: trim whitespace, apply the target type's parser,
// accept only if the parser consumed the entire remaining string.
package naturalize

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/uxfio/uxf/value"
)

// Bool naturalizes "yes"/"no" (the only two UXF boolean barewords).
func Bool(s string) (value.Bool, bool) {
	switch strings.TrimSpace(s) {
	case "yes":
		return true, true
	case "no":
		return false, true
	default:
		return false, false
	}
}

// Int naturalizes a decimal integer literal, with an optional single
// leading '-'.
func Int(s string) (value.Int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return value.Int(n), true
}

// Real naturalizes a floating point literal (decimal point and/or
// exponent).
func Real(s string) (value.Real, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return value.Real(f), true
}

// Date naturalizes "YYYY-MM-DD".
func Date(s string) (value.Date, bool) {
	s = strings.TrimSpace(s)
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return value.Date{}, false
	}
	var y, m, d int
	if n, err := fmt.Sscanf(s, "%04d-%02d-%02d", &y, &m, &d); err != nil || n != 3 {
		return value.Date{}, false
	}
	if fmt.Sprintf("%04d-%02d-%02d", y, m, d) != s {
		return value.Date{}, false
	}
	date, err := value.NewDate(y, m, d)
	if err != nil {
		return value.Date{}, false
	}
	return date, true
}

// DateTime naturalizes "YYYY-MM-DDTHH:MM:SS" (or with a space instead
// of 'T'), truncating any trailing timezone designator to the
// 19-character core per spec.md §4.1.
func DateTime(s string) (value.DateTime, bool) {
	s = strings.TrimSpace(s)
	if len(s) > 19 {
		s = s[:19]
	}
	if len(s) < 19 {
		return value.DateTime{}, false
	}
	core := []byte(s)
	if core[10] != 'T' && core[10] != ' ' {
		return value.DateTime{}, false
	}
	core[10] = 'T'
	var y, mo, d, h, mi, sec int
	if n, err := fmt.Sscanf(string(core), "%04d-%02d-%02dT%02d:%02d:%02d", &y, &mo, &d, &h, &mi, &sec); err != nil || n != 6 {
		return value.DateTime{}, false
	}
	dt, err := value.NewDateTime(y, mo, d, h, mi, sec)
	if err != nil {
		return value.DateTime{}, false
	}
	return dt, true
}
