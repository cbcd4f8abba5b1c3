package lexer

import (
	"strings"

	"github.com/uxfio/uxf/naturalize"
	"github.com/uxfio/uxf/token"
)

// isNumberBodyChar reports whether r can appear inside a number/date/
// datetime literal body (spec.md §4.1): decimal digits, the sign and
// separators of each form, and the handful of characters that can
// trail a datetime's time-of-day (exponent markers double as them,
// which is fine since Int/Real and Date/DateTime literals are
// mutually exclusive in practice).
func isNumberBodyChar(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	}
	switch r {
	case '-', '.', ':', 'T', 't', 'e', 'E', '+', 'Z', 'z':
		return true
	}
	return false
}

// lexNumber lexes an Int, Real, Date, or DateTime literal, per the
// disambiguation rules of spec.md §4.1: a leading '-' restricts the
// literal to Int/Real (no negative dates); otherwise the presence of
// ':'/'T'/'t' marks a DateTime, two or more '-' mark a Date, any of
// '.eE' mark a Real, and anything else is an Int.
func (lx *Lexer) lexNumber(line int) error {
	start := lx.s.pos
	if lx.s.peek() == '-' {
		lx.s.next()
	}
	for isNumberBodyChar(lx.s.peek()) {
		lx.s.next()
	}
	lit := string(lx.s.data[start:lx.s.pos])

	if lit == "" || lit == "-" {
		return lx.h.Fatalf(ErrExpectedIdentOrConst, line, "invalid numeric literal")
	}

	if lit[0] == '-' {
		body := lit[1:]
		if strings.ContainsAny(body, ".eE") {
			if r, ok := naturalize.Real(lit); ok {
				lx.push(token.Token{Kind: token.Real, Value: r, Line: line})
				return nil
			}
		} else if n, ok := naturalize.Int(lit); ok {
			lx.push(token.Token{Kind: token.Int, Value: n, Line: line})
			return nil
		}
		return lx.h.Fatalf(ErrExpectedIdentOrConst, line, "invalid numeric literal %q", lit)
	}

	switch {
	case strings.ContainsAny(lit, ":Tt"):
		if dt, ok := naturalize.DateTime(lit); ok {
			lx.push(token.Token{Kind: token.DateTime, Value: dt, Line: line})
			return nil
		}
	case strings.Count(lit, "-") >= 2:
		if d, ok := naturalize.Date(lit); ok {
			lx.push(token.Token{Kind: token.Date, Value: d, Line: line})
			return nil
		}
	case strings.ContainsAny(lit, ".eE"):
		if r, ok := naturalize.Real(lit); ok {
			lx.push(token.Token{Kind: token.Real, Value: r, Line: line})
			return nil
		}
	default:
		if n, ok := naturalize.Int(lit); ok {
			lx.push(token.Token{Kind: token.Int, Value: n, Line: line})
			return nil
		}
	}
	return lx.h.Fatalf(ErrExpectedIdentOrConst, line, "invalid numeric/date literal %q", lit)
}

// lexFieldVType lexes the ':vtype' suffix attached to a TClass field
// name (spec.md §4.1's TClass grammar).
func (lx *Lexer) lexFieldVType(line int) error {
	lx.s.next() // ':'
	if !lx.inTClass {
		return lx.h.Fatalf(ErrFieldVTypeMisplaced, line, "':' is only valid after a TClass field name")
	}
	last, ok := lx.lastToken()
	if !ok || last.Kind != token.Field {
		return lx.h.Fatalf(ErrFieldVTypeMisplaced, line, "':' must immediately follow a field name")
	}
	if !isIdentStartRune(lx.s.peek()) {
		return lx.h.Fatalf(ErrExpectedIdentOrConst, line, "expected vtype identifier after ':'")
	}
	text := lx.readBarewordText()
	lx.tokens[len(lx.tokens)-1].VType = text
	return nil
}
