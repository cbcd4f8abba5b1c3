package pprint

import (
	"strings"
	"unicode/utf8"
)

// writer accumulates pretty-printed text and tracks the current
// column, the only state the layout decision in spec.md §4.3 needs:
// "does this group fit in the remaining space on the current line".
type writer struct {
	buf       strings.Builder
	col       int
	wrapWidth int
	indent    string
}

func newWriter(f Format) *writer {
	return &writer{wrapWidth: f.wrapWidth(), indent: f.indentUnit()}
}

// put appends s verbatim and updates the column tracker. s must not
// itself require further wrapping decisions - callers that might break
// go through newline/fits instead.
func (w *writer) put(s string) {
	w.buf.WriteString(s)
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		w.col = utf8.RuneCountInString(s[i+1:])
	} else {
		w.col += utf8.RuneCountInString(s)
	}
}

// newline starts a fresh line indented to depth.
func (w *writer) newline(depth int) {
	w.put("\n" + strings.Repeat(w.indent, depth))
}

// fits reports whether flat - a string with no embedded newline - can
// be appended to the current line without exceeding wrapWidth. A flat
// form containing an embedded newline (e.g. a Str literal whose body
// has a literal line break) can never be measured as a single line, so
// it never fits and the group it belongs to always breaks.
func (w *writer) fits(flat string) bool {
	if strings.ContainsRune(flat, '\n') {
		return false
	}
	return w.col+utf8.RuneCountInString(flat) <= w.wrapWidth
}

func (w *writer) String() string { return w.buf.String() }
