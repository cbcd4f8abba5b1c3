package pprint

import (
	"strings"

	"github.com/uxfio/uxf/value"
)

// flatValue renders v fully inline: every nested collection rendered
// as if it always fit on one line. Used both to decide whether a group
// fits (writer.fits) and, when it does, as the text actually emitted.
func flatValue(v value.Value, f Format) string {
	switch x := v.(type) {
	case *value.List:
		return flatList(x, f)
	case *value.Map:
		return flatMap(x, f)
	case *value.Table:
		return flatTable(x, f)
	default:
		return formatScalar(v, f)
	}
}

func flatList(l *value.List, f Format) string {
	var parts []string
	if l.Comment() != "" {
		parts = append(parts, "#<"+escapeStr(l.Comment())+">")
	}
	if l.VType() != "" {
		parts = append(parts, l.VType())
	}
	for _, item := range l.Items() {
		parts = append(parts, flatValue(item, f))
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func flatMap(m *value.Map, f Format) string {
	var parts []string
	if m.Comment() != "" {
		parts = append(parts, "#<"+escapeStr(m.Comment())+">")
	}
	if m.KType() != "" {
		parts = append(parts, m.KType())
	}
	if m.VType() != "" {
		parts = append(parts, m.VType())
	}
	for _, pair := range m.Pairs() {
		parts = append(parts, flatValue(pair.Key, f), flatValue(pair.Val, f))
	}
	return "{" + strings.Join(parts, " ") + "}"
}

func flatTable(t *value.Table, f Format) string {
	parts := make([]string, 0, 2+t.Len())
	if t.Comment() != "" {
		parts = append(parts, "#<"+escapeStr(t.Comment())+">")
	}
	parts = append(parts, t.TClass.TType)
	if t.TClass.Fieldless() {
		for range t.Records() {
			parts = append(parts, "?")
		}
	} else {
		for _, rec := range t.Records() {
			for _, cell := range rec {
				parts = append(parts, flatValue(cell, f))
			}
		}
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// renderValue emits v at the writer's current position, choosing a
// flat (single-line) or broken (one line per sub-item, indented to
// depth) rendering per spec.md §4.3's layout rule: a group that fits
// in the remaining line width is kept flat; otherwise it breaks before
// each of its own items, recursing so nested groups make their own
// fit decision against their own (now indented) starting column.
func renderValue(w *writer, v value.Value, depth int, f Format) {
	switch x := v.(type) {
	case *value.List:
		renderList(w, x, depth, f)
	case *value.Map:
		renderMap(w, x, depth, f)
	case *value.Table:
		renderTable(w, x, depth, f)
	default:
		w.put(formatScalar(v, f))
	}
}

func renderList(w *writer, l *value.List, depth int, f Format) {
	flat := flatList(l, f)
	if w.fits(flat) {
		w.put(flat)
		return
	}
	w.put("[")
	inner := depth + 1
	if l.Comment() != "" {
		w.newline(inner)
		w.put("#<" + escapeStr(l.Comment()) + ">")
	}
	if l.VType() != "" {
		w.newline(inner)
		w.put(l.VType())
	}
	for _, item := range l.Items() {
		w.newline(inner)
		renderValue(w, item, inner, f)
	}
	w.newline(depth)
	w.put("]")
}

func renderMap(w *writer, m *value.Map, depth int, f Format) {
	flat := flatMap(m, f)
	if w.fits(flat) {
		w.put(flat)
		return
	}
	w.put("{")
	inner := depth + 1
	if m.Comment() != "" {
		w.newline(inner)
		w.put("#<" + escapeStr(m.Comment()) + ">")
	}
	if m.KType() != "" {
		w.newline(inner)
		w.put(m.KType())
	}
	if m.VType() != "" {
		w.newline(inner)
		w.put(m.VType())
	}
	for _, pair := range m.Pairs() {
		w.newline(inner)
		renderValue(w, pair.Key, inner, f)
		w.put(" ")
		renderValue(w, pair.Val, inner, f)
	}
	w.newline(depth)
	w.put("}")
}

func renderTable(w *writer, t *value.Table, depth int, f Format) {
	flat := flatTable(t, f)
	if w.fits(flat) {
		w.put(flat)
		return
	}
	w.put("(")
	inner := depth + 1
	if t.Comment() != "" {
		w.newline(inner)
		w.put("#<" + escapeStr(t.Comment()) + ">")
	}
	w.newline(inner)
	w.put(t.TClass.TType)
	if t.TClass.Fieldless() {
		for range t.Records() {
			w.newline(inner)
			w.put("?")
		}
	} else {
		for _, rec := range t.Records() {
			w.newline(inner)
			cells := make([]string, len(rec))
			for i, cell := range rec {
				cells[i] = flatValue(cell, f)
			}
			line := strings.Join(cells, " ")
			if w.fits(line) {
				w.put(line)
			} else {
				for i, cell := range rec {
					if i > 0 {
						w.newline(inner)
					}
					renderValue(w, cell, inner, f)
				}
			}
		}
	}
	w.newline(depth)
	w.put(")")
}
