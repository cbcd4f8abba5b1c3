package pprint

import (
	"sort"
	"strings"

	"github.com/uxfio/uxf/reporter"
	"github.com/uxfio/uxf/value"
)

// Document renders doc as UXF text under format f, reporting wrapwidth
// warnings (563/564) through h. h may be nil, in which case no events
// are reported.
func Document(doc *value.Document, f Format, h *reporter.Handler) string {
	var b strings.Builder

	b.WriteString("uxf 1")
	if doc.Custom != "" {
		b.WriteString(" ")
		b.WriteString(doc.Custom)
	}
	b.WriteString("\n")

	if doc.Comment != "" {
		b.WriteString("#<")
		b.WriteString(escapeStr(doc.Comment))
		b.WriteString(">\n")
	}

	writeImports(&b, doc, f, h)
	writeTClasses(&b, doc, f, h)

	w := newWriter(f)
	if doc.Root != nil {
		renderValue(w, doc.Root, 0, f)
	}
	b.WriteString(w.String())
	b.WriteString("\n")

	return b.String()
}

// writeImports emits one "!<source>\n" line per distinct import
// source, in the order Document first recorded them, then - if the
// widest such line would have forced a break mid-line under f's
// wrapwidth - reports a single combined 563 warning. Import lines are
// never actually wrapped (spec.md: an import is always exactly one
// line), so the warning documents the overflow rather than causing the
// printer to use a different width.
func writeImports(b *strings.Builder, doc *value.Document, f Format, h *reporter.Handler) {
	sources := doc.ImportSources()
	if len(sources) == 0 {
		return
	}
	widest := 0
	for _, src := range sources {
		line := "!" + src
		if n := len([]rune(line)); n > widest {
			widest = n
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	if widest > f.wrapWidth() && h != nil {
		h.Warnf(ErrWrapWidthTooNarrowForImports, 0,
			"wrapwidth %d is too narrow for the widest import line (%d); it was left unwrapped", f.wrapWidth(), widest)
	}
}

// writeTClasses emits a "=[#<comment> ]ttype (field[:vtype])*\n" line
// for every locally defined (non-imported) TClass, sorted via
// value.TClassOrder, then reports a combined 564 warning analogous to
// writeImports's 563.
func writeTClasses(b *strings.Builder, doc *value.Document, f Format, h *reporter.Handler) {
	local := localTClasses(doc)
	if len(local) == 0 {
		return
	}

	widest := 0
	for _, tc := range local {
		line := tclassLine(tc)
		if n := len([]rune(line)); n > widest {
			widest = n
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	if widest > f.wrapWidth() && h != nil {
		h.Warnf(ErrWrapWidthTooNarrowForTClasses, 0,
			"wrapwidth %d is too narrow for the widest ttype definition (%d); it was left unwrapped", f.wrapWidth(), widest)
	}
}

// Compact renders doc as UXF text with every value flattened onto a
// single line, per spec.md §2's "compact form" - distinct from
// Document's wrap-aware layout and never subject to a wrapwidth, so it
// never raises 563/564.
func Compact(doc *value.Document) string {
	var b strings.Builder

	b.WriteString("uxf 1")
	if doc.Custom != "" {
		b.WriteString(" ")
		b.WriteString(doc.Custom)
	}
	b.WriteString("\n")

	if doc.Comment != "" {
		b.WriteString("#<")
		b.WriteString(escapeStr(doc.Comment))
		b.WriteString(">\n")
	}

	for _, src := range doc.ImportSources() {
		b.WriteString("!")
		b.WriteString(src)
		b.WriteString("\n")
	}

	for _, tc := range localTClasses(doc) {
		b.WriteString(tclassLine(tc))
		b.WriteString("\n")
	}

	if doc.Root != nil {
		b.WriteString(flatValue(doc.Root, Format{}))
	}
	b.WriteString("\n")

	return b.String()
}

// localTClasses returns doc's non-imported TClasses sorted per
// spec.md §4.4's TClass ordering.
func localTClasses(doc *value.Document) []*value.TClass {
	imported := make(map[string]bool)
	for _, t := range doc.ImportedTTypes() {
		imported[t] = true
	}
	var local []*value.TClass
	for _, tc := range doc.TClasses() {
		if !imported[tc.TType] {
			local = append(local, tc)
		}
	}
	sort.Slice(local, func(i, j int) bool { return value.TClassOrder(local[i], local[j]) < 0 })
	return local
}

func tclassLine(tc *value.TClass) string {
	var b strings.Builder
	b.WriteString("=")
	if tc.Comment != "" {
		b.WriteString("#<")
		b.WriteString(escapeStr(tc.Comment))
		b.WriteString("> ")
	}
	b.WriteString(tc.TType)
	for _, field := range tc.Fields {
		b.WriteString(" ")
		b.WriteString(field.Name)
		if field.VType != "" {
			b.WriteString(":")
			b.WriteString(field.VType)
		}
	}
	return b.String()
}
