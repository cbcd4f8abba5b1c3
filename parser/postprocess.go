package parser

import (
	"sort"
	"strings"

	"github.com/uxfio/uxf/reporter"
	"github.com/uxfio/uxf/value"
)

// postProcess implements spec.md §4.2.5 for a root-level parse (never
// run on an imported file's own document). It applies the two
// independent, opt-in cleanup policies, then warns about unused
// TClasses and fatally errors on any ttype reference that still
// resolves to nothing.
func postProcess(doc *value.Document, h *reporter.Handler, flags PostProcessFlag) error {
	// ReferencedTTypes, not just DirectlyUsedTTypes: a TClass whose own
	// field vtype names another ttype keeps that ttype alive even where
	// every current sample cell happens to be Null, so DROP_UNUSED_TTYPES
	// doesn't strand a schema a surviving table could still populate.
	used := value.ReferencedTTypes(doc)

	imported := make(map[string]bool)
	for _, t := range doc.ImportedTTypes() {
		imported[t] = true
	}

	if flags&ReplaceImports != 0 {
		for t := range imported {
			if !used[t] {
				doc.DeleteTClass(t)
			}
		}
		doc.ClearImports()
		imported = map[string]bool{}
	}

	defined := make(map[string]bool)
	for _, tc := range doc.TClasses() {
		defined[tc.TType] = true
	}

	if flags&DropUnusedTTypes != 0 {
		for ttype := range defined {
			if !used[ttype] {
				doc.DeleteTClass(ttype)
			}
		}
		defined = make(map[string]bool)
		for _, tc := range doc.TClasses() {
			defined[tc.TType] = true
		}
	}

	// A defined, non-imported, fielded TClass nothing references is
	// worth a warning: it costs nothing to keep but may be a typo or
	// leftover. Fieldless TClasses are enumerands and are routinely
	// defined without every member ever appearing in this particular
	// document, so they're exempt.
	var unused []string
	for ttype := range defined {
		if used[ttype] || imported[ttype] {
			continue
		}
		tc, _ := doc.TClass(ttype)
		if !tc.Fieldless() {
			unused = append(unused, ttype)
		}
	}
	if len(unused) > 0 {
		sort.Slice(unused, func(i, j int) bool { return strings.ToLower(unused[i]) < strings.ToLower(unused[j]) })
		h.Warnf(ErrUnusedTType, 0, "unused ttype%s: %s", plural(len(unused)), strings.Join(unused, " "))
	}

	// This is a backstop: ErrUndefinedVType (446) and
	// ErrTableTTypeUndefined (450) already reject an undefined ttype
	// the moment its List/Map/Table is opened, so `used` here is
	// ordinarily a subset of `defined` by construction. It still fires
	// correctly for a ttype referenced only via ReplaceImports/
	// DropUnusedTTypes interactions removing its own definition.
	var undefined []string
	for ttype := range used {
		if !defined[ttype] {
			undefined = append(undefined, ttype)
		}
	}
	if len(undefined) > 0 {
		sort.Slice(undefined, func(i, j int) bool { return strings.ToLower(undefined[i]) < strings.ToLower(undefined[j]) })
		return h.Errorf(ErrUndefinedTTypeReference, 0, "undefined ttype%s: %s", plural(len(undefined)), strings.Join(undefined, " "))
	}
	return nil
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
