package uxf

import "github.com/uxfio/uxf/value"

// EquivFlags selects which structural differences Equivalent ignores
// (spec.md §4.4).
type EquivFlags int

const (
	// IgnoreComments treats two documents as matching regardless of
	// their file-level, List/Map/Table, or TClass comments.
	IgnoreComments EquivFlags = 1 << iota
	// IgnoreUnusedTTypes drops, from each document separately, any
	// TClass that document's own root value does not reference
	// (directly or transitively through another TClass's field vtype,
	// value.ReferencedTTypes) before comparing.
	IgnoreUnusedTTypes
	// IgnoreImports ignores the import_for_ttype mapping entirely.
	IgnoreImports

	// EquivAll is the preset spec.md §4.4 calls EQUIVALENT: all three
	// flags set. Named EquivAll rather than Equivalent - the function
	// below already claims that name, and Go has no overloading - see
	// DESIGN.md.
	EquivAll = IgnoreComments | IgnoreUnusedTTypes | IgnoreImports
)

// Equal reports spec.md §4.4's strict equality: same custom, comment,
// import_for_ttype (including order), tclass_for_ttype, and root
// value, with Reals compared bit-exactly.
func Equal(a, b *Document) bool {
	return a.Equal(b)
}

// Equivalent reports equality after normalizing both documents under
// flags: semantically, whether a and b would produce the same data
// once imports are replaced with their definitions and unused ttypes
// are dropped.
func Equivalent(a, b *Document, flags EquivFlags) bool {
	return normalize(a, flags).Equal(normalize(b, flags))
}

func normalize(doc *Document, flags EquivFlags) *Document {
	out := value.NewDocument()
	out.Custom = doc.Custom
	if flags&IgnoreComments == 0 {
		out.Comment = doc.Comment
	}

	var keep map[string]bool
	if flags&IgnoreUnusedTTypes != 0 {
		keep = value.ReferencedTTypes(doc)
	}

	for _, tc := range doc.TClasses() {
		if keep != nil && !keep[tc.TType] {
			continue
		}
		out.SetTClass(normalizeTClass(tc, flags))
	}

	if flags&IgnoreImports == 0 {
		for _, ttype := range doc.ImportedTTypes() {
			if src, ok := doc.ImportSource(ttype); ok {
				if _, stillDefined := out.TClass(ttype); stillDefined {
					out.SetImportSource(ttype, src)
				}
			}
		}
	}

	out.Root = normalizeValue(doc.Root, flags)
	return out
}

func normalizeTClass(tc *value.TClass, flags EquivFlags) *value.TClass {
	comment := tc.Comment
	if flags&IgnoreComments != 0 {
		comment = ""
	}
	return &value.TClass{TType: tc.TType, Fields: tc.Fields, Comment: comment}
}

func normalizeValue(v value.Value, flags EquivFlags) value.Value {
	switch x := v.(type) {
	case *value.List:
		comment := x.Comment()
		if flags&IgnoreComments != 0 {
			comment = ""
		}
		out := value.NewList(x.VType(), comment)
		for _, item := range x.Items() {
			out.Push(normalizeValue(item, flags))
		}
		return out
	case *value.Map:
		comment := x.Comment()
		if flags&IgnoreComments != 0 {
			comment = ""
		}
		out := value.NewMap(x.KType(), x.VType(), comment)
		for _, pair := range x.Pairs() {
			out.Put(pair.Key, normalizeValue(pair.Val, flags))
		}
		return out
	case *value.Table:
		comment := x.Comment()
		if flags&IgnoreComments != 0 {
			comment = ""
		}
		tc := normalizeTClass(x.TClass, flags)
		out := value.NewTable(tc, comment)
		for _, rec := range x.Records() {
			out.AppendRecord()
			for _, cell := range rec {
				_ = out.PushCell(normalizeValue(cell, flags))
			}
		}
		return out
	default:
		return v
	}
}
