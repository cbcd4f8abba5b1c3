package value

// importEntry is one row of the insertion-ordered import_for_ttype
// mapping: the ttype name and the import source string it came from.
type importEntry struct {
	ttype  string
	source string
}

// Document is the top-level UXF container (spec.md §3.6): a free-text
// header tag, a file-level comment, the root value (List, Map or
// Table), the set of defined TClasses keyed by ttype, and the
// insertion-ordered record of which ttypes came from which import.
type Document struct {
	Custom  string
	Comment string
	Root    Value

	tclasses map[string]*TClass
	imports  []importEntry
	importOf map[string]int // ttype -> index into imports
}

// NewDocument creates an empty Document with Root defaulting to an
// empty, untyped List, matching spec.md §3.6's default.
func NewDocument() *Document {
	return &Document{
		Root:     NewList("", ""),
		tclasses: make(map[string]*TClass),
		importOf: make(map[string]int),
	}
}

// TClass looks up a defined ttype.
func (d *Document) TClass(ttype string) (*TClass, bool) {
	t, ok := d.tclasses[ttype]
	return t, ok
}

// TClasses returns every defined TClass (unordered; callers that need
// the pretty-printer's case-insensitive order should sort with
// TClassOrder).
func (d *Document) TClasses() []*TClass {
	out := make([]*TClass, 0, len(d.tclasses))
	for _, t := range d.tclasses {
		out = append(out, t)
	}
	return out
}

// SetTClass inserts or replaces the TClass for its own ttype.
func (d *Document) SetTClass(t *TClass) {
	d.tclasses[t.TType] = t
}

// DeleteTClass removes a ttype's TClass and any import record for it.
func (d *Document) DeleteTClass(ttype string) {
	delete(d.tclasses, ttype)
	d.clearImportOf(ttype)
}

// ImportSource returns the import string a ttype came from, if any.
func (d *Document) ImportSource(ttype string) (string, bool) {
	i, ok := d.importOf[ttype]
	if !ok {
		return "", false
	}
	return d.imports[i].source, true
}

// SetImportSource records that ttype was merged in from source,
// appending to the insertion-ordered list (or updating in place if the
// ttype was already recorded, preserving its original position).
func (d *Document) SetImportSource(ttype, source string) {
	if i, ok := d.importOf[ttype]; ok {
		d.imports[i].source = source
		return
	}
	d.importOf[ttype] = len(d.imports)
	d.imports = append(d.imports, importEntry{ttype: ttype, source: source})
}

// clearImportOf removes ttype from the import record, if present,
// without disturbing the relative order of the remaining entries.
func (d *Document) clearImportOf(ttype string) {
	i, ok := d.importOf[ttype]
	if !ok {
		return
	}
	d.imports = append(d.imports[:i], d.imports[i+1:]...)
	delete(d.importOf, ttype)
	for name, idx := range d.importOf {
		if idx > i {
			d.importOf[name] = idx - 1
		}
	}
}

// ImportedTTypes returns the ttype names that came from an import, in
// insertion order.
func (d *Document) ImportedTTypes() []string {
	out := make([]string, len(d.imports))
	for i, e := range d.imports {
		out[i] = e.ttype
	}
	return out
}

// ImportSources returns the distinct import source strings, in the
// order they were first recorded — this is what the pretty-printer
// emits as the file's `!import` lines (spec.md §4.3).
func (d *Document) ImportSources() []string {
	seen := make(map[string]bool)
	out := make([]string, 0, len(d.imports))
	for _, e := range d.imports {
		if !seen[e.source] {
			seen[e.source] = true
			out = append(out, e.source)
		}
	}
	return out
}

// ClearImports drops the entire import_for_ttype mapping, implementing
// half of the REPLACE_IMPORTS post-processing policy (spec.md §4.2.5);
// the caller is responsible for first deleting ttypes that were
// imported but never referenced.
func (d *Document) ClearImports() {
	d.imports = nil
	d.importOf = make(map[string]int)
}

// Equal reports strict Document equality per spec.md §4.4: same
// custom, same comment, same import_for_ttype (including order), same
// tclass_for_ttype, and same root value.
func (d *Document) Equal(other *Document) bool {
	if d == other {
		return true
	}
	if d == nil || other == nil {
		return false
	}
	if d.Custom != other.Custom || d.Comment != other.Comment {
		return false
	}
	if len(d.imports) != len(other.imports) {
		return false
	}
	for i := range d.imports {
		if d.imports[i] != other.imports[i] {
			return false
		}
	}
	if len(d.tclasses) != len(other.tclasses) {
		return false
	}
	for ttype, t := range d.tclasses {
		ot, ok := other.tclasses[ttype]
		if !ok || !t.Equal(ot) {
			return false
		}
	}
	return Equal(d.Root, other.Root)
}
