package value

// DirectlyUsedTTypes walks root and collects every ttype named
// directly by a List/Map vtype annotation or by a Table's own TClass —
// i.e. every ttype actually exercised by the value tree, as opposed to
// one merely declared but never used.
func DirectlyUsedTTypes(root Value) map[string]bool {
	used := make(map[string]bool)
	walkUsedTTypes(root, used)
	return used
}

func walkUsedTTypes(v Value, used map[string]bool) {
	switch x := v.(type) {
	case *List:
		if x.VType() != "" && !IsBuiltinVtype(x.VType()) {
			used[x.VType()] = true
		}
		for _, item := range x.Items() {
			walkUsedTTypes(item, used)
		}
	case *Map:
		if x.VType() != "" && !IsBuiltinVtype(x.VType()) {
			used[x.VType()] = true
		}
		x.Items(func(_ Key, val Value) bool {
			walkUsedTTypes(val, used)
			return true
		})
	case *Table:
		if x.TClass != nil {
			used[x.TClass.TType] = true
		}
		for _, rec := range x.Records() {
			for _, cell := range rec {
				walkUsedTTypes(cell, used)
			}
		}
	}
}

// ReferencedTTypes extends DirectlyUsedTTypes with the transitive
// closure over TClass field vtypes: if ttype X is used (directly, or
// because something that uses X is itself used) and X has a field of
// vtype Y naming another ttype, Y is referenced too — its records may
// carry a Y-valued cell even where a particular sample happens to be
// Null. This keeps DROP_UNUSED_TTYPES from discarding a schema that a
// surviving table could still legally populate.
func ReferencedTTypes(doc *Document) map[string]bool {
	used := DirectlyUsedTTypes(doc.Root)
	for {
		added := false
		for ttype := range used {
			t, ok := doc.TClass(ttype)
			if !ok {
				continue
			}
			for _, f := range t.Fields {
				if f.VType != "" && !IsBuiltinVtype(f.VType) && !used[f.VType] {
					used[f.VType] = true
					added = true
				}
			}
		}
		if !added {
			break
		}
	}
	return used
}
