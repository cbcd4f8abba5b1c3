package value

import "fmt"

// Field is one column of a TClass: a unique name plus an optional
// vtype ("" meaning any).
type Field struct {
	Name  string
	VType string
}

// TClass is an immutable record schema: a ttype name, an ordered
// vector of uniquely-named Fields, and an optional comment. A TClass
// with zero fields is valid and defines an enumerand (spec.md §3.4).
type TClass struct {
	TType   string
	Fields  []Field
	Comment string
}

// NewTClass validates and constructs a TClass: the ttype and every
// field name must satisfy the identifier rules (spec.md §3.7) and
// field names must be unique.
func NewTClass(ttype string, fields []Field, comment string) (*TClass, error) {
	if err := ValidateFieldOrTTypeName(ttype); err != nil {
		return nil, fmt.Errorf("invalid ttype: %w", err)
	}
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if err := ValidateFieldOrTTypeName(f.Name); err != nil {
			return nil, fmt.Errorf("invalid field name: %w", err)
		}
		if f.VType != "" && !IsBuiltinVtype(f.VType) {
			if err := ValidateIdentifier(f.VType); err != nil {
				return nil, fmt.Errorf("invalid field vtype: %w", err)
			}
		}
		if seen[f.Name] {
			return nil, fmt.Errorf("duplicate field name %q in ttype %q", f.Name, ttype)
		}
		seen[f.Name] = true
	}
	return &TClass{TType: ttype, Fields: append([]Field(nil), fields...), Comment: comment}, nil
}

// Fieldless reports whether the TClass defines an enumerand (no
// fields) rather than a record with cells.
func (t *TClass) Fieldless() bool { return len(t.Fields) == 0 }

// SameFields reports whether t and other have identical field
// sequences (name and vtype, in order) — used by TClass merging
// (spec.md §4.2.2) to distinguish a harmless duplicate from a conflict.
func (t *TClass) SameFields(other *TClass) bool {
	if len(t.Fields) != len(other.Fields) {
		return false
	}
	for i := range t.Fields {
		if t.Fields[i] != other.Fields[i] {
			return false
		}
	}
	return true
}

// Equal reports whether t and other have the same ttype, fields and
// comment.
func (t *TClass) Equal(other *TClass) bool {
	if t == other {
		return true
	}
	if t == nil || other == nil {
		return false
	}
	return t.TType == other.TType && t.Comment == other.Comment && t.SameFields(other)
}

// FieldOrder implements the case-insensitive-then-case-sensitive name
// ordering spec.md §4.3 uses to sort TClass definitions on output,
// applied here to a single field (name, then vtype).
func FieldOrder(a, b Field) int {
	if c := compareFoldedStr(a.Name, b.Name); c != 0 {
		return c
	}
	return compareFoldedStr(a.VType, b.VType)
}

// TClassOrder implements the TClass output-ordering rule from spec.md
// §4.3: case-insensitive name, then case-sensitive name, then the
// field vector (using FieldOrder element-wise).
func TClassOrder(a, b *TClass) int {
	if c := compareFoldedStr(a.TType, b.TType); c != 0 {
		return c
	}
	n := len(a.Fields)
	if len(b.Fields) < n {
		n = len(b.Fields)
	}
	for i := 0; i < n; i++ {
		if c := FieldOrder(a.Fields[i], b.Fields[i]); c != 0 {
			return c
		}
	}
	return cmpInt(len(a.Fields), len(b.Fields))
}
