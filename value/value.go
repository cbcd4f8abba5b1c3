package value

// Value is the sum type at the heart of the data model: every scalar
// and every collection implements it. Concrete types never embed one
// another; List, Map and Table are siblings reached through type
// switches or the As* helpers below, not through a shared base type.
type Value interface {
	Kind() Kind
	isValue()
}

// Key is the restricted sub-set of Value usable as a Map key: Bytes,
// Date, DateTime, Int and Str. Null, Bool, Real and the three
// collection kinds deliberately do not implement isKey, so the
// compiler rejects them anywhere a Key is required.
type Key interface {
	Value
	isKey()
}

// Null is the single UXF null value.
type Null struct{}

func (Null) Kind() Kind { return KindNull }
func (Null) isValue()   {}

// Bool wraps a UXF boolean.
type Bool bool

func (Bool) Kind() Kind { return KindBool }
func (Bool) isValue()   {}

// Int wraps a UXF signed 64-bit integer. Int is a Key.
type Int int64

func (Int) Kind() Kind { return KindInt }
func (Int) isValue()   {}
func (Int) isKey()     {}

// Real wraps a UXF IEEE-754 double.
type Real float64

func (Real) Kind() Kind { return KindReal }
func (Real) isValue()   {}

// Str wraps a UXF Unicode string. Str is a Key.
type Str string

func (Str) Kind() Kind { return KindStr }
func (Str) isValue()   {}
func (Str) isKey()     {}

// Bytes wraps arbitrary UXF octets. Bytes is a Key.
type Bytes []byte

func (Bytes) Kind() Kind { return KindBytes }
func (Bytes) isValue()   {}
func (Bytes) isKey()     {}

// AsKey reports whether v is usable as a Map key and returns it as one.
func AsKey(v Value) (Key, bool) {
	k, ok := v.(Key)
	return k, ok
}

// TypeName returns the scalar typename, ttype name (for a Table), or
// "list"/"map" for a collection value — the string used in type-check
// error messages and in pretty-printed type annotations.
func TypeName(v Value) string {
	if t, ok := v.(*Table); ok && t.TClass != nil && t.TClass.TType != "" {
		return t.TClass.TType
	}
	return v.Kind().String()
}
