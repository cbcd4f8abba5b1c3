package value

import "math"

// Equal implements the strict Value equality spec.md §4.4 describes:
// same variant and same content, with Reals compared bit-exactly (so
// two NaNs with different payloads are unequal, matching
// math.Float64bits(a) == math.Float64bits(b) rather than a == b, which
// would treat all NaNs as unequal to everything including themselves).
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case Null:
		return true
	case Bool:
		return av == b.(Bool)
	case Int:
		return av == b.(Int)
	case Real:
		return math.Float64bits(float64(av)) == math.Float64bits(float64(b.(Real)))
	case Date:
		return av == b.(Date)
	case DateTime:
		return av == b.(DateTime)
	case Str:
		return av == b.(Str)
	case Bytes:
		return bytesEqual(av, b.(Bytes))
	case *List:
		return av.Equal(b.(*List))
	case *Map:
		return av.Equal(b.(*Map))
	case *Table:
		return av.Equal(b.(*Table))
	default:
		return false
	}
}

func bytesEqual(a, b Bytes) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
