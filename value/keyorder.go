package value

import (
	"encoding/binary"
	"strings"
)

// Key variant tags; their numeric order is the order required by
// spec.md §4.4: Bytes < Date < DateTime < Int < Str.
const (
	tagBytes byte = iota
	tagDate
	tagDateTime
	tagInt
	tagStr
)

// encodeKey maps a Key to an order-preserving byte string: comparing
// two encoded keys byte-wise (as value.Map's backing ART does) yields
// exactly the ordering spec.md §4.4 defines. Fixed-width fields (Date,
// DateTime, Int) need no escaping. The only variable-width fields are
// Bytes (used alone, and safe because it is the last and only field
// after its tag) and Str's case-folded primary key (escaped below,
// since it is followed by the original-case tie-break bytes).
func encodeKey(k Key) []byte {
	switch v := k.(type) {
	case Bytes:
		out := make([]byte, 0, 1+len(v))
		out = append(out, tagBytes)
		return append(out, v...)
	case Date:
		out := make([]byte, 0, 7)
		out = append(out, tagDate)
		return appendDateFields(out, v)
	case DateTime:
		out := make([]byte, 0, 10)
		out = append(out, tagDateTime)
		out = appendDateFields(out, v.Date)
		return append(out, byte(v.Hour), byte(v.Minute), byte(v.Second))
	case Int:
		out := make([]byte, 0, 9)
		out = append(out, tagInt)
		var buf [8]byte
		// bias the sign bit so unsigned byte comparison matches signed
		// numeric order.
		binary.BigEndian.PutUint64(buf[:], uint64(int64(v))^0x8000000000000000)
		return append(out, buf[:]...)
	case Str:
		folded := strings.ToLower(string(v))
		out := []byte{tagStr}
		out = appendEscaped(out, []byte(folded))
		return append(out, []byte(v)...)
	default:
		panic("value: unreachable Key variant")
	}
}

func appendDateFields(out []byte, d Date) []byte {
	var buf [4]byte
	// bias the year so negative years still sort before positive ones
	// under unsigned comparison.
	binary.BigEndian.PutUint32(buf[:], uint32(int32(d.Year))^0x80000000)
	out = append(out, buf[:]...)
	return append(out, byte(d.Month), byte(d.Day))
}

// appendEscaped appends field with every 0x00 byte escaped to 0x00
// 0xFF, then a 0x00 0x00 terminator, so that comparing two
// escape-terminated fields followed by arbitrary trailing bytes
// reproduces plain lexicographic order on the un-escaped fields
// (a strict prefix always compares less than any of its extensions).
func appendEscaped(out, field []byte) []byte {
	for _, b := range field {
		if b == 0x00 {
			out = append(out, 0x00, 0xFF)
		} else {
			out = append(out, b)
		}
	}
	return append(out, 0x00, 0x00)
}

// CompareKeys implements the total order from spec.md §4.4 directly
// (without going through the byte encoding); Map uses the byte
// encoding for its backing store, but CompareKeys is exposed for
// callers (e.g. the pretty-printer's TClass sort, equality checks)
// that want the comparison without building a Map.
func CompareKeys(a, b Key) int {
	ta, tb := keyTag(a), keyTag(b)
	if ta != tb {
		return cmpInt(int(ta), int(tb))
	}
	switch av := a.(type) {
	case Bytes:
		return compareBytes(av, b.(Bytes))
	case Date:
		return av.Compare(b.(Date))
	case DateTime:
		return av.Compare(b.(DateTime))
	case Int:
		return cmpInt64(int64(av), int64(b.(Int)))
	case Str:
		return compareFoldedStr(string(av), string(b.(Str)))
	default:
		panic("value: unreachable Key variant")
	}
}

func keyTag(k Key) byte {
	switch k.(type) {
	case Bytes:
		return tagBytes
	case Date:
		return tagDate
	case DateTime:
		return tagDateTime
	case Int:
		return tagInt
	case Str:
		return tagStr
	default:
		panic("value: unreachable Key variant")
	}
}

func compareBytes(a, b Bytes) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return cmpInt(len(a), len(b))
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// compareFoldedStr compares case-insensitively (Unicode lowercasing)
// first, breaking ties by case-sensitive comparison — the Open
// Question decision recorded in DESIGN.md.
func compareFoldedStr(a, b string) int {
	fa, fb := strings.ToLower(a), strings.ToLower(b)
	if fa != fb {
		if fa < fb {
			return -1
		}
		return 1
	}
	if a == b {
		return 0
	}
	if a < b {
		return -1
	}
	return 1
}
