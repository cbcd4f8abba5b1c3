// Package value implements the UXF in-memory data model: the Value sum
// type, its Key sub-variant, and the List/Map/Table/TClass collection
// types described by the format's data model section.
package value

// Kind identifies which variant of Value a given instance is.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindReal
	KindDate
	KindDateTime
	KindStr
	KindBytes
	KindList
	KindMap
	KindTable
)

// String returns the scalar typename used in error messages, type
// annotations and the textual encoding (e.g. "int", "datetime").
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindReal:
		return "real"
	case KindDate:
		return "date"
	case KindDateTime:
		return "datetime"
	case KindStr:
		return "str"
	case KindBytes:
		return "bytes"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	case KindTable:
		return "table"
	default:
		return "?"
	}
}

// IsScalar reports whether the kind is one of the non-collection variants.
func (k Kind) IsScalar() bool {
	return k <= KindBytes
}

// builtinVtypes are the names recognized by the lexer/parser as type
// annotations that are not ttypes.
var builtinVtypes = map[string]Kind{
	"null":     KindNull,
	"bool":     KindBool,
	"int":      KindInt,
	"real":     KindReal,
	"date":     KindDate,
	"datetime": KindDateTime,
	"str":      KindStr,
	"bytes":    KindBytes,
	"list":     KindList,
	"map":      KindMap,
	"table":    KindTable,
}

// IsBuiltinVtype reports whether name is one of the built-in scalar or
// collection typenames (as opposed to a user-defined ttype).
func IsBuiltinVtype(name string) bool {
	_, ok := builtinVtypes[name]
	return ok
}

// IsBuiltinKtype reports whether name is one of the four permitted map
// ktype constraints. Note this excludes "datetime": a Key value may be
// a DateTime, but a Map's ktype annotation may not name it — this
// asymmetry comes from the format itself (spec.md §3.3).
func IsBuiltinKtype(name string) bool {
	switch name {
	case "bytes", "date", "int", "str":
		return true
	default:
		return false
	}
}
