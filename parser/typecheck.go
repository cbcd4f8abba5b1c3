package parser

import (
	"math"

	"github.com/uxfio/uxf/naturalize"
	"github.com/uxfio/uxf/value"
)

// typeCheck implements spec.md §4.2.4: a value deposited into a
// typed slot must either already match expected, or be repairable
// into it (Str naturalized into bool/int/real/date/datetime, or Int
// promoted to Real and Real rounded to Int - ties away from zero, via
// math.Round). Anything else is a fatal mismatch, coded by whether the
// offending value was itself a Str (488) or not (500). Null always
// passes: every UXF field and slot is implicitly nullable.
func (p *fileParser) typeCheck(expected string, v value.Value) (value.Value, error) {
	if _, isNull := v.(value.Null); isNull || expected == "" {
		return v, nil
	}
	if expected == "table" {
		if _, ok := v.(*value.Table); ok {
			return v, nil
		}
		return nil, p.mismatch(expected, v)
	}
	if value.IsBuiltinVtype(expected) {
		if value.TypeName(v) == expected {
			return v, nil
		}
		if s, ok := v.(value.Str); ok {
			if repaired, ok := naturalizeTo(expected, string(s)); ok {
				p.h.Repairf(ErrRepair, p.line, "converted str %q to %s %v", string(s), expected, repaired)
				return repaired, nil
			}
			return nil, p.h.Fatalf(ErrMismatchFromStr, p.line, "expected %s, got str %q", expected, string(s))
		}
		if expected == "real" {
			if n, ok := v.(value.Int); ok {
				r := value.Real(float64(n))
				p.h.Repairf(ErrRepair, p.line, "converted int %d to real %v", int64(n), float64(r))
				return r, nil
			}
		}
		if expected == "int" {
			if r, ok := v.(value.Real); ok {
				n := value.Int(int64(math.Round(float64(r))))
				p.h.Repairf(ErrRepair, p.line, "converted real %v to int %d", float64(r), int64(n))
				return n, nil
			}
		}
		return nil, p.mismatch(expected, v)
	}
	if t, ok := v.(*value.Table); ok && t.TClass != nil && t.TClass.TType == expected {
		return v, nil
	}
	return nil, p.mismatch(expected, v)
}

func (p *fileParser) mismatch(expected string, v value.Value) error {
	if _, ok := v.(value.Str); ok {
		return p.h.Fatalf(ErrMismatchFromStr, p.line, "expected %s, got %s", expected, value.TypeName(v))
	}
	return p.h.Fatalf(ErrMismatchOther, p.line, "expected %s, got %s", expected, value.TypeName(v))
}

func naturalizeTo(expected, s string) (value.Value, bool) {
	switch expected {
	case "bool":
		v, ok := naturalize.Bool(s)
		return v, ok
	case "int":
		v, ok := naturalize.Int(s)
		return v, ok
	case "real":
		v, ok := naturalize.Real(s)
		return v, ok
	case "date":
		v, ok := naturalize.Date(s)
		return v, ok
	case "datetime":
		v, ok := naturalize.DateTime(s)
		return v, ok
	}
	return nil, false
}
