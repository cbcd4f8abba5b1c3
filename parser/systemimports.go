package parser

import "github.com/uxfio/uxf/value"

// complexTClass and fractionTClass are the two fixed built-in TClasses
// the "complex", "fraction" and "numeric" system imports define
// (spec.md §4.2.1). "numeric" pulls in both.
func complexTClass() (*value.TClass, error) {
	return value.NewTClass("Complex", []value.Field{
		{Name: "Real", VType: "real"},
		{Name: "Imag", VType: "real"},
	}, "")
}

func fractionTClass() (*value.TClass, error) {
	return value.NewTClass("Fraction", []value.Field{
		{Name: "numerator", VType: "int"},
		{Name: "denominator", VType: "int"},
	}, "")
}
