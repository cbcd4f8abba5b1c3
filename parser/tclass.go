package parser

import (
	"github.com/uxfio/uxf/token"
	"github.com/uxfio/uxf/value"
)

// tclassSource records where a TClass being merged came from, since
// spec.md §4.2.2's conflict code depends on it.
type tclassSource int

const (
	localSource tclassSource = iota
	importedSource
	systemSource
)

// tclassBuilder accumulates one `=ttype field:vtype...` declaration's
// Field tokens between its TClassBegin and TClassEnd, mirroring
// original_source's TClassBuilder.
type tclassBuilder struct {
	ttype   string
	comment string
	line    int
	fields  []value.Field
}

// parseTClassBlock consumes a (possibly empty) contiguous run of
// TClassBegin/Field/TClassEnd tokens from the front of tokens,
// returning how many it consumed. It stops at the first token that
// isn't part of a TClass declaration, which per spec.md §4.2's
// grammar marks the start of the root value.
func (p *fileParser) parseTClassBlock(tokens []token.Token) (int, error) {
	var building *tclassBuilder
	i := 0
	for i < len(tokens) {
		tok := tokens[i]
		switch tok.Kind {
		case token.TClassBegin:
			if tok.VType == "" {
				return 0, p.h.Fatalf(ErrTClassBadTTypeName, tok.Line, "invalid or missing ttype name")
			}
			building = &tclassBuilder{ttype: tok.VType, comment: tok.Comment, line: tok.Line}
			i++
		case token.Field:
			if building == nil {
				return 0, p.h.Fatalf(ErrFieldOutsideTClass, tok.Line, "field outside TClass")
			}
			name := tok.Text()
			if name == "" {
				return 0, p.h.Fatalf(ErrTClassBadFieldName, tok.Line, "invalid or missing field name")
			}
			building.fields = append(building.fields, value.Field{Name: name, VType: tok.VType})
			i++
		case token.TClassEnd:
			if building == nil {
				return 0, p.h.Fatalf(ErrTClassNoTType, tok.Line, "TClass without ttype")
			}
			if err := p.finishTClass(building); err != nil {
				return 0, err
			}
			building = nil
			i++
		default:
			return i, nil
		}
	}
	return i, nil
}

// finishTClass validates and builds the TClass that building
// describes, then merges it into the document (spec.md §4.2.2).
func (p *fileParser) finishTClass(building *tclassBuilder) error {
	if err := value.ValidateFieldOrTTypeName(building.ttype); err != nil {
		return p.h.Fatalf(ErrTClassBadTTypeName, building.line, "%v", err)
	}
	for _, f := range building.fields {
		if err := value.ValidateFieldOrTTypeName(f.Name); err != nil {
			return p.h.Fatalf(ErrTClassBadFieldName, building.line, "%v", err)
		}
	}
	tc, err := value.NewTClass(building.ttype, building.fields, building.comment)
	if err != nil {
		return p.h.Fatalf(ErrDuplicateFieldName, building.line, "%v", err)
	}
	return p.mergeTClass(tc, "", localSource)
}

// mergeTClass implements spec.md §4.2.2: a brand new ttype is
// inserted; an identical-fields redefinition is a harmless duplicate
// (its later non-empty, differing comment wins); anything else is a
// fatal conflict, coded by where the conflicting definition came from.
func (p *fileParser) mergeTClass(tc *value.TClass, importSource string, src tclassSource) error {
	existing, ok := p.doc.TClass(tc.TType)
	if !ok {
		p.doc.SetTClass(tc)
		if src != localSource {
			p.doc.SetImportSource(tc.TType, importSource)
		}
		return nil
	}
	if existing.SameFields(tc) {
		if tc.Comment != "" && tc.Comment != existing.Comment {
			if merged, err := value.NewTClass(tc.TType, tc.Fields, tc.Comment); err == nil {
				p.doc.SetTClass(merged)
			}
		}
		if src != localSource {
			p.doc.SetImportSource(tc.TType, importSource)
		}
		return nil
	}
	code := ErrLocalTClassConflict
	switch src {
	case importedSource:
		code = ErrImportedTClassConflict
	case systemSource:
		code = ErrSystemTClassConflict
	}
	return p.h.Fatalf(code, p.line, "conflicting definitions for ttype %q", tc.TType)
}
