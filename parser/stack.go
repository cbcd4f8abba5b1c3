package parser

import (
	"strings"

	"github.com/uxfio/uxf/token"
	"github.com/uxfio/uxf/value"
)

// frame is one open List, Map or Table on the value-construction
// stack described in spec.md §4.2.3.
type frame struct {
	kind  token.Kind
	list  *value.List
	m     *value.Map
	table *value.Table

	pendingKey value.Key
	haveKey    bool
}

// expectedType reports the vtype (or generic "list"/"map"/"table",
// handled separately by typeMatches) that the next scalar or nested
// collection deposited into this frame must satisfy. An empty string
// means anything is accepted.
func (f *frame) expectedType() string {
	switch f.kind {
	case token.ListBegin:
		return f.list.VType()
	case token.MapBegin:
		if !f.haveKey {
			return f.m.KType()
		}
		return f.m.VType()
	case token.TableBegin:
		if f.table.TClass.Fieldless() {
			return ""
		}
		col := f.table.CurrentRecordLen()
		if col < 0 || col >= len(f.table.TClass.Fields) {
			return ""
		}
		return f.table.TClass.Fields[col].VType
	}
	return ""
}

func currentExpectedType(stack []*frame) string {
	if len(stack) == 0 {
		return ""
	}
	return stack[len(stack)-1].expectedType()
}

// typeMatches checks a newly-opened nested collection's generic kind
// name and its own vtype/ttype annotation against what the enclosing
// frame expects. An empty expected accepts anything.
func typeMatches(expected, typename, vtype string) bool {
	return expected == "" || expected == typename || (vtype != "" && expected == vtype)
}

// openFrame implements spec.md §4.2.3's "opener pushes frame" step,
// preceded by the check_contained_collection_type test (code 506):
// a nested collection must satisfy whatever the enclosing frame's
// current slot expects before it is even constructed.
func (p *fileParser) openFrame(tok token.Token, stack []*frame) (*frame, error) {
	expected := currentExpectedType(stack)
	var typename string
	switch tok.Kind {
	case token.ListBegin:
		typename = "list"
	case token.MapBegin:
		typename = "map"
	case token.TableBegin:
		typename = "table"
	}
	if !typeMatches(expected, typename, tok.VType) {
		return nil, p.h.Fatalf(ErrUnexpectedCollectionType, tok.Line, "expected %s, got %s", expected, typename)
	}
	switch tok.Kind {
	case token.ListBegin:
		return p.openList(tok)
	case token.MapBegin:
		return p.openMap(tok)
	default:
		return p.openTable(tok)
	}
}

// checkVType validates a List/Map vtype annotation immediately, per
// DESIGN.md's immediate-vs-deferred discussion (code 446).
func (p *fileParser) checkVType(vtype string, line int, what string) error {
	if vtype == "" || value.IsBuiltinVtype(vtype) {
		return nil
	}
	if err := value.ValidateIdentifier(vtype); err != nil {
		return p.h.Fatalf(ErrInvalidIdentifier, line, "%v", err)
	}
	if _, ok := p.doc.TClass(vtype); !ok {
		return p.h.Fatalf(ErrUndefinedVType, line, "expected %s vtype, got %s", what, vtype)
	}
	return nil
}

func (p *fileParser) openList(tok token.Token) (*frame, error) {
	if err := p.checkVType(tok.VType, tok.Line, "list"); err != nil {
		return nil, err
	}
	return &frame{kind: token.ListBegin, list: value.NewList(tok.VType, tok.Comment)}, nil
}

func (p *fileParser) openMap(tok token.Token) (*frame, error) {
	if err := p.checkVType(tok.VType, tok.Line, "map"); err != nil {
		return nil, err
	}
	return &frame{kind: token.MapBegin, m: value.NewMap(tok.KType, tok.VType, tok.Comment)}, nil
}

// openTable must resolve its ttype to a known TClass immediately
// (code 450): the parser needs the TClass's field arity to know how
// to split the table's flat cell stream into records.
func (p *fileParser) openTable(tok token.Token) (*frame, error) {
	ttype := tok.VType
	tc, ok := p.doc.TClass(ttype)
	if !ok {
		shown := ttype
		if shown == "" {
			shown = "nothing"
		}
		return nil, p.h.Fatalf(ErrTableTTypeUndefined, tok.Line, "expected table ttype, got %s", shown)
	}
	return &frame{kind: token.TableBegin, table: value.NewTable(tc, tok.Comment)}, nil
}

func closedValue(fr *frame) value.Value {
	switch fr.kind {
	case token.ListBegin:
		return fr.list
	case token.MapBegin:
		return fr.m
	default:
		return fr.table
	}
}

func isCollectionValue(v value.Value) bool {
	switch v.Kind() {
	case value.KindList, value.KindMap, value.KindTable:
		return true
	default:
		return false
	}
}

// deposit implements spec.md §4.2.3's "deposit pending value into
// innermost frame" step, type-checking (§4.2.4) against whatever slot
// the frame currently has open.
func (p *fileParser) deposit(stack []*frame, v value.Value) error {
	if len(stack) == 0 {
		return nil
	}
	top := stack[len(stack)-1]
	switch top.kind {
	case token.ListBegin:
		checked, err := p.typeCheck(top.list.VType(), v)
		if err != nil {
			return err
		}
		top.list.Push(checked)
	case token.MapBegin:
		if !top.haveKey {
			checked, err := p.typeCheck(top.m.KType(), v)
			if err != nil {
				return err
			}
			key, ok := value.AsKey(checked)
			if !ok {
				return p.h.Fatalf(ErrUnexpectedCollectionType, p.line,
					"map key must be bytes, date, int or str, got %s", value.TypeName(checked))
			}
			top.pendingKey = key
			top.haveKey = true
		} else {
			checked, err := p.typeCheck(top.m.VType(), v)
			if err != nil {
				return err
			}
			top.m.Put(top.pendingKey, checked)
			top.pendingKey = nil
			top.haveKey = false
		}
	case token.TableBegin:
		return p.depositTableCell(top, v)
	}
	return nil
}

// depositTableCell implements table row-filling, including the
// fieldless ("enumerand") case: spec.md §3.4 describes a fieldless
// table as zero or more nullary records, so each incoming Null marker
// opens a new zero-length record via AppendRecord without ever calling
// PushCell - a record, not a 1-cell row. Any non-Null value there is a
// fatal mismatch.
func (p *fileParser) depositTableCell(fr *frame, v value.Value) error {
	t := fr.table
	if t.TClass.Fieldless() {
		if _, ok := v.(value.Null); !ok {
			return p.h.Fatalf(ErrMismatchOther, p.line,
				"ttype %s is fieldless: only null markers are allowed", t.TClass.TType)
		}
		t.AppendRecord()
		return nil
	}
	if t.CurrentRecordLen() < 0 || t.CurrentRecordLen() >= t.Arity() {
		t.AppendRecord()
	}
	col := t.CurrentRecordLen()
	expected := t.TClass.Fields[col].VType
	checked, err := p.typeCheck(expected, v)
	if err != nil {
		return err
	}
	return t.PushCell(checked)
}

// invalidIdentifierError classifies a bareword identifier that
// survives to the data-section stack algorithm: either a stray
// "true"/"false" (code 458) or any other stray identifier (code 460).
func (p *fileParser) invalidIdentifierError(tok token.Token) error {
	text := tok.Text()
	lower := strings.ToLower(text)
	if lower == "true" || lower == "false" {
		return p.h.Fatalf(ErrBooleanWord, tok.Line, "boolean values are represented by yes or no")
	}
	return p.h.Fatalf(ErrUnexpectedIdentifier, tok.Line, "ttypes may only appear at the start of a map, list, or table")
}

// buildRoot runs the value-construction stack algorithm (spec.md
// §4.2.3) over the remaining tokens - everything after the FileComment,
// Import and TClass tokens - and, at Eof, installs the single
// top-level value as the document root. A non-collection top-level
// value is silently discarded: a deliberate port of original_source's
// leniency (only a collection ever becomes the document root).
func (p *fileParser) buildRoot(tokens []token.Token) error {
	var stack []*frame
	var pending value.Value
	havePending := false

	for _, tok := range tokens {
		if tok.Kind == token.Eof {
			break
		}
		p.line = tok.Line

		if havePending {
			if err := p.deposit(stack, pending); err != nil {
				return err
			}
			havePending = false
			pending = nil
		}

		switch tok.Kind {
		case token.ListBegin, token.MapBegin, token.TableBegin:
			fr, err := p.openFrame(tok, stack)
			if err != nil {
				return err
			}
			stack = append(stack, fr)
		case token.ListEnd, token.MapEnd, token.TableEnd:
			if len(stack) == 0 {
				return p.h.Fatalf(ErrMissingCollection, tok.Line, "unmatched closing token")
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			pending = closedValue(top)
			havePending = true
		case token.Identifier, token.Type:
			return p.invalidIdentifierError(tok)
		case token.Null, token.Bool, token.Int, token.Real, token.Date, token.DateTime, token.Str, token.Bytes:
			pending = tok.Value
			havePending = true
		default:
			return p.h.Fatalf(ErrUnexpectedToken, tok.Line, "unexpected token %s", tok.Kind)
		}
	}

	if len(stack) > 0 {
		return p.h.Fatalf(ErrMissingCollection, p.line, "unterminated collection")
	}

	if havePending && isCollectionValue(pending) {
		p.doc.Root = pending
	}
	return nil
}
