package lexer

import (
	"encoding/hex"
	"path/filepath"
	"strings"

	"github.com/uxfio/uxf/token"
	"github.com/uxfio/uxf/value"
)

// readBarewordText consumes an identifier/bareword: it must already be
// positioned on a valid start rune.
func (lx *Lexer) readBarewordText() string {
	start := lx.s.pos
	lx.s.next() // consume the verified start rune
	for isIdentContRune(lx.s.peek()) {
		lx.s.next()
	}
	return string(lx.s.data[start:lx.s.pos])
}

// classifyBareword maps raw text to the lexical kind it represents,
// outside of the TClass-field context (handled separately by
// lexBareword when lx.inTClass).
func classifyBareword(text string) (token.Kind, value.Value) {
	switch text {
	case "yes":
		return token.Bool, value.Bool(true)
	case "no":
		return token.Bool, value.Bool(false)
	}
	if value.IsBuiltinVtype(text) {
		return token.Type, value.Str(text)
	}
	return token.Identifier, value.Str(text)
}

func (lx *Lexer) lexBareword(line int, _ bool) error {
	text := lx.readBarewordText()
	if lx.inTClass {
		lx.push(token.Token{Kind: token.Field, Value: value.Str(text), Line: line})
		return nil
	}
	kind, val := classifyBareword(text)
	lx.push(token.Token{Kind: kind, Value: val, Line: line})
	return nil
}

// maybeAttachComment consumes a "#<...>" immediately following the
// opener at token index idx, if present. Per spec.md §4.1 a comment
// may only immediately follow an opener: nothing (not even
// whitespace-insignificant tokens) may come between them, so this must
// be called before any subsumption identifiers are read.
func (lx *Lexer) maybeAttachComment(idx int) error {
	lx.s.skipASCIIWhitespace()
	if lx.s.peek() != '#' {
		return nil
	}
	line := lx.s.line
	lx.s.next() // '#'
	if lx.s.peek() != '<' {
		return lx.h.Fatalf(ErrHashNotFollowedByLT, line, "'#' not followed by '<'")
	}
	lx.s.next() // '<'
	text, err := lx.readEscapedUntil('>')
	if err != nil {
		return lx.h.Fatalf(ErrUnterminatedString, line, "unterminated comment")
	}
	lx.tokens[idx].Comment = text
	return nil
}

func (lx *Lexer) pushOpenerWithSubsumption(kind token.Kind, line int) {
	idx := len(lx.tokens)
	lx.push(token.Token{Kind: kind, Value: value.Null{}, Line: line})
	lx.openStack = append(lx.openStack, idx)
	if err := lx.maybeAttachComment(idx); err != nil {
		lx.pendingErr = err
		return
	}
	switch kind {
	case token.ListBegin:
		lx.subsumeListVType(idx)
	case token.MapBegin:
		lx.subsumeMapTypes(idx)
	}
}

// subsumeListVType implements spec.md §4.1: a ListBegin followed by a
// Type or Identifier token naming a valid vtype/ttype is absorbed as
// the list's vtype rather than emitted as its own token.
func (lx *Lexer) subsumeListVType(idx int) {
	lx.s.skipASCIIWhitespace()
	if !isIdentStartRune(lx.s.peek()) {
		return
	}
	save := *lx.s
	text := lx.readBarewordText()
	kind, _ := classifyBareword(text)
	if kind == token.Bool {
		*lx.s = save // "yes"/"no" is data, not a vtype
		return
	}
	lx.tokens[idx].VType = text
}

// subsumeMapTypes implements spec.md §4.1: a MapBegin followed by a
// Type token is absorbed as ktype; a second Type or Identifier token
// is then absorbed as vtype.
func (lx *Lexer) subsumeMapTypes(idx int) {
	lx.s.skipASCIIWhitespace()
	if !isIdentStartRune(lx.s.peek()) {
		return
	}
	save := *lx.s
	text := lx.readBarewordText()
	kind, _ := classifyBareword(text)
	if kind != token.Type {
		*lx.s = save
		return
	}
	if !value.IsBuiltinKtype(text) {
		lx.pendingErr = lx.h.Fatalf(ErrInvalidMapKType, lx.tokens[idx].Line, "invalid map ktype %q", text)
		return
	}
	lx.tokens[idx].KType = text

	lx.s.skipASCIIWhitespace()
	if !isIdentStartRune(lx.s.peek()) {
		return
	}
	save = *lx.s
	text = lx.readBarewordText()
	kind, _ = classifyBareword(text)
	if kind == token.Bool {
		*lx.s = save
		return
	}
	lx.tokens[idx].VType = text
}

// subsumeTableTType implements spec.md §4.1: a TableBegin followed by
// an Identifier is absorbed as the table's ttype.
func (lx *Lexer) subsumeTableTType(idx int) {
	lx.s.skipASCIIWhitespace()
	if !isIdentStartRune(lx.s.peek()) {
		return
	}
	save := *lx.s
	text := lx.readBarewordText()
	kind, _ := classifyBareword(text)
	if kind != token.Identifier {
		*lx.s = save
		return
	}
	lx.tokens[idx].VType = text
}

func (lx *Lexer) lexParenOpen(line int) error {
	lx.s.next() // '('
	if lx.s.peek() == ':' {
		return lx.lexBytes(line)
	}
	idx := len(lx.tokens)
	lx.push(token.Token{Kind: token.TableBegin, Value: value.Null{}, Line: line})
	lx.openStack = append(lx.openStack, idx)
	if err := lx.maybeAttachComment(idx); err != nil {
		return err
	}
	lx.subsumeTableTType(idx)
	return lx.pendingErr
}

func (lx *Lexer) lexTClassTType() error {
	if lx.pendingErr != nil {
		return lx.pendingErr
	}
	idx := lx.openStack[len(lx.openStack)-1]
	lx.s.skipASCIIWhitespace()
	if !isIdentStartRune(lx.s.peek()) {
		return lx.h.Fatalf(ErrExpectedIdentOrConst, lx.s.line, "expected ttype identifier after '='")
	}
	text := lx.readBarewordText()
	lx.tokens[idx].VType = text
	return nil
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func (lx *Lexer) lexBytes(line int) error {
	lx.s.next() // ':'
	var hexDigits []byte
	for {
		if lx.s.atEOF() {
			return lx.h.Fatalf(ErrUnterminatedBytes, line, "unterminated bytes literal")
		}
		r := lx.s.peek()
		if r == ':' {
			save := *lx.s
			lx.s.next()
			if lx.s.peek() == ')' {
				lx.s.next()
				break
			}
			*lx.s = save
			return lx.h.Fatalf(ErrUnterminatedBytes, line, "unterminated bytes literal")
		}
		if r == ' ' || r == '\t' || r == '\r' || r == '\n' {
			lx.s.next()
			continue
		}
		if !isHexDigit(r) {
			return lx.h.Fatalf(ErrInvalidChar, line, "invalid hex digit %q in bytes literal", r)
		}
		hexDigits = append(hexDigits, byte(r))
		lx.s.next()
	}
	if len(hexDigits)%2 != 0 {
		return lx.h.Fatalf(ErrUnterminatedBytes, line, "odd number of hex digits in bytes literal")
	}
	data, err := hex.DecodeString(string(hexDigits))
	if err != nil {
		return lx.h.Fatalf(ErrInvalidChar, line, "invalid hex digits in bytes literal")
	}
	lx.push(token.Token{Kind: token.Bytes, Value: value.Bytes(data), Line: line})
	return nil
}

func (lx *Lexer) lexImport(line int) error {
	lx.s.next() // '!'
	text := strings.TrimSpace(lx.s.readLine())
	if text != "" && isSelfImport(text, lx.h.Filename) {
		return lx.h.Fatalf(ErrSelfImport, line, "self-import of %q", text)
	}
	lx.push(token.Token{Kind: token.Import, Value: value.Str(text), Line: line})
	return nil
}

// isSelfImport canonicalizes the import text against the importing
// file's own directory before comparing, the way original_source's
// full_filename-based comparison does (rs/src/parser/lexer.rs:217-222),
// instead of a literal string match. This catches "./self.uxf" or
// "../dir/self.uxf" naming the same file as the current one under a
// different relative spelling, not only a byte-identical import line.
func isSelfImport(importText, selfFilename string) bool {
	if selfFilename == "" || selfFilename == "-" {
		return importText == selfFilename
	}
	if strings.Contains(importText, "://") || strings.Contains(selfFilename, "://") {
		return importText == selfFilename // URLs aren't filesystem paths to clean/join
	}
	self := filepath.Clean(selfFilename)
	imported := filepath.Clean(filepath.Join(filepath.Dir(selfFilename), importText))
	return self == imported
}

func (lx *Lexer) lexComment(line int) error {
	lx.s.next() // '#'
	if lx.s.peek() != '<' {
		return lx.h.Fatalf(ErrHashNotFollowedByLT, line, "'#' not followed by '<'")
	}
	lx.s.next() // '<'
	text, err := lx.readEscapedUntil('>')
	if err != nil {
		return lx.h.Fatalf(ErrUnterminatedString, line, "unterminated comment")
	}
	if len(lx.openStack) == 0 {
		return lx.h.Fatalf(ErrCommentMisplaced, line, "comment not immediately following an opener")
	}
	idx := lx.openStack[len(lx.openStack)-1]
	if idx != len(lx.tokens)-1 {
		return lx.h.Fatalf(ErrCommentMisplaced, line, "comment must immediately follow its opener")
	}
	lx.tokens[idx].Comment = text
	return nil
}

func (lx *Lexer) lexString(line int) error {
	lx.s.next() // '<'
	text, err := lx.readEscapedUntil('>')
	if err != nil {
		return lx.h.Fatalf(ErrUnterminatedString, line, "unterminated string")
	}
	lx.push(token.Token{Kind: token.Str, Value: value.Str(text), Line: line})
	return nil
}

// readEscapedUntil reads up to (and consuming) the next unescaped
// occurrence of end, unescaping &amp; &lt; &gt; along the way.
func (lx *Lexer) readEscapedUntil(end rune) (string, error) {
	var b strings.Builder
	for {
		if lx.s.atEOF() {
			return "", errUnterminated
		}
		r := lx.s.next()
		if r == end {
			return b.String(), nil
		}
		if r == '&' {
			entity, ok := lx.tryReadEntity()
			if ok {
				b.WriteRune(entity)
				continue
			}
		}
		b.WriteRune(r)
	}
}

// tryReadEntity attempts to read one of &amp; &lt; &gt; starting right
// after the '&' has already been consumed. If what follows isn't a
// recognized entity, it rewinds and returns false, leaving the '&' to
// be treated as a literal character.
func (lx *Lexer) tryReadEntity() (rune, bool) {
	save := *lx.s
	for _, ent := range []struct {
		text string
		r    rune
	}{
		{"amp;", '&'},
		{"lt;", '<'},
		{"gt;", '>'},
	} {
		if lx.consumeLiteral(ent.text) {
			return ent.r, true
		}
		*lx.s = save
	}
	return 0, false
}

func (lx *Lexer) consumeLiteral(lit string) bool {
	for _, want := range lit {
		if lx.s.atEOF() || lx.s.peek() != want {
			return false
		}
		lx.s.next()
	}
	return true
}

var errUnterminated = &unterminatedError{}

type unterminatedError struct{}

func (*unterminatedError) Error() string { return "unterminated" }

// lexConcat implements the '&' string-concatenation operator
// (spec.md §4.1): the next Str is appended to the preceding
// Str-bearing token — a previous Str token's value, a FileComment
// token's value, or a preceding opener's Comment if the immediately
// preceding token was that opener.
func (lx *Lexer) lexConcat(line int) error {
	lx.s.next() // '&'
	lx.s.skipASCIIWhitespace()
	if lx.s.peek() != '<' {
		return lx.h.Fatalf(ErrConcatNonString, line, "'&' must be followed by a string literal")
	}
	lx.s.next() // '<'
	text, err := lx.readEscapedUntil('>')
	if err != nil {
		return lx.h.Fatalf(ErrUnterminatedString, line, "unterminated string")
	}
	last, ok := lx.lastToken()
	if !ok {
		return lx.h.Fatalf(ErrConcatNonString, line, "'&' has no preceding string to concatenate onto")
	}
	switch {
	case last.Kind == token.Str || last.Kind == token.FileComment:
		idx := len(lx.tokens) - 1
		s, _ := lx.tokens[idx].Value.(value.Str)
		lx.tokens[idx].Value = value.Str(string(s) + text)
	case isOpenerKind(last.Kind) && last.Comment != "":
		idx := len(lx.tokens) - 1
		lx.tokens[idx].Comment = lx.tokens[idx].Comment + text
	default:
		return lx.h.Fatalf(ErrConcatNonString, line, "'&' target is not a string")
	}
	return nil
}
