// Package lexer converts UXF source text into the ordered token queue
// described by spec.md §4.1. It is a hand-written, rune-at-a-time
// scanner in the style of the teacher's parser/lexer.go (protoLex):
// no lexer-generator, no regexp on the hot path, a small explicit
// state machine for the handful of multi-character forms (bytes
// literals, strings, imports, numbers).
package lexer

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/uxfio/uxf/reporter"
	"github.com/uxfio/uxf/token"
	"github.com/uxfio/uxf/value"
)

// Result is everything the lexer produces from one source file.
type Result struct {
	Custom string
	Tokens []token.Token
}

// Lexer turns the runeReader-equivalent scanner into a token queue.
type Lexer struct {
	s        *scanner
	h        *reporter.Handler
	tokens   []token.Token
	inTClass bool
	// index into tokens of the most recent open collection/TClass
	// opener with no matching closer yet seen — used for comment
	// attachment (spec.md §4.1's comment placement rule).
	openStack []int
	sawAnyToken bool
	// pendingErr carries an error discovered mid-subsumption (e.g. an
	// invalid map ktype) out of pushOpenerWithSubsumption, whose own
	// signature is void so it can be called inline from step()'s switch.
	pendingErr error
}

func (lx *Lexer) takePendingErr() error {
	err := lx.pendingErr
	lx.pendingErr = nil
	return err
}

// Lex tokenizes data, reporting through h (whose Filename is used for
// self-import detection and diagnostics).
func Lex(data []byte, h *reporter.Handler) (Result, error) {
	lx := &Lexer{s: newScanner(data), h: h}
	custom, err := lx.header()
	if err != nil {
		return Result{}, err
	}
	if err := lx.fileComment(); err != nil {
		return Result{}, err
	}
	for {
		done, err := lx.step()
		if err != nil {
			return Result{}, err
		}
		if done {
			break
		}
	}
	lx.push(token.Token{Kind: token.Eof, Value: value.Null{}, Line: lx.s.line})
	return Result{Custom: custom, Tokens: lx.tokens}, nil
}

// header parses the mandatory first line "uxf <version> [<custom>]".
func (lx *Lexer) header() (string, error) {
	idx := indexByte(lx.s.data, '\n')
	if idx < 0 {
		return "", lx.h.Fatalf(ErrMissingHeader, 1, "missing header (no trailing newline)")
	}
	line := string(lx.s.data[:idx])
	lx.s.pos = idx + 1
	lx.s.line = 2

	fields := strings.Fields(line)
	if len(fields) < 2 {
		return "", lx.h.Fatalf(ErrMalformedHeader, 1, "malformed header: %q", line)
	}
	if fields[0] != "uxf" {
		return "", lx.h.Fatalf(ErrHeaderNotUxf, 1, "expected 'uxf' at start of header, got %q", fields[0])
	}
	version, err := strconv.Atoi(fields[1])
	if err != nil {
		return "", lx.h.Fatalf(ErrUnparsableVersion, 1, "unparsable version number %q", fields[1])
	}
	if version > 1 {
		lx.h.Warnf(ErrFutureVersion, 1, "version %d is newer than supported version 1", version)
	}
	custom := ""
	if len(fields) > 2 {
		custom = strings.Join(fields[2:], " ")
	}
	return custom, nil
}

// fileComment consumes the optional "#<...>" immediately following the
// header (spec.md §4.1), emitting a FileComment token if present.
func (lx *Lexer) fileComment() error {
	lx.s.skipASCIIWhitespace()
	if lx.s.peek() != '#' {
		return nil
	}
	lx.s.save()
	startLine := lx.s.line
	lx.s.next() // '#'
	if lx.s.peek() != '<' {
		lx.s.restore()
		return nil
	}
	lx.s.next() // '<'
	text, err := lx.readEscapedUntil('>')
	if err != nil {
		return lx.h.Fatalf(ErrUnterminatedString, startLine, "unterminated file comment")
	}
	lx.push(token.Token{Kind: token.FileComment, Value: value.Str(text), Line: startLine})
	return nil
}

// step lexes one token (or, for imports/comments/concatenation,
// performs its side effect without necessarily pushing a new token).
// It returns done=true at EOF.
func (lx *Lexer) step() (bool, error) {
	lx.skipWhitespaceTrackingTClass()
	if lx.s.atEOF() {
		return true, nil
	}
	line := lx.s.line
	r := lx.s.peek()

	switch {
	case r == '(':
		return false, lx.lexParenOpen(line)
	case r == ')':
		lx.s.next()
		lx.popOpener()
		lx.push(token.Token{Kind: token.TableEnd, Value: value.Null{}, Line: line})
		return false, nil
	case r == '[':
		lx.s.next()
		lx.pushOpenerWithSubsumption(token.ListBegin, line)
		return false, lx.takePendingErr()
	case r == ']':
		lx.s.next()
		lx.popOpener()
		lx.push(token.Token{Kind: token.ListEnd, Value: value.Null{}, Line: line})
		return false, nil
	case r == '{':
		lx.s.next()
		lx.pushOpenerWithSubsumption(token.MapBegin, line)
		return false, lx.takePendingErr()
	case r == '}':
		lx.s.next()
		lx.popOpener()
		lx.push(token.Token{Kind: token.MapEnd, Value: value.Null{}, Line: line})
		return false, nil
	case r == '=':
		lx.s.next()
		lx.inTClass = true
		lx.pushOpenerWithSubsumption(token.TClassBegin, line)
		if err := lx.takePendingErr(); err != nil {
			return false, err
		}
		return false, lx.lexTClassTType()
	case r == '?':
		lx.s.next()
		lx.push(token.Token{Kind: token.Null, Value: value.Null{}, Line: line})
		return false, nil
	case r == '!':
		return false, lx.lexImport(line)
	case r == '#':
		return false, lx.lexComment(line)
	case r == '<':
		return false, lx.lexString(line)
	case r == '&':
		return false, lx.lexConcat(line)
	case r == ':':
		return false, lx.lexFieldVType(line)
	case isDigit(r) || (r == '-' && isDigit(rune(lx.s.peekByteAt(1)))):
		return false, lx.lexNumber(line)
	case isIdentStartRune(r):
		return false, lx.lexBareword(line, true)
	default:
		return false, lx.h.Fatalf(ErrInvalidChar, line, "invalid character %q", r)
	}
}

// skipWhitespaceTrackingTClass is skipWhitespace, but also closes an
// open TClass declaration at end-of-line: the textual grammar has no
// explicit TClass terminator character, so a newline while inTClass
// ends the declaration (spec.md §6.1's one-line `=ttype field...`
// form).
func (lx *Lexer) skipWhitespaceTrackingTClass() {
	for {
		r := lx.s.peek()
		if r == '\n' && lx.inTClass {
			lx.s.next()
			lx.inTClass = false
			lx.popOpener()
			lx.push(token.Token{Kind: token.TClassEnd, Value: value.Null{}, Line: lx.s.line})
			continue
		}
		if r == ' ' || r == '\t' || r == '\r' || r == '\n' {
			lx.s.next()
			continue
		}
		break
	}
}

func (lx *Lexer) push(t token.Token) {
	lx.tokens = append(lx.tokens, t)
	lx.sawAnyToken = true
}

func (lx *Lexer) lastToken() (token.Token, bool) {
	if len(lx.tokens) == 0 {
		return token.Token{}, false
	}
	return lx.tokens[len(lx.tokens)-1], true
}

func isOpenerKind(k token.Kind) bool {
	switch k {
	case token.ListBegin, token.MapBegin, token.TableBegin, token.TClassBegin:
		return true
	default:
		return false
	}
}

func (lx *Lexer) popOpener() {
	if n := len(lx.openStack); n > 0 {
		lx.openStack = lx.openStack[:n-1]
	}
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isIdentStartRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentContRune(r rune) bool {
	return isIdentStartRune(r) || unicode.IsDigit(r)
}

func indexByte(b []byte, c byte) int {
	for i, x := range b {
		if x == c {
			return i
		}
	}
	return -1
}
