package value

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

const maxIdentifierLen = 32

// ValidateIdentifier enforces spec.md §3.7's rules for a ttype name, a
// field name, or a vtype name: non-empty, starts with a Unicode letter
// or underscore, continues with letters/digits/underscores, at most 32
// characters (counted as runes, not bytes), and not the bareword "yes"
// or "no". Matches original_source/rs/src/util.rs's check_type_name,
// which accepts any is_alphabetic/is_alphanumeric character and counts
// MAX_IDENTIFIER_LEN in chars().
func ValidateIdentifier(name string) error {
	if name == "" {
		return fmt.Errorf("empty identifier")
	}
	if utf8.RuneCountInString(name) > maxIdentifierLen {
		return fmt.Errorf("identifier %q exceeds %d characters", name, maxIdentifierLen)
	}
	if name == "yes" || name == "no" {
		return fmt.Errorf("identifier %q is a reserved bareword", name)
	}
	first, size := utf8.DecodeRuneInString(name)
	if !isIdentStart(first) {
		return fmt.Errorf("identifier %q must start with a letter or underscore", name)
	}
	for _, r := range name[size:] {
		if !isIdentCont(r) {
			return fmt.Errorf("identifier %q contains invalid character %q", name, r)
		}
	}
	return nil
}

// ValidateFieldOrTTypeName additionally forbids reserved words (built-in
// typenames and "null") since those name slots may never shadow a
// built-in scalar/collection type.
func ValidateFieldOrTTypeName(name string) error {
	if err := ValidateIdentifier(name); err != nil {
		return err
	}
	if name == "null" || IsBuiltinVtype(name) {
		return fmt.Errorf("identifier %q is a reserved word", name)
	}
	return nil
}

// isIdentStart/isIdentCont mirror lexer.isIdentStartRune/isIdentContRune
// so the lexer and the parser's post-hoc validation never disagree on
// what counts as a legal identifier character.
func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentCont(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}
