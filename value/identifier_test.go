package value_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/uxfio/uxf/value"
)

// spec.md §8.3: identifier of 32 chars accepted, 33 chars rejected.
func TestValidateIdentifierLengthBoundary(t *testing.T) {
	at32 := strings.Repeat("a", 32)
	at33 := strings.Repeat("a", 33)
	assert.NoError(t, value.ValidateIdentifier(at32))
	assert.Error(t, value.ValidateIdentifier(at33))
}

// Length is counted in runes, not bytes, so a 32-rune multi-byte
// identifier is accepted even though it is far longer than 32 bytes.
func TestValidateIdentifierLengthBoundaryCountsRunesNotBytes(t *testing.T) {
	at32 := strings.Repeat("日", 32)
	at33 := strings.Repeat("日", 33)
	assert.NoError(t, value.ValidateIdentifier(at32))
	assert.Error(t, value.ValidateIdentifier(at33))
}

func TestValidateIdentifierAcceptsUnicodeLetters(t *testing.T) {
	assert.NoError(t, value.ValidateIdentifier("café"))
	assert.NoError(t, value.ValidateIdentifier("日本語"))
	assert.NoError(t, value.ValidateIdentifier("_日本語2"))
}

func TestValidateIdentifierRejectsUnicodeDigitAsStart(t *testing.T) {
	// '１' (fullwidth digit one) is alphanumeric but not a letter, so it
	// may continue an identifier but never start one.
	assert.Error(t, value.ValidateIdentifier("１st"))
	assert.NoError(t, value.ValidateIdentifier("a１"))
}

func TestValidateIdentifierRejectsEmpty(t *testing.T) {
	assert.Error(t, value.ValidateIdentifier(""))
}

func TestValidateIdentifierRejectsReservedBarewords(t *testing.T) {
	assert.Error(t, value.ValidateIdentifier("yes"))
	assert.Error(t, value.ValidateIdentifier("no"))
}

func TestValidateFieldOrTTypeNameRejectsBuiltinVTypeNames(t *testing.T) {
	assert.Error(t, value.ValidateFieldOrTTypeName("int"))
	assert.Error(t, value.ValidateFieldOrTTypeName("null"))
	assert.NoError(t, value.ValidateFieldOrTTypeName("Point"))
}
