package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uxfio/uxf/value"
)

func TestNewTClassRejectsDuplicateFieldNames(t *testing.T) {
	_, err := value.NewTClass("Point", []value.Field{{Name: "x"}, {Name: "x"}}, "")
	assert.Error(t, err)
}

func TestNewTClassRejectsInvalidNames(t *testing.T) {
	_, err := value.NewTClass("1Point", nil, "")
	assert.Error(t, err)
}

func TestTClassFieldlessReportsEnumerand(t *testing.T) {
	tc, err := value.NewTClass("Suit", nil, "")
	require.NoError(t, err)
	assert.True(t, tc.Fieldless())

	tc2, err := value.NewTClass("Point", []value.Field{{Name: "x"}}, "")
	require.NoError(t, err)
	assert.False(t, tc2.Fieldless())
}

func TestTClassSameFieldsIgnoresComment(t *testing.T) {
	a, err := value.NewTClass("Point", []value.Field{{Name: "x", VType: "int"}}, "a comment")
	require.NoError(t, err)
	b, err := value.NewTClass("Point", []value.Field{{Name: "x", VType: "int"}}, "different comment")
	require.NoError(t, err)
	assert.True(t, a.SameFields(b))
	assert.False(t, a.Equal(b))
}

func TestTClassOrderIsCaseInsensitiveThenCaseSensitive(t *testing.T) {
	a, _ := value.NewTClass("apple", nil, "")
	b, _ := value.NewTClass("Apple", nil, "")
	c, _ := value.NewTClass("Banana", nil, "")

	assert.Negative(t, value.TClassOrder(b, a))
	assert.Negative(t, value.TClassOrder(b, c))
	assert.Zero(t, value.TClassOrder(a, a))
}

func TestTClassOrderComparesFieldsAfterName(t *testing.T) {
	short, _ := value.NewTClass("Point", []value.Field{{Name: "x"}}, "")
	long, _ := value.NewTClass("Point", []value.Field{{Name: "x"}, {Name: "y"}}, "")
	assert.Negative(t, value.TClassOrder(short, long))
}

func TestFieldOrderByNameThenVType(t *testing.T) {
	assert.Negative(t, value.FieldOrder(value.Field{Name: "a", VType: "int"}, value.Field{Name: "b", VType: "int"}))
	assert.Negative(t, value.FieldOrder(value.Field{Name: "a", VType: "int"}, value.Field{Name: "a", VType: "str"}))
}
