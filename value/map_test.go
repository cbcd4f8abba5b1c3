package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uxfio/uxf/value"
)

func TestMapIterationOrderIsAlwaysSortedKeyOrder(t *testing.T) {
	m := value.NewMap("", "", "")
	m.Put(value.Str("banana"), value.Int(2))
	m.Put(value.Str("Apple"), value.Int(1))
	m.Put(value.Str("cherry"), value.Int(3))

	pairs := m.Pairs()
	require.Len(t, pairs, 3)
	assert.Equal(t, value.Str("Apple"), pairs[0].Key)
	assert.Equal(t, value.Str("banana"), pairs[1].Key)
	assert.Equal(t, value.Str("cherry"), pairs[2].Key)
}

func TestMapPutOnExistingKeyOverwritesWithoutGrowingSize(t *testing.T) {
	m := value.NewMap("", "", "")
	m.Put(value.Int(1), value.Str("first"))
	m.Put(value.Int(1), value.Str("second"))

	assert.Equal(t, 1, m.Len())
	v, ok := m.Get(value.Int(1))
	require.True(t, ok)
	assert.Equal(t, value.Str("second"), v)
}

func TestMapDeleteDecrementsSize(t *testing.T) {
	m := value.NewMap("", "", "")
	m.Put(value.Int(1), value.Str("x"))
	m.Delete(value.Int(1))
	assert.Equal(t, 0, m.Len())
	_, ok := m.Get(value.Int(1))
	assert.False(t, ok)
}

func TestMapEqualRequiresSameKeyOrderedItems(t *testing.T) {
	a := value.NewMap("int", "str", "")
	a.Put(value.Int(1), value.Str("one"))
	b := value.NewMap("int", "str", "")
	b.Put(value.Int(1), value.Str("one"))
	assert.True(t, a.Equal(b))

	b.Put(value.Int(2), value.Str("two"))
	assert.False(t, a.Equal(b))
}

func TestMapItemsStopsEarlyWhenCallbackReturnsFalse(t *testing.T) {
	m := value.NewMap("", "", "")
	m.Put(value.Int(1), value.Str("a"))
	m.Put(value.Int(2), value.Str("b"))
	m.Put(value.Int(3), value.Str("c"))

	var seen int
	m.Items(func(k value.Key, v value.Value) bool {
		seen++
		return seen < 2
	})
	assert.Equal(t, 2, seen)
}
