package uxf_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uxfio/uxf"
	"github.com/uxfio/uxf/reporter"
	"github.com/uxfio/uxf/value"
)

func parseOK(t *testing.T, text string) *uxf.Document {
	t.Helper()
	doc, err := uxf.Parse(context.Background(), []byte(text), "test.uxf", nil, uxf.Options{})
	require.NoError(t, err)
	return doc
}

// assertDocsEqual checks uxf.Equal and, on mismatch, renders both
// documents to text and diffs them with cmp.Diff so a failing
// round-trip test says what actually changed instead of just "false".
func assertDocsEqual(t *testing.T, want, got *uxf.Document) {
	t.Helper()
	if uxf.Equal(want, got) {
		return
	}
	wantText := uxf.WriteString(want, uxf.DefaultFormat(), nil)
	gotText := uxf.WriteString(got, uxf.DefaultFormat(), nil)
	t.Errorf("documents not equal (-want +got):\n%s", cmp.Diff(wantText, gotText))
}

// spec.md §8.4 table, rows 1-8.

func TestEndToEndEmptyList(t *testing.T) {
	doc := parseOK(t, "uxf 1\n[]")
	assert.Equal(t, "", doc.Custom)
	assert.Equal(t, "", doc.Comment)
	list, ok := doc.Root.(*value.List)
	require.True(t, ok)
	assert.Equal(t, 0, list.Len())
	assert.Equal(t, "uxf 1\n[]\n", uxf.WriteString(doc, uxf.DefaultFormat(), nil))
}

func TestEndToEndFileComment(t *testing.T) {
	doc := parseOK(t, "uxf 1\n#<hi>\n[1 2 3]")
	assert.Equal(t, "hi", doc.Comment)
	list := doc.Root.(*value.List)
	require.Equal(t, 3, list.Len())
	assert.Equal(t, value.Int(1), list.Get(0))
	assert.Equal(t, value.Int(2), list.Get(1))
	assert.Equal(t, value.Int(3), list.Get(2))

	reparsed := parseOK(t, uxf.WriteString(doc, uxf.DefaultFormat(), nil))
	assertDocsEqual(t, doc, reparsed)
}

func TestEndToEndTableOfRecords(t *testing.T) {
	doc := parseOK(t, "uxf 1\n=Point x:int y:int\n[(Point 1 2) (Point 3 4)]")
	_, ok := doc.TClass("Point")
	require.True(t, ok)
	list := doc.Root.(*value.List)
	require.Equal(t, 2, list.Len())
	tbl0 := list.Get(0).(*value.Table)
	assert.Equal(t, "Point", tbl0.TClass.TType)
	require.Equal(t, 1, tbl0.Len())
	assert.Equal(t, []value.Value{value.Int(1), value.Int(2)}, tbl0.Record(0))
}

func TestEndToEndMapIteratesInSortedKeyOrder(t *testing.T) {
	doc := parseOK(t, "uxf 1\n{1 <one> 2 <two>}")
	m := doc.Root.(*value.Map)
	pairs := m.Pairs()
	require.Len(t, pairs, 2)
	assert.Equal(t, value.Int(1), pairs[0].Key)
	assert.Equal(t, value.Str("one"), pairs[0].Val)
	assert.Equal(t, value.Int(2), pairs[1].Key)
	assert.Equal(t, value.Str("two"), pairs[1].Val)
}

func TestEndToEndMapKeysReorderCaseInsensitive(t *testing.T) {
	doc := parseOK(t, "uxf 1\n{<b> 2 <a> 1}")
	m := doc.Root.(*value.Map)
	pairs := m.Pairs()
	require.Len(t, pairs, 2)
	assert.Equal(t, value.Str("a"), pairs[0].Key)
	assert.Equal(t, value.Int(1), pairs[0].Val)
	assert.Equal(t, value.Str("b"), pairs[1].Key)
	assert.Equal(t, value.Int(2), pairs[1].Val)
}

func TestEndToEndRepairEmitsCode486(t *testing.T) {
	var events []reporter.Event
	sink := reporter.SinkFunc(func(e reporter.Event) { events = append(events, e) })

	doc, err := uxf.Parse(context.Background(), []byte("uxf 1\n[int <7>]"), "test.uxf", sink, uxf.Options{})
	require.NoError(t, err)

	var repaired bool
	for _, e := range events {
		if e.Kind == reporter.Repair && e.Code == 486 {
			repaired = true
		}
	}
	assert.True(t, repaired, "expected a 486 repair event, got %+v", events)

	list := doc.Root.(*value.List)
	require.Equal(t, 1, list.Len())
	assert.Equal(t, value.Int(7), list.Get(0))
}

func TestEndToEndBadHeaderIsFatal(t *testing.T) {
	_, err := uxf.Parse(context.Background(), []byte("Uxf 1\n[]"), "test.uxf", nil, uxf.Options{})
	require.Error(t, err)
}

func TestEndToEndConflictingTTypeIsFatal(t *testing.T) {
	_, err := uxf.Parse(context.Background(),
		[]byte("uxf 1\n=Point x:int y:int\n=Point a:int\n[]"), "test.uxf", nil, uxf.Options{})
	require.Error(t, err)
}

func TestRoundTripCompact(t *testing.T) {
	doc := parseOK(t, "uxf 1\n=Point x:int y:int\n[(Point 1 2) (Point 3 4)]")
	reparsed := parseOK(t, uxf.WriteCompactString(doc))
	assertDocsEqual(t, doc, reparsed)
}

func TestRoundTripPretty(t *testing.T) {
	doc := parseOK(t, "uxf 1\n=Point x:int y:int\n[(Point 1 2) (Point 3 4)]")
	f := uxf.Format{Indent: 4, WrapWidth: 40}
	reparsed := parseOK(t, uxf.WriteString(doc, f, nil))
	assertDocsEqual(t, doc, reparsed)
}

func TestPrettyPrintIsIdempotent(t *testing.T) {
	doc := parseOK(t, "uxf 1\n=Point x:int y:int\n[(Point 1 2) (Point 3 4) (Point 5 6)]")
	f := uxf.Format{Indent: 2, WrapWidth: 40}
	once := uxf.WriteString(doc, f, nil)
	reparsed := parseOK(t, once)
	twice := uxf.WriteString(reparsed, f, nil)
	assert.Equal(t, once, twice)
}

func TestEquivalentIgnoresCommentsImportsAndUnusedTTypes(t *testing.T) {
	a := parseOK(t, "uxf 1\n#<a comment>\n=Unused f:int\n[1 2 3]")
	b := parseOK(t, "uxf 1\n[1 2 3]")

	assert.False(t, uxf.Equal(a, b))
	assert.True(t, uxf.Equivalent(a, b, uxf.EquivAll))
}

func TestEqualDistinguishesRealBitPattern(t *testing.T) {
	a := parseOK(t, "uxf 1\n[0.0]")
	b := parseOK(t, "uxf 1\n[-0.0]")
	assert.False(t, uxf.Equal(a, b))
}
