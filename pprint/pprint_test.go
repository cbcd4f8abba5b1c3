package pprint_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uxfio/uxf/pprint"
	"github.com/uxfio/uxf/reporter"
	"github.com/uxfio/uxf/value"
)

func TestDocumentEmptyList(t *testing.T) {
	doc := value.NewDocument()
	got := pprint.Document(doc, pprint.DefaultFormat(), nil)
	assert.Equal(t, "uxf 1\n[]\n", got)
}

func TestDocumentFlatFitsOnOneLine(t *testing.T) {
	doc := value.NewDocument()
	l := value.NewList("int", "")
	l.Push(value.Int(1))
	l.Push(value.Int(2))
	l.Push(value.Int(3))
	doc.Root = l

	got := pprint.Document(doc, pprint.DefaultFormat(), nil)
	assert.Equal(t, "uxf 1\n[int 1 2 3]\n", got)
}

func TestDocumentBreaksWhenTooWide(t *testing.T) {
	doc := value.NewDocument()
	l := value.NewList("int", "")
	for i := 0; i < 20; i++ {
		l.Push(value.Int(i))
	}
	doc.Root = l

	got := pprint.Document(doc, pprint.Format{Indent: 2, WrapWidth: 40}, nil)
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	require.Greater(t, len(lines), 2)
	assert.Equal(t, "[", strings.TrimSpace(lines[1])[:1])
}

func TestCompactNeverBreaks(t *testing.T) {
	doc := value.NewDocument()
	l := value.NewList("int", "")
	for i := 0; i < 40; i++ {
		l.Push(value.Int(i))
	}
	doc.Root = l

	got := pprint.Compact(doc)
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	assert.Len(t, lines, 2) // header + one flattened value line
}

func TestFieldlessTableRoundTripsAsNullMarkers(t *testing.T) {
	tc, err := value.NewTClass("Suit", nil, "")
	require.NoError(t, err)
	doc := value.NewDocument()
	doc.SetTClass(tc)
	tbl := value.NewTable(tc, "")
	tbl.AppendRecord()
	tbl.AppendRecord()
	doc.Root = tbl

	got := pprint.Document(doc, pprint.DefaultFormat(), nil)
	assert.Equal(t, "uxf 1\n=Suit\n(Suit ? ?)\n", got)
}

func TestTClassLineIncludesFieldVTypes(t *testing.T) {
	tc, err := value.NewTClass("Point", []value.Field{{Name: "x", VType: "int"}, {Name: "y", VType: "int"}}, "")
	require.NoError(t, err)
	doc := value.NewDocument()
	doc.SetTClass(tc)
	doc.Root = value.NewList("", "")

	got := pprint.Document(doc, pprint.DefaultFormat(), nil)
	assert.Contains(t, got, "=Point x:int y:int\n")
}

func TestRealFormattingNaturalAddsTrailingZero(t *testing.T) {
	doc := value.NewDocument()
	l := value.NewList("", "")
	l.Push(value.Real(1.0))
	doc.Root = l

	got := pprint.Document(doc, pprint.DefaultFormat(), nil)
	assert.Contains(t, got, "1.0")
	assert.NotContains(t, got, "[1]")
}

func TestRealFormattingFixedDP(t *testing.T) {
	dp := 2
	doc := value.NewDocument()
	l := value.NewList("", "")
	l.Push(value.Real(1.0))
	doc.Root = l

	got := pprint.Document(doc, pprint.Format{Indent: 2, WrapWidth: 96, RealDP: &dp}, nil)
	assert.Contains(t, got, "1.00")
}

func TestIndentNineIsOneTab(t *testing.T) {
	doc := value.NewDocument()
	l := value.NewList("int", "")
	for i := 0; i < 20; i++ {
		l.Push(value.Int(i))
	}
	doc.Root = l

	got := pprint.Document(doc, pprint.Format{Indent: 9, WrapWidth: 40}, nil)
	lines := strings.Split(got, "\n")
	require.Greater(t, len(lines), 2)
	assert.True(t, strings.HasPrefix(lines[2], "\t"))
	assert.False(t, strings.HasPrefix(lines[2], " "))
}

func TestWrapWidthOutOfRangeDefaultsTo96(t *testing.T) {
	// 20 items flattens to well over 40 columns but under 96: an
	// out-of-range WrapWidth of 39 clamped to its nearest bound (40)
	// would force this onto multiple lines, but spec.md §8.3 says it
	// must default to 96 and stay flat instead.
	build := func() *value.Document {
		doc := value.NewDocument()
		l := value.NewList("", "")
		for i := 0; i < 20; i++ {
			l.Push(value.Int(i))
		}
		doc.Root = l
		return doc
	}

	want := pprint.Document(build(), pprint.Format{Indent: 2, WrapWidth: 96}, nil)
	for _, width := range []int{39, 241} {
		got := pprint.Document(build(), pprint.Format{Indent: 2, WrapWidth: width}, nil)
		assert.Equal(t, want, got, "wrapwidth %d should behave like the 96 default", width)
	}
}

func TestEscapeStrEscapesReservedCharacters(t *testing.T) {
	doc := value.NewDocument()
	l := value.NewList("", "")
	l.Push(value.Str("a & b < c > d"))
	doc.Root = l

	got := pprint.Document(doc, pprint.DefaultFormat(), nil)
	assert.Contains(t, got, "<a &amp; b &lt; c &gt; d>")
}

func TestBytesFormattedAsUppercaseHex(t *testing.T) {
	doc := value.NewDocument()
	l := value.NewList("", "")
	l.Push(value.Bytes{0xde, 0xad, 0xbe, 0xef})
	doc.Root = l

	got := pprint.Document(doc, pprint.DefaultFormat(), nil)
	assert.Contains(t, got, "(:DEADBEEF:)")
}

func TestBoolScalars(t *testing.T) {
	doc := value.NewDocument()
	l := value.NewList("", "")
	l.Push(value.Bool(true))
	l.Push(value.Bool(false))
	doc.Root = l

	got := pprint.Document(doc, pprint.DefaultFormat(), nil)
	assert.Contains(t, got, "[yes no]")
}

func TestWideImportLineWarns(t *testing.T) {
	doc := value.NewDocument()
	doc.SetImportSource("Ttype", strings.Repeat("a", 200)+".uxf")
	doc.SetTClass(&value.TClass{TType: "Ttype"})
	doc.Root = value.NewList("", "")

	var events []reporter.Event
	sink := reporter.SinkFunc(func(e reporter.Event) { events = append(events, e) })
	h := reporter.NewHandler(sink, "test.uxf")

	pprint.Document(doc, pprint.DefaultFormat(), h)

	require.Len(t, events, 1)
	assert.Equal(t, pprint.ErrWrapWidthTooNarrowForImports, events[0].Code)
}
