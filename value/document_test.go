package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uxfio/uxf/value"
)

func TestNewDocumentDefaultsToEmptyUntypedList(t *testing.T) {
	doc := value.NewDocument()
	list, ok := doc.Root.(*value.List)
	require.True(t, ok)
	assert.Equal(t, 0, list.Len())
	assert.Equal(t, "", list.VType())
}

func TestDocumentSetImportSourcePreservesInsertionOrderOnUpdate(t *testing.T) {
	doc := value.NewDocument()
	doc.SetImportSource("A", "a.uxf")
	doc.SetImportSource("B", "b.uxf")
	doc.SetImportSource("A", "a2.uxf") // update, not append

	assert.Equal(t, []string{"A", "B"}, doc.ImportedTTypes())
	src, ok := doc.ImportSource("A")
	require.True(t, ok)
	assert.Equal(t, "a2.uxf", src)
}

func TestDocumentImportSourcesDeduplicatesByFirstOccurrence(t *testing.T) {
	doc := value.NewDocument()
	doc.SetImportSource("A", "shared.uxf")
	doc.SetImportSource("B", "shared.uxf")
	doc.SetImportSource("C", "other.uxf")

	assert.Equal(t, []string{"shared.uxf", "other.uxf"}, doc.ImportSources())
}

func TestDocumentDeleteTClassAlsoClearsImportRecordWithoutReordering(t *testing.T) {
	doc := value.NewDocument()
	doc.SetImportSource("A", "a.uxf")
	doc.SetImportSource("B", "b.uxf")
	doc.SetImportSource("C", "c.uxf")

	doc.DeleteTClass("B")

	assert.Equal(t, []string{"A", "C"}, doc.ImportedTTypes())
	_, ok := doc.ImportSource("B")
	assert.False(t, ok)
	srcC, ok := doc.ImportSource("C")
	require.True(t, ok)
	assert.Equal(t, "c.uxf", srcC)
}

func TestDocumentClearImportsDropsEverything(t *testing.T) {
	doc := value.NewDocument()
	doc.SetImportSource("A", "a.uxf")
	doc.ClearImports()
	assert.Empty(t, doc.ImportedTTypes())
	assert.Empty(t, doc.ImportSources())
}

func TestDocumentEqualChecksCustomCommentImportsTClassesAndRoot(t *testing.T) {
	a := value.NewDocument()
	a.Custom = "custom"
	a.Comment = "comment"
	a.Root = value.NewList("int", "")

	b := value.NewDocument()
	b.Custom = "custom"
	b.Comment = "comment"
	b.Root = value.NewList("int", "")

	assert.True(t, a.Equal(b))

	b.Comment = "different"
	assert.False(t, a.Equal(b))
}

func TestDocumentEqualDistinguishesImportOrder(t *testing.T) {
	a := value.NewDocument()
	a.SetImportSource("A", "a.uxf")
	a.SetImportSource("B", "b.uxf")

	b := value.NewDocument()
	b.SetImportSource("B", "b.uxf")
	b.SetImportSource("A", "a.uxf")

	assert.False(t, a.Equal(b))
}

func TestDocumentEqualHandlesNilReceiversAndArguments(t *testing.T) {
	var nilDoc *value.Document
	doc := value.NewDocument()
	assert.False(t, doc.Equal(nilDoc))
	assert.False(t, nilDoc.Equal(doc))
	assert.True(t, nilDoc.Equal(nilDoc))
}
