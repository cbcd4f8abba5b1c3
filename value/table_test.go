package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uxfio/uxf/value"
)

func TestTablePushCellRejectsOverfullRecord(t *testing.T) {
	tc, err := value.NewTClass("Point", []value.Field{{Name: "x"}, {Name: "y"}}, "")
	require.NoError(t, err)
	tbl := value.NewTable(tc, "")
	tbl.AppendRecord()
	require.NoError(t, tbl.PushCell(value.Int(1)))
	require.NoError(t, tbl.PushCell(value.Int(2)))
	assert.Error(t, tbl.PushCell(value.Int(3)))
}

func TestTablePushCellRejectsWithNoOpenRecord(t *testing.T) {
	tc, err := value.NewTClass("Point", []value.Field{{Name: "x"}}, "")
	require.NoError(t, err)
	tbl := value.NewTable(tc, "")
	assert.Error(t, tbl.PushCell(value.Int(1)))
}

func TestTableFieldlessRecordsAreDepositedWithoutAnyCells(t *testing.T) {
	tc, err := value.NewTClass("Suit", nil, "")
	require.NoError(t, err)
	tbl := value.NewTable(tc, "")
	tbl.AppendRecord()
	assert.Equal(t, 0, tbl.CurrentRecordLen())
	assert.Equal(t, []value.Value{}, tbl.Record(0))
}

func TestTableCurrentRecordLenReportsMinusOneWhenNoRecordOpen(t *testing.T) {
	tc, err := value.NewTClass("Point", []value.Field{{Name: "x"}}, "")
	require.NoError(t, err)
	tbl := value.NewTable(tc, "")
	assert.Equal(t, -1, tbl.CurrentRecordLen())
}

func TestTableArityMatchesFieldCount(t *testing.T) {
	tc, err := value.NewTClass("Point", []value.Field{{Name: "x"}, {Name: "y"}}, "")
	require.NoError(t, err)
	tbl := value.NewTable(tc, "")
	assert.Equal(t, 2, tbl.Arity())

	fieldless, err := value.NewTClass("Suit", nil, "")
	require.NoError(t, err)
	assert.Equal(t, 0, value.NewTable(fieldless, "").Arity())
}

func TestTableEqualComparesTClassCommentAndRecords(t *testing.T) {
	tc, err := value.NewTClass("Point", []value.Field{{Name: "x"}}, "")
	require.NoError(t, err)
	a := value.NewTable(tc, "")
	a.AppendRecord()
	require.NoError(t, a.PushCell(value.Int(1)))

	b := value.NewTable(tc, "")
	b.AppendRecord()
	require.NoError(t, b.PushCell(value.Int(1)))

	assert.True(t, a.Equal(b))

	c := value.NewTable(tc, "a different comment")
	c.AppendRecord()
	require.NoError(t, c.PushCell(value.Int(1)))
	assert.False(t, a.Equal(c))
}
