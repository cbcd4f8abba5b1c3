package value

import "fmt"

// Table is a record sequence conforming to a fixed TClass. Each record
// has exactly as many cells as the TClass has fields (when the TClass
// is not fieldless); cells may be Null. A fieldless TClass defines an
// enumerand: the Table may still hold zero or more nullary records
// (spec.md §3.4).
type Table struct {
	TClass  *TClass
	comment string
	records [][]Value
}

func (*Table) Kind() Kind { return KindTable }
func (*Table) isValue()   {}

// NewTable creates an empty Table for the given TClass.
func NewTable(tclass *TClass, comment string) *Table {
	return &Table{TClass: tclass, comment: comment}
}

func (t *Table) Comment() string  { return t.comment }
func (t *Table) Len() int         { return len(t.records) }
func (t *Table) Record(i int) []Value { return t.records[i] }
func (t *Table) Records() [][]Value   { return t.records }

// AppendRecord adds a new, empty record (row) to the table.
func (t *Table) AppendRecord() {
	t.records = append(t.records, make([]Value, 0, len(t.TClass.Fields)))
}

// PushCell appends a cell to the current (last) record. It is an error
// to call this when the current record is already full, or when there
// is no current record.
func (t *Table) PushCell(v Value) error {
	if len(t.records) == 0 {
		return fmt.Errorf("table %s: no open record for cell", t.TClass.TType)
	}
	i := len(t.records) - 1
	if !t.TClass.Fieldless() && len(t.records[i]) >= len(t.TClass.Fields) {
		return fmt.Errorf("table %s: record already has %d cells", t.TClass.TType, len(t.TClass.Fields))
	}
	t.records[i] = append(t.records[i], v)
	return nil
}

// CurrentRecordLen returns the number of cells pushed into the
// currently open record, or -1 if no record is open.
func (t *Table) CurrentRecordLen() int {
	if len(t.records) == 0 {
		return -1
	}
	return len(t.records[len(t.records)-1])
}

// Arity is the number of cells each record must have (0 for a
// fieldless/enumerand TClass).
func (t *Table) Arity() int { return len(t.TClass.Fields) }

// Equal reports strict equality per spec.md §4.4: same TClass and
// same record sequence.
func (t *Table) Equal(other *Table) bool {
	if t == other {
		return true
	}
	if t == nil || other == nil {
		return false
	}
	if !t.TClass.Equal(other.TClass) || t.comment != other.comment || len(t.records) != len(other.records) {
		return false
	}
	for i := range t.records {
		if len(t.records[i]) != len(other.records[i]) {
			return false
		}
		for j := range t.records[i] {
			if !Equal(t.records[i][j], other.records[i][j]) {
				return false
			}
		}
	}
	return true
}
