package value

// List is an ordered sequence of Value. Its vtype (element type
// constraint, "" meaning any) and comment are set at construction and
// immutable thereafter (spec.md §3.2); the List itself does not
// enforce vtype on Push — that is the parser's job during
// construction (spec.md §4.2.4).
type List struct {
	vtype   string
	comment string
	items   []Value
}

func (*List) Kind() Kind { return KindList }
func (*List) isValue()   {}

// NewList creates an empty List with the given immutable vtype and
// comment.
func NewList(vtype, comment string) *List {
	return &List{vtype: vtype, comment: comment}
}

func (l *List) VType() string   { return l.vtype }
func (l *List) Comment() string { return l.comment }
func (l *List) Len() int        { return len(l.items) }

// Get returns the element at i. It panics if i is out of range, same
// as a raw slice index.
func (l *List) Get(i int) Value { return l.items[i] }

// Items returns the list's elements in order. The returned slice
// aliases internal storage and must not be mutated by the caller.
func (l *List) Items() []Value { return l.items }

// Push appends v to the end of the list.
func (l *List) Push(v Value) { l.items = append(l.items, v) }

// Set replaces the element at i.
func (l *List) Set(i int, v Value) { l.items[i] = v }

// Truncate discards all elements beyond index n.
func (l *List) Truncate(n int) { l.items = l.items[:n] }

// Clear removes all elements.
func (l *List) Clear() { l.items = nil }

// Equal reports strict equality per spec.md §4.4: same vtype, same
// comment, same element sequence (element-wise Equal).
func (l *List) Equal(other *List) bool {
	if l == other {
		return true
	}
	if l == nil || other == nil {
		return false
	}
	if l.vtype != other.vtype || l.comment != other.comment || len(l.items) != len(other.items) {
		return false
	}
	for i := range l.items {
		if !Equal(l.items[i], other.items[i]) {
			return false
		}
	}
	return true
}
