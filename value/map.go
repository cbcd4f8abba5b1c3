package value

import (
	art "github.com/kralicky/go-adaptive-radix-tree"
)

// mapEntry is what is actually stored in the backing radix tree: the
// original Key (ART only sees its encoded byte form) paired with the
// Value it maps to.
type mapEntry struct {
	key Key
	val Value
}

// Map is a Key-to-Value mapping whose iteration order always equals
// the sorted key order from spec.md §4.4. ktype (one of bytes, date,
// int, str, or "" for unconstrained), vtype and comment are immutable
// after construction.
//
// The ordering guarantee is implemented, not maintained by hand: keys
// are encoded to order-preserving byte strings (value.encodeKey) and
// held in an adaptive radix tree, so iteration order falls directly
// out of the tree's own in-order traversal (DESIGN.md).
type Map struct {
	ktype   string
	vtype   string
	comment string
	tree    art.Tree
	size    int
}

func (*Map) Kind() Kind { return KindMap }
func (*Map) isValue()   {}

// NewMap creates an empty Map with the given immutable ktype, vtype
// and comment.
func NewMap(ktype, vtype, comment string) *Map {
	return &Map{ktype: ktype, vtype: vtype, comment: comment, tree: art.New()}
}

func (m *Map) KType() string   { return m.ktype }
func (m *Map) VType() string   { return m.vtype }
func (m *Map) Comment() string { return m.comment }
func (m *Map) Len() int        { return m.size }

// Put inserts or overwrites the value for key. A duplicate key is an
// overwrite, not an error (spec.md §3.3).
func (m *Map) Put(key Key, v Value) {
	_, updated := m.tree.Insert(art.Key(encodeKey(key)), mapEntry{key: key, val: v})
	if !updated {
		m.size++
	}
}

// Get looks up the value for key.
func (m *Map) Get(key Key) (Value, bool) {
	raw, found := m.tree.Search(art.Key(encodeKey(key)))
	if !found {
		return nil, false
	}
	return raw.(mapEntry).val, true
}

// Delete removes key, if present.
func (m *Map) Delete(key Key) {
	if _, deleted := m.tree.Delete(art.Key(encodeKey(key))); deleted {
		m.size--
	}
}

// Clear removes all entries.
func (m *Map) Clear() {
	m.tree = art.New()
	m.size = 0
}

// Keys returns the map's keys in sorted order.
func (m *Map) Keys() []Key {
	keys := make([]Key, 0, m.size)
	m.tree.ForEach(func(node art.Node) bool {
		keys = append(keys, node.Value().(mapEntry).key)
		return true
	})
	return keys
}

// Items calls fn for every entry in sorted key order. fn's boolean
// return stops iteration early when false, mirroring the teacher's
// ForEach callback convention.
func (m *Map) Items(fn func(Key, Value) bool) {
	m.tree.ForEach(func(node art.Node) bool {
		e := node.Value().(mapEntry)
		return fn(e.key, e.val)
	})
}

// Pairs materializes the map's entries in sorted key order. Prefer
// Items for a single pass over a large map.
func (m *Map) Pairs() []struct {
	Key Key
	Val Value
} {
	out := make([]struct {
		Key Key
		Val Value
	}, 0, m.size)
	m.Items(func(k Key, v Value) bool {
		out = append(out, struct {
			Key Key
			Val Value
		}{k, v})
		return true
	})
	return out
}

// Equal reports strict equality per spec.md §4.4: same ktype, vtype,
// comment, and key-ordered items.
func (m *Map) Equal(other *Map) bool {
	if m == other {
		return true
	}
	if m == nil || other == nil {
		return false
	}
	if m.ktype != other.ktype || m.vtype != other.vtype || m.comment != other.comment || m.size != other.size {
		return false
	}
	ap, bp := m.Pairs(), other.Pairs()
	for i := range ap {
		if CompareKeys(ap[i].Key, bp[i].Key) != 0 {
			return false
		}
		if !Equal(ap[i].Val, bp[i].Val) {
			return false
		}
	}
	return true
}
