package ordered

import (
	"cmp"
	"fmt"
	"iter"

	"github.com/npillmayer/ordered/avl"
)

// MapHandle refers to an entry of a Map.
type MapHandle[K, V any] = avl.Handle[K, V]

// Map is a sorted map from keys to payloads. Entries are ordered by key
// only.
type Map[K, V any] struct {
	tree *avl.Tree[K, V]
}

// NewMap creates an empty map with keys ordered by less, which must be a
// strict weak ordering.
func NewMap[K, V any](less func(a, b K) bool) (*Map[K, V], error) {
	if less == nil {
		return nil, ErrIllegalArguments
	}
	tree, err := avl.New[K, V](avl.Config[K]{Less: less})
	if err != nil {
		return nil, err
	}
	return &Map[K, V]{tree: tree}, nil
}

// NewOrderedMap creates an empty map for a naturally ordered key type.
func NewOrderedMap[K cmp.Ordered, V any]() *Map[K, V] {
	return &Map[K, V]{tree: avl.NewOrdered[K, V]()}
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return m.tree.Len()
}

// IsEmpty reports whether the map has no entries.
func (m *Map[K, V]) IsEmpty() bool {
	return m.tree.IsEmpty()
}

// Insert adds an entry for key unless key is already present, in which case
// the existing payload is kept. It returns the handle of the entry for key
// and whether it has been newly inserted.
func (m *Map[K, V]) Insert(key K, value V) (MapHandle[K, V], bool) {
	return m.tree.Insert(key, value)
}

// InsertOrAssign adds an entry for key or replaces the payload of the
// existing one. The boolean result is true if a new entry has been created.
func (m *Map[K, V]) InsertOrAssign(key K, value V) (MapHandle[K, V], bool) {
	h, inserted := m.tree.Insert(key, value)
	if !inserted {
		h.SetValue(value)
	}
	return h, inserted
}

// Ref returns a pointer to the payload for key. If key is missing, an entry
// with the zero payload is inserted first. The pointer stays valid until the
// entry is removed.
func (m *Map[K, V]) Ref(key K) *V {
	h := m.tree.Find(key)
	if h.IsEnd() {
		var zero V
		h, _ = m.tree.Insert(key, zero)
	}
	return h.ValueRef()
}

// At returns the payload for key. It does not insert; a missing key is
// reported as an error wrapping ErrKeyNotFound.
func (m *Map[K, V]) At(key K) (V, error) {
	h := m.tree.Find(key)
	if h.IsEnd() {
		var zero V
		return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	return h.Value(), nil
}

// Get returns the payload for key and whether key is present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	h := m.tree.Find(key)
	if h.IsEnd() {
		var zero V
		return zero, false
	}
	return h.Value(), true
}

// Erase removes the entry h refers to and returns the handle of the next
// entry.
func (m *Map[K, V]) Erase(h MapHandle[K, V]) MapHandle[K, V] {
	return m.tree.Erase(h)
}

// Delete removes the entry for key and reports whether it has been present.
func (m *Map[K, V]) Delete(key K) bool {
	return m.tree.Delete(key)
}

// Find returns the handle of the entry for key, or End.
func (m *Map[K, V]) Find(key K) MapHandle[K, V] {
	return m.tree.Find(key)
}

// Contains reports whether an entry for key is present.
func (m *Map[K, V]) Contains(key K) bool {
	return m.tree.Contains(key)
}

// LowerBound returns the handle of the first entry with key not less than
// key.
func (m *Map[K, V]) LowerBound(key K) MapHandle[K, V] {
	return m.tree.LowerBound(key)
}

// UpperBound returns the handle of the first entry with key greater than
// key.
func (m *Map[K, V]) UpperBound(key K) MapHandle[K, V] {
	return m.tree.UpperBound(key)
}

// Begin returns the handle of the entry with the smallest key, or End.
func (m *Map[K, V]) Begin() MapHandle[K, V] {
	return m.tree.Begin()
}

// End returns the handle one past the last entry.
func (m *Map[K, V]) End() MapHandle[K, V] {
	return m.tree.End()
}

// Merge moves all entries of other whose keys are not in m into m.
func (m *Map[K, V]) Merge(other *Map[K, V]) {
	if other == nil || other == m {
		return
	}
	m.tree.Merge(other.tree)
}

// Clear removes all entries.
func (m *Map[K, V]) Clear() {
	m.tree.Clear()
}

// Clone returns an independent copy of the map. Payloads are copied by
// assignment.
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{tree: m.tree.Clone()}
}

// Swap exchanges the contents of m and other.
func (m *Map[K, V]) Swap(other *Map[K, V]) {
	m.tree.Swap(other.tree)
}

// All returns an iterator over all entries in ascending key order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return m.tree.All()
}

// Backward returns an iterator over all entries in descending key order.
func (m *Map[K, V]) Backward() iter.Seq2[K, V] {
	return m.tree.Backward()
}

// Keys returns an iterator over all keys in ascending order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return m.tree.Keys()
}

// Values returns an iterator over all payloads in ascending key order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		m.tree.ForEach(func(_ K, v V) bool {
			return yield(v)
		})
	}
}
