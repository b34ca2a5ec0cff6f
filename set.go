package ordered

import (
	"cmp"
	"iter"

	"github.com/npillmayer/ordered/avl"
)

// SetHandle refers to an element of a Set.
type SetHandle[K any] = avl.Handle[K, struct{}]

// Set is a sorted set of keys.
type Set[K any] struct {
	tree *avl.Tree[K, struct{}]
}

// NewSet creates an empty set ordered by less, which must be a strict weak
// ordering.
func NewSet[K any](less func(a, b K) bool) (*Set[K], error) {
	if less == nil {
		return nil, ErrIllegalArguments
	}
	tree, err := avl.New[K, struct{}](avl.Config[K]{Less: less})
	if err != nil {
		return nil, err
	}
	return &Set[K]{tree: tree}, nil
}

// NewOrderedSet creates a set of naturally ordered keys, initially holding
// keys.
func NewOrderedSet[K cmp.Ordered](keys ...K) *Set[K] {
	s := &Set[K]{tree: avl.NewOrdered[K, struct{}]()}
	s.InsertMany(keys...)
	return s
}

// Len returns the number of elements.
func (s *Set[K]) Len() int {
	return s.tree.Len()
}

// IsEmpty reports whether the set has no elements.
func (s *Set[K]) IsEmpty() bool {
	return s.tree.IsEmpty()
}

// Insert adds key to the set. It returns the handle of the element equal to
// key and whether it has been newly inserted.
func (s *Set[K]) Insert(key K) (SetHandle[K], bool) {
	return s.tree.Insert(key, struct{}{})
}

// InsertMany adds keys to the set and returns the number of keys which have
// not been present before.
func (s *Set[K]) InsertMany(keys ...K) int {
	n := 0
	for _, k := range keys {
		if _, ok := s.tree.Insert(k, struct{}{}); ok {
			n++
		}
	}
	return n
}

// Erase removes the element h refers to and returns the handle of the next
// element. See avl.Tree.Erase for the treatment of invalid handles.
func (s *Set[K]) Erase(h SetHandle[K]) SetHandle[K] {
	return s.tree.Erase(h)
}

// Delete removes key from the set and reports whether it has been present.
func (s *Set[K]) Delete(key K) bool {
	return s.tree.Delete(key)
}

// Find returns the handle of the element equal to key, or End.
func (s *Set[K]) Find(key K) SetHandle[K] {
	return s.tree.Find(key)
}

// Contains reports whether key is an element of the set.
func (s *Set[K]) Contains(key K) bool {
	return s.tree.Contains(key)
}

// LowerBound returns the handle of the first element not less than key.
func (s *Set[K]) LowerBound(key K) SetHandle[K] {
	return s.tree.LowerBound(key)
}

// UpperBound returns the handle of the first element greater than key.
func (s *Set[K]) UpperBound(key K) SetHandle[K] {
	return s.tree.UpperBound(key)
}

// Begin returns the handle of the smallest element, or End.
func (s *Set[K]) Begin() SetHandle[K] {
	return s.tree.Begin()
}

// End returns the handle one past the largest element.
func (s *Set[K]) End() SetHandle[K] {
	return s.tree.End()
}

// Merge moves all elements of other which are not in s into s. Elements
// present in both sets remain in other.
func (s *Set[K]) Merge(other *Set[K]) {
	if other == nil || other == s {
		return
	}
	s.tree.Merge(other.tree)
}

// Clear removes all elements.
func (s *Set[K]) Clear() {
	s.tree.Clear()
}

// Clone returns an independent copy of the set.
func (s *Set[K]) Clone() *Set[K] {
	return &Set[K]{tree: s.tree.Clone()}
}

// Swap exchanges the contents of s and other.
func (s *Set[K]) Swap(other *Set[K]) {
	s.tree.Swap(other.tree)
}

// All returns an iterator over the elements in ascending order.
func (s *Set[K]) All() iter.Seq[K] {
	return s.tree.Keys()
}

// Backward returns an iterator over the elements in descending order.
func (s *Set[K]) Backward() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range s.tree.Backward() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns the elements as a sorted slice.
func (s *Set[K]) Values() []K {
	out := make([]K, 0, s.tree.Len())
	for k := range s.tree.Keys() {
		out = append(out, k)
	}
	return out
}
