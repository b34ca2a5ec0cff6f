package ordered

import (
	"cmp"
	"iter"

	"github.com/npillmayer/ordered/avl"
)

// Multiset is a sorted collection of values which may contain equal values
// more than once. Internally every distinct value is stored once, together
// with its number of occurrences.
type Multiset[K any] struct {
	counter *avl.Tree[K, int]
	size    int // number of logical elements
}

// NewMultiset creates an empty multiset ordered by less, which must be a
// strict weak ordering.
func NewMultiset[K any](less func(a, b K) bool) (*Multiset[K], error) {
	if less == nil {
		return nil, ErrIllegalArguments
	}
	tree, err := avl.New[K, int](avl.Config[K]{Less: less})
	if err != nil {
		return nil, err
	}
	return &Multiset[K]{counter: tree}, nil
}

// NewOrderedMultiset creates a multiset of naturally ordered values,
// initially holding values.
func NewOrderedMultiset[K cmp.Ordered](values ...K) *Multiset[K] {
	ms := &Multiset[K]{counter: avl.NewOrdered[K, int]()}
	for _, v := range values {
		ms.Insert(v)
	}
	return ms
}

// Len returns the number of logical elements, counting every occurrence.
func (ms *Multiset[K]) Len() int {
	return ms.size
}

// Distinct returns the number of distinct values.
func (ms *Multiset[K]) Distinct() int {
	return ms.counter.Len()
}

// IsEmpty reports whether the multiset has no elements.
func (ms *Multiset[K]) IsEmpty() bool {
	return ms.size == 0
}

// Insert adds one occurrence of value and returns an iterator positioned at
// that occurrence.
func (ms *Multiset[K]) Insert(value K) MultiIterator[K] {
	h := ms.counter.Find(value)
	if h.IsEnd() {
		h, _ = ms.counter.Insert(value, 1)
	} else {
		*h.ValueRef()++
	}
	ms.size++
	return MultiIterator[K]{h: h, occ: h.Value()}
}

// Erase removes the occurrence it refers to and returns an iterator to the
// following element. A value's entry is dropped together with its last
// occurrence. Erasing End is a no-op.
func (ms *Multiset[K]) Erase(it MultiIterator[K]) MultiIterator[K] {
	if it.h.IsEnd() || it.h.IsStale() {
		return ms.End()
	}
	ms.counter.MustOwn(it.h, "multiset erase")
	ms.size--
	count := it.h.Value()
	if count > 1 {
		it.h.SetValue(count - 1)
		if it.occ < count {
			return it
		}
		return ms.first(it.h.Next())
	}
	return ms.first(ms.counter.Erase(it.h))
}

// Delete removes all occurrences of value and returns their number.
func (ms *Multiset[K]) Delete(value K) int {
	h := ms.counter.Find(value)
	if h.IsEnd() {
		return 0
	}
	n := h.Value()
	ms.counter.Erase(h)
	ms.size -= n
	return n
}

// Count returns the number of occurrences of value.
func (ms *Multiset[K]) Count(value K) int {
	h := ms.counter.Find(value)
	if h.IsEnd() {
		return 0
	}
	return h.Value()
}

// Contains reports whether value occurs at least once.
func (ms *Multiset[K]) Contains(value K) bool {
	return ms.counter.Contains(value)
}

// Find returns an iterator to the first occurrence of value, or End.
func (ms *Multiset[K]) Find(value K) MultiIterator[K] {
	return ms.first(ms.counter.Find(value))
}

// LowerBound returns an iterator to the first element not less than value.
func (ms *Multiset[K]) LowerBound(value K) MultiIterator[K] {
	return ms.first(ms.counter.LowerBound(value))
}

// UpperBound returns an iterator to the first element greater than value.
func (ms *Multiset[K]) UpperBound(value K) MultiIterator[K] {
	return ms.first(ms.counter.UpperBound(value))
}

// EqualRange returns the half-open range [first, last) of all occurrences of
// value. first is the first occurrence, last the first element greater than
// value. If value does not occur, both are LowerBound(value).
func (ms *Multiset[K]) EqualRange(value K) (first, last MultiIterator[K]) {
	h := ms.counter.Find(value)
	if h.IsEnd() {
		lb := ms.LowerBound(value)
		return lb, lb
	}
	return ms.first(h), ms.first(h.Next())
}

// Begin returns an iterator to the smallest element, or End.
func (ms *Multiset[K]) Begin() MultiIterator[K] {
	return ms.first(ms.counter.Begin())
}

// End returns the iterator one past the largest element.
func (ms *Multiset[K]) End() MultiIterator[K] {
	return MultiIterator[K]{h: ms.counter.End()}
}

func (ms *Multiset[K]) first(h avl.Handle[K, int]) MultiIterator[K] {
	if h.IsEnd() {
		return MultiIterator[K]{h: h}
	}
	return MultiIterator[K]{h: h, occ: 1}
}

// Merge moves every element of other into ms and leaves other empty.
func (ms *Multiset[K]) Merge(other *Multiset[K]) {
	if other == nil || other == ms {
		return
	}
	for v, c := range other.counter.All() {
		h, inserted := ms.counter.Insert(v, c)
		if !inserted {
			*h.ValueRef() += c
		}
		ms.size += c
	}
	T().Debugf("multiset merge: %d elements moved", other.size)
	other.Clear()
}

// Clear removes all elements.
func (ms *Multiset[K]) Clear() {
	ms.counter.Clear()
	ms.size = 0
}

// Clone returns an independent copy of the multiset.
func (ms *Multiset[K]) Clone() *Multiset[K] {
	return &Multiset[K]{counter: ms.counter.Clone(), size: ms.size}
}

// Swap exchanges the contents of ms and other.
func (ms *Multiset[K]) Swap(other *Multiset[K]) {
	ms.counter.Swap(other.counter)
	ms.size, other.size = other.size, ms.size
}

// All returns an iterator over all elements in ascending order, repeating
// each value as often as it occurs.
func (ms *Multiset[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for v, c := range ms.counter.All() {
			for range c {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Backward returns an iterator over all elements in descending order.
func (ms *Multiset[K]) Backward() iter.Seq[K] {
	return func(yield func(K) bool) {
		for v, c := range ms.counter.Backward() {
			for range c {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Counts returns an iterator over the distinct values and their number of
// occurrences.
func (ms *Multiset[K]) Counts() iter.Seq2[K, int] {
	return ms.counter.All()
}

// --- Iterator ---------------------------------------------------------------

// MultiIterator denotes a single occurrence of a value in a Multiset, or End.
// Occurrences of a value are numbered from 1.
type MultiIterator[K any] struct {
	h   avl.Handle[K, int]
	occ int // 0 for End
}

// IsEnd reports whether it is positioned one past the last element.
func (it MultiIterator[K]) IsEnd() bool {
	return it.h.IsEnd()
}

// Value returns the value at the iterator position. It panics for End.
func (it MultiIterator[K]) Value() K {
	return it.h.Key()
}

// Occurrence returns which occurrence of its value the iterator denotes,
// starting at 1. It is 0 for End.
func (it MultiIterator[K]) Occurrence() int {
	return it.occ
}

// Next returns the iterator for the following element. Next of End is End.
func (it MultiIterator[K]) Next() MultiIterator[K] {
	if it.h.IsEnd() {
		return it
	}
	if it.occ < it.h.Value() {
		return MultiIterator[K]{h: it.h, occ: it.occ + 1}
	}
	next := it.h.Next()
	if next.IsEnd() {
		return MultiIterator[K]{h: next}
	}
	return MultiIterator[K]{h: next, occ: 1}
}

// Prev returns the iterator for the preceding element. Prev of End is the
// last element; Prev of the first element is End.
func (it MultiIterator[K]) Prev() MultiIterator[K] {
	if !it.h.IsEnd() && it.occ > 1 {
		return MultiIterator[K]{h: it.h, occ: it.occ - 1}
	}
	prev := it.h.Prev()
	if prev.IsEnd() {
		return MultiIterator[K]{h: prev}
	}
	return MultiIterator[K]{h: prev, occ: prev.Value()}
}
