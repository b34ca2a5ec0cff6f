package avl

import "iter"

// ForEach walks entries in-order.
//
// Iteration stops early if callback returns false. The callback must not
// mutate the tree.
func (t *Tree[K, V]) ForEach(fn func(key K, value V) bool) {
	if t == nil || t.root == nil || fn == nil {
		return
	}
	for n := t.root.min(); n != nil; n = n.next() {
		if !fn(n.key, n.value) {
			return
		}
	}
}

// All returns an iterator over all entries in ascending key order.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		t.ForEach(yield)
	}
}

// Backward returns an iterator over all entries in descending key order.
func (t *Tree[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if t == nil || t.root == nil {
			return
		}
		for n := t.root.max(); n != nil; n = n.prev() {
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}

// Keys returns an iterator over all keys in ascending order.
func (t *Tree[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		t.ForEach(func(k K, _ V) bool {
			return yield(k)
		})
	}
}

// Handles returns an iterator over the handles of all entries, starting at
// from and proceeding in ascending key order. Erasing the entry of the
// handle just yielded is permitted.
func (t *Tree[K, V]) Handles(from Handle[K, V]) iter.Seq[Handle[K, V]] {
	return func(yield func(Handle[K, V]) bool) {
		for h := from; !h.IsEnd(); {
			next := h.Next()
			if !yield(h) {
				return
			}
			h = next
		}
	}
}
