package avl

// Handle refers to an entry of a tree, or to End, the position one past the
// maximum entry. Handles are comparable: two handles taken from the same
// tree value are equal iff they denote the same position. A handle records
// the tree it was taken from; after Move or Swap it still follows its entry
// but compares unequal to handles taken from the entry's new tree.
//
// A handle stays valid as long as its entry is part of a tree, regardless
// of insertions or removals of other entries. Erasing the entry or clearing
// the tree makes it stale. End handles keep referring to the tree value
// they were taken from.
type Handle[K, V any] struct {
	tree *Tree[K, V]
	n    *node[K, V]
}

// IsEnd reports whether h denotes the position one past the maximum.
func (h Handle[K, V]) IsEnd() bool {
	return h.n == nil
}

// IsStale reports whether h refers to an entry which has since been erased.
func (h Handle[K, V]) IsStale() bool {
	return h.n != nil && h.n.detached()
}

func (h Handle[K, V]) deref() *node[K, V] {
	if h.n == nil {
		violation(ErrKeyNotFound, "dereferencing end handle")
	}
	if h.n.detached() {
		violation(ErrStaleHandle, "dereferencing erased entry")
	}
	return h.n
}

// Key returns the key of the entry h refers to.
// It panics if h is End or stale.
func (h Handle[K, V]) Key() K {
	return h.deref().key
}

// Value returns the payload of the entry h refers to.
// It panics if h is End or stale.
func (h Handle[K, V]) Value() V {
	return h.deref().value
}

// SetValue replaces the payload of the entry h refers to. Payloads do not
// take part in ordering.
func (h Handle[K, V]) SetValue(v V) {
	h.deref().value = v
}

// ValueRef returns a pointer to the payload of the entry h refers to.
// The pointer is valid for as long as the entry is.
func (h Handle[K, V]) ValueRef() *V {
	return &h.deref().value
}

// Next returns the handle of the in-order successor, or End.
// Next of End is End.
func (h Handle[K, V]) Next() Handle[K, V] {
	if h.n == nil {
		return h
	}
	return Handle[K, V]{tree: h.tree, n: h.deref().next()}
}

// Prev returns the handle of the in-order predecessor. Prev of End is the
// maximum entry, Prev of the minimum entry is End.
func (h Handle[K, V]) Prev() Handle[K, V] {
	if h.n == nil {
		if h.tree == nil {
			return h
		}
		return h.tree.Last()
	}
	return Handle[K, V]{tree: h.tree, n: h.deref().prev()}
}

// --- Structural inspection --------------------------------------------------

// Left returns the handle of the left child, or End if there is none.
func (h Handle[K, V]) Left() Handle[K, V] {
	return Handle[K, V]{tree: h.tree, n: h.deref().left}
}

// Right returns the handle of the right child, or End if there is none.
func (h Handle[K, V]) Right() Handle[K, V] {
	return Handle[K, V]{tree: h.tree, n: h.deref().right}
}

// Parent returns the handle of the parent, or End for the root.
func (h Handle[K, V]) Parent() Handle[K, V] {
	return Handle[K, V]{tree: h.tree, n: h.deref().parent}
}

// Height returns the height of the subtree rooted at h. End has height 0.
func (h Handle[K, V]) Height() int {
	if h.n == nil {
		return 0
	}
	return h.deref().height
}

// Balance returns the height-balance factor of the subtree rooted at h,
// i.e. height(left) − height(right).
func (h Handle[K, V]) Balance() int {
	if h.n == nil {
		return 0
	}
	return h.deref().balance()
}
