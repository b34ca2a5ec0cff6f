package avl

import "cmp"

// Tree is a height-balanced binary search tree mapping keys of type K to
// payloads of type V. Payloads do not take part in ordering; sets use an
// empty struct as V.
//
// The zero value is not usable; create trees with New or NewOrdered.
type Tree[K, V any] struct {
	cfg  Config[K]
	root *node[K, V]
	size int
}

// New creates an empty tree with validated configuration.
func New[K, V any](cfg Config[K]) (*Tree[K, V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Tree[K, V]{cfg: cfg}, nil
}

// NewOrdered creates an empty tree for a naturally ordered key type.
func NewOrdered[K cmp.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{cfg: OrderedConfig[K]()}
}

// Config returns the configuration of the tree.
func (t *Tree[K, V]) Config() Config[K] {
	return t.cfg
}

// Len returns the number of entries in the tree.
func (t *Tree[K, V]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// IsEmpty reports whether the tree has no entries.
func (t *Tree[K, V]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Height returns the tree height, where 0 means empty and 1 means a single
// entry.
func (t *Tree[K, V]) Height() int {
	if t == nil {
		return 0
	}
	return height(t.root)
}

func (t *Tree[K, V]) handle(n *node[K, V]) Handle[K, V] {
	return Handle[K, V]{tree: t, n: n}
}

// Root returns the handle of the root entry, or End for an empty tree.
func (t *Tree[K, V]) Root() Handle[K, V] {
	return t.handle(t.root)
}

// Begin returns the handle of the minimum entry, or End for an empty tree.
func (t *Tree[K, V]) Begin() Handle[K, V] {
	if t.root == nil {
		return t.End()
	}
	return t.handle(t.root.min())
}

// End returns the handle one past the maximum entry.
func (t *Tree[K, V]) End() Handle[K, V] {
	return Handle[K, V]{tree: t}
}

// Last returns the handle of the maximum entry, or End for an empty tree.
func (t *Tree[K, V]) Last() Handle[K, V] {
	if t.root == nil {
		return t.End()
	}
	return t.handle(t.root.max())
}

// --- Lookup -----------------------------------------------------------------

// Find returns the handle of the entry with a key equal to key, or End.
func (t *Tree[K, V]) Find(key K) Handle[K, V] {
	return t.handle(t.find(key))
}

func (t *Tree[K, V]) find(key K) *node[K, V] {
	n := t.root
	for n != nil {
		switch {
		case t.cfg.Less(key, n.key):
			n = n.left
		case t.cfg.Less(n.key, key):
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// Contains reports whether an entry with a key equal to key is present.
func (t *Tree[K, V]) Contains(key K) bool {
	return t.find(key) != nil
}

// LowerBound returns the handle of the smallest entry with a key not less
// than key, or End.
func (t *Tree[K, V]) LowerBound(key K) Handle[K, V] {
	var best *node[K, V]
	n := t.root
	for n != nil {
		if t.cfg.Less(n.key, key) {
			n = n.right
		} else {
			best, n = n, n.left
		}
	}
	return t.handle(best)
}

// UpperBound returns the handle of the smallest entry with a key greater
// than key, or End.
func (t *Tree[K, V]) UpperBound(key K) Handle[K, V] {
	var best *node[K, V]
	n := t.root
	for n != nil {
		if t.cfg.Less(key, n.key) {
			best, n = n, n.left
		} else {
			n = n.right
		}
	}
	return t.handle(best)
}

// --- Mutation ---------------------------------------------------------------

// Insert adds an entry for key with payload value. If an entry with an equal
// key already exists, Insert returns its handle and false and leaves the
// tree unchanged (the existing payload is kept). Otherwise it returns the
// handle of the new entry and true.
func (t *Tree[K, V]) Insert(key K, value V) (Handle[K, V], bool) {
	if t.root == nil {
		t.root = newLeaf(key, value, nil)
		t.size = 1
		return t.handle(t.root), true
	}
	cur := t.root
	for {
		switch {
		case t.cfg.Less(key, cur.key):
			if cur.left == nil {
				cur.left = newLeaf(key, value, cur)
				return t.inserted(cur.left), true
			}
			cur = cur.left
		case t.cfg.Less(cur.key, key):
			if cur.right == nil {
				cur.right = newLeaf(key, value, cur)
				return t.inserted(cur.right), true
			}
			cur = cur.right
		default:
			return t.handle(cur), false
		}
	}
}

func (t *Tree[K, V]) inserted(leaf *node[K, V]) Handle[K, V] {
	t.size++
	t.rebalanceFrom(leaf.parent)
	return t.handle(leaf)
}

// Erase removes the entry h refers to and returns the handle of its
// successor. Erasing End or an already erased entry is a no-op returning End.
//
// h must belong to t; passing a handle of another tree is a precondition
// violation and panics with an error wrapping ErrForeignHandle. After Erase,
// h is stale while handles to all other entries remain valid.
func (t *Tree[K, V]) Erase(h Handle[K, V]) Handle[K, V] {
	n := h.n
	if n == nil || n.detached() {
		return t.End()
	}
	t.MustOwn(h, "erase")
	next := n.next()
	t.remove(n)
	return t.handle(next)
}

// Owns reports whether h refers to a live entry of t.
func (t *Tree[K, V]) Owns(h Handle[K, V]) bool {
	if h.n == nil || h.n.detached() || t.root == nil {
		return false
	}
	return h.n.top() == t.root
}

// MustOwn panics with an error wrapping ErrForeignHandle if h refers to a
// live entry of another tree. End and stale handles pass.
func (t *Tree[K, V]) MustOwn(h Handle[K, V], op string) {
	if h.n == nil || h.n.detached() {
		return
	}
	if !t.Owns(h) {
		violation(ErrForeignHandle, "%s", op)
	}
}

// Delete removes the entry with a key equal to key, if present, and reports
// whether an entry has been removed.
func (t *Tree[K, V]) Delete(key K) bool {
	n := t.find(key)
	if n == nil {
		return false
	}
	t.remove(n)
	return true
}

// remove unlinks n. A node with two children is replaced by its in-order
// successor node; keys and payloads never move between nodes.
func (t *Tree[K, V]) remove(n *node[K, V]) {
	var from *node[K, V] // lowest node whose subtree changed
	switch {
	case n.left == nil:
		from = n.parent
		t.replaceChild(n.parent, n, n.right)
	case n.right == nil:
		from = n.parent
		t.replaceChild(n.parent, n, n.left)
	default:
		s := n.right.min()
		if s.parent == n {
			from = s
		} else {
			from = s.parent
			t.replaceChild(s.parent, s, s.right)
			s.right = n.right
			s.right.parent = s
		}
		t.replaceChild(n.parent, n, s)
		s.left = n.left
		s.left.parent = s
	}
	n.detach()
	t.size--
	t.rebalanceFrom(from)
}

// Merge moves every entry of other whose key is not present in t into t.
// Entries with keys already present in t stay in other. Merging a tree with
// itself is a no-op. Handles to moved entries become stale.
func (t *Tree[K, V]) Merge(other *Tree[K, V]) {
	if other == nil || other == t || other.root == nil {
		return
	}
	moved := 0
	for n := other.root.min(); n != nil; {
		next := n.next()
		if _, ok := t.Insert(n.key, n.value); ok {
			other.remove(n)
			moved++
		}
		n = next
	}
	tracer().Debugf("avl merge: moved %d entries, %d left in source", moved, other.size)
}

// Clear removes all entries. Every handle into the tree becomes stale.
func (t *Tree[K, V]) Clear() {
	clearSubtree(t.root)
	t.root = nil
	t.size = 0
}

func clearSubtree[K, V any](n *node[K, V]) {
	if n == nil {
		return
	}
	clearSubtree(n.left)
	clearSubtree(n.right)
	n.detach()
}

// Clone returns a deep copy of the tree. Handles into t do not refer to the
// clone.
func (t *Tree[K, V]) Clone() *Tree[K, V] {
	return &Tree[K, V]{
		cfg:  t.cfg,
		root: copySubtree(t.root, nil),
		size: t.size,
	}
}

func copySubtree[K, V any](n, parent *node[K, V]) *node[K, V] {
	if n == nil {
		return nil
	}
	c := &node[K, V]{
		key:    n.key,
		value:  n.value,
		height: n.height,
		parent: parent,
	}
	c.left = copySubtree(n.left, c)
	c.right = copySubtree(n.right, c)
	return c
}

// Move transfers all entries into a new tree and leaves t empty.
// Handles to entries follow the entries; End handles of t keep referring
// to t.
func (t *Tree[K, V]) Move() *Tree[K, V] {
	m := &Tree[K, V]{cfg: t.cfg, root: t.root, size: t.size}
	t.root, t.size = nil, 0
	return m
}

// Swap exchanges the contents of t and other, including their orderings.
func (t *Tree[K, V]) Swap(other *Tree[K, V]) {
	*t, *other = *other, *t
}
