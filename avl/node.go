package avl

// node is a tree entry. left and right own their subtrees, parent is a
// back-reference only. height is 1 for a leaf; a node with height 0 has been
// detached from its tree.
type node[K, V any] struct {
	key    K
	value  V
	height int
	parent *node[K, V]
	left   *node[K, V]
	right  *node[K, V]
}

func newLeaf[K, V any](key K, value V, parent *node[K, V]) *node[K, V] {
	return &node[K, V]{
		key:    key,
		value:  value,
		height: 1,
		parent: parent,
	}
}

func height[K, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return n.height
}

func (n *node[K, V]) detached() bool {
	return n.height == 0
}

func (n *node[K, V]) updateHeight() {
	n.height = 1 + max(height(n.left), height(n.right))
}

// balance is the height-balance factor of n.
func (n *node[K, V]) balance() int {
	return height(n.left) - height(n.right)
}

func (n *node[K, V]) min() *node[K, V] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func (n *node[K, V]) max() *node[K, V] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// next returns the in-order successor of n, or nil if n is the maximum.
func (n *node[K, V]) next() *node[K, V] {
	if n.right != nil {
		return n.right.min()
	}
	p := n.parent
	for p != nil && n == p.right {
		n, p = p, p.parent
	}
	return p
}

// prev returns the in-order predecessor of n, or nil if n is the minimum.
func (n *node[K, V]) prev() *node[K, V] {
	if n.left != nil {
		return n.left.max()
	}
	p := n.parent
	for p != nil && n == p.left {
		n, p = p, p.parent
	}
	return p
}

// top climbs parent links up to the root of n's tree.
func (n *node[K, V]) top() *node[K, V] {
	for n.parent != nil {
		n = n.parent
	}
	return n
}

// detach unlinks n completely and marks it as erased.
func (n *node[K, V]) detach() {
	n.parent, n.left, n.right = nil, nil, nil
	n.height = 0
}
