package avl

// rebalanceFrom restores heights and balance on the path from n up to the
// root.
func (t *Tree[K, V]) rebalanceFrom(n *node[K, V]) {
	for n != nil {
		n.updateHeight()
		switch n.balance() {
		case 2:
			if height(n.left.left) < height(n.left.right) {
				t.rotateLeft(n.left)
			}
			n = t.rotateRight(n)
		case -2:
			if height(n.right.right) < height(n.right.left) {
				t.rotateRight(n.right)
			}
			n = t.rotateLeft(n)
		}
		assert(n.balance() >= -1 && n.balance() <= 1, "rebalance left node out of balance")
		n = n.parent
	}
}

// rotateRight lifts n.left into the position of n and returns it.
//
//	    n          l
//	   / \        / \
//	  l   c  →   a   n
//	 / \            / \
//	a   b          b   c
func (t *Tree[K, V]) rotateRight(n *node[K, V]) *node[K, V] {
	l := n.left
	n.left = l.right
	if l.right != nil {
		l.right.parent = n
	}
	t.replaceChild(n.parent, n, l)
	l.right = n
	n.parent = l
	n.updateHeight()
	l.updateHeight()
	return l
}

// rotateLeft is the mirror image of rotateRight.
func (t *Tree[K, V]) rotateLeft(n *node[K, V]) *node[K, V] {
	r := n.right
	n.right = r.left
	if r.left != nil {
		r.left.parent = n
	}
	t.replaceChild(n.parent, n, r)
	r.left = n
	n.parent = r
	n.updateHeight()
	r.updateHeight()
	return r
}

// replaceChild puts child into the slot of parent which held old, or makes
// it the root if parent is nil.
func (t *Tree[K, V]) replaceChild(parent, old, child *node[K, V]) {
	switch {
	case parent == nil:
		t.root = child
	case parent.left == old:
		parent.left = child
	default:
		assert(parent.right == old, "replaceChild called with non-child")
		parent.right = child
	}
	if child != nil {
		child.parent = parent
	}
}
