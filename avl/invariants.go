package avl

import "fmt"

// Check validates structural tree invariants: strict key order, cached
// heights, balance factors within [-1, 1], parent back-references and the
// entry count.
//
// This checker walks the whole tree and is meant to be used in tests.
func (t *Tree[K, V]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if t.root == nil {
		if t.size != 0 {
			return fmt.Errorf("%w: empty tree must have size=0, has %d", ErrInvalidConfig, t.size)
		}
		return nil
	}
	if t.root.parent != nil {
		return fmt.Errorf("%w: root has a parent", ErrInvalidConfig)
	}
	count, _, err := t.checkNode(t.root, nil, nil)
	if err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: size mismatch (%d != %d)", ErrInvalidConfig, count, t.size)
	}
	return nil
}

// checkNode verifies the subtree at n, whose keys must lie strictly between
// lo and hi (nil meaning unbounded).
func (t *Tree[K, V]) checkNode(n, lo, hi *node[K, V]) (count int, h int, err error) {
	if n == nil {
		return 0, 0, nil
	}
	if n.detached() {
		return 0, 0, fmt.Errorf("%w: detached node %v linked into tree", ErrInvalidConfig, n.key)
	}
	if lo != nil && !t.cfg.Less(lo.key, n.key) {
		return 0, 0, fmt.Errorf("%w: key %v not greater than %v", ErrInvalidConfig, n.key, lo.key)
	}
	if hi != nil && !t.cfg.Less(n.key, hi.key) {
		return 0, 0, fmt.Errorf("%w: key %v not less than %v", ErrInvalidConfig, n.key, hi.key)
	}
	for _, child := range []*node[K, V]{n.left, n.right} {
		if child != nil && child.parent != n {
			return 0, 0, fmt.Errorf("%w: child %v of %v has wrong parent", ErrInvalidConfig, child.key, n.key)
		}
	}
	lcount, lh, err := t.checkNode(n.left, lo, n)
	if err != nil {
		return 0, 0, err
	}
	rcount, rh, err := t.checkNode(n.right, n, hi)
	if err != nil {
		return 0, 0, err
	}
	if h = 1 + max(lh, rh); h != n.height {
		return 0, 0, fmt.Errorf("%w: node %v has height %d, should be %d", ErrInvalidConfig, n.key, n.height, h)
	}
	if bf := lh - rh; bf < -1 || bf > 1 {
		return 0, 0, fmt.Errorf("%w: node %v out of balance (%d)", ErrInvalidConfig, n.key, bf)
	}
	return lcount + rcount + 1, h, nil
}
