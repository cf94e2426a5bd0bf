package tree23

import "github.com/pkg/errors"

// Validate checks the structural invariants of the tree: every node holds one
// or two entries in strictly ascending order, internal nodes have one child
// more than they have entries, parent links point back at the owning node,
// every key lies inside the range its ancestors allow, and all leaves sit at
// the same depth. It returns the first violation found.
func (t *Tree[K, V]) Validate() error {
	if t.IsEmpty() {
		if t.len != 0 || t.height != 0 {
			return errors.Errorf("empty tree reports len %d height %d", t.len, t.height)
		}
		return nil
	}
	if p := t.node(t.root).parent; p != nilNode {
		return errors.Errorf("root %d has parent %d", t.root, p)
	}
	v := validator[K, V]{tree: t, leafDepth: -1}
	if err := v.check(t.root, 1, nil, nil); err != nil {
		return err
	}
	if v.count != t.len {
		return errors.Errorf("counted %d entries, tree reports %d", v.count, t.len)
	}
	if v.leafDepth != t.height {
		return errors.Errorf("leaves at depth %d, tree reports height %d", v.leafDepth, t.height)
	}
	return nil
}

type validator[K, V any] struct {
	tree      *Tree[K, V]
	leafDepth int
	count     int
}

// check validates the subtree at id; lo and hi, when set, are exclusive bounds.
func (v *validator[K, V]) check(id nodeID, depth int, lo, hi *K) error {
	t := v.tree
	n := t.node(id)
	if n.n < 1 || n.n > maxStable {
		return errors.Errorf("node %d holds %d entries", id, n.n)
	}
	for i := 0; i < n.n; i++ {
		k := n.entries[i].key
		if i > 0 && t.compare(n.entries[i-1].key, k) >= 0 {
			return errors.Errorf("node %d: entries %d and %d out of order", id, i-1, i)
		}
		if lo != nil && t.compare(*lo, k) >= 0 {
			return errors.Errorf("node %d: entry %d below its subtree range", id, i)
		}
		if hi != nil && t.compare(k, *hi) >= 0 {
			return errors.Errorf("node %d: entry %d above its subtree range", id, i)
		}
	}
	v.count += n.n

	if n.leaf {
		for i := 0; i < maxChildren; i++ {
			if n.children[i] != nilNode {
				return errors.Errorf("leaf %d has child link %d", id, i)
			}
		}
		if v.leafDepth < 0 {
			v.leafDepth = depth
		} else if v.leafDepth != depth {
			return errors.Errorf("leaf %d at depth %d, want %d", id, depth, v.leafDepth)
		}
		return nil
	}

	for i := 0; i < maxChildren; i++ {
		c := n.children[i]
		if i <= n.n && c == nilNode {
			return errors.Errorf("internal node %d missing child %d", id, i)
		}
		if i > n.n && c != nilNode {
			return errors.Errorf("internal node %d has stray child %d", id, i)
		}
	}
	for i := 0; i <= n.n; i++ {
		c := n.children[i]
		if p := t.node(c).parent; p != id {
			return errors.Errorf("node %d: child %d points at parent %d", id, c, p)
		}
		clo, chi := lo, hi
		if i > 0 {
			clo = &n.entries[i-1].key
		}
		if i < n.n {
			chi = &n.entries[i].key
		}
		if err := v.check(c, depth+1, clo, chi); err != nil {
			return err
		}
	}
	return nil
}
