package tree23

import "iter"

// All returns an iterator over the entries in ascending key order. The tree
// must not be modified while the iterator is running; a new call to All starts
// over from the smallest key.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		t.ascend(t.root, yield)
	}
}

// Keys returns an iterator over the keys in ascending order.
func (t *Tree[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		t.ascend(t.root, func(k K, _ V) bool { return yield(k) })
	}
}

// ascend visits c0, e0, c1, e1, c2 and stops as soon as yield returns false.
func (t *Tree[K, V]) ascend(id nodeID, yield func(K, V) bool) bool {
	n := t.node(id)
	if n == nil {
		return true
	}
	for i := 0; i < n.n; i++ {
		if !n.leaf && !t.ascend(n.children[i], yield) {
			return false
		}
		if !yield(n.entries[i].key, n.entries[i].value) {
			return false
		}
	}
	if n.leaf {
		return true
	}
	return t.ascend(n.children[n.n], yield)
}
