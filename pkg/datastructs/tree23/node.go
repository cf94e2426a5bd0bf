package tree23

// nodeID is an index into Tree.nodes.
type nodeID int32

type entry[K, V any] struct {
	key   K
	value V
}

// node represents a 2-3 tree node.
// entries are left-packed: entries[:n] are set, the rest are zero.
// children[:n+1] are set on internal nodes only.
type node[K, V any] struct {
	leaf     bool
	n        int
	entries  [maxEntries]entry[K, V]
	children [maxChildren]nodeID
	parent   nodeID
}

func (n *node[K, V]) isStable() bool { return n.n <= maxStable }

func (n *node[K, V]) isRoot() bool { return n.parent == nilNode }

func (n *node[K, V]) numChildren() int {
	if n.leaf {
		return 0
	}
	return n.n + 1
}

// search returns the index of the smallest entry with key >= k and whether it
// is an exact match.
func (n *node[K, V]) search(k K, compare CompareFunc[K]) (int, bool) {
	for i := 0; i < n.n; i++ {
		c := compare(n.entries[i].key, k)
		if c == 0 {
			return i, true
		}
		if c > 0 {
			return i, false
		}
	}
	return n.n, false
}

// childFor picks the subtree whose key range contains k. The first two entries
// are the only boundaries a settled node has.
func (n *node[K, V]) childFor(k K, compare CompareFunc[K]) nodeID {
	if compare(k, n.entries[0].key) < 0 {
		return n.children[0]
	}
	if n.n == 1 || compare(k, n.entries[1].key) < 0 {
		return n.children[1]
	}
	return n.children[2]
}

// insertAt opens slot h and stores e there. On internal nodes child becomes
// children[h+1]; the children right of h shift with their entries.
func (n *node[K, V]) insertAt(h int, e entry[K, V], child nodeID) {
	copy(n.entries[h+1:n.n+1], n.entries[h:n.n])
	n.entries[h] = e
	if !n.leaf {
		copy(n.children[h+2:n.n+2], n.children[h+1:n.n+1])
		n.children[h+1] = child
	}
	n.n++
}

// truncate drops every entry from i on, together with the children right of them.
func (n *node[K, V]) truncate(i int) {
	var zero entry[K, V]
	for j := i; j < maxEntries; j++ {
		n.entries[j] = zero
	}
	for j := i + 1; j < maxChildren; j++ {
		n.children[j] = nilNode
	}
	n.n = i
}
