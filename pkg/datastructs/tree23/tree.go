package tree23

import (
	"cmp"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// CompareFunc returns a negative number when a < b, zero when a == b and a
// positive number when a > b. It must be a strict total order that does not
// change for the lifetime of the tree.
type CompareFunc[K any] func(a, b K) int

// Destructor is called once for every entry still stored when the tree is closed.
type Destructor[K, V any] func(key K, value V)

// Tree is an in-memory 2-3 tree. Every leaf sits at the same depth and every
// settled node holds one or two entries.
//
// Tree is not safe for concurrent use; see Locked.
type Tree[K, V any] struct {
	nodes      []node[K, V]
	root       nodeID
	compare    CompareFunc[K]
	destructor Destructor[K, V]
	len        int
	height     int
	log        *zap.Logger
}

// New returns an empty tree ordered by compare. destructor may be nil.
func New[K, V any](compare CompareFunc[K], destructor Destructor[K, V], opts ...Option) *Tree[K, V] {
	if compare == nil {
		panic("tree23: nil compare function")
	}
	o := newOptions(opts)
	return &Tree[K, V]{
		compare:    compare,
		destructor: destructor,
		log:        o.logger,
	}
}

// NewOrdered returns an empty tree ordered by the natural order of K.
func NewOrdered[K cmp.Ordered, V any](destructor Destructor[K, V], opts ...Option) *Tree[K, V] {
	return New[K, V](cmp.Compare[K], destructor, opts...)
}

// IsEmpty reports whether the tree has no root.
func (t *Tree[K, V]) IsEmpty() bool { return t.root == nilNode }

// Len returns the number of entries in the tree.
func (t *Tree[K, V]) Len() int { return t.len }

// Height returns the number of levels, 0 for an empty tree.
func (t *Tree[K, V]) Height() int { return t.height }

func (t *Tree[K, V]) newNode(leaf bool) nodeID {
	if len(t.nodes) == 0 {
		// Reserve slot 0 for nilNode.
		t.nodes = append(t.nodes, node[K, V]{})
	}
	id := nodeID(len(t.nodes))
	t.nodes = append(t.nodes, node[K, V]{leaf: leaf})
	t.log.Debug("creating node", zap.Int32("node", int32(id)), zap.Bool("leaf", leaf))
	return id
}

// node returns the node with the given id. The pointer is only valid until the
// next newNode call.
func (t *Tree[K, V]) node(id nodeID) *node[K, V] {
	if id == nilNode {
		return nil
	}
	return &t.nodes[id]
}

// Insert stores value under key. It returns ErrDuplicateKey, without changing
// the tree, if key is already present.
func (t *Tree[K, V]) Insert(key K, value V) error {
	e := entry[K, V]{key: key, value: value}

	// The first leaf is the only node not created by a split.
	if t.IsEmpty() {
		id := t.newNode(true)
		t.node(id).insertAt(0, e, nilNode)
		t.root = id
		t.height = 1
		t.len = 1
		return nil
	}

	id := t.root
	for {
		n := t.node(id)
		if _, found := n.search(key, t.compare); found {
			t.log.Debug("duplicate key", zap.Any("key", key), zap.Int32("node", int32(id)))
			return errors.Wrapf(ErrDuplicateKey, "insert %v", key)
		}
		if n.leaf {
			break
		}
		id = n.childFor(key, t.compare)
	}

	h := t.insertData(id, e, nilNode)
	t.log.Debug("inserted into leaf", zap.Any("key", key), zap.Int("index", h), zap.Int32("node", int32(id)))
	t.len++
	t.split(id)
	return nil
}

// insertData places e into the stable node id and returns its slot. child is
// the right half of a split one level down; it is required on internal nodes
// and forbidden on leaves.
func (t *Tree[K, V]) insertData(id nodeID, e entry[K, V], child nodeID) int {
	n := t.node(id)
	if !n.isStable() {
		panic("tree23: insert into unstable node")
	}
	if n.leaf != (child == nilNode) {
		panic("tree23: child link does not match node kind")
	}
	h, found := n.search(e.key, t.compare)
	if found {
		panic("tree23: duplicate key reached insertData")
	}
	n.insertAt(h, e, child)
	if child != nilNode {
		t.node(child).parent = id
	}
	return h
}

// split turns the unstable node id, viewed as [A B C] over [c0 c1 c2 c3], into
// [A] over [c0 c1] and a new sibling [C] over [c2 c3], then promotes B. It walks
// up while the promotion leaves the parent unstable, and grows a new root
// when it splits the old one.
func (t *Tree[K, V]) split(id nodeID) {
	for {
		if t.node(id).isStable() {
			return
		}

		sibID := t.newNode(t.node(id).leaf)
		n, sib := t.node(id), t.node(sibID)

		sib.entries[0] = n.entries[2]
		sib.n = 1
		if !n.leaf {
			sib.children[0] = n.children[2]
			sib.children[1] = n.children[3]
			t.node(sib.children[0]).parent = sibID
			t.node(sib.children[1]).parent = sibID
		}
		mid := n.entries[1]
		n.truncate(1)

		t.log.Debug("splitting node",
			zap.Int32("node", int32(id)),
			zap.Int32("sibling", int32(sibID)),
			zap.Any("promoted", mid.key),
		)

		if n.isRoot() {
			rootID := t.newNode(false)
			root := t.node(rootID)
			root.entries[0] = mid
			root.n = 1
			root.children[0] = id
			root.children[1] = sibID
			t.node(id).parent = rootID
			t.node(sibID).parent = rootID
			t.root = rootID
			t.height++
			t.log.Debug("new root", zap.Int32("node", int32(rootID)), zap.Int("height", t.height))
			return
		}

		parent := n.parent
		sib.parent = parent
		t.insertData(parent, mid, sibID)
		id = parent
	}
}

// Get returns the value stored under key.
func (t *Tree[K, V]) Get(key K) (V, bool) {
	for id := t.root; id != nilNode; {
		n := t.node(id)
		if i, found := n.search(key, t.compare); found {
			return n.entries[i].value, true
		}
		if n.leaf {
			break
		}
		id = n.childFor(key, t.compare)
	}
	var zero V
	return zero, false
}

// Has reports whether key is stored in the tree.
func (t *Tree[K, V]) Has(key K) bool {
	_, ok := t.Get(key)
	return ok
}

// Close tears the tree down, children before parents, calling the destructor
// for every entry. The tree is empty and usable afterwards.
func (t *Tree[K, V]) Close() error {
	if t == nil || t.IsEmpty() {
		return nil
	}
	if t.destructor != nil {
		for _, id := range t.postOrder() {
			n := t.node(id)
			for i := 0; i < n.n; i++ {
				t.destructor(n.entries[i].key, n.entries[i].value)
			}
		}
	}
	t.log.Debug("tree closed", zap.Int("entries", t.len), zap.Int("nodes", len(t.nodes)-1))
	t.nodes = nil
	t.root = nilNode
	t.len = 0
	t.height = 0
	return nil
}

// postOrder lists node ids so that every node comes after all of its children.
func (t *Tree[K, V]) postOrder() []nodeID {
	out := make([]nodeID, 0, len(t.nodes))
	stack := []nodeID{t.root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, id)
		n := t.node(id)
		for i := 0; i < n.numChildren(); i++ {
			stack = append(stack, n.children[i])
		}
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
