package tree23

import (
	"cmp"
	"testing"
)

func newIntTree() *Tree[int, string] {
	return New[int, string](cmp.Compare[int], nil)
}

// mkNode allocates a node holding keys; children, when given, make it internal.
func mkNode(t *Tree[int, string], keys []int, children ...nodeID) nodeID {
	id := t.newNode(len(children) == 0)
	n := t.node(id)
	for i, k := range keys {
		n.entries[i] = entry[int, string]{key: k, value: "v"}
	}
	n.n = len(keys)
	for i, c := range children {
		n.children[i] = c
		t.node(c).parent = id
	}
	return id
}

func keysOf(n *node[int, string]) []int {
	out := make([]int, 0, n.n)
	for i := 0; i < n.n; i++ {
		out = append(out, n.entries[i].key)
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// =============================================================================
// node.search / node.childFor
// =============================================================================

func TestNode_Search(t *testing.T) {
	tr := newIntTree()
	id := mkNode(tr, []int{10, 20})
	n := tr.node(id)

	tests := []struct {
		name      string
		key       int
		wantIdx   int
		wantFound bool
	}{
		{"before_first", 5, 0, false},
		{"equal_first", 10, 0, true},
		{"between", 15, 1, false},
		{"equal_second", 20, 1, true},
		{"after_last", 25, 2, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, found := n.search(tt.key, tr.compare)
			if idx != tt.wantIdx || found != tt.wantFound {
				t.Errorf("search(%d) = (%d, %v), want (%d, %v)", tt.key, idx, found, tt.wantIdx, tt.wantFound)
			}
		})
	}
}

func TestNode_ChildFor(t *testing.T) {
	tr := newIntTree()
	c0, c1, c2 := mkNode(tr, []int{1}), mkNode(tr, []int{15}), mkNode(tr, []int{25})
	three := mkNode(tr, []int{10, 20}, c0, c1, c2)
	two := mkNode(tr, []int{10}, c0, c1)

	tests := []struct {
		name string
		node nodeID
		key  int
		want nodeID
	}{
		{"three_node_left", three, 5, c0},
		{"three_node_middle", three, 15, c1},
		{"three_node_right", three, 25, c2},
		{"two_node_left", two, 5, c0},
		{"two_node_right", two, 25, c1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tr.node(tt.node).childFor(tt.key, tr.compare); got != tt.want {
				t.Errorf("childFor(%d) = %d, want %d", tt.key, got, tt.want)
			}
		})
	}
}

// =============================================================================
// insertData
// =============================================================================

func TestInsertData_Leaf(t *testing.T) {
	tests := []struct {
		name    string
		start   []int
		key     int
		wantIdx int
		want    []int
	}{
		{"into_front", []int{10, 20}, 5, 0, []int{5, 10, 20}},
		{"into_middle", []int{10, 20}, 15, 1, []int{10, 15, 20}},
		{"into_back", []int{10, 20}, 25, 2, []int{10, 20, 25}},
		{"into_two_node", []int{10}, 5, 0, []int{5, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newIntTree()
			id := mkNode(tr, tt.start)
			idx := tr.insertData(id, entry[int, string]{key: tt.key}, nilNode)
			if idx != tt.wantIdx {
				t.Errorf("index = %d, want %d", idx, tt.wantIdx)
			}
			if got := keysOf(tr.node(id)); !equalInts(got, tt.want) {
				t.Errorf("keys = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInsertData_InternalBindsChild(t *testing.T) {
	tr := newIntTree()
	c0, c1, c2 := mkNode(tr, []int{1}), mkNode(tr, []int{15}), mkNode(tr, []int{25})
	id := mkNode(tr, []int{10, 20}, c0, c1, c2)
	extra := mkNode(tr, []int{7})

	// 5 lands in slot 0, so the new child must sit at children[1].
	tr.insertData(id, entry[int, string]{key: 5}, extra)

	n := tr.node(id)
	if got := keysOf(n); !equalInts(got, []int{5, 10, 20}) {
		t.Fatalf("keys = %v", got)
	}
	want := [maxChildren]nodeID{c0, extra, c1, c2}
	if n.children != want {
		t.Errorf("children = %v, want %v", n.children, want)
	}
	if p := tr.node(extra).parent; p != id {
		t.Errorf("new child parent = %d, want %d", p, id)
	}
}

func TestInsertData_Panics(t *testing.T) {
	tests := []struct {
		name  string
		setup func(tr *Tree[int, string]) (nodeID, nodeID)
	}{
		{"unstable_node", func(tr *Tree[int, string]) (nodeID, nodeID) {
			return mkNode(tr, []int{1, 2, 3}), nilNode
		}},
		{"leaf_with_child", func(tr *Tree[int, string]) (nodeID, nodeID) {
			c := mkNode(tr, []int{9})
			return mkNode(tr, []int{1}), c
		}},
		{"internal_without_child", func(tr *Tree[int, string]) (nodeID, nodeID) {
			c0, c1 := mkNode(tr, []int{1}), mkNode(tr, []int{9})
			return mkNode(tr, []int{5}, c0, c1), nilNode
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newIntTree()
			id, child := tt.setup(tr)
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tr.insertData(id, entry[int, string]{key: 4}, child)
		})
	}
}

// =============================================================================
// split
// =============================================================================

func TestSplit_RootLeaf(t *testing.T) {
	tr := newIntTree()
	id := mkNode(tr, []int{1, 2, 3})
	tr.root, tr.height, tr.len = id, 1, 3

	tr.split(id)

	root := tr.node(tr.root)
	if tr.root == id {
		t.Fatal("root was not replaced")
	}
	if got := keysOf(root); !equalInts(got, []int{2}) {
		t.Errorf("root keys = %v, want [2]", got)
	}
	if root.leaf {
		t.Error("new root is a leaf")
	}
	left, right := tr.node(root.children[0]), tr.node(root.children[1])
	if got := keysOf(left); !equalInts(got, []int{1}) {
		t.Errorf("left keys = %v, want [1]", got)
	}
	if got := keysOf(right); !equalInts(got, []int{3}) {
		t.Errorf("right keys = %v, want [3]", got)
	}
	if tr.Height() != 2 {
		t.Errorf("Height() = %d, want 2", tr.Height())
	}
	if err := tr.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestSplit_StableNodeIsNoop(t *testing.T) {
	tr := newIntTree()
	id := mkNode(tr, []int{1, 2})
	tr.root, tr.height, tr.len = id, 1, 2

	tr.split(id)

	if tr.root != id || len(tr.nodes) != 2 {
		t.Errorf("split of a stable node allocated or moved the root")
	}
}

func TestSplit_PropagatesToRoot(t *testing.T) {
	tr := newIntTree()
	l0 := mkNode(tr, []int{5})
	l1 := mkNode(tr, []int{15})
	l2 := mkNode(tr, []int{25, 26, 27})
	root := mkNode(tr, []int{10, 20}, l0, l1, l2)
	tr.root, tr.height, tr.len = root, 2, 7

	tr.split(l2)

	if tr.Height() != 3 {
		t.Fatalf("Height() = %d, want 3", tr.Height())
	}
	top := tr.node(tr.root)
	if got := keysOf(top); !equalInts(got, []int{20}) {
		t.Fatalf("root keys = %v, want [20]", got)
	}
	left, right := tr.node(top.children[0]), tr.node(top.children[1])
	if got := keysOf(left); !equalInts(got, []int{10}) {
		t.Errorf("left keys = %v, want [10]", got)
	}
	if got := keysOf(right); !equalInts(got, []int{26}) {
		t.Errorf("right keys = %v, want [26]", got)
	}
	// Children that moved to the new sibling must point at it.
	for i := 0; i < right.numChildren(); i++ {
		if p := tr.node(right.children[i]).parent; p != top.children[1] {
			t.Errorf("right child %d parent = %d, want %d", i, p, top.children[1])
		}
	}
	if err := tr.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestPostOrder_ChildrenFirst(t *testing.T) {
	tr := newIntTree()
	for i := 0; i < 40; i++ {
		if err := tr.Insert(i, "v"); err != nil {
			t.Fatal(err)
		}
	}
	seen := make(map[nodeID]bool)
	for _, id := range tr.postOrder() {
		n := tr.node(id)
		for i := 0; i < n.numChildren(); i++ {
			if !seen[n.children[i]] {
				t.Fatalf("node %d listed before child %d", id, n.children[i])
			}
		}
		seen[id] = true
	}
	if len(seen) != len(tr.nodes)-1 {
		t.Errorf("visited %d nodes, arena holds %d", len(seen), len(tr.nodes)-1)
	}
}
