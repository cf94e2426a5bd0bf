package tree23

// TreeStats describes the shape of a tree.
type TreeStats struct {
	Len        int
	Height     int
	Nodes      int
	Leaves     int
	TwoNodes   int // nodes holding one entry
	ThreeNodes int // nodes holding two entries
}

// Stats walks the tree and returns its shape.
func (t *Tree[K, V]) Stats() TreeStats {
	out := TreeStats{Len: t.len, Height: t.height}
	if t.IsEmpty() {
		return out
	}
	for _, id := range t.postOrder() {
		n := t.node(id)
		out.Nodes++
		if n.leaf {
			out.Leaves++
		}
		switch n.n {
		case 1:
			out.TwoNodes++
		case 2:
			out.ThreeNodes++
		}
	}
	return out
}
