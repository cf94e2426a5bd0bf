package tree23

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes the tree in key order, one entry per line, indented by depth.
// It is a debugging aid; the format is not stable.
func (t *Tree[K, V]) Dump(w io.Writer) error {
	if t.IsEmpty() {
		_, err := fmt.Fprintln(w, dumpEmpty)
		return err
	}
	d := dumper[K, V]{tree: t, w: w}
	d.node(t.root, 0)
	return d.err
}

// String returns the output of Dump.
func (t *Tree[K, V]) String() string {
	var sb strings.Builder
	_ = t.Dump(&sb)
	return sb.String()
}

type dumper[K, V any] struct {
	tree *Tree[K, V]
	w    io.Writer
	err  error
}

func (d *dumper[K, V]) node(id nodeID, depth int) {
	n := d.tree.node(id)
	for i := 0; i < n.n && d.err == nil; i++ {
		if !n.leaf {
			d.node(n.children[i], depth+1)
		}
		d.entry(n.entries[i], depth)
	}
	if !n.leaf && d.err == nil {
		d.node(n.children[n.n], depth+1)
	}
}

func (d *dumper[K, V]) entry(e entry[K, V], depth int) {
	if d.err != nil {
		return
	}
	_, d.err = fmt.Fprintf(d.w, "%skey: %v, value: %v\n", strings.Repeat(dumpIndent, depth), e.key, e.value)
}
