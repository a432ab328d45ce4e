// Copyright © 2026 The ReTree Authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

import "fmt"

// Reroot sets a new root for the tree
// on the branch that connects the indicated node
// with its parent.
//
// The branch is split at the given fraction of its length,
// measured from the node,
// inserting a new unlabeled node
// that becomes the root of the tree;
// parent-child links on the path
// from the old root to the new root are inverted.
// The old root is kept as an internal node,
// even if it is left with a single child.
func (t *Tree) Reroot(id int, fraction float64) error {
	n := t.node(id)
	if n == nil {
		return fmt.Errorf("node %d: %w", id, ErrNotFound)
	}
	if id == t.root {
		return fmt.Errorf("node %d is the root: %w", id, ErrInvalidArgument)
	}
	if fraction < 0 || fraction > 1 {
		return fmt.Errorf("fraction %.6f out of [0,1]: %w", fraction, ErrInvalidArgument)
	}

	// insert the new node on the incoming branch
	p := t.nodes[n.parent]
	nn := &node{
		id:     len(t.nodes),
		parent: p.id,
		brLen:  n.brLen * (1 - fraction),
		defLen: n.defLen,
	}
	t.nodes = append(t.nodes, nn)
	for i, c := range p.children {
		if c == id {
			p.children[i] = nn.id
			break
		}
	}
	nn.children = []int{id}
	n.parent = nn.id
	n.brLen *= fraction

	// the path from the new node up to the old root,
	// with the branch length of each path node
	// before the inversion
	var path []int
	for v := nn.id; v >= 0; v = t.nodes[v].parent {
		path = append(path, v)
	}
	type branch struct {
		len float64
		def bool
	}
	brs := make([]branch, len(path))
	for i, v := range path {
		brs[i] = branch{len: t.nodes[v].brLen, def: t.nodes[v].defLen}
	}

	for i := 0; i+1 < len(path); i++ {
		c := t.nodes[path[i]]
		a := t.nodes[path[i+1]]

		for j, v := range a.children {
			if v == path[i] {
				a.children = append(a.children[:j], a.children[j+1:]...)
				break
			}
		}
		c.children = append(c.children, a.id)
		a.parent = c.id
		a.brLen = brs[i].len
		a.defLen = brs[i].def
	}

	nn.parent = -1
	nn.brLen = 0
	nn.defLen = false
	t.root = nn.id
	return nil
}
