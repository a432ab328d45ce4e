// Copyright © 2026 The ReTree Authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

import (
	"fmt"
	"slices"
)

// Restrict reduces the tree to the indicated nodes,
// their ancestors,
// and their descendants.
// Any other node is removed,
// internal nodes left with a single child are collapsed,
// adding their branch lengths,
// and a root left with a single child is discarded,
// promoting the child as the new root.
//
// The path length between any two retained terminals
// is the same as in the original tree.
func (t *Tree) Restrict(ids []int) error {
	if len(ids) == 0 {
		return fmt.Errorf("empty node selection: %w", ErrInvalidArgument)
	}

	keep := make(map[int]bool, len(t.nodes))
	for _, id := range ids {
		if t.node(id) == nil {
			return fmt.Errorf("node %d: %w", id, ErrNotFound)
		}
		if keep[id] {
			continue
		}
		keep[id] = true
		for _, a := range t.Ancestors(id) {
			keep[a] = true
		}
		for _, d := range t.Descendants(id) {
			keep[d] = true
		}
	}

	for _, id := range t.Nodes() {
		if keep[id] {
			continue
		}
		if t.node(id) == nil {
			// already removed with an ancestor
			continue
		}
		t.removeSubtree(id)
	}

	t.collapse()
	t.promoteRoot()
	return nil
}

// Delete removes the indicated terminals from the tree,
// keeping all other terminals.
// It is equivalent to a Restrict
// with the complement of the terminal set.
func (t *Tree) Delete(ids []int) error {
	drop := make(map[int]bool, len(ids))
	for _, id := range ids {
		if t.node(id) == nil {
			return fmt.Errorf("node %d: %w", id, ErrNotFound)
		}
		drop[id] = true
	}

	var keep []int
	for _, l := range t.Leaves() {
		if drop[l] {
			continue
		}
		keep = append(keep, l)
	}
	if len(keep) == 0 {
		return fmt.Errorf("no terminals left in tree: %w", ErrInvalidArgument)
	}
	return t.Restrict(keep)
}

// removeSubtree detaches a node from its parent
// and removes the node
// and all of its descendants from the arena.
func (t *Tree) removeSubtree(id int) {
	n := t.nodes[id]
	if n.parent >= 0 {
		p := t.nodes[n.parent]
		p.children = slices.DeleteFunc(p.children, func(c int) bool { return c == id })
	}

	stack := []int{id}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		stack = append(stack, t.nodes[v].children...)
		t.nodes[v] = nil
	}
}

// collapse merges every internal node
// that has a single child,
// except the root,
// with that child:
// the branch lengths are added
// and the child takes the position of the node
// under its former grandparent.
func (t *Tree) collapse() {
	for _, id := range t.Nodes() {
		if id == t.root {
			continue
		}
		n := t.node(id)
		if n == nil {
			continue
		}
		if len(n.children) != 1 {
			continue
		}

		c := t.nodes[n.children[0]]
		if n.defLen || c.defLen {
			c.brLen += n.brLen
			c.defLen = true
		}
		c.parent = n.parent

		p := t.nodes[n.parent]
		for i, v := range p.children {
			if v == id {
				p.children[i] = c.id
				break
			}
		}
		t.nodes[id] = nil
	}
}

// promoteRoot discards a root with a single child,
// promoting the child as the new root.
// The branch length of the promoted node is dropped,
// as the root has no branch.
func (t *Tree) promoteRoot() {
	for {
		r := t.nodes[t.root]
		if len(r.children) != 1 {
			return
		}

		c := t.nodes[r.children[0]]
		c.parent = -1
		c.brLen = 0
		c.defLen = false
		t.nodes[t.root] = nil
		t.root = c.id
	}
}
