// Copyright © 2026 The ReTree Authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package tree implements a rooted,
// weighted phylogenetic tree,
// and the operations used to restructure,
// sample,
// and measure it.
//
// Nodes are stored in an arena
// and addressed by an integer ID
// that is stable across any transformation
// and never reused.
// Branch lengths are measured
// from a node to its parent;
// an undefined length is distinct from a zero length
// and counts as zero in any sum.
package tree

import (
	"errors"
	"fmt"
	"slices"
)

// Errors used by tree lookups and operations.
var (
	// ErrNotFound is used when a node,
	// or a node label,
	// is not in the tree.
	ErrNotFound = errors.New("node not found")

	// ErrInvalidArgument is used when an operation
	// receives an argument outside its valid range.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidTree is used when the tree structure
	// is corrupted.
	// It is always fatal and never patched.
	ErrInvalidTree = errors.New("invalid tree structure")
)

// A node is a node in the arena.
// The parent is -1 for the root.
type node struct {
	id       int
	parent   int
	children []int

	label string

	brLen  float64
	defLen bool

	support float64
	defSup  bool
}

// A Tree is a rooted phylogenetic tree.
//
// The zero value is not a valid tree;
// use New to create a tree with its root node.
type Tree struct {
	nodes []*node
	root  int
}

// New creates a new tree
// that contains only its root node.
func New() *Tree {
	t := &Tree{}
	t.nodes = append(t.nodes, &node{id: 0, parent: -1})
	return t
}

// Add adds a new node as the last child
// of the indicated node,
// and returns the ID of the added node.
func (t *Tree) Add(parent int, label string) (int, error) {
	p := t.node(parent)
	if p == nil {
		return -1, fmt.Errorf("parent node %d: %w", parent, ErrNotFound)
	}

	n := &node{
		id:     len(t.nodes),
		parent: parent,
		label:  label,
	}
	t.nodes = append(t.nodes, n)
	p.children = append(p.children, n.id)
	return n.id, nil
}

// Root returns the ID of the root node.
func (t *Tree) Root() int {
	return t.root
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	l := 0
	for _, n := range t.nodes {
		if n != nil {
			l++
		}
	}
	return l
}

// Nodes returns the IDs of all nodes in the tree,
// in pre-order.
func (t *Tree) Nodes() []int {
	ids := make([]int, 0, len(t.nodes))
	stack := []int{t.root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		ids = append(ids, id)

		n := t.nodes[id]
		for i := len(n.children) - 1; i >= 0; i-- {
			stack = append(stack, n.children[i])
		}
	}
	return ids
}

// Leaves returns the IDs of all terminals in the tree,
// in pre-order.
func (t *Tree) Leaves() []int {
	var ls []int
	for _, id := range t.Nodes() {
		if t.IsTerm(id) {
			ls = append(ls, id)
		}
	}
	return ls
}

// Terms returns the labels of the tree terminals,
// in alphabetical order.
// Repeated labels are reported once.
func (t *Tree) Terms() []string {
	seen := make(map[string]bool)
	var terms []string
	for _, id := range t.Leaves() {
		l := t.nodes[id].label
		if l == "" || seen[l] {
			continue
		}
		seen[l] = true
		terms = append(terms, l)
	}
	slices.Sort(terms)
	return terms
}

// Label returns the label of a node,
// or an empty string for an unlabeled node.
func (t *Tree) Label(id int) string {
	n := t.node(id)
	if n == nil {
		return ""
	}
	return n.label
}

// SetLabel sets the label of a node.
func (t *Tree) SetLabel(id int, label string) error {
	n := t.node(id)
	if n == nil {
		return fmt.Errorf("node %d: %w", id, ErrNotFound)
	}
	n.label = label
	return nil
}

// Parent returns the ID of the parent of a node,
// or -1 for the root.
func (t *Tree) Parent(id int) int {
	n := t.node(id)
	if n == nil {
		return -1
	}
	return n.parent
}

// Children returns the IDs of the children of a node.
func (t *Tree) Children(id int) []int {
	n := t.node(id)
	if n == nil {
		return nil
	}
	return slices.Clone(n.children)
}

// IsRoot returns true if the node is the root of the tree.
func (t *Tree) IsRoot(id int) bool {
	return id == t.root && t.node(id) != nil
}

// IsTerm returns true if the node is a terminal,
// that is a node without children.
func (t *Tree) IsTerm(id int) bool {
	n := t.node(id)
	if n == nil {
		return false
	}
	return len(n.children) == 0
}

// Length returns the length of the branch
// that connects a node with its parent.
// It returns false if the length is undefined,
// or if the node is the root.
func (t *Tree) Length(id int) (float64, bool) {
	n := t.node(id)
	if n == nil {
		return 0, false
	}
	return n.brLen, n.defLen
}

// SetLength sets the length of the branch
// that connects a node with its parent.
func (t *Tree) SetLength(id int, v float64) error {
	n := t.node(id)
	if n == nil {
		return fmt.Errorf("node %d: %w", id, ErrNotFound)
	}
	if n.parent < 0 {
		return fmt.Errorf("node %d is the root: %w", id, ErrInvalidArgument)
	}
	if v < 0 {
		return fmt.Errorf("node %d: negative branch length %.6f: %w", id, v, ErrInvalidArgument)
	}
	n.brLen = v
	n.defLen = true
	return nil
}

// Support returns the support value
// (for example a bootstrap proportion)
// of the branch that connects a node with its parent.
// It returns false if the support is undefined.
func (t *Tree) Support(id int) (float64, bool) {
	n := t.node(id)
	if n == nil {
		return 0, false
	}
	return n.support, n.defSup
}

// SetSupport sets the support value of the branch
// that connects a node with its parent.
func (t *Tree) SetSupport(id int, v float64) error {
	n := t.node(id)
	if n == nil {
		return fmt.Errorf("node %d: %w", id, ErrNotFound)
	}
	n.support = v
	n.defSup = true
	return nil
}

// Ancestors returns the IDs of all ancestors of a node,
// from its parent up to the root.
func (t *Tree) Ancestors(id int) []int {
	n := t.node(id)
	if n == nil {
		return nil
	}

	var anc []int
	for p := n.parent; p >= 0; p = t.nodes[p].parent {
		anc = append(anc, p)
	}
	return anc
}

// Descendants returns the IDs of all nodes
// of the subtree that starts at the indicated node,
// excluding the node itself,
// in pre-order.
func (t *Tree) Descendants(id int) []int {
	n := t.node(id)
	if n == nil {
		return nil
	}

	var desc []int
	stack := make([]int, 0, len(n.children))
	for i := len(n.children) - 1; i >= 0; i-- {
		stack = append(stack, n.children[i])
	}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		desc = append(desc, v)

		c := t.nodes[v]
		for i := len(c.children) - 1; i >= 0; i-- {
			stack = append(stack, c.children[i])
		}
	}
	return desc
}

// Depth returns the sum of the branch lengths
// from the root to the indicated node.
// Undefined branch lengths count as zero.
func (t *Tree) Depth(id int) float64 {
	var d float64
	for n := t.node(id); n != nil && n.parent >= 0; n = t.nodes[n.parent] {
		d += n.brLen
	}
	return d
}

// Distance returns the sum of the branch lengths
// on the path between two nodes,
// going through their most recent common ancestor.
func (t *Tree) Distance(a, b int) (float64, error) {
	if t.node(a) == nil {
		return 0, fmt.Errorf("node %d: %w", a, ErrNotFound)
	}
	if t.node(b) == nil {
		return 0, fmt.Errorf("node %d: %w", b, ErrNotFound)
	}
	if a == b {
		return 0, nil
	}

	m := t.mrca(a, b)
	var d float64
	for v := a; v != m; v = t.nodes[v].parent {
		d += t.nodes[v].brLen
	}
	for v := b; v != m; v = t.nodes[v].parent {
		d += t.nodes[v].brLen
	}
	return d, nil
}

// MRCA returns the most recent common ancestor
// of the indicated nodes,
// folding pairwise over the list.
// For a single node it returns its parent.
func (t *Tree) MRCA(ids ...int) (int, error) {
	if len(ids) == 0 {
		return -1, fmt.Errorf("expecting at least one node: %w", ErrInvalidArgument)
	}
	for _, id := range ids {
		if t.node(id) == nil {
			return -1, fmt.Errorf("node %d: %w", id, ErrNotFound)
		}
	}

	if len(ids) == 1 {
		if ids[0] == t.root {
			return -1, fmt.Errorf("node %d is the root: %w", ids[0], ErrInvalidArgument)
		}
		return t.nodes[ids[0]].parent, nil
	}

	m := ids[0]
	for _, id := range ids[1:] {
		m = t.mrca(m, id)
	}
	return m, nil
}

// ByLabel returns the first node,
// in pre-order,
// with the indicated label.
// Labels are not required to be unique.
func (t *Tree) ByLabel(label string) (int, error) {
	for _, id := range t.Nodes() {
		if t.nodes[id].label == label {
			return id, nil
		}
	}
	return -1, fmt.Errorf("label %q: %w", label, ErrNotFound)
}

// Validate checks the structure of the tree:
// every node must be reachable from the root exactly once,
// and every child must point back to its parent.
func (t *Tree) Validate() error {
	r := t.node(t.root)
	if r == nil {
		return fmt.Errorf("root node %d: %w", t.root, ErrInvalidTree)
	}
	if r.parent >= 0 {
		return fmt.Errorf("root node %d has a parent: %w", t.root, ErrInvalidTree)
	}
	if r.defLen {
		return fmt.Errorf("root node %d has a branch length: %w", t.root, ErrInvalidTree)
	}

	seen := make(map[int]bool, len(t.nodes))
	stack := []int{t.root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[id] {
			return fmt.Errorf("node %d reached twice: %w", id, ErrInvalidTree)
		}
		seen[id] = true

		n := t.nodes[id]
		for _, c := range n.children {
			cn := t.node(c)
			if cn == nil {
				return fmt.Errorf("node %d: child %d: %w", id, c, ErrNotFound)
			}
			if cn.parent != id {
				return fmt.Errorf("node %d: child %d points to parent %d: %w", id, c, cn.parent, ErrInvalidTree)
			}
			stack = append(stack, c)
		}
	}

	for _, n := range t.nodes {
		if n == nil {
			continue
		}
		if !seen[n.id] {
			return fmt.Errorf("node %d unreachable from root: %w", n.id, ErrInvalidTree)
		}
	}
	return nil
}

// node returns the node with the given ID,
// or nil if the ID is out of range,
// or the node was removed from the tree.
func (t *Tree) node(id int) *node {
	if id < 0 || id >= len(t.nodes) {
		return nil
	}
	return t.nodes[id]
}

// mrca returns the most recent common ancestor
// of two nodes,
// walking both ancestor chains
// until the first shared node.
// A node is its own ancestor.
func (t *Tree) mrca(a, b int) int {
	seen := make(map[int]bool)
	for v := a; v >= 0; v = t.nodes[v].parent {
		seen[v] = true
	}
	for v := b; v >= 0; v = t.nodes[v].parent {
		if seen[v] {
			return v
		}
	}
	return -1
}
