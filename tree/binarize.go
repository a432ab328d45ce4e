// Copyright © 2026 The ReTree Authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

// Binarize resolves all multifurcations of the tree.
//
// For any node with more than two children,
// the first child is kept in place
// and a new zero length internal node
// is added as the second child,
// with all remaining children moved under it.
// The procedure continues on the added node,
// so sibling order is preserved
// and the resulting tree is fully bifurcating.
// A tree already bifurcating is unchanged.
//
// The traversal uses an explicit stack,
// so it is safe on very unbalanced trees.
func (t *Tree) Binarize() {
	stack := []int{t.root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := t.nodes[id]
		if len(n.children) > 2 {
			nn := &node{
				id:     len(t.nodes),
				parent: id,
				defLen: true,
			}
			t.nodes = append(t.nodes, nn)

			nn.children = append(nn.children, n.children[1:]...)
			for _, c := range nn.children {
				t.nodes[c].parent = nn.id
			}
			n.children = []int{n.children[0], nn.id}
		}
		stack = append(stack, n.children...)
	}
}
