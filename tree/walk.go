// Copyright © 2026 The ReTree Authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

import "fmt"

// A Step is the visit of a terminal
// during a tree walk.
type Step struct {
	// ID of the visited terminal
	Leaf int

	// Sum of the lengths of all branches
	// traversed up to the visit
	Dist float64
}

// Walk traverses the whole tree
// starting from the indicated terminal:
// it goes up,
// node by node,
// to the root,
// and at each ancestor it goes down
// into every subtree not yet visited,
// in pre-order.
//
// The length of each branch is added
// to the running distance
// the first time the branch is traversed,
// so branches shared by several terminals
// are paid for only once.
// Each terminal is reported once,
// in discovery order,
// with the running distance at its visit;
// the starting terminal is reported first,
// at distance zero.
func (t *Tree) Walk(start int) ([]Step, error) {
	n := t.node(start)
	if n == nil {
		return nil, fmt.Errorf("node %d: %w", start, ErrNotFound)
	}
	if len(n.children) > 0 {
		return nil, fmt.Errorf("node %d is not a terminal: %w", start, ErrInvalidArgument)
	}

	steps := []Step{{Leaf: start}}
	var total float64

	prev := start
	for a := n.parent; a >= 0; a = t.nodes[a].parent {
		total += t.nodes[prev].brLen

		for _, c := range t.nodes[a].children {
			if c == prev {
				continue
			}

			stack := []int{c}
			for len(stack) > 0 {
				id := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				total += t.nodes[id].brLen

				ch := t.nodes[id].children
				if len(ch) == 0 {
					steps = append(steps, Step{Leaf: id, Dist: total})
					continue
				}
				for i := len(ch) - 1; i >= 0; i-- {
					stack = append(stack, ch[i])
				}
			}
		}
		prev = a
	}
	return steps, nil
}
