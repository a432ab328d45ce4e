// Copyright © 2026 The ReTree Authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

import "slices"

// A Pair is an unordered pair of terminals
// with the path distance between them.
type Pair struct {
	// Labels of the terminals,
	// with From before To in alphabetical order
	From, To string

	// Sum of the branch lengths
	// on the path between the terminals
	Dist float64

	// True if both terminals
	// are children of the same node
	Sister bool
}

// Pairs returns the path distance
// between every pair of terminals of the tree,
// in alphabetical order.
// If a label is used by several terminals,
// only the first terminal in pre-order is used.
func (t *Tree) Pairs() []Pair {
	ids := make(map[string]int)
	var terms []string
	for _, id := range t.Leaves() {
		l := t.nodes[id].label
		if l == "" {
			continue
		}
		if _, ok := ids[l]; ok {
			continue
		}
		ids[l] = id
		terms = append(terms, l)
	}
	slices.Sort(terms)

	var ps []Pair
	for i, a := range terms {
		na := ids[a]
		for _, b := range terms[i+1:] {
			nb := ids[b]
			d, _ := t.Distance(na, nb)
			ps = append(ps, Pair{
				From:   a,
				To:     b,
				Dist:   d,
				Sister: t.nodes[na].parent == t.nodes[nb].parent,
			})
		}
	}
	return ps
}
