// Copyright © 2026 The ReTree Authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

import (
	"fmt"
	"math"
)

// zeroTol is the tolerance used to clamp
// bin boundaries built by repeated subtraction.
const zeroTol = 1e-10

// A Bin is a depth interval of a tree
// with the number of branches in existence
// at the upper bound of the interval.
type Bin struct {
	// Branches in existence
	// at the upper bound of the interval
	Branches int

	// Bounds of the depth interval
	Min, Max float64
}

// LTT returns the lineage through time profile of the tree:
// the interval from the root
// to the depth of the deepest node
// is divided into the given number of equal sized bins,
// and the number of branches in existence
// is counted at the upper bound of each bin.
func (t *Tree) LTT(bins int) ([]Bin, error) {
	if bins <= 0 {
		return nil, fmt.Errorf("bin number %d: %w", bins, ErrInvalidArgument)
	}

	depth := make([]float64, len(t.nodes))
	var height float64
	for _, id := range t.Nodes() {
		n := t.nodes[id]
		if n.parent >= 0 {
			depth[id] = depth[n.parent] + n.brLen
		}
		if depth[id] > height {
			height = depth[id]
		}
	}

	width := height / float64(bins)
	bounds := make([]float64, bins+1)
	v := height
	for i := bins; i >= 0; i-- {
		if math.Abs(v) < zeroTol {
			v = 0
		}
		bounds[i] = v
		v -= width
	}

	prof := make([]Bin, 0, bins)
	for i := 1; i <= bins; i++ {
		prof = append(prof, Bin{
			Branches: t.branchesAt(bounds[i], depth),
			Min:      bounds[i-1],
			Max:      bounds[i],
		})
	}
	return prof, nil
}

// branchesAt counts the branches in existence
// at the indicated depth.
// Each branch that ends at or before the depth adds one;
// a branch that ends at an internal node
// is superseded by the branches of its children,
// so it is discounted.
// The count is never smaller than one,
// the implicit lineage of the root.
//
// The traversal uses an explicit stack,
// so it is safe on very unbalanced trees.
func (t *Tree) branchesAt(u float64, depth []float64) int {
	count := 0
	stack := []int{t.root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, c := range t.nodes[id].children {
			if depth[c] > u {
				continue
			}
			count++
			if len(t.nodes[c].children) > 0 {
				count--
			}
			stack = append(stack, c)
		}
	}
	if count < 1 {
		count = 1
	}
	return count
}
