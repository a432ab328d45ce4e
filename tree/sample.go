// Copyright © 2026 The ReTree Authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

import (
	"fmt"
	"math/rand/v2"
)

// Sample selects size terminals from the tree at random,
// using reservoir sampling
// over the terminals in pre-order.
// Each terminal has the same probability of being selected.
//
// If size is zero,
// half of the terminals will be selected.
// The random source must be given explicitly,
// so a run can be reproduced from a known seed.
func (t *Tree) Sample(size int, rnd *rand.Rand) ([]int, error) {
	leaves := t.Leaves()
	if size == 0 {
		size = len(leaves) / 2
	}
	if size < 0 {
		return nil, fmt.Errorf("sample size %d: %w", size, ErrInvalidArgument)
	}
	if size > len(leaves) {
		return nil, fmt.Errorf("sample size %d greater than %d terminals: %w", size, len(leaves), ErrInvalidArgument)
	}

	res := make([]int, size)
	copy(res, leaves[:size])
	for i := size; i < len(leaves); i++ {
		j := rnd.IntN(i + 1)
		if j < size {
			res[j] = leaves[i]
		}
	}
	return res, nil
}
