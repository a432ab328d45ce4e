// Copyright © 2026 The ReTree Authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree_test

import (
	"errors"
	"math"
	"testing"

	"github.com/phylotools/retree/tree"
)

func TestLTT(t *testing.T) {
	tr, _ := newScenarioTree(t)

	got, err := tr.LTT(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []tree.Bin{
		{Branches: 1, Min: 0, Max: 1},
		{Branches: 4, Min: 1, Max: 2},
	}
	if len(got) != len(want) {
		t.Fatalf("bins: got %d, want %d", len(got), len(want))
	}
	for i, b := range got {
		if b.Branches != want[i].Branches {
			t.Errorf("bin %d: got %d branches, want %d", i+1, b.Branches, want[i].Branches)
		}
		if math.Abs(b.Min-want[i].Min) > 1e-10 || math.Abs(b.Max-want[i].Max) > 1e-10 {
			t.Errorf("bin %d: got bounds [%.6f, %.6f], want [%.6f, %.6f]", i+1, b.Min, b.Max, want[i].Min, want[i].Max)
		}
	}
}

func TestLTTMonotonic(t *testing.T) {
	// (((A:1,B:1):1,C:1):1,D:1);
	tr := tree.New()
	n1 := addNode(t, tr, tr.Root(), "", 1)
	n2 := addNode(t, tr, n1, "", 1)
	addNode(t, tr, n2, "A", 1)
	addNode(t, tr, n2, "B", 1)
	addNode(t, tr, n1, "C", 1)
	addNode(t, tr, tr.Root(), "D", 1)

	got, err := tr.LTT(6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prev := 0
	for i, b := range got {
		if b.Branches < prev {
			t.Errorf("bin %d: got %d branches, smaller than previous %d", i+1, b.Branches, prev)
		}
		prev = b.Branches
	}
	if last := got[len(got)-1]; last.Branches != 4 {
		t.Errorf("last bin: got %d branches, want %d", last.Branches, 4)
	}
	if math.Abs(got[0].Min) > 1e-10 {
		t.Errorf("first bin: got lower bound %.6f, want %.6f", got[0].Min, 0.0)
	}
}

func TestLTTErrors(t *testing.T) {
	tr, _ := newScenarioTree(t)

	if _, err := tr.LTT(0); !errors.Is(err, tree.ErrInvalidArgument) {
		t.Errorf("zero bins: got error %v, want %v", err, tree.ErrInvalidArgument)
	}
	if _, err := tr.LTT(-3); !errors.Is(err, tree.ErrInvalidArgument) {
		t.Errorf("negative bins: got error %v, want %v", err, tree.ErrInvalidArgument)
	}
}
