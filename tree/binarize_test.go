// Copyright © 2026 The ReTree Authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree_test

import (
	"math"
	"reflect"
	"testing"

	"github.com/phylotools/retree/tree"
)

func TestBinarize(t *testing.T) {
	tr := tree.New()
	for _, l := range []string{"A", "B", "C", "D", "E"} {
		addNode(t, tr, tr.Root(), l, 1)
	}

	depths := make(map[string]float64)
	for _, id := range tr.Leaves() {
		depths[tr.Label(id)] = tr.Depth(id)
	}

	tr.Binarize()
	if err := tr.Validate(); err != nil {
		t.Fatalf("invalid tree after binarize: %v", err)
	}

	for _, id := range tr.Nodes() {
		if got := len(tr.Children(id)); got > 2 {
			t.Errorf("node %d: got %d children, want at most 2", id, got)
		}
	}

	// the terminals and their depths are unchanged
	wantTerms := []string{"A", "B", "C", "D", "E"}
	if got := tr.Terms(); !reflect.DeepEqual(got, wantTerms) {
		t.Errorf("terms: got %v, want %v", got, wantTerms)
	}
	for _, id := range tr.Leaves() {
		l := tr.Label(id)
		if got := tr.Depth(id); math.Abs(got-depths[l]) > 1e-10 {
			t.Errorf("depth of %q: got %.6f, want %.6f", l, got, depths[l])
		}
	}

	// sibling order is preserved
	first := tr.Children(tr.Root())[0]
	if got := tr.Label(first); got != "A" {
		t.Errorf("first child of root: got %q, want %q", got, "A")
	}
}

func TestBinarizeIdempotent(t *testing.T) {
	tr := tree.New()
	n1 := addNode(t, tr, tr.Root(), "", 1)
	for _, l := range []string{"A", "B", "C"} {
		addNode(t, tr, n1, l, 1)
	}
	for _, l := range []string{"D", "E", "F"} {
		addNode(t, tr, tr.Root(), l, 2)
	}

	tr.Binarize()
	want := treeShape(tr)

	tr.Binarize()
	if got := treeShape(tr); !reflect.DeepEqual(got, want) {
		t.Errorf("binarize is not idempotent: got %v, want %v", got, want)
	}
}

func TestBinarizeBifurcating(t *testing.T) {
	tr, _ := newScenarioTree(t)
	want := treeShape(tr)

	tr.Binarize()
	if got := treeShape(tr); !reflect.DeepEqual(got, want) {
		t.Errorf("bifurcating tree changed: got %v, want %v", got, want)
	}
}
