// Copyright © 2026 The ReTree Authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/phylotools/retree/tree"
)

// newScenarioTree returns the tree
// ((A:1,B:1):1,(C:1,D:1):1);
// with the IDs of its named terminals.
func newScenarioTree(t testing.TB) (*tree.Tree, map[string]int) {
	t.Helper()

	tr := tree.New()
	x := addNode(t, tr, tr.Root(), "", 1)
	a := addNode(t, tr, x, "A", 1)
	b := addNode(t, tr, x, "B", 1)
	y := addNode(t, tr, tr.Root(), "", 1)
	c := addNode(t, tr, y, "C", 1)
	d := addNode(t, tr, y, "D", 1)

	return tr, map[string]int{
		"A": a, "B": b, "C": c, "D": d,
		"X": x, "Y": y,
	}
}

func addNode(t testing.TB, tr *tree.Tree, parent int, label string, brLen float64) int {
	t.Helper()

	id, err := tr.Add(parent, label)
	if err != nil {
		t.Fatalf("unable to add node %q: %v", label, err)
	}
	if err := tr.SetLength(id, brLen); err != nil {
		t.Fatalf("unable to set branch length of %q: %v", label, err)
	}
	return id
}

func TestTree(t *testing.T) {
	tr, ids := newScenarioTree(t)

	if err := tr.Validate(); err != nil {
		t.Fatalf("invalid tree: %v", err)
	}
	if got := tr.Len(); got != 7 {
		t.Errorf("nodes: got %d, want %d", got, 7)
	}

	wantTerms := []string{"A", "B", "C", "D"}
	if got := tr.Terms(); !reflect.DeepEqual(got, wantTerms) {
		t.Errorf("terms: got %v, want %v", got, wantTerms)
	}

	if !tr.IsRoot(tr.Root()) {
		t.Errorf("node %d should be the root", tr.Root())
	}
	if tr.IsTerm(ids["X"]) {
		t.Errorf("node %d should be internal", ids["X"])
	}
	if !tr.IsTerm(ids["A"]) {
		t.Errorf("node %d should be a terminal", ids["A"])
	}
	if got := tr.Parent(ids["A"]); got != ids["X"] {
		t.Errorf("parent of A: got %d, want %d", got, ids["X"])
	}
	if got := tr.Parent(tr.Root()); got != -1 {
		t.Errorf("parent of root: got %d, want %d", got, -1)
	}

	wantChildren := []int{ids["C"], ids["D"]}
	if got := tr.Children(ids["Y"]); !reflect.DeepEqual(got, wantChildren) {
		t.Errorf("children of Y: got %v, want %v", got, wantChildren)
	}

	if _, ok := tr.Length(tr.Root()); ok {
		t.Errorf("root should not have a branch length")
	}
	if got, ok := tr.Length(ids["A"]); !ok || got != 1 {
		t.Errorf("length of A: got %.6f [%v], want %.6f", got, ok, 1.0)
	}
}

func TestTraversals(t *testing.T) {
	tr, ids := newScenarioTree(t)

	wantAnc := []int{ids["X"], tr.Root()}
	if got := tr.Ancestors(ids["A"]); !reflect.DeepEqual(got, wantAnc) {
		t.Errorf("ancestors of A: got %v, want %v", got, wantAnc)
	}
	if got := tr.Ancestors(tr.Root()); got != nil {
		t.Errorf("ancestors of root: got %v, want nil", got)
	}

	wantDesc := []int{ids["A"], ids["B"]}
	if got := tr.Descendants(ids["X"]); !reflect.DeepEqual(got, wantDesc) {
		t.Errorf("descendants of X: got %v, want %v", got, wantDesc)
	}

	wantNodes := []int{tr.Root(), ids["X"], ids["A"], ids["B"], ids["Y"], ids["C"], ids["D"]}
	if got := tr.Nodes(); !reflect.DeepEqual(got, wantNodes) {
		t.Errorf("nodes: got %v, want %v", got, wantNodes)
	}

	wantLeaves := []int{ids["A"], ids["B"], ids["C"], ids["D"]}
	if got := tr.Leaves(); !reflect.DeepEqual(got, wantLeaves) {
		t.Errorf("leaves: got %v, want %v", got, wantLeaves)
	}
}

func TestDepthDistance(t *testing.T) {
	tr, ids := newScenarioTree(t)

	tests := map[string]struct {
		node  int
		depth float64
	}{
		"root": {node: tr.Root(), depth: 0},
		"X":    {node: ids["X"], depth: 1},
		"A":    {node: ids["A"], depth: 2},
	}
	for name, test := range tests {
		if got := tr.Depth(test.node); math.Abs(got-test.depth) > 1e-10 {
			t.Errorf("depth of %s: got %.6f, want %.6f", name, got, test.depth)
		}
	}

	dist := map[string]struct {
		a, b int
		d    float64
	}{
		"A-B": {a: ids["A"], b: ids["B"], d: 2},
		"A-C": {a: ids["A"], b: ids["C"], d: 4},
		"A-X": {a: ids["A"], b: ids["X"], d: 1},
		"A-A": {a: ids["A"], b: ids["A"], d: 0},
	}
	for name, test := range dist {
		got, err := tr.Distance(test.a, test.b)
		if err != nil {
			t.Fatalf("distance %s: unexpected error: %v", name, err)
		}
		if math.Abs(got-test.d) > 1e-10 {
			t.Errorf("distance %s: got %.6f, want %.6f", name, got, test.d)
		}
	}

	if _, err := tr.Distance(ids["A"], 1000); !errors.Is(err, tree.ErrNotFound) {
		t.Errorf("distance to an unknown node: got error %v, want %v", err, tree.ErrNotFound)
	}
}

func TestMRCA(t *testing.T) {
	tr, ids := newScenarioTree(t)

	tests := map[string]struct {
		nodes []int
		want  int
	}{
		"sisters":     {nodes: []int{ids["A"], ids["B"]}, want: ids["X"]},
		"cousins":     {nodes: []int{ids["A"], ids["B"], ids["C"]}, want: tr.Root()},
		"all":         {nodes: []int{ids["A"], ids["B"], ids["C"], ids["D"]}, want: tr.Root()},
		"single node": {nodes: []int{ids["A"]}, want: ids["X"]},
		"with anc":    {nodes: []int{ids["A"], ids["X"]}, want: ids["X"]},
	}
	for name, test := range tests {
		got, err := tr.MRCA(test.nodes...)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if got != test.want {
			t.Errorf("%s: got node %d, want %d", name, got, test.want)
		}
	}

	if _, err := tr.MRCA(); !errors.Is(err, tree.ErrInvalidArgument) {
		t.Errorf("empty input: got error %v, want %v", err, tree.ErrInvalidArgument)
	}
	if _, err := tr.MRCA(tr.Root()); !errors.Is(err, tree.ErrInvalidArgument) {
		t.Errorf("root as single input: got error %v, want %v", err, tree.ErrInvalidArgument)
	}
	if _, err := tr.MRCA(ids["A"], 1000); !errors.Is(err, tree.ErrNotFound) {
		t.Errorf("unknown node: got error %v, want %v", err, tree.ErrNotFound)
	}
}

func TestByLabel(t *testing.T) {
	tr, ids := newScenarioTree(t)

	got, err := tr.ByLabel("C")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != ids["C"] {
		t.Errorf("label %q: got node %d, want %d", "C", got, ids["C"])
	}

	if _, err := tr.ByLabel("Z"); !errors.Is(err, tree.ErrNotFound) {
		t.Errorf("unknown label: got error %v, want %v", err, tree.ErrNotFound)
	}

	// labels are not unique:
	// the first node in pre-order wins
	addNode(t, tr, ids["Y"], "A", 1)
	if got, _ := tr.ByLabel("A"); got != ids["A"] {
		t.Errorf("repeated label %q: got node %d, want %d", "A", got, ids["A"])
	}
}
