// Copyright © 2026 The ReTree Authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package newick implements reading and writing
// of trees in the newick format.
//
// The syntax of the format is delegated
// to the gotree library;
// this package only maps gotree trees
// from and to the arena representation
// of the tree package.
package newick

import (
	"fmt"
	"io"

	gonewick "github.com/evolbioinfo/gotree/io/newick"
	gotree "github.com/evolbioinfo/gotree/tree"
	"github.com/phylotools/retree/tree"
)

// Read reads a single rooted tree
// in newick format.
// If the file contains several trees,
// only the first one is read.
func Read(r io.Reader) (*tree.Tree, error) {
	gt, err := gonewick.NewParser(r).Parse()
	if err != nil {
		return nil, fmt.Errorf("invalid newick tree: %v", err)
	}
	root := gt.Root()
	if root == nil {
		return nil, fmt.Errorf("invalid newick tree: tree without root")
	}

	// child edges of every node,
	// in sibling order
	children := make(map[*gotree.Node][]*gotree.Edge)
	for _, e := range gt.Edges() {
		children[e.Left()] = append(children[e.Left()], e)
	}

	t := tree.New()
	if nm := root.Name(); nm != "" {
		if err := t.SetLabel(t.Root(), nm); err != nil {
			return nil, err
		}
	}
	if err := copyNode(t, t.Root(), root, children); err != nil {
		return nil, err
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func copyNode(t *tree.Tree, id int, gn *gotree.Node, children map[*gotree.Node][]*gotree.Edge) error {
	for _, e := range children[gn] {
		cn := e.Right()
		c, err := t.Add(id, cn.Name())
		if err != nil {
			return err
		}
		if l := e.Length(); l != gotree.NIL_LENGTH {
			if err := t.SetLength(c, l); err != nil {
				return fmt.Errorf("on node %q: %v", cn.Name(), err)
			}
		}
		if s := e.Support(); s != gotree.NIL_SUPPORT {
			if err := t.SetSupport(c, s); err != nil {
				return err
			}
		}
		if err := copyNode(t, c, cn, children); err != nil {
			return err
		}
	}
	return nil
}

// Write writes a tree in newick format,
// with a line break after the tree.
// Branch lengths and support values
// set on the tree are preserved.
func Write(w io.Writer, t *tree.Tree) error {
	out := gotree.NewTree()
	root := out.NewNode()
	if l := t.Label(t.Root()); l != "" {
		root.SetName(l)
	}
	out.SetRoot(root)
	copyBack(out, root, t, t.Root())

	if _, err := fmt.Fprintf(w, "%s\n", out.Newick()); err != nil {
		return fmt.Errorf("while writing tree: %v", err)
	}
	return nil
}

func copyBack(out *gotree.Tree, gn *gotree.Node, t *tree.Tree, id int) {
	for _, c := range t.Children(id) {
		cn := out.NewNode()
		if l := t.Label(c); l != "" {
			cn.SetName(l)
		}
		e := out.ConnectNodes(gn, cn)
		if v, ok := t.Length(c); ok {
			e.SetLength(v)
		}
		if v, ok := t.Support(c); ok {
			e.SetSupport(v)
		}
		copyBack(out, cn, t, c)
	}
}
