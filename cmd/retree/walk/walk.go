// Copyright © 2026 The ReTree Authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package walk implements a command
// to traverse a tree from a terminal.
package walk

import (
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/phylotools/retree/newick"
	"github.com/phylotools/retree/tree"
)

var Command = &command.Command{
	Usage: "walk <tree-file> <term>",
	Short: "traverse a tree from a terminal",
	Long: `
Command walk reads a tree in newick format and traverses it starting at the
indicated terminal: it walks up, node by node, to the root, and at each
ancestor it goes down into every subtree not yet visited, so every terminal
of the tree is discovered exactly once. The length of each branch is added to
a running distance the first time the branch is traversed; branches shared by
several terminals are counted only once.

The first argument of the command is the name of the tree file. The second
argument is the label of the starting terminal; the command fails if the
label is not a terminal of the tree.

The report is a tab-delimited table printed in the standard output, with a
row per terminal in discovery order, and the following columns:

	term      the label of the terminal
	distance  the running distance at the discovery of the terminal
	count     the number of terminals discovered so far
	`,
	Run: run,
}

func run(c *command.Command, args []string) error {
	if len(args) < 2 {
		return c.UsageError("expecting tree file and terminal label")
	}

	t, err := readTree(args[0])
	if err != nil {
		return err
	}

	id, err := t.ByLabel(args[1])
	if err != nil {
		return fmt.Errorf("walk: %v", err)
	}
	steps, err := t.Walk(id)
	if err != nil {
		return fmt.Errorf("walk: node %q: %v", args[1], err)
	}

	for i, s := range steps {
		fmt.Fprintf(c.Stdout(), "%s\t%.6f\t%d\n", t.Label(s.Leaf), s.Dist, i+1)
	}
	return nil
}

func readTree(name string) (*tree.Tree, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := newick.Read(f)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return t, nil
}
