// Copyright © 2026 The ReTree Authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package lca implements a command to report
// the most recent common ancestor of a set of nodes.
package lca

import (
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/phylotools/retree/newick"
	"github.com/phylotools/retree/tree"
)

var Command = &command.Command{
	Usage: "lca <tree-file> <node>...",
	Short: "report the most recent common ancestor of a set of nodes",
	Long: `
Command lca reads a tree in newick format and reports the most recent common
ancestor of the indicated nodes. For a single node the reported ancestor is
the parent of the node.

The first argument of the command is the name of the tree file. The remaining
arguments are the labels of the nodes. A label not found in the tree is
reported to the standard error and skipped.

The command prints the ID of the ancestor, its label (that might be empty
for an internal node), and its depth, that is the sum of the branch lengths
from the root to the ancestor, as a tab-delimited row in the standard
output.
	`,
	Run: run,
}

func run(c *command.Command, args []string) error {
	if len(args) < 2 {
		return c.UsageError("expecting tree file and node labels")
	}

	t, err := readTree(args[0])
	if err != nil {
		return err
	}

	var ids []int
	for _, label := range args[1:] {
		id, err := t.ByLabel(label)
		if err != nil {
			fmt.Fprintf(c.Stderr(), "warning: %v\n", err)
			continue
		}
		ids = append(ids, id)
	}

	id, err := t.MRCA(ids...)
	if err != nil {
		return fmt.Errorf("lca: %v", err)
	}

	fmt.Fprintf(c.Stdout(), "%d\t%s\t%.6f\n", id, t.Label(id), t.Depth(id))
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
