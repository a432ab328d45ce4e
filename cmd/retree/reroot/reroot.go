// Copyright © 2026 The ReTree Authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package reroot implements a command
// to set a new root for a tree.
package reroot

import (
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/phylotools/retree/newick"
	"github.com/phylotools/retree/tree"
)

var Command = &command.Command{
	Usage: `reroot [--fraction <value>]
	[-o|--output <tree-file>] <tree-file> <node>`,
	Short: "set a new root for a tree",
	Long: `
Command reroot reads a tree in newick format and sets a new root on the
branch that connects the indicated node with its parent. The branch is split
in two segments, inserting a new node that becomes the root of the tree; the
parent-child direction on the path from the old root to the new root is
inverted, so the result is a single rooted tree.

The first argument of the command is the name of the tree file. The second
argument is the label of the node whose incoming branch will hold the new
root; the command fails if the label is not in the tree.

By default the branch is split at its midpoint. Use the flag --fraction to
define a different split point, as the fraction of the branch length measured
from the named node.

The resulting tree is printed in newick format to the standard output. Use
the flag --output, or -o, to define an output file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var fraction float64
var output string

func setFlags(c *command.Command) {
	c.Flags().Float64Var(&fraction, "fraction", 0.5, "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 2 {
		return c.UsageError("expecting tree file and node label")
	}

	t, err := readTree(args[0])
	if err != nil {
		return err
	}

	id, err := t.ByLabel(args[1])
	if err != nil {
		return fmt.Errorf("reroot: %v", err)
	}
	if err := t.Reroot(id, fraction); err != nil {
		return fmt.Errorf("reroot: node %q: %v", args[1], err)
	}

	if output == "" {
		return newick.Write(c.Stdout(), t)
	}
	return writeTree(output, t)
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

func writeTree(name string, t *tree.Tree) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := newick.Write(f, t); err != nil {
		return fmt.Errorf("while writing to %q: %v", name, err)
	}
	return nil
}
