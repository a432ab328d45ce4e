// Copyright © 2026 The ReTree Authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package terms implements a command to print
// the list of terminals of a tree.
package terms

import (
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/phylotools/retree/newick"
	"github.com/phylotools/retree/tree"
)

var Command = &command.Command{
	Usage: "terms <tree-file>",
	Short: "print a list of the terminals of a tree",
	Long: `
Command terms reads a tree in newick format and prints the labels of its
terminals in the standard output, in alphabetical order.

The argument of the command is the name of the tree file.
	`,
	Run: run,
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting tree file")
	}

	t, err := readTree(args[0])
	if err != nil {
		return err
	}

	for _, term := range t.Terms() {
		fmt.Fprintf(c.Stdout(), "%s\n", term)
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
