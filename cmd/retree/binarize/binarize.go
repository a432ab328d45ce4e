// Copyright © 2026 The ReTree Authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package binarize implements a command
// to resolve the multifurcations of a tree.
package binarize

import (
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/phylotools/retree/newick"
	"github.com/phylotools/retree/tree"
)

var Command = &command.Command{
	Usage: "binarize [-o|--output <tree-file>] <tree-file>",
	Short: "resolve the multifurcations of a tree",
	Long: `
Command binarize reads a tree in newick format and resolves all of its
multifurcations: for any node with more than two children, a new internal
node with a zero length branch is inserted, keeping the first child in place
and moving the remaining children under the new node, until every node has
at most two children. The order of the children is preserved, and a tree
that is already bifurcating is left unchanged.

The argument of the command is the name of the tree file.

The resulting tree is printed in newick format to the standard output. Use
the flag --output, or -o, to define an output file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var output string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting tree file")
	}

	t, err := readTree(args[0])
	if err != nil {
		return err
	}
	t.Binarize()

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
