// Copyright © 2026 The ReTree Authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package remove implements a command
// to remove terminals from a tree.
package remove

import (
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/phylotools/retree/newick"
	"github.com/phylotools/retree/tree"
)

var Command = &command.Command{
	Usage: "remove [-o|--output <tree-file>] <tree-file> <term>...",
	Short: "remove terminals from a tree",
	Long: `
Command remove reads a tree in newick format and removes the indicated
terminals, keeping all the other terminals of the tree. Internal nodes left
with a single child are merged with that child, adding the branch lengths, so
the path length between any two remaining terminals is unchanged.

The first argument of the command is the name of the tree file. The remaining
arguments are the labels of the terminals to be removed. A label not found in
the tree is reported to the standard error and skipped.

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
	if len(args) < 2 {
		return c.UsageError("expecting tree file and terminal labels")
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
	if len(ids) == 0 {
		return fmt.Errorf("remove: no valid terminal label")
	}

	if err := t.Delete(ids); err != nil {
		return fmt.Errorf("remove: %v", err)
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
