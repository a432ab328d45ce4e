// Copyright © 2026 The ReTree Authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package dist implements a command to report
// the path distance between the terminals of a tree.
package dist

import (
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/phylotools/retree/newick"
	"github.com/phylotools/retree/tree"
)

var Command = &command.Command{
	Usage: "dist [--sisters] <tree-file>",
	Short: "report the distance between the terminals of a tree",
	Long: `
Command dist reads a tree in newick format and reports the path distance
between every pair of terminals, that is the sum of the branch lengths on
the path that joins the pair through its most recent common ancestor. Each
unordered pair is reported once, with the terminals in alphabetical order.

The argument of the command is the name of the tree file.

The report is a tab-delimited table printed in the standard output, with a
row per terminal pair and a column for each terminal of the pair, followed
by the distance between them. If the flag --sisters is defined, an
additional column will report 1 for the pairs whose terminals are children
of the same node, and 0 for any other pair.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var sisters bool

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&sisters, "sisters", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting tree file")
	}

	t, err := readTree(args[0])
	if err != nil {
		return err
	}

	for _, p := range t.Pairs() {
		if sisters {
			v := 0
			if p.Sister {
				v = 1
			}
			fmt.Fprintf(c.Stdout(), "%s\t%s\t%.6f\t%d\n", p.From, p.To, p.Dist, v)
			continue
		}
		fmt.Fprintf(c.Stdout(), "%s\t%s\t%.6f\n", p.From, p.To, p.Dist)
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
