// Copyright © 2026 The ReTree Authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package ltt implements a command to report
// the lineage through time profile of a tree.
package ltt

import (
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/phylotools/retree/newick"
	"github.com/phylotools/retree/tree"
)

var Command = &command.Command{
	Usage: "ltt [--bins <number>] [--plot <plot-file>] <tree-file>",
	Short: "report the lineage through time profile of a tree",
	Long: `
Command ltt reads a tree in newick format and reports the number of branches
in existence over the depth of the tree. The interval between the root and
the deepest node is divided into a set of equal sized bins, and the branches
are counted at the upper bound of each bin.

The argument of the command is the name of the tree file.

By default 10 bins will be used. Use the flag --bins to define a different
number of bins.

The report is a tab-delimited table printed in the standard output, with the
following columns:

	bin       the bin number, starting at 1
	branches  the number of branches at the upper bound of the bin
	min       the lower bound of the bin
	max       the upper bound of the bin

If the flag --plot is defined, a plot of the profile will be saved with the
indicated file name; the image format is taken from the file extension (for
example .png or .svg).
	`,
	SetFlags: setFlags,
	Run:      run,
}

var bins int
var plotFile string

func setFlags(c *command.Command) {
	c.Flags().IntVar(&bins, "bins", 10, "")
	c.Flags().StringVar(&plotFile, "plot", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting tree file")
	}

	t, err := readTree(args[0])
	if err != nil {
		return err
	}

	prof, err := t.LTT(bins)
	if err != nil {
		return fmt.Errorf("ltt: %v", err)
	}

	for i, b := range prof {
		fmt.Fprintf(c.Stdout(), "%d\t%d\t%.6f\t%.6f\n", i+1, b.Branches, b.Min, b.Max)
	}

	if plotFile == "" {
		return nil
	}
	if err := plotProfile(prof); err != nil {
		return fmt.Errorf("ltt: while plotting to %q: %v", plotFile, err)
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
