// Copyright © 2026 The ReTree Authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package sample implements a command
// to sample the terminals of a tree at random.
package sample

import (
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/js-arias/command"
	"github.com/phylotools/retree/newick"
	"github.com/phylotools/retree/tree"
)

var Command = &command.Command{
	Usage: `sample [--size <number>] [--seed <number>]
	[-o|--output <tree-file>] <tree-file>`,
	Short: "sample the terminals of a tree at random",
	Long: `
Command sample reads a tree in newick format and reduces it to a random
sample of its terminals. The sample is drawn with reservoir sampling, so
every terminal has the same probability of being selected, and the sampled
tree keeps the path lengths between the selected terminals.

The argument of the command is the name of the tree file.

By default half of the terminals will be sampled. Use the flag --size to
define the number of sampled terminals; the command fails if the indicated
size is greater than the number of terminals in the tree.

By default each run draws a different sample. Use the flag --seed to define
the seed of the random number generator, so a sample can be reproduced.

The resulting tree is printed in newick format to the standard output. Use
the flag --output, or -o, to define an output file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var size int
var seed uint64
var output string

func setFlags(c *command.Command) {
	c.Flags().IntVar(&size, "size", 0, "")
	c.Flags().Uint64Var(&seed, "seed", 0, "")
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

	if seed == 0 {
		seed = rand.Uint64()
	}
	rnd := rand.New(rand.NewPCG(seed, seed))

	ids, err := t.Sample(size, rnd)
	if err != nil {
		return fmt.Errorf("sample: %v", err)
	}
	if err := t.Restrict(ids); err != nil {
		return fmt.Errorf("sample: %v", err)
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
