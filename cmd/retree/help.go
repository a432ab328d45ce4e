// Copyright © 2026 The ReTree Authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package main

import "github.com/js-arias/command"

func init() {
	app.Add(treeFilesGuide)
}

var treeFilesGuide = &command.Command{
	Usage: "tree-files",
	Short: "about newick tree files",
	Long: `
ReTree reads and writes phylogenetic trees in the newick format, the
parenthetical notation used by most phylogenetic software. A tree file
contains a single rooted tree finished by a semicolon; internal nodes are
written as a parenthesized list of their children, each node can be followed
by a label, and each branch by a colon and the length of the branch:

	((A:1,B:1):1,(C:1,D:1):1);

Terminal labels are the names of the studied taxons and are expected, but not
required, to be unique in the tree. When a label is used several times, any
command that looks for the label will use the first node found in pre-order.

Internal node labels are optional; numeric internal labels produced by tree
inference programs are read as branch support values and preserved on output.
Branch lengths are optional; a branch without an explicit length is distinct
from a branch with a zero length, and counts as zero when path distances or
node depths are calculated.

Commands that transform a tree (restrict, remove, binarize, reroot, sample)
print the resulting tree in newick format to the standard output, or to the
file indicated with the --output flag. Commands that measure a tree (ltt,
walk, lca, dist, terms) print a tab-delimited report instead.
	`,
}
