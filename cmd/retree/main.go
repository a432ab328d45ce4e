// Copyright © 2026 The ReTree Authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// ReTree is a tool to restructure,
// sample,
// and measure rooted phylogenetic trees.
package main

import (
	"github.com/js-arias/command"
	"github.com/phylotools/retree/cmd/retree/binarize"
	"github.com/phylotools/retree/cmd/retree/dist"
	"github.com/phylotools/retree/cmd/retree/lca"
	"github.com/phylotools/retree/cmd/retree/ltt"
	"github.com/phylotools/retree/cmd/retree/remove"
	"github.com/phylotools/retree/cmd/retree/reroot"
	"github.com/phylotools/retree/cmd/retree/restrict"
	"github.com/phylotools/retree/cmd/retree/sample"
	"github.com/phylotools/retree/cmd/retree/terms"
	"github.com/phylotools/retree/cmd/retree/walk"
)

var app = &command.Command{
	Usage: "retree <command> [<argument>...]",
	Short: "a tool to restructure and measure phylogenetic trees",
}

func init() {
	app.Add(binarize.Command)
	app.Add(dist.Command)
	app.Add(lca.Command)
	app.Add(ltt.Command)
	app.Add(remove.Command)
	app.Add(reroot.Command)
	app.Add(restrict.Command)
	app.Add(sample.Command)
	app.Add(terms.Command)
	app.Add(walk.Command)
}

func main() {
	app.Main()
}
