// Copyright © 2026 The ReTree Authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package ltt

import (
	"github.com/phylotools/retree/tree"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// plotProfile draws the profile as a step line,
// with a constant branch count along each bin.
func plotProfile(prof []tree.Bin) error {
	p := plot.New()
	p.X.Label.Text = "depth"
	p.Y.Label.Text = "branches"

	pts := make(plotter.XYs, 0, 2*len(prof))
	for _, b := range prof {
		pts = append(pts, plotter.XY{X: b.Min, Y: float64(b.Branches)})
		pts = append(pts, plotter.XY{X: b.Max, Y: float64(b.Branches)})
	}

	ln, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	ln.LineStyle = plotter.DefaultLineStyle
	p.Add(ln)

	return p.Save(6*vg.Inch, 4*vg.Inch, plotFile)
}
