// Copyright 2024 The Damload Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/plt"

	"github.com/renyuxiang19/Dam-load-computation-Jp-standard/prs"
)

// PlotFaceLoad saves a figure of one face load profile, pressure against
// depth below the surface with both axes inverted for readability
func PlotFaceLoad(dirout, fnkey string, p *prs.Profile, label string) {
	plt.Reset(true, &plt.A{WidthPt: 280, Prop: 1.6})
	plt.Plot(p.Pressure, p.Position, &plt.A{C: "b", Ls: "-"})
	plt.Gll(label+" [kN/m²]", "depth [m]", nil)
	plt.PyCmds("plt.gca().invert_xaxis()\nplt.gca().invert_yaxis()\n")
	plt.Save(dirout, fnkey)
}

// PlotBaseLoad saves a figure of the uplift profile, distance from the
// upstream edge against pressure with the pressure axis inverted
func PlotBaseLoad(dirout, fnkey string, p *prs.Profile) {
	plt.Reset(true, &plt.A{WidthPt: 500, Prop: 0.4})
	plt.Plot(p.Position, p.Pressure, &plt.A{C: "b", Ls: "-"})
	plt.Gll("distance [m]", "uplift pressure [kN/m²]", nil)
	plt.PyCmds("plt.gca().invert_yaxis()\n")
	plt.Save(dirout, fnkey)
}
