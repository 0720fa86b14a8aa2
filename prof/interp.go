// Copyright 2024 The Damload Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package prof implements the upstream face geometry of a gravity dam
// cross-section and the monotonic interpolation tables used by the
// pressure models
package prof

import (
	"sort"

	"github.com/cpmech/gosl/chk"
)

// LinInterp implements a piecewise-linear table over strictly monotonic
// breakpoints. Evaluation never extrapolates: queries outside the
// breakpoint range return an error.
type LinInterp struct {
	X []float64 // breakpoint positions, strictly increasing
	Y []float64 // table values at the breakpoints
}

// Init initialises the table. xx must be strictly monotonic; a strictly
// decreasing xx is accepted and stored reversed.
func (o *LinInterp) Init(xx, yy []float64) error {
	n := len(xx)
	if n < 2 {
		return chk.Err("invalid argument: table needs at least 2 breakpoints (%d given)", n)
	}
	if len(yy) != n {
		return chk.Err("invalid argument: table needs parallel slices (len(xx)=%d, len(yy)=%d)", n, len(yy))
	}
	o.X = make([]float64, n)
	o.Y = make([]float64, n)
	if xx[n-1] < xx[0] {
		for i := 0; i < n; i++ {
			o.X[i] = xx[n-1-i]
			o.Y[i] = yy[n-1-i]
		}
	} else {
		copy(o.X, xx)
		copy(o.Y, yy)
	}
	for i := 1; i < n; i++ {
		if o.X[i] <= o.X[i-1] {
			return chk.Err("invalid argument: table breakpoints must be strictly monotonic (x[%d]=%g, x[%d]=%g)", i-1, o.X[i-1], i, o.X[i])
		}
	}
	return nil
}

// Xmin returns the lower end of the table domain
func (o LinInterp) Xmin() float64 { return o.X[0] }

// Xmax returns the upper end of the table domain
func (o LinInterp) Xmax() float64 { return o.X[len(o.X)-1] }

// F evaluates the table at x. Breakpoints return the exact tabulated
// value; interior points are linearly interpolated.
func (o LinInterp) F(x float64) (float64, error) {
	n := len(o.X)
	if x < o.X[0] || x > o.X[n-1] {
		return 0, chk.Err("out of range: x=%g is outside table domain [%g,%g]", x, o.X[0], o.X[n-1])
	}
	i := sort.SearchFloat64s(o.X, x)
	if i < n && o.X[i] == x {
		return o.Y[i], nil
	}
	m := (o.Y[i] - o.Y[i-1]) / (o.X[i] - o.X[i-1])
	return o.Y[i-1] + m*(x-o.X[i-1]), nil
}
