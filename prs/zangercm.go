// Copyright 2024 The Damload Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prs

import (
	"github.com/cpmech/gosl/chk"

	"github.com/renyuxiang19/Dam-load-computation-Jp-standard/prof"
)

// Zanger's empirical slope-angle to pressure-coefficient curve. The
// angle is measured in degrees from vertical; the table is fixed design
// data and shared read-only by all dynamic pressure computations.
var (
	zangerAngles = []float64{90, 80, 70, 60, 50, 40, 30, 20, 10, 0}
	zangerCoefs  = []float64{0.025, 0.125, 0.225, 0.31, 0.4, 0.48, 0.55, 0.62, 0.67, 0.72}
	zangerCurve  prof.LinInterp
)

func init() {
	if err := zangerCurve.Init(zangerAngles, zangerCoefs); err != nil {
		chk.Panic("cannot initialise Zanger coefficient curve: %v", err)
	}
}

// Cm returns Zanger's pressure coefficient for a face slope angle given
// in degrees from vertical. Tabulated angles return the exact tabulated
// coefficient; angles outside [0°,90°] are an error.
func Cm(slopeDeg float64) (float64, error) {
	return zangerCurve.F(slopeDeg)
}
