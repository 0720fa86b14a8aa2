// Copyright 2024 The Damload Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prof

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_face01(tst *testing.T) {

	chk.PrintTitle("face01. height→offset lookup")

	var face Face
	err := face.Init([]float64{0, 4.9, 4.9}, []float64{0, 20, 63.5})
	if err != nil {
		tst.Errorf("Init failed: %v", err)
		return
	}
	chk.Float64(tst, "Ymin", 1e-17, face.Ymin(), 0)
	chk.Float64(tst, "Ymax", 1e-17, face.Ymax(), 63.5)

	for _, tc := range []struct{ h, x float64 }{
		{0, 0},
		{10, 2.45},
		{20, 4.9}, // breakpoint: exact control value
		{40, 4.9},
		{63.5, 4.9},
	} {
		x, err := face.Offset(tc.h)
		if err != nil {
			tst.Errorf("Offset(%g) failed: %v", tc.h, err)
			return
		}
		chk.Float64(tst, io.Sf("Offset(%g)", tc.h), 1e-15, x, tc.x)
	}

	// no extrapolation
	if _, err := face.Offset(-1); err == nil {
		tst.Errorf("error expected below the face")
		return
	}
	if _, err := face.Offset(64); err == nil {
		tst.Errorf("error expected above the face")
		return
	}
}

func Test_face02(tst *testing.T) {

	chk.PrintTitle("face02. slope angles")

	var face Face
	err := face.Init([]float64{0, 4.9, 4.9}, []float64{0, 20, 63.5})
	if err != nil {
		tst.Errorf("Init failed: %v", err)
		return
	}

	// pointwise: lower segment leans, upper segment is vertical
	lower := math.Atan(4.9/20.0) * 180.0 / math.Pi
	ang, err := face.SlopeAngle(10)
	if err != nil {
		tst.Errorf("SlopeAngle(10) failed: %v", err)
		return
	}
	chk.Float64(tst, "SlopeAngle(10)", 1e-14, ang, lower)
	ang, err = face.SlopeAngle(40)
	if err != nil {
		tst.Errorf("SlopeAngle(40) failed: %v", err)
		return
	}
	chk.Float64(tst, "SlopeAngle(40)", 1e-17, ang, 0)
	ang, err = face.SlopeAngle(63.5) // top point repeats the last segment
	if err != nil {
		tst.Errorf("SlopeAngle(63.5) failed: %v", err)
		return
	}
	chk.Float64(tst, "SlopeAngle(63.5)", 1e-17, ang, 0)
	if _, err := face.SlopeAngle(-1); err == nil {
		tst.Errorf("error expected below the face")
		return
	}

	// sampled heights, descending from the crest
	heights := []float64{63.5, 40, 20, 10, 0}
	angles, err := face.SlopeAngles(heights)
	if err != nil {
		tst.Errorf("SlopeAngles failed: %v", err)
		return
	}
	chk.Array(tst, "angles", 1e-14, angles, []float64{0, 0, lower, lower, lower})
}

func Test_face03(tst *testing.T) {

	chk.PrintTitle("face03. degenerate and invalid geometry")

	// zero vertical run reads as a near-90° slope
	angles, err := SlopeAngles([]float64{0, 5}, []float64{10, 10})
	if err != nil {
		tst.Errorf("SlopeAngles failed: %v", err)
		return
	}
	chk.Float64(tst, "flat step angle", 1e-9, angles[0], 90)
	chk.Float64(tst, "repeated last angle", 1e-9, angles[1], 90)

	// non-monotonic heights
	var face Face
	if err := face.Init([]float64{0, 1, 2}, []float64{0, 10, 10}); err == nil {
		tst.Errorf("error expected for non-monotonic heights")
		return
	}
	if err := face.Init([]float64{0, 1}, []float64{0}); err == nil {
		tst.Errorf("error expected for mismatched slices")
		return
	}
}
