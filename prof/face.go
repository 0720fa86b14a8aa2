// Copyright 2024 The Damload Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prof

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// minVrun replaces a zero vertical run between adjacent samples so the
// slope angle stays finite (a horizontal step reads as a near-90° slope)
const minVrun = 1e-18

// SlopeAngles computes the slope angle, in degrees from vertical, between
// consecutive (x,y) samples. The angle of the last interval is repeated
// for the final sample.
func SlopeAngles(x, y []float64) ([]float64, error) {
	n := len(x)
	if len(y) != n || n < 2 {
		return nil, chk.Err("invalid argument: slope computation needs parallel slices with at least 2 samples (len(x)=%d, len(y)=%d)", n, len(y))
	}
	ang := make([]float64, n)
	for i := 0; i < n-1; i++ {
		dy := y[i+1] - y[i]
		if dy == 0 {
			dy = minVrun
		}
		ang[i] = math.Atan((x[i+1]-x[i])/dy) * 180.0 / math.Pi
	}
	ang[n-1] = ang[n-2]
	return ang, nil
}

// Face holds the upstream wetted face of a gravity dam cross-section as
// an ordered polyline. The origin sits at the upstream edge of the base:
// X holds horizontal offsets and Y heights above the base. Y must be
// strictly increasing so that the height→offset mapping is single-valued.
// A Face is immutable after Init.
type Face struct {
	X   []float64 // horizontal offsets of the face control points [m]
	Y   []float64 // heights of the face control points [m], strictly increasing
	inv LinInterp // height→offset lookup
}

// Init initialises the face geometry, copying the given control points
func (o *Face) Init(x, y []float64) error {
	n := len(x)
	if len(y) != n || n < 2 {
		return chk.Err("invalid argument: face needs parallel slices with at least 2 control points (len(x)=%d, len(y)=%d)", n, len(y))
	}
	for i := 1; i < n; i++ {
		if y[i] <= y[i-1] {
			return chk.Err("invalid argument: face heights must be strictly increasing (y[%d]=%g, y[%d]=%g)", i-1, y[i-1], i, y[i])
		}
	}
	o.X = make([]float64, n)
	o.Y = make([]float64, n)
	copy(o.X, x)
	copy(o.Y, y)
	return o.inv.Init(o.Y, o.X)
}

// Ymin returns the lowest sampled height of the face
func (o Face) Ymin() float64 { return o.Y[0] }

// Ymax returns the highest sampled height of the face
func (o Face) Ymax() float64 { return o.Y[len(o.Y)-1] }

// Offset returns the horizontal offset of the face at the given height.
// Heights outside the sampled range are an error; no extrapolation.
func (o Face) Offset(height float64) (float64, error) {
	return o.inv.F(height)
}

// SlopeAngle returns the slope angle, in degrees from vertical, of the
// face segment containing the given height. The top control point takes
// the angle of the last segment.
func (o Face) SlopeAngle(height float64) (float64, error) {
	n := len(o.Y)
	if height < o.Y[0] || height > o.Y[n-1] {
		return 0, chk.Err("out of range: height=%g is outside face range [%g,%g]", height, o.Y[0], o.Y[n-1])
	}
	i := n - 2
	for j := 0; j < n-1; j++ {
		if height < o.Y[j+1] {
			i = j
			break
		}
	}
	return math.Atan((o.X[i+1]-o.X[i])/(o.Y[i+1]-o.Y[i])) * 180.0 / math.Pi, nil
}

// SlopeAngles returns the slope angles, in degrees from vertical, at each
// of the given sampled heights, from the offsets of consecutive samples
func (o Face) SlopeAngles(heights []float64) ([]float64, error) {
	xs := make([]float64, len(heights))
	for i, h := range heights {
		x, err := o.inv.F(h)
		if err != nil {
			return nil, err
		}
		xs[i] = x
	}
	return SlopeAngles(xs, heights)
}
