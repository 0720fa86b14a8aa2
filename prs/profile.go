// Copyright 2024 The Damload Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package prs implements the pressure load models acting on a gravity
// dam: hydrostatic and seismic (Zanger) water pressures and mud pressure
// on the upstream face, and uplift (buoyancy) pressure on the base
package prs

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Default unit weights [kN/m³]
const (
	GwWater = 9.8  // water
	GwMud   = 12.0 // submerged mud
)

// Profile holds one computed load profile as parallel position/pressure
// samples, ordered by ascending position. Position is depth below the
// water (or mud) surface for face loads [m] and horizontal distance from
// the upstream edge for uplift [m]; pressure is in [kN/m²].
type Profile struct {
	Position []float64
	Pressure []float64
}

// newProfile allocates a profile with n samples
func newProfile(n int) *Profile {
	return &Profile{
		Position: make([]float64, n),
		Pressure: make([]float64, n),
	}
}

// Resultant combines vertical and horizontal component profiles into the
// total pressure normal to the face: √(v²+h²) per sample
func Resultant(v, h *Profile) (*Profile, error) {
	n := len(v.Position)
	if len(h.Position) != n || len(v.Pressure) != n || len(h.Pressure) != n {
		return nil, chk.Err("invalid argument: component profiles must have the same number of samples (%d and %d)", n, len(h.Position))
	}
	res := newProfile(n)
	copy(res.Position, v.Position)
	for i := 0; i < n; i++ {
		res.Pressure[i] = math.Sqrt(v.Pressure[i]*v.Pressure[i] + h.Pressure[i]*h.Pressure[i])
	}
	return res, nil
}
