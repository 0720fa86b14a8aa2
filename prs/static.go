// Copyright 2024 The Damload Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prs

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"

	"github.com/renyuxiang19/Dam-load-computation-Jp-standard/prof"
)

// Static implements the hydrostatic pressure on the upstream face:
// p = d・gw at depth d below the water surface
type Static struct {
	H  float64 // water depth from surface to base [m]
	Gw float64 // unit weight of water [kN/m³]
}

// Init initialises the model from parameters {h, gw}
func (o *Static) Init(prms dbf.Params) error {
	o.Gw = GwWater
	for _, p := range prms {
		switch p.N {
		case "h":
			o.H = p.V
		case "gw":
			o.Gw = p.V
		default:
			return chk.Err("invalid argument: static model: parameter named %q is unknown", p.N)
		}
	}
	if o.H <= 0 {
		return chk.Err("invalid argument: static model: water depth must be positive (h=%g)", o.H)
	}
	return nil
}

// Compute samples the hydrostatic pressure profile at np evenly spaced
// heights from the water surface down to the lowest sampled height of
// the face. Profile positions are depths below the surface, ascending.
func (o Static) Compute(face *prof.Face, np int) (*Profile, error) {
	if np < 2 {
		return nil, chk.Err("invalid argument: static model: need at least 2 samples (np=%d)", np)
	}
	heights := utl.LinSpace(o.H, face.Ymin(), np)
	res := newProfile(np)
	for i, y := range heights {
		d := o.H - y
		res.Position[i] = d
		res.Pressure[i] = d * o.Gw
	}
	return res, nil
}
