// Copyright 2024 The Damload Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prs

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"

	"github.com/renyuxiang19/Dam-load-computation-Jp-standard/prof"
)

// Mud implements the sediment (mud) pressure on the upstream face,
// decomposed along the local slope angle θ at depth d below the mud
// surface:
//
//    pv = -gw・d・sin(θ)
//    ph = ce・gw・d・cos(θ)
//
// The vertical component carries a flipped sign so that the
// destabilising mud load follows the sign convention of the other
// vertical loads. The resultant normal pressure is √(pv²+ph²); see
// Resultant.
type Mud struct {
	H  float64 // mud depth above the base [m]
	Gw float64 // submerged unit weight of mud [kN/m³]
	Ce float64 // mud pressure coefficient (0.4–0.6)
}

// Init initialises the model from parameters {h, gw, ce}
func (o *Mud) Init(prms dbf.Params) error {
	o.Gw = GwMud
	o.Ce = 0.5
	for _, p := range prms {
		switch p.N {
		case "h":
			o.H = p.V
		case "gw":
			o.Gw = p.V
		case "ce":
			o.Ce = p.V
		default:
			return chk.Err("invalid argument: mud model: parameter named %q is unknown", p.N)
		}
	}
	if o.H <= 0 {
		return chk.Err("invalid argument: mud model: mud depth must be positive (h=%g)", o.H)
	}
	return nil
}

// Compute samples the vertical and horizontal mud pressure components at
// np evenly spaced heights from the mud surface down to the lowest
// sampled height of the face. Profile positions are depths below the mud
// surface, ascending.
func (o Mud) Compute(face *prof.Face, np int) (vert, horz *Profile, err error) {
	if np < 2 {
		return nil, nil, chk.Err("invalid argument: mud model: need at least 2 samples (np=%d)", np)
	}
	heights := utl.LinSpace(o.H, face.Ymin(), np)
	angles, err := face.SlopeAngles(heights)
	if err != nil {
		return nil, nil, err
	}
	vert = newProfile(np)
	horz = newProfile(np)
	for i, y := range heights {
		d := o.H - y
		θ := angles[i] * math.Pi / 180.0
		vert.Position[i] = d
		horz.Position[i] = d
		vert.Pressure[i] = -o.Gw * d * math.Sin(θ)
		horz.Pressure[i] = o.Ce * o.Gw * d * math.Cos(θ)
	}
	return
}
