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

// Uplift implements the piecewise-linear uplift (buoyancy) pressure
// profile along the dam base. With pu = hu・gw and pd = hd・gw, two
// regimes exist:
//
//   no drainage gallery (two control points):
//     p(0) = pd + 0.3333・relief・(pu - pd)     p(L) = pd
//     (0.3333 is the one-third head-reduction rule, kept as the
//     truncated constant used in practice)
//
//   drainage gallery at distance a from the upstream edge (three
//   control points):
//     p(0) = pu     p(a) = pd + 0.2・relief・(pu - pd)     p(L) = pd
//
// Between control points the pressure varies linearly; positions outside
// [0,L] are an error.
type Uplift struct {
	Hu       float64 // upstream water depth [m]
	Hd       float64 // downstream water depth [m]
	L        float64 // base length [m]
	Drain    float64 // distance from the upstream edge to the drainage gallery [m]
	HasDrain bool    // drainage gallery present
	Gw       float64 // unit weight of water [kN/m³]
	Relief   float64 // relief factor (> 1)

	f prof.LinInterp // control-point interpolation
}

// Init initialises the model from parameters {hu, hd, length, gw,
// relief, drain}; supplying "drain" selects the drainage-gallery regime
func (o *Uplift) Init(prms dbf.Params) error {
	o.Gw = GwWater
	o.Relief = 1.1
	o.HasDrain = false
	for _, p := range prms {
		switch p.N {
		case "hu":
			o.Hu = p.V
		case "hd":
			o.Hd = p.V
		case "length":
			o.L = p.V
		case "drain":
			o.Drain = p.V
			o.HasDrain = true
		case "gw":
			o.Gw = p.V
		case "relief":
			o.Relief = p.V
		default:
			return chk.Err("invalid argument: uplift model: parameter named %q is unknown", p.N)
		}
	}
	if o.L <= 0 {
		return chk.Err("invalid argument: uplift model: base length must be positive (length=%g)", o.L)
	}
	if o.Hu < 0 || o.Hd < 0 {
		return chk.Err("invalid argument: uplift model: water depths must be non-negative (hu=%g, hd=%g)", o.Hu, o.Hd)
	}
	pu := o.Hu * o.Gw
	pd := o.Hd * o.Gw
	if o.HasDrain {
		if o.Drain <= 0 || o.Drain >= o.L {
			return chk.Err("invalid argument: uplift model: drain must lie strictly within the base (drain=%g, length=%g)", o.Drain, o.L)
		}
		return o.f.Init(
			[]float64{0, o.Drain, o.L},
			[]float64{pu, pd + 0.2*o.Relief*(pu-pd), pd},
		)
	}
	return o.f.Init(
		[]float64{0, o.L},
		[]float64{pd + 0.3333*o.Relief*(pu-pd), pd},
	)
}

// ControlPoints returns copies of the control-point positions and
// pressures of the profile
func (o Uplift) ControlPoints() (dis, prs []float64) {
	dis = make([]float64, len(o.f.X))
	prs = make([]float64, len(o.f.Y))
	copy(dis, o.f.X)
	copy(prs, o.f.Y)
	return
}

// At returns the uplift pressure at horizontal distance x from the
// upstream edge; x outside [0,L] is an error
func (o Uplift) At(x float64) (float64, error) {
	return o.f.F(x)
}

// Compute samples the uplift pressure profile at np evenly spaced
// positions over the base [0,L]
func (o Uplift) Compute(np int) (*Profile, error) {
	if np < 2 {
		return nil, chk.Err("invalid argument: uplift model: need at least 2 samples (np=%d)", np)
	}
	xx := utl.LinSpace(0, o.L, np)
	res := newProfile(np)
	for i, x := range xx {
		p, err := o.f.F(x)
		if err != nil {
			return nil, err
		}
		res.Position[i] = x
		res.Pressure[i] = p
	}
	return res, nil
}
