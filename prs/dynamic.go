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

// Dynamic implements Zanger's pseudo-static model for the seismic
// dynamic water pressure on the upstream face:
//
//    r  = d/h     r' = r・(2-r)
//    pd = cm・0.5・(r' + √r')・gw・k・h
//
// where d is the depth below the water surface and cm is the
// slope-dependent coefficient from Zanger's curve.
type Dynamic struct {
	H  float64 // water depth from surface to base [m]
	K  float64 // seismic design coefficient
	Gw float64 // unit weight of water [kN/m³]
}

// Init initialises the model from parameters {h, k, gw}
func (o *Dynamic) Init(prms dbf.Params) error {
	o.Gw = GwWater
	for _, p := range prms {
		switch p.N {
		case "h":
			o.H = p.V
		case "k":
			o.K = p.V
		case "gw":
			o.Gw = p.V
		default:
			return chk.Err("invalid argument: dynamic model: parameter named %q is unknown", p.N)
		}
	}
	if o.H <= 0 {
		return chk.Err("invalid argument: dynamic model: water depth must be positive (h=%g)", o.H)
	}
	return nil
}

// Calc computes the dynamic pressure at depth d below the water surface,
// for the slope coefficient cm. Depths outside [0,h] indicate an
// inconsistent configuration and are an error, not clamped.
func (o Dynamic) Calc(cm, d float64) (float64, error) {
	if d < 0 || d > o.H {
		return 0, chk.Err("numeric domain: sample depth d=%g is outside total depth [0,%g]", d, o.H)
	}
	r := d / o.H
	rr := r * (2.0 - r)
	shape := 0.5 * (rr + math.Sqrt(rr))
	return cm * shape * o.Gw * o.K * o.H, nil
}

// Compute samples the dynamic pressure profile at np evenly spaced
// heights from the water surface down to the lowest sampled height of
// the face. Profile positions are depths below the surface, ascending.
func (o Dynamic) Compute(face *prof.Face, np int) (*Profile, error) {
	if np < 2 {
		return nil, chk.Err("invalid argument: dynamic model: need at least 2 samples (np=%d)", np)
	}
	heights := utl.LinSpace(o.H, face.Ymin(), np)
	angles, err := face.SlopeAngles(heights)
	if err != nil {
		return nil, err
	}
	res := newProfile(np)
	for i, y := range heights {
		cm, err := Cm(angles[i])
		if err != nil {
			return nil, err
		}
		d := o.H - y
		p, err := o.Calc(cm, d)
		if err != nil {
			return nil, err
		}
		res.Position[i] = d
		res.Pressure[i] = p
	}
	return res, nil
}
