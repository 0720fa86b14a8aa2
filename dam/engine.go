// Copyright 2024 The Damload Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package dam implements the load computation engine for one gravity
// dam cross-section
package dam

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/renyuxiang19/Dam-load-computation-Jp-standard/inp"
	"github.com/renyuxiang19/Dam-load-computation-Jp-standard/out"
	"github.com/renyuxiang19/Dam-load-computation-Jp-standard/prof"
	"github.com/renyuxiang19/Dam-load-computation-Jp-standard/prs"
)

// Load kinds
const (
	KindDynamic  = "dynamic"  // seismic dynamic water pressure (Zanger)
	KindStatic   = "static"   // hydrostatic water pressure
	KindMud      = "mud"      // sediment pressure (vertical and horizontal components)
	KindBuoyancy = "buoyancy" // uplift pressure along the base
)

// Kinds lists the accepted load kinds
var Kinds = []string{KindDynamic, KindStatic, KindMud, KindBuoyancy}

// Engine computes load profiles for one dam cross-section. The input
// data and face geometry are immutable after Init; computed profiles are
// cached in Results keyed by kind ("mud" caches two profiles, "mud-v"
// and "mud-h").
type Engine struct {
	Inp     *inp.Dam                // input data
	Face    prof.Face               // upstream face geometry
	Results map[string]*prs.Profile // computed profiles keyed by kind
}

// Init initialises the engine for one cross-section
func (o *Engine) Init(dat *inp.Dam) error {
	if err := o.Face.Init(dat.Face.X, dat.Face.Y); err != nil {
		return err
	}
	o.Inp = dat
	o.Results = make(map[string]*prs.Profile)
	return nil
}

// Compute computes the requested load kinds and caches the resulting
// profiles. Kinds are independent of each other; an unrecognised kind is
// an error.
func (o *Engine) Compute(kinds ...string) error {
	for _, kind := range kinds {
		switch kind {

		case KindDynamic:
			var mdl prs.Dynamic
			err := mdl.Init(dbf.Params{
				&dbf.P{N: "h", V: o.Inp.DepthUp},
				&dbf.P{N: "k", V: o.Inp.K},
				&dbf.P{N: "gw", V: o.Inp.GwWater},
			})
			if err != nil {
				return err
			}
			res, err := mdl.Compute(&o.Face, o.Inp.Np)
			if err != nil {
				return err
			}
			o.Results[kind] = res

		case KindStatic:
			var mdl prs.Static
			err := mdl.Init(dbf.Params{
				&dbf.P{N: "h", V: o.Inp.DepthUp},
				&dbf.P{N: "gw", V: o.Inp.GwWater},
			})
			if err != nil {
				return err
			}
			res, err := mdl.Compute(&o.Face, o.Inp.Np)
			if err != nil {
				return err
			}
			o.Results[kind] = res

		case KindMud:
			var mdl prs.Mud
			err := mdl.Init(dbf.Params{
				&dbf.P{N: "h", V: o.Inp.DepthMud},
				&dbf.P{N: "gw", V: o.Inp.GwMud},
				&dbf.P{N: "ce", V: o.Inp.Ce},
			})
			if err != nil {
				return err
			}
			vert, horz, err := mdl.Compute(&o.Face, o.Inp.Np)
			if err != nil {
				return err
			}
			o.Results[kind+"-v"] = vert
			o.Results[kind+"-h"] = horz

		case KindBuoyancy:
			var mdl prs.Uplift
			prms := dbf.Params{
				&dbf.P{N: "hu", V: o.Inp.DepthUp},
				&dbf.P{N: "hd", V: o.Inp.DepthDown},
				&dbf.P{N: "length", V: o.Inp.Length},
				&dbf.P{N: "gw", V: o.Inp.GwWater},
				&dbf.P{N: "relief", V: o.Inp.Relief},
			}
			if o.Inp.Drain > 0 {
				prms = append(prms, &dbf.P{N: "drain", V: o.Inp.Drain})
			}
			if err := mdl.Init(prms); err != nil {
				return err
			}
			res, err := mdl.Compute(o.Inp.Np)
			if err != nil {
				return err
			}
			o.Results[kind] = res

		default:
			return chk.Err("invalid argument: load kind %q is not available; accepted kinds are %v", kind, Kinds)
		}
	}
	return nil
}

// Profile returns one cached profile; nil if the kind has not been
// computed. For mud use the "mud-v" and "mud-h" keys.
func (o *Engine) Profile(key string) *prs.Profile {
	return o.Results[key]
}

// MudResultant combines the cached mud component profiles into the total
// pressure normal to the face
func (o *Engine) MudResultant() (*prs.Profile, error) {
	vert := o.Results[KindMud+"-v"]
	horz := o.Results[KindMud+"-h"]
	if vert == nil || horz == nil {
		return nil, chk.Err("invalid argument: mud profiles have not been computed")
	}
	return prs.Resultant(vert, horz)
}

// resultKeys maps one requested kind to its cached profile keys
func resultKeys(kind string) []string {
	if kind == KindMud {
		return []string{KindMud + "-v", KindMud + "-h"}
	}
	return []string{kind}
}

// poslabel returns the position column label for one cached profile key
func poslabel(key string) string {
	if key == KindBuoyancy {
		return "distance"
	}
	return "depth"
}

// Write exports the cached profiles of the given kinds as CSV files
// (and, if enabled, one XLSX workbook), using the position offset and
// unit multiplier from the input options
func (o *Engine) Write(kinds ...string) error {
	return o.WriteWith(o.Inp.Offset, o.Inp.UnitMult, kinds...)
}

// WriteWith exports the cached profiles of the given kinds with an
// explicit position offset and pressure unit multiplier
func (o *Engine) WriteWith(offset, mult float64, kinds ...string) error {
	var names []string
	var profiles []*prs.Profile
	var labels []string
	for _, kind := range kinds {
		for _, key := range resultKeys(kind) {
			res := o.Results[key]
			if res == nil {
				return chk.Err("invalid argument: load kind %q has not been computed", kind)
			}
			out.WriteCSV(o.Inp.DirOut, o.Inp.Name+"-"+key, res, poslabel(key), offset, mult)
			names = append(names, key)
			profiles = append(profiles, res)
			labels = append(labels, poslabel(key))
		}
	}
	if o.Inp.Xlsx {
		return out.WriteXLSX(o.Inp.DirOut, o.Inp.Name, names, profiles, labels, offset, mult)
	}
	return nil
}

// PlotAll saves figures of the cached profiles of the given kinds
func (o *Engine) PlotAll(kinds ...string) error {
	for _, kind := range kinds {
		for _, key := range resultKeys(kind) {
			res := o.Results[key]
			if res == nil {
				return chk.Err("invalid argument: load kind %q has not been computed", kind)
			}
			if key == KindBuoyancy {
				out.PlotBaseLoad(o.Inp.DirOut, o.Inp.Name+"-"+key, res)
				continue
			}
			out.PlotFaceLoad(o.Inp.DirOut, o.Inp.Name+"-"+key, res, key+" pressure")
		}
	}
	return nil
}
