// Copyright 2024 The Damload Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.dam) JSON file
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/renyuxiang19/Dam-load-computation-Jp-standard/prs"
)

// FaceData holds the control points of the upstream face polyline, with
// the origin at the upstream edge of the base
type FaceData struct {
	X []float64 `json:"x"` // horizontal offsets [m]
	Y []float64 `json:"y"` // heights above the base [m], strictly increasing
}

// Dam holds all input data for the load analysis of one gravity dam
// cross-section
type Dam struct {

	// identification
	Name   string `json:"name"`   // section name; used as output file key
	Desc   string `json:"desc"`   // description of the analysis
	DirOut string `json:"dirout"` // directory for output; e.g. /tmp/damload

	// geometry
	Face   FaceData `json:"face"`   // upstream face control points
	Length float64  `json:"length"` // base length from upstream to downstream edge [m]

	// site parameters
	DepthUp   float64 `json:"depthup"`   // upstream water depth above the base [m]
	DepthDown float64 `json:"depthdown"` // downstream water depth above the base [m]
	DepthMud  float64 `json:"depthmud"`  // mud depth above the base [m]; 0 means no mud load
	Drain     float64 `json:"drain"`     // distance from the upstream edge to the drainage gallery [m]; 0 means no gallery
	K         float64 `json:"k"`         // seismic design coefficient
	GwWater   float64 `json:"gwwater"`   // unit weight of water [kN/m³]
	GwMud     float64 `json:"gwmud"`     // submerged unit weight of mud [kN/m³]
	Ce        float64 `json:"ce"`        // mud pressure coefficient (0.4–0.6)
	Relief    float64 `json:"relief"`    // uplift relief factor (> 1)

	// run options
	Np       int      `json:"np"`       // number of sample points per profile
	Loads    []string `json:"loads"`    // load kinds to compute; empty means all applicable
	Offset   float64  `json:"offset"`   // position offset added on export
	UnitMult float64  `json:"unitmult"` // pressure unit multiplier applied on export
	Write    bool     `json:"write"`    // write CSV output files
	Xlsx     bool     `json:"xlsx"`     // write one XLSX workbook with all profiles
	Plot     bool     `json:"plot"`     // save plot figures

	// derived
	Key string `json:"-"` // filename key of the input file
}

// SetDefault sets default values before unmarshalling
func (o *Dam) SetDefault() {
	o.K = 1.5
	o.GwWater = prs.GwWater
	o.GwMud = prs.GwMud
	o.Ce = 0.5
	o.Relief = 1.1
	o.Np = 100
	o.UnitMult = 1.0
}

// ReadDam reads one .dam JSON input file
func ReadDam(fnpath string) (*Dam, error) {

	// read file
	b, err := os.ReadFile(fnpath)
	if err != nil {
		return nil, chk.Err("cannot read dam input file %q: %v", fnpath, err)
	}

	// decode with defaults
	o := new(Dam)
	o.SetDefault()
	if err := json.Unmarshal(b, o); err != nil {
		return nil, chk.Err("cannot unmarshal dam input file %q: %v", fnpath, err)
	}

	// filename key and derived defaults
	o.Key = io.FnKey(filepath.Base(fnpath))
	if o.Name == "" {
		o.Name = o.Key
	}
	if o.DirOut == "" {
		o.DirOut = "/tmp/damload/" + o.Key
	}
	if len(o.Loads) == 0 {
		o.Loads = []string{"dynamic", "static", "buoyancy"}
		if o.DepthMud > 0 {
			o.Loads = append(o.Loads, "mud")
		}
	}
	return o, nil
}
