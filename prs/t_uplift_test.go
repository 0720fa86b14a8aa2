// Copyright 2024 The Damload Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prs

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

func Test_uplift01(tst *testing.T) {

	chk.PrintTitle("uplift01. no drainage gallery: two control points")

	var mdl Uplift
	err := mdl.Init(dbf.Params{
		&dbf.P{N: "hu", V: 58.5},
		&dbf.P{N: "hd", V: 0},
		&dbf.P{N: "length", V: 56},
		&dbf.P{N: "gw", V: 9.8},
		&dbf.P{N: "relief", V: 1.1},
	})
	if err != nil {
		tst.Errorf("Init failed: %v", err)
		return
	}

	dis, prs := mdl.ControlPoints()
	if len(dis) != 2 {
		tst.Errorf("2 control points expected (%d found)", len(dis))
		return
	}
	io.Pforan("control points: dis=%v prs=%v\n", dis, prs)

	// upstream face: one-third-reduction rule ≈ 210.2 kN/m²
	p0, err := mdl.At(0)
	if err != nil {
		tst.Errorf("At(0) failed: %v", err)
		return
	}
	chk.Float64(tst, "p(0)", 1e-12, p0, 0.3333*1.1*58.5*9.8)
	chk.Float64(tst, "p(0) magnitude", 0.05, p0, 210.2)

	// downstream face
	pL, err := mdl.At(56)
	if err != nil {
		tst.Errorf("At(56) failed: %v", err)
		return
	}
	chk.Float64(tst, "p(L)", 1e-17, pL, 0)
}

func Test_uplift02(tst *testing.T) {

	chk.PrintTitle("uplift02. drainage gallery: three control points")

	var mdl Uplift
	err := mdl.Init(dbf.Params{
		&dbf.P{N: "hu", V: 40},
		&dbf.P{N: "hd", V: 0},
		&dbf.P{N: "length", V: 50},
		&dbf.P{N: "drain", V: 20},
	})
	if err != nil {
		tst.Errorf("Init failed: %v", err)
		return
	}

	dis, prs := mdl.ControlPoints()
	if len(dis) != 3 {
		tst.Errorf("3 control points expected (%d found)", len(dis))
		return
	}
	io.Pforan("control points: dis=%v prs=%v\n", dis, prs)

	// upstream face keeps the full head
	p0, err := mdl.At(0)
	if err != nil {
		tst.Errorf("At(0) failed: %v", err)
		return
	}
	chk.Float64(tst, "p(0)", 1e-12, p0, 40*9.8)

	// drain line
	pa, err := mdl.At(20)
	if err != nil {
		tst.Errorf("At(20) failed: %v", err)
		return
	}
	chk.Float64(tst, "p(drain)", 1e-12, pa, 0.2*1.1*40*9.8)

	// linear between control points
	pm, err := mdl.At(10)
	if err != nil {
		tst.Errorf("At(10) failed: %v", err)
		return
	}
	chk.Float64(tst, "p(10)", 1e-12, pm, (40*9.8+0.2*1.1*40*9.8)/2.0)

	// downstream face
	pL, err := mdl.At(50)
	if err != nil {
		tst.Errorf("At(50) failed: %v", err)
		return
	}
	chk.Float64(tst, "p(L)", 1e-17, pL, 0)

	// strictly outside the base
	if _, err := mdl.At(-0.1); err == nil {
		tst.Errorf("error expected upstream of the base")
		return
	}
	if _, err := mdl.At(50.1); err == nil {
		tst.Errorf("error expected downstream of the base")
		return
	}
}

func Test_uplift03(tst *testing.T) {

	chk.PrintTitle("uplift03. sampled profile and idempotence")

	var mdl Uplift
	err := mdl.Init(dbf.Params{
		&dbf.P{N: "hu", V: 30},
		&dbf.P{N: "hd", V: 5},
		&dbf.P{N: "length", V: 40},
	})
	if err != nil {
		tst.Errorf("Init failed: %v", err)
		return
	}

	a, err := mdl.Compute(5)
	if err != nil {
		tst.Errorf("first Compute failed: %v", err)
		return
	}
	b, err := mdl.Compute(5)
	if err != nil {
		tst.Errorf("second Compute failed: %v", err)
		return
	}
	chk.Array(tst, "positions", 1e-17, a.Position, b.Position)
	chk.Array(tst, "pressures", 1e-17, a.Pressure, b.Pressure)

	pu := 30 * 9.8
	pd := 5 * 9.8
	p0 := pd + 0.3333*1.1*(pu-pd)
	chk.Array(tst, "sampled positions", 1e-14, a.Position, []float64{0, 10, 20, 30, 40})
	chk.Float64(tst, "p(0)", 1e-12, a.Pressure[0], p0)
	chk.Float64(tst, "p(20)", 1e-12, a.Pressure[2], (p0+pd)/2.0)
	chk.Float64(tst, "p(L)", 1e-12, a.Pressure[4], pd)
}

func Test_uplift04(tst *testing.T) {

	chk.PrintTitle("uplift04. invalid configuration")

	var mdl Uplift
	if err := mdl.Init(dbf.Params{&dbf.P{N: "hu", V: 10}, &dbf.P{N: "length", V: 0}}); err == nil {
		tst.Errorf("error expected for zero base length")
		return
	}
	if err := mdl.Init(dbf.Params{&dbf.P{N: "hu", V: -1}, &dbf.P{N: "length", V: 10}}); err == nil {
		tst.Errorf("error expected for negative depth")
		return
	}
	err := mdl.Init(dbf.Params{
		&dbf.P{N: "hu", V: 10},
		&dbf.P{N: "length", V: 10},
		&dbf.P{N: "drain", V: 10},
	})
	if err == nil {
		tst.Errorf("error expected for drain at the downstream edge")
		return
	}
	err = mdl.Init(dbf.Params{
		&dbf.P{N: "hu", V: 10},
		&dbf.P{N: "length", V: 10},
		&dbf.P{N: "drain", V: 0},
	})
	if err == nil {
		tst.Errorf("error expected for drain at the upstream edge")
		return
	}
}
