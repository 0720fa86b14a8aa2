// Copyright 2024 The Damload Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/renyuxiang19/Dam-load-computation-Jp-standard/dam"
	"github.com/renyuxiang19/Dam-load-computation-Jp-standard/inp"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "examples/simple", ".dam", true)
	verbose := io.ArgToBool(1, true)

	// message
	if verbose {
		io.PfWhite("\nDamload -- loads on a gravity dam cross-section\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
		))
	}

	// input data
	dat, err := inp.ReadDam(fnamepath)
	if err != nil {
		chk.Panic("cannot read input data:\n%v", err)
	}

	// engine
	var eng dam.Engine
	if err = eng.Init(dat); err != nil {
		chk.Panic("cannot initialise engine:\n%v", err)
	}

	// compute loads
	if err = eng.Compute(dat.Loads...); err != nil {
		chk.Panic("computation failed:\n%v", err)
	}
	if verbose {
		io.Pf("section %q: computed load kinds %v\n", dat.Name, dat.Loads)
	}

	// output
	if dat.Write {
		if err = eng.Write(dat.Loads...); err != nil {
			chk.Panic("cannot write results:\n%v", err)
		}
	}
	if dat.Plot {
		if err = eng.PlotAll(dat.Loads...); err != nil {
			chk.Panic("cannot plot results:\n%v", err)
		}
	}
}
