// Copyright 2024 The Damload Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the export and plotting of computed load
// profiles; the core packages never depend on this one
package out

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/xuri/excelize/v2"

	"github.com/renyuxiang19/Dam-load-computation-Jp-standard/prs"
)

// WriteCSV writes one profile as two-column CSV with a header row. The
// position offset is added and the pressure multiplier applied before
// writing; samples keep their ascending-position order.
func WriteCSV(dirout, fnkey string, p *prs.Profile, poslabel string, offset, mult float64) {
	var b bytes.Buffer
	io.Ff(&b, "%s,pressure\n", poslabel)
	for i := range p.Position {
		io.Ff(&b, "%.4e,%.4e\n", p.Position[i]+offset, p.Pressure[i]*mult)
	}
	io.WriteFileVD(dirout, fnkey+".csv", &b)
}

// WriteXLSX writes one workbook with one sheet per profile. names,
// profiles and poslabels are parallel; the first name becomes the first
// sheet.
func WriteXLSX(dirout, fnkey string, names []string, profiles []*prs.Profile, poslabels []string, offset, mult float64) error {
	if len(names) == 0 {
		return chk.Err("invalid argument: workbook needs at least one profile")
	}
	if len(profiles) != len(names) || len(poslabels) != len(names) {
		return chk.Err("invalid argument: workbook needs parallel names/profiles/labels (%d, %d, %d)", len(names), len(profiles), len(poslabels))
	}
	f := excelize.NewFile()
	defer f.Close()
	for i, name := range names {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				return err
			}
		} else {
			if _, err := f.NewSheet(name); err != nil {
				return err
			}
		}
		if err := f.SetCellValue(name, "A1", poslabels[i]); err != nil {
			return err
		}
		if err := f.SetCellValue(name, "B1", "pressure"); err != nil {
			return err
		}
		for j := range profiles[i].Position {
			ca, err := excelize.CoordinatesToCellName(1, j+2)
			if err != nil {
				return err
			}
			cb, err := excelize.CoordinatesToCellName(2, j+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(name, ca, profiles[i].Position[j]+offset); err != nil {
				return err
			}
			if err := f.SetCellValue(name, cb, profiles[i].Pressure[j]*mult); err != nil {
				return err
			}
		}
	}
	if err := os.MkdirAll(dirout, 0777); err != nil {
		return chk.Err("cannot create output directory %q: %v", dirout, err)
	}
	fn := filepath.Join(dirout, fnkey+".xlsx")
	if err := f.SaveAs(fn); err != nil {
		return chk.Err("cannot save workbook %q: %v", fn, err)
	}
	io.Pf("file <%s> written\n", fn)
	return nil
}
