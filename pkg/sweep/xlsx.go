package sweep

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// SaveXLSX writes the sweep to an xlsx workbook, one data sheet plus a
// sheet with the cross section the sweep was run for. Values are stored in
// base SI units.
func (r *Result) SaveXLSX(filename string) error {
	f := excelize.NewFile()

	sheet := "Sweep"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{
		"f [Hz]", "L [H/m]", "R [Ohm/m]", "C [F/m]", "G [S/m]",
		"Z0 [Ohm]", "alpha [1/m]", "beta [rad/m]", "v/c",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for i := range r.Freqs {
		row := i + 2
		values := []float64{
			r.Freqs[i], r.Ll[i], r.Rl[i], r.Cl[i], r.Gl[i],
			r.Z0[i], r.Alpha[i], r.Beta[i], r.Velocity[i],
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			f.SetCellValue(sheet, cell, v)
		}
	}

	geo := "Geometry"
	f.NewSheet(geo)
	entries := []struct {
		name  string
		value float64
	}{
		{"epsilon_r", r.Params.EpsilonR},
		{"tan_delta", r.Params.TanDelta},
		{"kappa [S/m]", r.Params.Kappa},
		{"w [m]", r.Params.W},
		{"s [m]", r.Params.S},
		{"t [m]", r.Params.T},
		{"w_g [m]", r.Params.Wg},
		{"lambda_0 [m]", r.Params.Lambda0},
	}
	for i, e := range entries {
		f.SetCellValue(geo, fmt.Sprintf("A%d", i+1), e.name)
		f.SetCellValue(geo, fmt.Sprintf("B%d", i+1), e.value)
	}

	return f.SaveAs(filename)
}
