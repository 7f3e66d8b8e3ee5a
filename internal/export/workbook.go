// Package export writes calculation results to engineering
// deliverables: spreadsheet workbooks and PDF reports.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gopile/internal/capacity"
	"github.com/alexiusacademia/gopile/internal/params"
)

// WriteWorkbook writes the sweep inputs and results to an xlsx
// workbook: an Inputs sheet with the scalar parameters and layer
// table, and a Capacity sheet with one length column and one capacity
// column per diameter.
func WriteWorkbook(doc *params.Document, curves []capacity.Curve, path string) error {
	if len(curves) == 0 {
		return fmt.Errorf("no curves to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	const inputs = "Inputs"
	f.SetSheetName(f.GetSheetName(0), inputs)

	rows := [][]interface{}{
		{"parameter", "value"},
		{"diameter_min", doc.Params.DiameterMin},
		{"diameter_max", doc.Params.DiameterMax},
		{"length_min", doc.Params.LengthMin},
		{"length_max", doc.Params.LengthMax},
		{"reduction_factor", doc.Params.ReductionFactor},
		{"three_d_embed", doc.Params.ThreeDEmbed},
		{"skin_friction_only", doc.Params.SkinFrictionOnly},
		{},
		{"name", "top_depth (m)", "skin_friction (kPa)", "end_bearing (kPa)"},
	}
	for _, l := range doc.Layers {
		rows = append(rows, []interface{}{l.Name, l.TopDepth, l.SkinFriction, l.EndBearing})
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(inputs, cell, &row); err != nil {
			return err
		}
	}

	const sheet = "Capacity"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	header := []interface{}{"length (m)"}
	for _, c := range curves {
		header = append(header, fmt.Sprintf("D=%.1fm (kN)", c.Diameter))
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	// All curves share the same length series by construction.
	for i, pt := range curves[0].Points {
		row := []interface{}{pt.Length}
		for _, c := range curves {
			row = append(row, c.Points[i].Capacity)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}
