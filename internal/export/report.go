package export

import (
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/alexiusacademia/gopile/internal/capacity"
	"github.com/alexiusacademia/gopile/internal/soil"
)

// WriteReport writes an A4 PDF report of a single capacity
// calculation: the pile geometry, the normalized stratigraphy and the
// resulting capacity components.
func WriteReport(profile *soil.Profile, result *capacity.Result, diameter, length float64, threeD, skinOnly bool, path string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Pile Axial Capacity Report")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Pile Geometry")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Diameter: %.2f m", diameter))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Embedded length (toe depth): %.2f m", length))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("3D embedment rule: %t    Skin friction only: %t", threeD, skinOnly))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Stratigraphy")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 10)
	colWidths := []float64{50, 35, 35, 35}
	headers := []string{"Unit", "Top (m)", "fs (kPa)", "qb (kPa)"}
	for i, h := range headers {
		pdf.CellFormat(colWidths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, l := range profile.Layers() {
		pdf.CellFormat(colWidths[0], 6, l.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[1], 6, fmt.Sprintf("%.2f", l.TopDepth), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[2], 6, fmt.Sprintf("%.1f", l.SkinFriction), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[3], 6, fmt.Sprintf("%.1f", l.EndBearing), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Results")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Skin friction component: %.2f kN", result.SkinFriction))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("End bearing component: %.2f kN", result.EndBearing))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Geotechnical reduction factor: %.2f", result.ReductionFactor))
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Factored capacity: %.2f kN", result.Total))

	return pdf.OutputFileAndClose(path)
}
