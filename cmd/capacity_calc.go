package cmd

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gopile/internal/capacity"
	"github.com/alexiusacademia/gopile/internal/export"
	"github.com/alexiusacademia/gopile/internal/soil"
	"github.com/spf13/cobra"
)

var (
	// Calculation inputs
	calcDiameter float64
	calcLength   float64
	calcRF       float64
	calcThreeD   bool
	calcSkinOnly bool
	calcLayers   []string
	calcInput    string

	// Report option
	calcReportFile string
)

var capacityCalcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Compute the capacity of a single pile",
	Long: `Calculate the factored axial capacity of one pile given its diameter
and embedded length.

Skin friction is integrated over 0.5 m shaft segments; end bearing is
taken from the soil unit at the toe, optionally subject to the 3D
embedment mobilization rule (full end bearing only after the toe has
penetrated 3 pile diameters into the bearing unit).

Examples:
  # Single uniform layer, 0.6 m pile, 10 m embedment
  gopile capacity calc -d 0.6 -l 10 --layer "Clay:0:10:500"

  # Layers from a parameter file, 3D embedment rule, PDF report
  gopile capacity calc -d 0.9 -l 24 -i site.csv --three-d-embed -o report.pdf`,
	Run: runCapacityCalc,
}

func init() {
	capacityCmd.AddCommand(capacityCalcCmd)

	// Geometry flags
	capacityCalcCmd.Flags().Float64VarP(&calcDiameter, "diameter", "d", 0, "Pile diameter (m) [required]")
	capacityCalcCmd.Flags().Float64VarP(&calcLength, "length", "l", 0, "Embedded length / toe depth (m) [required]")

	// Engine flags
	capacityCalcCmd.Flags().Float64VarP(&calcRF, "reduction-factor", "r", 1.0, "Geotechnical reduction factor (0 to 1)")
	capacityCalcCmd.Flags().BoolVar(&calcThreeD, "three-d-embed", false, "Apply the 3D embedment mobilization rule")
	capacityCalcCmd.Flags().BoolVar(&calcSkinOnly, "skin-only", false, "Ignore end bearing entirely")

	// Soil input
	capacityCalcCmd.Flags().StringArrayVar(&calcLayers, "layer", nil, "Soil layer as name:top_depth:skin_friction:end_bearing (repeatable)")
	capacityCalcCmd.Flags().StringVarP(&calcInput, "input", "i", "", "Parameter file with layers (see 'gopile template')")

	capacityCalcCmd.MarkFlagRequired("diameter")
	capacityCalcCmd.MarkFlagRequired("length")

	// Report option
	capacityCalcCmd.Flags().StringVarP(&calcReportFile, "output", "o", "", "Export a PDF calculation report")
}

func runCapacityCalc(cmd *cobra.Command, args []string) {
	doc, err := loadLayers(calcInput, calcLayers)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	profile, err := soil.NewProfile(doc.Layers)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	engine := capacity.NewEngine()
	engine.ReductionFactor = calcRF
	engine.ThreeDEmbed = calcThreeD
	engine.SkinFrictionOnly = calcSkinOnly

	result, err := engine.ComputeOne(profile, calcDiameter, calcLength)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	// Print results
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     PILE AXIAL CAPACITY")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Pile Diameter (D):\t%.2f m\n", calcDiameter)
	fmt.Fprintf(w, "  Embedded Length (L):\t%.2f m\n", calcLength)
	fmt.Fprintf(w, "  Reduction Factor:\t%.2f\n", calcRF)
	fmt.Fprintf(w, "  3D Embedment Rule:\t%t\n", calcThreeD)
	fmt.Fprintf(w, "  Skin Friction Only:\t%t\n", calcSkinOnly)
	w.Flush()
	fmt.Println()

	fmt.Println("STRATIGRAPHY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Unit\tTop (m)\tBottom (m)\tfs (kPa)\tqb (kPa)\n")
	for _, l := range profile.Layers() {
		bottom := "∞"
		if !math.IsInf(l.BottomDepth, 1) {
			bottom = fmt.Sprintf("%.2f", l.BottomDepth)
		}
		fmt.Fprintf(w, "  %s\t%.2f\t%s\t%.1f\t%.1f\n", l.Name, l.TopDepth, bottom, l.SkinFriction, l.EndBearing)
	}
	w.Flush()
	fmt.Println()

	fmt.Println("RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Skin Friction Component:\t%.2f kN\n", result.SkinFriction)
	fmt.Fprintf(w, "  End Bearing Component:\t%.2f kN\n", result.EndBearing)
	w.Flush()
	fmt.Println()
	fmt.Printf("  ╔═════════════════════════════════════════╗\n")
	fmt.Printf("  ║  FACTORED CAPACITY = %.2f kN          \n", result.Total)
	fmt.Printf("  ╚═════════════════════════════════════════╝\n")
	fmt.Println()

	// Export report if requested
	if calcReportFile != "" {
		err := export.WriteReport(profile, result, calcDiameter, calcLength, calcThreeD, calcSkinOnly, calcReportFile)
		if err != nil {
			fmt.Printf("Error exporting report: %v\n", err)
		} else {
			fmt.Printf("Report exported to: %s\n", calcReportFile)
		}
	}
}
