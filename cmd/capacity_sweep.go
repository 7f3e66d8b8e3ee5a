package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gopile/internal/capacity"
	"github.com/alexiusacademia/gopile/internal/chart"
	"github.com/alexiusacademia/gopile/internal/export"
	"github.com/alexiusacademia/gopile/internal/soil"
	"github.com/spf13/cobra"
)

var (
	// Sweep bounds; zero means "take from the input document".
	sweepDMin  float64
	sweepDMax  float64
	sweepDStep float64
	sweepLMin  float64
	sweepLMax  float64
	sweepLStep float64

	sweepRF       float64
	sweepThreeD   bool
	sweepSkinOnly bool
	sweepLayers   []string
	sweepInput    string

	// Output options
	sweepShowGraph bool
	sweepTable     bool
	sweepChartFile string
	sweepXlsxFile  string
)

var capacitySweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Compute capacity curves over diameter and length ranges",
	Long: `Sweep the capacity calculation over ranges of pile diameter and
embedded length, producing one capacity-vs-length curve per diameter.

Default increments are 0.3 m for diameter and 2 m for length. Sweep
bounds given as flags override values from the input document.

Examples:
  # Curves for D 0.3-1.2 m, L 10-40 m from a site parameter file
  gopile capacity sweep -i site.csv --graph

  # Explicit bounds, chart image and spreadsheet export
  gopile capacity sweep --layer "Sand:0:25:800" \
    --d-min 0.3 --d-max 0.9 --l-min 6 --l-max 30 \
    -o curves.png -x curves.xlsx`,
	Run: runCapacitySweep,
}

func init() {
	capacityCmd.AddCommand(capacitySweepCmd)

	// Sweep bounds
	capacitySweepCmd.Flags().Float64Var(&sweepDMin, "d-min", 0, "Minimum pile diameter (m)")
	capacitySweepCmd.Flags().Float64Var(&sweepDMax, "d-max", 0, "Maximum pile diameter (m)")
	capacitySweepCmd.Flags().Float64Var(&sweepDStep, "d-step", capacity.DefaultDiameterStep, "Diameter increment (m)")
	capacitySweepCmd.Flags().Float64Var(&sweepLMin, "l-min", 0, "Minimum embedded length (m)")
	capacitySweepCmd.Flags().Float64Var(&sweepLMax, "l-max", 0, "Maximum embedded length (m)")
	capacitySweepCmd.Flags().Float64Var(&sweepLStep, "l-step", capacity.DefaultLengthStep, "Length increment (m)")

	// Engine flags
	capacitySweepCmd.Flags().Float64VarP(&sweepRF, "reduction-factor", "r", -1, "Geotechnical reduction factor (0 to 1, overrides input file)")
	capacitySweepCmd.Flags().BoolVar(&sweepThreeD, "three-d-embed", false, "Apply the 3D embedment mobilization rule")
	capacitySweepCmd.Flags().BoolVar(&sweepSkinOnly, "skin-only", false, "Ignore end bearing entirely")

	// Soil input
	capacitySweepCmd.Flags().StringArrayVar(&sweepLayers, "layer", nil, "Soil layer as name:top_depth:skin_friction:end_bearing (repeatable)")
	capacitySweepCmd.Flags().StringVarP(&sweepInput, "input", "i", "", "Parameter file with bounds and layers (see 'gopile template')")

	// Output options
	capacitySweepCmd.Flags().BoolVar(&sweepShowGraph, "graph", false, "Show ASCII capacity curves")
	capacitySweepCmd.Flags().BoolVar(&sweepTable, "table", true, "Print the capacity table")
	capacitySweepCmd.Flags().StringVarP(&sweepChartFile, "output", "o", "", "Export curve chart to file (png, svg, pdf)")
	capacitySweepCmd.Flags().StringVarP(&sweepXlsxFile, "xlsx", "x", "", "Export inputs and results to an xlsx workbook")
}

func runCapacitySweep(cmd *cobra.Command, args []string) {
	doc, err := loadLayers(sweepInput, sweepLayers)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	// Flag overrides on top of the document bounds.
	if cmd.Flags().Changed("d-min") {
		doc.Params.DiameterMin = sweepDMin
	}
	if cmd.Flags().Changed("d-max") {
		doc.Params.DiameterMax = sweepDMax
	}
	if cmd.Flags().Changed("l-min") {
		doc.Params.LengthMin = sweepLMin
	}
	if cmd.Flags().Changed("l-max") {
		doc.Params.LengthMax = sweepLMax
	}
	if sweepRF >= 0 {
		doc.Params.ReductionFactor = sweepRF
	}
	if cmd.Flags().Changed("three-d-embed") {
		doc.Params.ThreeDEmbed = sweepThreeD
	}
	if cmd.Flags().Changed("skin-only") {
		doc.Params.SkinFrictionOnly = sweepSkinOnly
	}

	profile, err := soil.NewProfile(doc.Layers)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	engine := capacity.NewEngine()
	engine.ReductionFactor = doc.Params.ReductionFactor
	engine.ThreeDEmbed = doc.Params.ThreeDEmbed
	engine.SkinFrictionOnly = doc.Params.SkinFrictionOnly

	sweep := capacity.Sweep{
		DiameterMin:  doc.Params.DiameterMin,
		DiameterMax:  doc.Params.DiameterMax,
		DiameterStep: sweepDStep,
		LengthMin:    doc.Params.LengthMin,
		LengthMax:    doc.Params.LengthMax,
		LengthStep:   sweepLStep,
	}

	curves, err := engine.ComputeSweep(profile, sweep)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if len(curves) == 0 || len(curves[0].Points) == 0 {
		fmt.Println("Error: empty sweep range")
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     PILE CAPACITY CURVES")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("SWEEP:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Diameter:\t%.2f m to %.2f m, step %.2f m\n", doc.Params.DiameterMin, doc.Params.DiameterMax, sweepDStep)
	fmt.Fprintf(w, "  Length:\t%.0f m to %.0f m, step %.0f m\n", doc.Params.LengthMin, doc.Params.LengthMax, sweepLStep)
	fmt.Fprintf(w, "  Reduction Factor:\t%.2f\n", doc.Params.ReductionFactor)
	fmt.Fprintf(w, "  3D Embedment Rule:\t%t\n", doc.Params.ThreeDEmbed)
	fmt.Fprintf(w, "  Skin Friction Only:\t%t\n", doc.Params.SkinFrictionOnly)
	w.Flush()
	fmt.Println()

	if sweepTable {
		fmt.Println("CAPACITY (kN):")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprint(w, "  L (m)")
		for _, c := range curves {
			fmt.Fprintf(w, "\tD=%.1fm", c.Diameter)
		}
		fmt.Fprintln(w)
		for i, pt := range curves[0].Points {
			fmt.Fprintf(w, "  %.0f", pt.Length)
			for _, c := range curves {
				fmt.Fprintf(w, "\t%.1f", c.Points[i].Capacity)
			}
			fmt.Fprintln(w)
		}
		w.Flush()
		fmt.Println()
	}

	if sweepShowGraph {
		fmt.Println(chart.RenderTerminal(curves, 15))
	}

	if sweepChartFile != "" {
		err := chart.ExportCurves(curves, "Pile Capacity vs Pile Length", sweepChartFile)
		if err != nil {
			fmt.Printf("Error exporting chart: %v\n", err)
		} else {
			fmt.Printf("Chart exported to: %s\n", sweepChartFile)
		}
	}

	if sweepXlsxFile != "" {
		err := export.WriteWorkbook(doc, curves, sweepXlsxFile)
		if err != nil {
			fmt.Printf("Error exporting workbook: %v\n", err)
		} else {
			fmt.Printf("Workbook exported to: %s\n", sweepXlsxFile)
		}
	}
}
