package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gopile/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gopile",
	Short: "Pile Foundation Axial Capacity Tool",
	Long: `gopile - Go Pile Capacity Calculator

A CLI tool for computing the axial load capacity of single pile
foundations in layered soil profiles.

This tool helps geotechnical engineers perform:
  - Single pile capacity checks (skin friction + end bearing)
  - Capacity curve sweeps over diameter and length ranges
  - End bearing mobilization checks (3D embedment rule)
  - Capacity chart and spreadsheet exports

Shaft resistance is integrated segment-wise down the embedded length;
end bearing is resolved at the toe from the governing soil unit.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gopile v%-48s║\n", version.Version)
		fmt.Println("  ║   Go Pile Capacity Calculator                             ║")
		fmt.Println("  ║   Alexius S. Academia ©  2025                             ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for computing the axial load capacity of single")
		fmt.Println("  pile foundations in layered soil profiles.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Segment-wise skin friction integration (0.5 m increments)")
		fmt.Println("    • End bearing with optional 3D embedment mobilization")
		fmt.Println("    • Diameter/length sweeps producing capacity curve families")
		fmt.Println("    • Chart (png/svg/pdf), spreadsheet and report exports")
		fmt.Println()
		fmt.Println("  Use 'gopile --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
