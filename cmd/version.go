package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gopile/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gopile",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gopile v%s\n", version.Version)
		fmt.Println("Pile Foundation Axial Capacity Tool")
		fmt.Println("Single pile capacity in layered soil profiles")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
