package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gopile/internal/params"
	"github.com/spf13/cobra"
)

var templateFile string

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Write a starter parameter file",
	Long: `Write a parameter file with default sweep bounds and a single empty
soil unit, ready to be filled in and fed to 'capacity calc' or
'capacity sweep' via --input.

The file has two sections: parameter,value lines, a blank line, then a
name,top_depth,skin_friction,end_bearing layer table.`,
	Run: func(cmd *cobra.Command, args []string) {
		doc := params.Default()
		doc.RenameLayers()

		if templateFile == "" {
			if err := doc.Write(os.Stdout); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}
		if err := doc.WriteFile(templateFile); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Template written to: %s\n", templateFile)
	},
}

func init() {
	rootCmd.AddCommand(templateCmd)

	templateCmd.Flags().StringVarP(&templateFile, "output", "o", "", "Destination file (default: stdout)")
}
