package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexiusacademia/gopile/internal/params"
	"github.com/alexiusacademia/gopile/internal/soil"
	"github.com/spf13/cobra"
)

var capacityCmd = &cobra.Command{
	Use:   "capacity",
	Short: "Pile axial capacity calculation and sweeps",
	Long: `Compute the axial load capacity of a single pile embedded in a
layered soil profile.

Subcommands:
  calc   - Capacity of one pile (diameter, length)
  sweep  - Capacity curves over diameter and length ranges

Soil layers come from a parameter file (see 'gopile template') or from
repeated --layer flags of the form name:top_depth:skin_friction:end_bearing
(depths in m, resistances in kPa).`,
}

func init() {
	rootCmd.AddCommand(capacityCmd)
}

// parseLayerFlags converts --layer values of the form
// name:top:skin_friction:end_bearing into soil layers.
func parseLayerFlags(specs []string) ([]soil.Layer, error) {
	layers := make([]soil.Layer, 0, len(specs))
	for _, s := range specs {
		parts := strings.Split(s, ":")
		if len(parts) != 4 {
			return nil, fmt.Errorf("layer %q: want name:top_depth:skin_friction:end_bearing", s)
		}
		top, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("layer %q: top_depth: %w", s, err)
		}
		sf, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return nil, fmt.Errorf("layer %q: skin_friction: %w", s, err)
		}
		eb, err := strconv.ParseFloat(parts[3], 64)
		if err != nil {
			return nil, fmt.Errorf("layer %q: end_bearing: %w", s, err)
		}
		layers = append(layers, soil.Layer{Name: parts[0], TopDepth: top, SkinFriction: sf, EndBearing: eb})
	}
	return layers, nil
}

// loadLayers resolves the soil input for a command: an input document
// if given, otherwise --layer flags.
func loadLayers(inputFile string, layerSpecs []string) (*params.Document, error) {
	if inputFile != "" {
		doc, warnings, err := params.ParseFile(inputFile)
		if err != nil {
			return nil, err
		}
		for _, w := range warnings {
			fmt.Printf("Warning: %s\n", w)
		}
		return doc, nil
	}

	layers, err := parseLayerFlags(layerSpecs)
	if err != nil {
		return nil, err
	}
	doc := params.Default()
	doc.Layers = layers
	return doc, nil
}
