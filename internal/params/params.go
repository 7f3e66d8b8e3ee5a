// Package params reads and writes the two-section parameter document
// used to exchange pile capacity inputs: a parameter,value header
// block, a blank separator line, then a layer table.
package params

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/alexiusacademia/gopile/internal/soil"
)

// Parameters are the scalar inputs of a capacity run.
type Parameters struct {
	DiameterMin      float64
	DiameterMax      float64
	LengthMin        float64
	LengthMax        float64
	ReductionFactor  float64
	ThreeDEmbed      bool
	SkinFrictionOnly bool
}

// Document pairs the scalar parameters with the raw (un-normalized)
// layer list. It is the in-memory shape of the exchange format.
type Document struct {
	Params Parameters
	Layers []soil.Layer
}

// Default returns a document with the reference deployment's starting
// values: a 0.3-1.2 m diameter sweep, a 10-40 m length sweep, no
// reduction, and a single empty unit.
func Default() *Document {
	return &Document{
		Params: Parameters{
			DiameterMin:     0.3,
			DiameterMax:     1.2,
			LengthMin:       10,
			LengthMax:       40,
			ReductionFactor: 1.0,
		},
		Layers: []soil.Layer{
			{Name: "Unit 1"},
		},
	}
}

// RenameLayers relabels the layers sequentially as "Unit 1..n".
func (d *Document) RenameLayers() {
	for i := range d.Layers {
		d.Layers[i].Name = fmt.Sprintf("Unit %d", i+1)
	}
}

const layerHeader = "name,top_depth,skin_friction,end_bearing"

// Parse reads a document from r. The parameter section runs until the
// first blank line; the layer section follows, led by its header row.
//
// Malformed layer rows (wrong field count, non-numeric values) are
// skipped and reported in the returned warnings rather than aborting
// the load. Unknown parameter keys are ignored so documents from
// newer writers still load. Length bounds are truncated to whole
// meters.
func Parse(r io.Reader) (*Document, []string, error) {
	doc := Default()
	doc.Layers = nil

	var warnings []string
	inLayers := false
	skipHeader := false
	lineNo := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		if strings.TrimSpace(line) == "" {
			inLayers = true
			skipHeader = true
			continue
		}

		if !inLayers {
			key, value, ok := strings.Cut(line, ",")
			if !ok {
				continue
			}
			if err := doc.Params.set(strings.TrimSpace(key), strings.TrimSpace(value)); err != nil {
				warnings = append(warnings, fmt.Sprintf("line %d: %v", lineNo, err))
			}
			continue
		}

		if skipHeader {
			skipHeader = false
			continue
		}

		layer, err := parseLayerRow(line)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("line %d: skipping layer row: %v", lineNo, err))
			continue
		}
		doc.Layers = append(doc.Layers, layer)
	}
	if err := scanner.Err(); err != nil {
		return nil, warnings, fmt.Errorf("reading parameter document: %w", err)
	}

	if len(doc.Layers) == 0 {
		warnings = append(warnings, "no geological units found in document")
	}

	return doc, warnings, nil
}

// ParseFile reads a document from a file.
func ParseFile(path string) (*Document, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	return Parse(f)
}

func (p *Parameters) set(key, value string) error {
	switch key {
	case "parameter":
		// Section header row.
		return nil
	case "three_d_embed":
		p.ThreeDEmbed = strings.EqualFold(value, "true")
		return nil
	case "skin_friction_only":
		p.SkinFrictionOnly = strings.EqualFold(value, "true")
		return nil
	}

	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("parameter %s: %w", key, err)
	}
	switch key {
	case "diameter_min":
		p.DiameterMin = v
	case "diameter_max":
		p.DiameterMax = v
	case "length_min":
		p.LengthMin = math.Trunc(v)
	case "length_max":
		p.LengthMax = math.Trunc(v)
	case "reduction_factor":
		p.ReductionFactor = v
	}
	// Unknown keys fall through untouched.
	return nil
}

func parseLayerRow(line string) (soil.Layer, error) {
	parts := strings.Split(line, ",")
	if len(parts) != 4 {
		return soil.Layer{}, fmt.Errorf("want 4 fields, got %d", len(parts))
	}
	top, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return soil.Layer{}, fmt.Errorf("top_depth: %w", err)
	}
	sf, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
	if err != nil {
		return soil.Layer{}, fmt.Errorf("skin_friction: %w", err)
	}
	eb, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
	if err != nil {
		return soil.Layer{}, fmt.Errorf("end_bearing: %w", err)
	}
	return soil.Layer{
		Name:         strings.TrimSpace(parts[0]),
		TopDepth:     top,
		SkinFriction: sf,
		EndBearing:   eb,
	}, nil
}

// Write emits the document in the canonical two-section shape. A
// document written and re-parsed yields field-equal parameters and
// layers.
func (d *Document) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "parameter,value")
	fmt.Fprintf(bw, "diameter_min,%s\n", formatFloat(d.Params.DiameterMin))
	fmt.Fprintf(bw, "diameter_max,%s\n", formatFloat(d.Params.DiameterMax))
	fmt.Fprintf(bw, "length_min,%s\n", formatFloat(d.Params.LengthMin))
	fmt.Fprintf(bw, "length_max,%s\n", formatFloat(d.Params.LengthMax))
	fmt.Fprintf(bw, "reduction_factor,%s\n", formatFloat(d.Params.ReductionFactor))
	fmt.Fprintf(bw, "three_d_embed,%t\n", d.Params.ThreeDEmbed)
	fmt.Fprintf(bw, "skin_friction_only,%t\n", d.Params.SkinFrictionOnly)
	fmt.Fprintln(bw)

	fmt.Fprintln(bw, layerHeader)
	for _, l := range d.Layers {
		fmt.Fprintf(bw, "%s,%s,%s,%s\n",
			l.Name, formatFloat(l.TopDepth), formatFloat(l.SkinFriction), formatFloat(l.EndBearing))
	}

	return bw.Flush()
}

// WriteFile writes the document to a file, replacing any existing
// content.
func (d *Document) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := d.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
