package soil

import (
	"fmt"
	"math"
	"sort"
)

// Layer represents a single geological unit in a borehole log.
// Depths are in meters below ground surface, resistances in kPa.
type Layer struct {
	Name         string  // display label, not used in calculations
	TopDepth     float64 // depth to the top of the unit (m)
	SkinFriction float64 // ultimate unit shaft resistance (kPa)
	EndBearing   float64 // ultimate unit end bearing pressure (kPa)

	// BottomDepth is derived during profile normalization: the next
	// unit's top depth, or +Inf for the deepest unit.
	BottomDepth float64
}

// Thickness returns the vertical extent of the layer (m). The deepest
// layer is unbounded and reports +Inf.
func (l Layer) Thickness() float64 {
	return l.BottomDepth - l.TopDepth
}

// InvalidLayerError reports a layer attribute that fails validation
// at profile build time. The whole profile is rejected.
type InvalidLayerError struct {
	Index int     // position in the supplied layer list
	Field string  // offending attribute
	Value float64 // offending value
}

func (e *InvalidLayerError) Error() string {
	return fmt.Sprintf("invalid soil layer %d: %s = %.3f (must be >= 0)", e.Index, e.Field, e.Value)
}

// Profile is a normalized, gap-free stratigraphy: layers sorted by top
// depth with derived bottom depths, always starting at the ground
// surface. A Profile is immutable once built and safe for concurrent
// reads.
type Profile struct {
	layers []Layer
}

// NewProfile validates and normalizes a set of layers into a profile.
//
// Layers are stable-sorted ascending by top depth, so units sharing a
// top depth keep their supplied order (the earlier one collapses to
// zero thickness). If the shallowest unit starts below the ground
// surface a zero-resistance layer is prepended to cover the gap; an
// empty layer list becomes a single zero-resistance layer so that
// capacity evaluates to zero rather than failing.
func NewProfile(layers []Layer) (*Profile, error) {
	for i, l := range layers {
		switch {
		case l.TopDepth < 0:
			return nil, &InvalidLayerError{Index: i, Field: "top_depth", Value: l.TopDepth}
		case l.SkinFriction < 0:
			return nil, &InvalidLayerError{Index: i, Field: "skin_friction", Value: l.SkinFriction}
		case l.EndBearing < 0:
			return nil, &InvalidLayerError{Index: i, Field: "end_bearing", Value: l.EndBearing}
		}
	}

	sorted := make([]Layer, len(layers))
	copy(sorted, layers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TopDepth < sorted[j].TopDepth
	})

	if len(sorted) == 0 || sorted[0].TopDepth > 0 {
		surface := Layer{Name: "Dummy", TopDepth: 0}
		sorted = append([]Layer{surface}, sorted...)
	}

	for i := range sorted {
		if i < len(sorted)-1 {
			sorted[i].BottomDepth = sorted[i+1].TopDepth
		} else {
			sorted[i].BottomDepth = math.Inf(1)
		}
	}

	return &Profile{layers: sorted}, nil
}

// LayerAt returns the layer whose half-open interval [top, bottom)
// contains depth. Depths beyond every finite boundary fall back to the
// deepest layer.
func (p *Profile) LayerAt(depth float64) Layer {
	for _, l := range p.layers {
		if l.TopDepth <= depth && depth < l.BottomDepth {
			return l
		}
	}
	return p.layers[len(p.layers)-1]
}

// Layers returns a copy of the normalized layer sequence, shallowest
// first.
func (p *Profile) Layers() []Layer {
	out := make([]Layer, len(p.layers))
	copy(out, p.layers)
	return out
}

// Len returns the number of layers after normalization.
func (p *Profile) Len() int {
	return len(p.layers)
}
