package capacity

import (
	"math"

	"github.com/alexiusacademia/gopile/internal/soil"
)

// Engine computes pile axial capacities against a normalized soil
// profile. It holds only immutable configuration, so a single Engine
// may be shared across goroutines.
type Engine struct {
	// ReductionFactor is the geotechnical reduction factor applied to
	// the combined capacity, in [0, 1].
	ReductionFactor float64

	// ThreeDEmbed enables the 3D embedment mobilization rule for end
	// bearing resolution.
	ThreeDEmbed bool

	// SkinFrictionOnly drops the end bearing component entirely.
	SkinFrictionOnly bool
}

// NewEngine creates an engine with an unfactored capacity
// (reduction factor 1) and both mode flags off.
func NewEngine() *Engine {
	return &Engine{ReductionFactor: 1.0}
}

// Result holds the outcome of a single capacity computation. All
// force components are in kN; components are stored unfactored.
type Result struct {
	SkinFriction    float64 // shaft resistance component (kN)
	EndBearing      float64 // toe bearing component (kN)
	ReductionFactor float64
	Total           float64 // (SkinFriction + EndBearing) * ReductionFactor
}

// ComputeOne calculates the factored axial capacity of a single pile
// of the given diameter and embedded length (both m).
func (e *Engine) ComputeOne(profile *soil.Profile, diameter, length float64) (*Result, error) {
	if diameter <= 0 {
		return nil, &InvalidGeometryError{Field: "diameter", Value: diameter}
	}
	if length <= 0 {
		return nil, &InvalidGeometryError{Field: "length", Value: length}
	}
	if e.ReductionFactor < 0 || e.ReductionFactor > 1 {
		return nil, &InvalidParameterError{Field: "reduction_factor", Value: e.ReductionFactor, Min: 0, Max: 1}
	}

	friction := integrateSkinFriction(profile, diameter, length)

	bearing := 0.0
	if !e.SkinFrictionOnly {
		toeDepth := length
		var effectiveEB float64
		if e.ThreeDEmbed {
			effectiveEB = resolveEndBearing3D(profile, toeDepth, diameter)
		} else {
			effectiveEB = resolveEndBearing(profile, toeDepth)
		}
		baseArea := math.Pi * (diameter / 2) * (diameter / 2)
		bearing = effectiveEB * baseArea
	}

	return &Result{
		SkinFriction:    friction,
		EndBearing:      bearing,
		ReductionFactor: e.ReductionFactor,
		Total:           (friction + bearing) * e.ReductionFactor,
	}, nil
}
