package capacity

import (
	"sync"

	"github.com/alexiusacademia/gopile/internal/soil"
)

// Default sweep increments, matching common design-chart conventions.
const (
	DefaultDiameterStep = 0.3 // m
	DefaultLengthStep   = 2.0 // m
)

// rangeEpsilon keeps the upper sweep bound inclusive in the presence
// of accumulated floating point error.
const rangeEpsilon = 1e-4

// Sweep describes the diameter and length ranges of a parameter
// sweep. Zero steps fall back to the defaults. Bounds are inclusive.
type Sweep struct {
	DiameterMin  float64
	DiameterMax  float64
	DiameterStep float64
	LengthMin    float64
	LengthMax    float64
	LengthStep   float64
}

// Point is one evaluated cell of a sweep: the factored capacity (kN)
// of a pile embedded to Length (m).
type Point struct {
	Length   float64
	Capacity float64
}

// Curve is the capacity-vs-length series for a single diameter,
// points ordered by ascending length.
type Curve struct {
	Diameter float64
	Points   []Point
}

// ComputeSweep evaluates the engine over the full (diameter, length)
// grid and returns one curve per diameter, ordered by ascending
// diameter.
//
// Cells are independent, so diameters are evaluated concurrently
// against the shared read-only profile; results land in pre-sized
// slots and the output order does not depend on scheduling. Invalid
// geometry or parameters fail fast before any cell is evaluated.
func (e *Engine) ComputeSweep(profile *soil.Profile, sweep Sweep) ([]Curve, error) {
	diameters := sweepRange(sweep.DiameterMin, sweep.DiameterMax, sweep.DiameterStep, DefaultDiameterStep)
	lengths := sweepRange(sweep.LengthMin, sweep.LengthMax, sweep.LengthStep, DefaultLengthStep)

	// Validate the whole grid up front: the corner cells cover the
	// smallest diameter and length, and the reduction factor check is
	// geometry-independent.
	for _, d := range diameters {
		if d <= 0 {
			return nil, &InvalidGeometryError{Field: "diameter", Value: d}
		}
	}
	for _, l := range lengths {
		if l <= 0 {
			return nil, &InvalidGeometryError{Field: "length", Value: l}
		}
	}
	if e.ReductionFactor < 0 || e.ReductionFactor > 1 {
		return nil, &InvalidParameterError{Field: "reduction_factor", Value: e.ReductionFactor, Min: 0, Max: 1}
	}

	curves := make([]Curve, len(diameters))
	var wg sync.WaitGroup
	for i, d := range diameters {
		wg.Add(1)
		go func(i int, d float64) {
			defer wg.Done()
			points := make([]Point, len(lengths))
			for j, l := range lengths {
				// Inputs were validated above; ComputeOne cannot fail here.
				res, _ := e.ComputeOne(profile, d, l)
				points[j] = Point{Length: l, Capacity: res.Total}
			}
			curves[i] = Curve{Diameter: d, Points: points}
		}(i, d)
	}
	wg.Wait()

	return curves, nil
}

// sweepRange expands [min, max] into an inclusive ascending series
// with the given step, substituting the fallback for a zero or
// negative step. A max below min yields an empty series; min == max
// yields a single value.
func sweepRange(min, max, step, fallback float64) []float64 {
	if step <= 0 {
		step = fallback
	}
	var out []float64
	for v := min; v <= max+rangeEpsilon; v += step {
		out = append(out, v)
	}
	return out
}
