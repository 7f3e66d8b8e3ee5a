package capacity

import (
	"math"

	"github.com/alexiusacademia/gopile/internal/soil"
)

// SegmentHeight is the shaft discretization increment (m). A fixed
// increment bounds the error of the piecewise-constant friction
// approximation at layer boundaries independent of pile length.
const SegmentHeight = 0.5

// integrateSkinFriction accumulates total shaft resistance (kN) for a
// pile of the given diameter embedded to the given length.
//
// The shaft is split into fixed-height segments; each segment is
// attributed the skin friction of the layer containing its midpoint
// and contributes sf * perimeter * segment length. The last segment is
// truncated when length is not a multiple of the increment. A zero
// length yields zero segments and zero resistance.
func integrateSkinFriction(profile *soil.Profile, diameter, length float64) float64 {
	perimeter := math.Pi * diameter
	segments := int(math.Ceil(length / SegmentHeight))

	total := 0.0
	for k := 0; k < segments; k++ {
		segTop := float64(k) * SegmentHeight
		segBottom := math.Min(float64(k+1)*SegmentHeight, length)
		segMid := (segTop + segBottom) / 2
		segLen := segBottom - segTop

		layer := profile.LayerAt(segMid)
		total += layer.SkinFriction * perimeter * segLen
	}
	return total
}
