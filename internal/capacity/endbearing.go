package capacity

import (
	"github.com/alexiusacademia/gopile/internal/soil"
)

// MobilizationFactor is the number of pile diameters a toe must
// penetrate into a bearing layer before that layer's full end bearing
// pressure is credited in 3D embedment mode.
const MobilizationFactor = 3.0

// resolveEndBearing returns the effective unit end bearing pressure
// (kPa) at the toe, without the 3D embedment rule: simply the value of
// the layer containing the toe.
func resolveEndBearing(profile *soil.Profile, toeDepth float64) float64 {
	return profile.LayerAt(toeDepth).EndBearing
}

// resolveEndBearing3D returns the effective unit end bearing pressure
// (kPa) at the toe under the 3D embedment rule.
//
// A layer's end bearing is only fully available once the toe has
// penetrated at least 3 diameters into it. While transitioning into a
// stronger layer the pile keeps credit for the last fully mobilized
// value carried from above; transitioning into an equal, weaker or
// zero layer gives no credit until mobilization. A thin layer passed
// through entirely without achieving 3D embedment cannot raise the
// carried value, so a strong layer's mobilized capacity survives a
// thin weak interbed.
func resolveEndBearing3D(profile *soil.Profile, toeDepth, diameter float64) float64 {
	mobilization := MobilizationFactor * diameter
	previousEB := 0.0

	for _, layer := range profile.Layers() {
		if toeDepth < layer.BottomDepth {
			// Toe is within this layer.
			embedDepth := toeDepth - layer.TopDepth
			if embedDepth < mobilization {
				if layer.EndBearing > previousEB && layer.EndBearing > 0 {
					return previousEB
				}
				return 0
			}
			return layer.EndBearing
		}

		// Toe is below this layer; decide what it carried forward.
		embedInLayer := layer.BottomDepth - layer.TopDepth
		if embedInLayer >= mobilization {
			// Fully mobilized before being passed through.
			previousEB = layer.EndBearing
		} else if layer.EndBearing <= previousEB || layer.EndBearing == 0 {
			// Too thin to mobilize, but not a stronger transition:
			// it still governs the carried value.
			previousEB = layer.EndBearing
		}
		// Thin stronger layer: never mobilized, keep previousEB.
	}

	// Unreachable for a normalized profile (the deepest layer is
	// unbounded), kept for symmetry with the walk above.
	return previousEB
}
