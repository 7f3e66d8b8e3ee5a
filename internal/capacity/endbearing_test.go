package capacity

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gopile/internal/soil"
)

func profileFrom(t *testing.T, layers ...soil.Layer) *soil.Profile {
	t.Helper()
	p, err := soil.NewProfile(layers)
	require.NoError(t, err)
	return p
}

func TestResolveEndBearing3D_TwoLayerStep(t *testing.T) {
	// Zero layer over a 400 kPa bearing layer at 5 m; D = 1 m, so
	// mobilization completes at 8 m.
	p := profileFrom(t,
		soil.Layer{Name: "A", TopDepth: 0, EndBearing: 0},
		soil.Layer{Name: "B", TopDepth: 5, EndBearing: 400},
	)

	tests := []struct {
		toe  float64
		want float64
	}{
		{5, 0},
		{6, 0},
		{7.99, 0},
		{8, 400},
		{12, 400},
	}
	for _, tt := range tests {
		got := resolveEndBearing3D(p, tt.toe, 1.0)
		require.Equal(t, tt.want, got, "toe %.2f", tt.toe)
	}
}

func TestResolveEndBearing3D_FirstLayerMobilization(t *testing.T) {
	// No end bearing until the toe is 3 diameters into the very
	// first unit.
	p := profileFrom(t, soil.Layer{Name: "Sand", TopDepth: 0, EndBearing: 500})

	require.Equal(t, 0.0, resolveEndBearing3D(p, 1, 1.0))
	require.Equal(t, 0.0, resolveEndBearing3D(p, 2.99, 1.0))
	require.Equal(t, 500.0, resolveEndBearing3D(p, 3, 1.0))
	require.Equal(t, 500.0, resolveEndBearing3D(p, 20, 1.0))
}

func TestResolveEndBearing3D_TransitionIntoWeakerLayer(t *testing.T) {
	// A mobilized strong layer over a weaker one: no credit during
	// the transition, then the weaker layer's own value.
	p := profileFrom(t,
		soil.Layer{Name: "Strong", TopDepth: 0, EndBearing: 1000},
		soil.Layer{Name: "Weak", TopDepth: 10, EndBearing: 300},
	)

	require.Equal(t, 0.0, resolveEndBearing3D(p, 10.5, 1.0))
	require.Equal(t, 300.0, resolveEndBearing3D(p, 13, 1.0))
}

func TestResolveEndBearing3D_TransitionIntoStrongerKeepsPrior(t *testing.T) {
	// Entering a stronger layer the pile keeps the prior mobilized
	// value until 3D embedment, then claims the stronger value.
	p := profileFrom(t,
		soil.Layer{Name: "Medium", TopDepth: 0, EndBearing: 400},
		soil.Layer{Name: "Strong", TopDepth: 12, EndBearing: 1500},
	)

	require.Equal(t, 400.0, resolveEndBearing3D(p, 13, 1.0))
	require.Equal(t, 400.0, resolveEndBearing3D(p, 14.9, 1.0))
	require.Equal(t, 1500.0, resolveEndBearing3D(p, 15, 1.0))
}

func TestResolveEndBearing3D_ThinStrongerInterbedIsTransparent(t *testing.T) {
	// A thin strong lens can never mobilize, so the value carried
	// from the thick layer above survives it.
	p := profileFrom(t,
		soil.Layer{Name: "Thick", TopDepth: 0, EndBearing: 500},
		soil.Layer{Name: "Lens", TopDepth: 12, EndBearing: 2000},
		soil.Layer{Name: "Below", TopDepth: 13, EndBearing: 1000},
	)

	// Toe just into the layer under the lens: still transitioning
	// into a stronger unit, credit is the carried 500.
	require.Equal(t, 500.0, resolveEndBearing3D(p, 13.5, 1.0))
	require.Equal(t, 1000.0, resolveEndBearing3D(p, 16, 1.0))
}

func TestResolveEndBearing3D_ThinWeakLayerResetsCarry(t *testing.T) {
	// A thin weak (here zero) interbed replaces the carried value,
	// so the transition below it starts from nothing.
	p := profileFrom(t,
		soil.Layer{Name: "Thick", TopDepth: 0, EndBearing: 800},
		soil.Layer{Name: "Void", TopDepth: 12, EndBearing: 0},
		soil.Layer{Name: "Below", TopDepth: 12.5, EndBearing: 600},
	)

	require.Equal(t, 0.0, resolveEndBearing3D(p, 13, 1.0))
	require.Equal(t, 600.0, resolveEndBearing3D(p, 15.5, 1.0))
}

func TestResolveEndBearing_SimpleMode(t *testing.T) {
	p := profileFrom(t,
		soil.Layer{Name: "A", TopDepth: 0, EndBearing: 150},
		soil.Layer{Name: "B", TopDepth: 5, EndBearing: 900},
	)

	require.Equal(t, 150.0, resolveEndBearing(p, 2))
	require.Equal(t, 900.0, resolveEndBearing(p, 5))
	require.Equal(t, 900.0, resolveEndBearing(p, 100))
}

func TestResolveEndBearing3D_MobilizationScalesWithDiameter(t *testing.T) {
	p := profileFrom(t,
		soil.Layer{Name: "A", TopDepth: 0, EndBearing: 0},
		soil.Layer{Name: "B", TopDepth: 5, EndBearing: 400},
	)

	// D = 0.5 m mobilizes after 1.5 m of penetration.
	require.Equal(t, 0.0, resolveEndBearing3D(p, 6.4, 0.5))
	require.Equal(t, 400.0, resolveEndBearing3D(p, 6.5, 0.5))
}
