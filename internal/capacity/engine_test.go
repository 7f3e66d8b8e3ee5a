package capacity

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gopile/internal/soil"
)

func uniformProfile(t *testing.T, sf, eb float64) *soil.Profile {
	t.Helper()
	p, err := soil.NewProfile([]soil.Layer{
		{Name: "Unit 1", TopDepth: 0, SkinFriction: sf, EndBearing: eb},
	})
	require.NoError(t, err)
	return p
}

func TestComputeOne_UniformSingleLayer(t *testing.T) {
	p := uniformProfile(t, 10, 500)
	engine := NewEngine()

	res, err := engine.ComputeOne(p, 0.6, 10)
	require.NoError(t, err)

	perimeter := math.Pi * 0.6
	baseArea := math.Pi * 0.3 * 0.3
	assert.InDelta(t, 10*perimeter*10, res.SkinFriction, 1e-9)
	assert.InDelta(t, 500*baseArea, res.EndBearing, 1e-9)
	assert.InDelta(t, 329.87, res.Total, 0.01)
}

func TestComputeOne_SkinFrictionOnly(t *testing.T) {
	p := uniformProfile(t, 10, 500)

	for _, threeD := range []bool{false, true} {
		engine := NewEngine()
		engine.SkinFrictionOnly = true
		engine.ThreeDEmbed = threeD

		res, err := engine.ComputeOne(p, 0.6, 10)
		require.NoError(t, err)
		assert.Equal(t, 0.0, res.EndBearing)
		assert.Equal(t, res.SkinFriction, res.Total)
	}
}

func TestComputeOne_ReductionFactorLinearity(t *testing.T) {
	p := uniformProfile(t, 10, 500)

	base := NewEngine()
	unfactored, err := base.ComputeOne(p, 0.6, 10)
	require.NoError(t, err)

	for _, rf := range []float64{0, 0.25, 0.5, 0.75, 1} {
		engine := NewEngine()
		engine.ReductionFactor = rf
		res, err := engine.ComputeOne(p, 0.6, 10)
		require.NoError(t, err)
		assert.InDelta(t, rf*unfactored.Total, res.Total, 1e-9, "rf=%.2f", rf)
	}
}

func TestComputeOne_SimpleModeToeLookup(t *testing.T) {
	p, err := soil.NewProfile([]soil.Layer{
		{Name: "Clay", TopDepth: 0, SkinFriction: 10, EndBearing: 150},
		{Name: "Sand", TopDepth: 12, SkinFriction: 30, EndBearing: 900},
	})
	require.NoError(t, err)

	engine := NewEngine()
	baseArea := math.Pi * 0.25 * 0.25

	// Toe in the upper unit.
	res, err := engine.ComputeOne(p, 0.5, 8)
	require.NoError(t, err)
	assert.InDelta(t, 150*baseArea, res.EndBearing, 1e-9)

	// Toe in the lower unit, which is unbounded below.
	res, err = engine.ComputeOne(p, 0.5, 60)
	require.NoError(t, err)
	assert.InDelta(t, 900*baseArea, res.EndBearing, 1e-9)
}

func TestComputeOne_InvalidInputs(t *testing.T) {
	p := uniformProfile(t, 10, 500)

	tests := []struct {
		name     string
		diameter float64
		length   float64
		rf       float64
		wantGeom bool
	}{
		{"zero diameter", 0, 10, 1, true},
		{"negative diameter", -0.3, 10, 1, true},
		{"zero length", 0.6, 0, 1, true},
		{"negative length", 0.6, -5, 1, true},
		{"reduction factor below range", 0.6, 10, -0.1, false},
		{"reduction factor above range", 0.6, 10, 1.1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := NewEngine()
			engine.ReductionFactor = tt.rf
			_, err := engine.ComputeOne(p, tt.diameter, tt.length)
			require.Error(t, err)

			if tt.wantGeom {
				var geom *InvalidGeometryError
				assert.True(t, errors.As(err, &geom))
			} else {
				var param *InvalidParameterError
				assert.True(t, errors.As(err, &param))
			}
		})
	}
}

func TestIntegrateSkinFriction_TruncatedLastSegment(t *testing.T) {
	p, err := soil.NewProfile([]soil.Layer{
		{Name: "Clay", TopDepth: 0, SkinFriction: 10, EndBearing: 0},
	})
	require.NoError(t, err)

	// 10.3 m = 20 full segments plus a 0.3 m remainder.
	got := integrateSkinFriction(p, 0.6, 10.3)
	want := 10 * math.Pi * 0.6 * 10.3
	assert.InDelta(t, want, got, 1e-9)
}

func TestIntegrateSkinFriction_ZeroLength(t *testing.T) {
	p := uniformProfile(t, 10, 500)
	assert.Equal(t, 0.0, integrateSkinFriction(p, 0.6, 0))
}

func TestIntegrateSkinFriction_LayeredShaft(t *testing.T) {
	// 4 m of weak over strong: segments straddle the boundary at
	// whole half-meters, so the piecewise sum is exact here.
	p, err := soil.NewProfile([]soil.Layer{
		{Name: "Soft", TopDepth: 0, SkinFriction: 5, EndBearing: 0},
		{Name: "Stiff", TopDepth: 4, SkinFriction: 40, EndBearing: 0},
	})
	require.NoError(t, err)

	got := integrateSkinFriction(p, 1.0, 10)
	want := 5*math.Pi*4 + 40*math.Pi*6
	assert.InDelta(t, want, got, 1e-9)
}

func TestComputeOne_MonotonicInLengthSkinOnly(t *testing.T) {
	p, err := soil.NewProfile([]soil.Layer{
		{Name: "A", TopDepth: 0, SkinFriction: 8, EndBearing: 100},
		{Name: "B", TopDepth: 6, SkinFriction: 2, EndBearing: 50},
		{Name: "C", TopDepth: 15, SkinFriction: 30, EndBearing: 2000},
	})
	require.NoError(t, err)

	engine := NewEngine()
	engine.SkinFrictionOnly = true

	prev := 0.0
	for length := 1.0; length <= 40; length += 1 {
		res, err := engine.ComputeOne(p, 0.6, length)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, res.Total, prev, "length %.0f", length)
		prev = res.Total
	}
}
