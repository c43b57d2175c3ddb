package risk

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeHybridRisk_IdentityOnEqualInputs(t *testing.T) {
	// Weights sum to 1.0, so blending p with itself returns p.
	for _, p := range []float64{0, 0.1234, 0.5, 0.9876, 1} {
		assert.Equal(t, p, ComputeHybridRisk(p, p))
	}
}

func TestComputeHybridRisk_Blend(t *testing.T) {
	// 0.6×0.8 + 0.4×0.4 = 0.64.
	assert.InDelta(t, 0.64, ComputeHybridRisk(0.8, 0.4), 1e-9)
}

func TestComputeConfidenceInterval_WidestAtHalf(t *testing.T) {
	widest := ComputeConfidenceInterval(0.5)
	assert.InDelta(t, 0.43, widest.Lower, 1e-9)
	assert.InDelta(t, 0.57, widest.Upper, 1e-9)

	maxHalfWidth := (widest.Upper - widest.Lower) / 2
	prev := maxHalfWidth
	for _, p := range []float64{0.55, 0.65, 0.75, 0.85} {
		ci := ComputeConfidenceInterval(p)
		halfWidth := (ci.Upper - ci.Lower) / 2
		assert.LessOrEqual(t, halfWidth, prev, "half-width should shrink away from 0.5 (p=%v)", p)
		prev = halfWidth
	}

	// At p=0.2 only 0.012 of the boundary bonus remains.
	ci := ComputeConfidenceInterval(0.2)
	assert.InDelta(t, 0.052, (ci.Upper-ci.Lower)/2, 1e-9)

	// The bonus vanishes entirely only at the extremes, leaving the
	// base standard error.
	end := ComputeConfidenceInterval(1)
	assert.InDelta(t, 0.96, end.Lower, 1e-9)
	assert.Equal(t, 1.0, end.Upper)
}

func TestComputeConfidenceInterval_BoundsClamped(t *testing.T) {
	low := ComputeConfidenceInterval(0.01)
	assert.GreaterOrEqual(t, low.Lower, 0.0)

	high := ComputeConfidenceInterval(0.99)
	assert.LessOrEqual(t, high.Upper, 1.0)
}

func TestComputeConfidenceInterval_Label(t *testing.T) {
	ci := ComputeConfidenceInterval(0.5)
	assert.Equal(t, "50% (±7%)", ci.Label)

	ci = ComputeConfidenceInterval(0.25)
	// half-width 0.04+max(0, 0.03−0.25×0.06)=0.055
	assert.Equal(t, "25% (±5.5%)", ci.Label)
	assert.False(t, math.IsNaN(ci.Lower))
}
