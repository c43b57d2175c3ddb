package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildFeatureVector_TotalOnEmptyInput(t *testing.T) {
	// All five maps empty must still produce a fully populated vector
	// from the documented defaults.
	fv := BuildFeatureVector(nil, nil, nil, nil, nil)

	assert.Equal(t, 120.0, fv.WPM)
	assert.Equal(t, 70.0, fv.ImmediateRecallAccuracy)
	assert.Equal(t, 320.0, fv.MeanRT)
	assert.Equal(t, 0.10, fv.StroopErrorRate)
	assert.Equal(t, 40.0, fv.TapIntervalStd)

	assert.Len(t, fv.Map(), 18)
	for name, v := range fv.Map() {
		assert.False(t, v == 0 && name != "miss_count", "feature %s unexpectedly zero", name)
	}
}

func TestBuildFeatureVector_UsesProvidedValues(t *testing.T) {
	fv := BuildFeatureVector(
		map[string]float64{"wpm": 150, "pause_ratio": 0.2},
		map[string]float64{"immediate_recall_accuracy": 90},
		map[string]float64{"mean_rt": 250, "miss_count": 2},
		map[string]float64{"stroop_error_rate": 0.05},
		map[string]float64{"tap_interval_std": 25},
	)

	assert.Equal(t, 150.0, fv.WPM)
	assert.Equal(t, 0.2, fv.PauseRatio)
	assert.Equal(t, 90.0, fv.ImmediateRecallAccuracy)
	assert.Equal(t, 250.0, fv.MeanRT)
	assert.Equal(t, 2.0, fv.MissCount)
	assert.Equal(t, 0.05, fv.StroopErrorRate)
	assert.Equal(t, 25.0, fv.TapIntervalStd)

	// Unspecified features still fall back to defaults.
	assert.Equal(t, 65.0, fv.DelayedRecallAccuracy)
}

func TestValuesOrderMatchesMap(t *testing.T) {
	fv := BuildFeatureVector(nil, nil, nil, nil, nil)
	values := fv.Values()

	assert.Equal(t, fv.WPM, values[0])
	assert.Equal(t, fv.OrderMatchRatio, values[9])
	assert.Equal(t, fv.MissCount, values[14])
	assert.Equal(t, fv.TapIntervalStd, values[17])
}
