package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Archi44444/NeuroSaathi/internal/models"
)

// midpointEstimator is a deterministic Estimator for tests: it always
// returns the middle of the requested range.
type midpointEstimator struct{}

func (midpointEstimator) Float(min, max float64) float64 { return (min + max) / 2 }
func (midpointEstimator) Int(min, max int) int           { return (min + max) / 2 }

func newTestExtractor() *Extractor {
	return NewExtractor(midpointEstimator{})
}

func f64(v float64) *float64 { return &v }

func TestExtractSpeechFeatures_OptimalPace(t *testing.T) {
	e := newTestExtractor()

	score, feats, err := e.ExtractSpeechFeatures("", &models.SpeechSample{
		WPM:                    f64(140),
		SpeedDeviation:         f64(0),
		SpeechSpeedVariability: f64(0),
		PauseRatio:             f64(0),
		CompletionRatio:        f64(1),
		SpeechStartDelay:       f64(0.5),
	})
	require.NoError(t, err)

	// 100 (optimal wpm) + 15 completion bonus, clamped to 100.
	assert.Equal(t, 100.0, score)
	assert.Equal(t, 140.0, feats["wpm"])
}

func TestExtractSpeechFeatures_ClampsWPM(t *testing.T) {
	e := newTestExtractor()

	for _, wpm := range []float64{1, 5000} {
		_, feats, err := e.ExtractSpeechFeatures("", &models.SpeechSample{WPM: f64(wpm)})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, feats["wpm"], 10.0)
		assert.LessOrEqual(t, feats["wpm"], 350.0)
	}
}

func TestExtractSpeechFeatures_NoPayloadEstimates(t *testing.T) {
	e := newTestExtractor()

	score, feats, err := e.ExtractSpeechFeatures("", nil)
	require.NoError(t, err)

	// No audio at all falls back to the neutral 120 wpm estimate.
	assert.Equal(t, 120.0, feats["wpm"])
	assert.GreaterOrEqual(t, score, 0.0)
	assert.LessOrEqual(t, score, 100.0)
}

func TestExtractSpeechFeatures_RejectsNegativeRestarts(t *testing.T) {
	e := newTestExtractor()

	_, _, err := e.ExtractSpeechFeatures("", &models.SpeechSample{RestartCount: -1})
	assert.Error(t, err)
}

func TestExtractMemoryFeatures_AllMeasured(t *testing.T) {
	e := newTestExtractor()

	score, feats, err := e.ExtractMemoryFeatures(nil, &models.MemorySample{
		WordRecallAccuracy:    80,
		DelayedRecallAccuracy: f64(80),
		RecallLatencySeconds:  f64(1),
		OrderMatchRatio:       f64(1),
		IntrusionCount:        0,
	})
	require.NoError(t, err)

	// mean accuracy 80, no latency penalty under 2s, +15 order bonus.
	assert.Equal(t, 95.0, score)
	assert.Equal(t, 80.0, feats["immediate_recall_accuracy"])
	assert.Equal(t, 80.0, feats["delayed_recall_accuracy"])
}

func TestExtractMemoryFeatures_DelayedFallbackIsFractionOfImmediate(t *testing.T) {
	e := newTestExtractor()

	_, feats, err := e.ExtractMemoryFeatures(nil, &models.MemorySample{
		WordRecallAccuracy: 80,
	})
	require.NoError(t, err)

	// Midpoint estimator: 80 × 0.9.
	assert.InDelta(t, 72.0, feats["delayed_recall_accuracy"], 0.001)
}

func TestExtractMemoryFeatures_LegacyMapFallback(t *testing.T) {
	e := newTestExtractor()

	score, feats, err := e.ExtractMemoryFeatures(map[string]float64{
		"word_recall_accuracy": 60,
		"pattern_accuracy":     70,
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, 60.0, feats["immediate_recall_accuracy"])
	assert.Equal(t, 70.0, feats["delayed_recall_accuracy"])
	assert.GreaterOrEqual(t, score, 0.0)
	assert.LessOrEqual(t, score, 100.0)
}

func TestExtractReactionFeatures_Basic(t *testing.T) {
	e := newTestExtractor()

	times := []float64{300, 310, 290, 305, 295}
	score, feats, err := e.ExtractReactionFeatures(nil, &models.ReactionSample{Times: times})
	require.NoError(t, err)

	assert.Equal(t, 300.0, feats["mean_rt"])
	assert.Equal(t, 290.0, feats["min_rt"])
	assert.Equal(t, 0.0, feats["miss_count"])
	assert.Greater(t, score, 70.0)
}

func TestExtractReactionFeatures_WorstCaseFallback(t *testing.T) {
	e := newTestExtractor()

	// No recorded times at all substitutes the maximum-penalty run:
	// seven 3000ms entries, all counted as misses.
	score, feats, err := e.ExtractReactionFeatures(nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 3000.0, feats["mean_rt"])
	assert.Equal(t, 7.0, feats["miss_count"])
	assert.Equal(t, 0.0, score)
}

func TestExtractReactionFeatures_DriftIsSecondHalfMinusFirst(t *testing.T) {
	e := newTestExtractor()

	// First half [200,200], second half [300,300,300].
	_, feats, err := e.ExtractReactionFeatures([]float64{200, 200, 300, 300, 300}, nil)
	require.NoError(t, err)

	assert.InDelta(t, 100.0, feats["reaction_drift"], 0.001)
}

func TestExtractReactionFeatures_RejectsNegativeTimes(t *testing.T) {
	e := newTestExtractor()

	_, _, err := e.ExtractReactionFeatures([]float64{300, -5}, nil)
	assert.Error(t, err)
}

func TestExtractExecutiveFeatures_Measured(t *testing.T) {
	e := newTestExtractor()

	score, feats, err := e.ExtractExecutiveFeatures(&models.StroopSample{
		TotalTrials:   20,
		ErrorCount:    2,
		IncongruentRT: f64(400),
	})
	require.NoError(t, err)

	// 10% errors → −20; 400ms is at the latency floor → no rt penalty.
	assert.Equal(t, 80.0, score)
	assert.InDelta(t, 0.1, feats["stroop_error_rate"], 0.0001)
}

func TestExtractExecutiveFeatures_RejectsImpossibleErrorCount(t *testing.T) {
	e := newTestExtractor()

	_, _, err := e.ExtractExecutiveFeatures(&models.StroopSample{TotalTrials: 5, ErrorCount: 6})
	assert.Error(t, err)
}

func TestExtractMotorFeatures_SteadyTapping(t *testing.T) {
	e := newTestExtractor()

	score, feats, err := e.ExtractMotorFeatures(&models.TapSample{
		Intervals: []float64{100, 100, 100, 100},
	})
	require.NoError(t, err)

	assert.Equal(t, 0.0, feats["tap_interval_std"])
	assert.Equal(t, 100.0, score)
}

func TestExtractMotorFeatures_TooFewIntervalsFallsBack(t *testing.T) {
	e := newTestExtractor()

	_, feats, err := e.ExtractMotorFeatures(&models.TapSample{Intervals: []float64{100, 110}})
	require.NoError(t, err)

	// Midpoint of the 20–120 fallback range.
	assert.InDelta(t, 70.0, feats["tap_interval_std"], 0.001)
}

func TestDomainScoresAlwaysInRange(t *testing.T) {
	e := newTestExtractor()

	speech, _, _ := e.ExtractSpeechFeatures("", &models.SpeechSample{
		WPM: f64(350), PauseRatio: f64(1), SpeechStartDelay: f64(30),
	})
	memory, _, _ := e.ExtractMemoryFeatures(nil, &models.MemorySample{
		WordRecallAccuracy: 0, DelayedRecallAccuracy: f64(0),
		RecallLatencySeconds: f64(30), IntrusionCount: 10, OrderMatchRatio: f64(0),
	})
	reaction, _, _ := e.ExtractReactionFeatures([]float64{5000, 5000, 100}, nil)
	executive, _, _ := e.ExtractExecutiveFeatures(&models.StroopSample{TotalTrials: 10, ErrorCount: 10, MeanRT: f64(5000)})
	motor, _, _ := e.ExtractMotorFeatures(&models.TapSample{Intervals: []float64{10, 900, 10, 900}})

	for _, score := range []float64{speech, memory, reaction, executive, motor} {
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 100.0)
	}
}
