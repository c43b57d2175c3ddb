package features

import (
	"fmt"

	"github.com/Archi44444/NeuroSaathi/internal/models"
)

// Worst-case substitution for a reaction test that never produced any
// valid times. Deliberately pessimistic: absent data signals absent
// testing, not good performance, so it scores poorly instead of being
// hidden.
const (
	fallbackReactionTimeMS = 3000.0
	fallbackReactionTrials = 7
)

// Reference range for the linear speed score: 150 ms maps to ~100,
// 1200 ms to ~0.
const (
	fastReferenceRT = 150.0
	rtScoreRange    = 1050.0
)

// ExtractReactionFeatures scores the reaction-time task from the
// per-trial times. The legacy reactionTimes slice is used when no
// structured sample exists.
func (e *Extractor) ExtractReactionFeatures(reactionTimes []float64, reaction *models.ReactionSample) (float64, map[string]float64, error) {
	times := reactionTimes
	missCount := 0
	initDelay := 300.0
	if reaction != nil {
		times = reaction.Times
		missCount = reaction.MissCount
		if reaction.InitiationDelay != nil {
			initDelay = *reaction.InitiationDelay
		}
	}
	if missCount < 0 {
		return 0, nil, fmt.Errorf("reaction: miss_count must not be negative, got %d", missCount)
	}
	for _, t := range times {
		if t < 0 {
			return 0, nil, fmt.Errorf("reaction: negative trial time %.2f", t)
		}
	}

	if len(times) == 0 {
		times = make([]float64, fallbackReactionTrials)
		for i := range times {
			times[i] = fallbackReactionTimeMS
		}
		missCount = fallbackReactionTrials
	}

	meanRT := mean(times)
	stdRT := popStdDev(times)
	minRT := minValue(times)

	// Drift: second-half mean minus first-half mean. Positive drift
	// means the subject slowed down over the run.
	var drift float64
	if half := len(times) / 2; half > 0 {
		drift = mean(times[half:]) - mean(times[:half])
	}

	feats := map[string]float64{
		"mean_rt":          round(meanRT, 2),
		"std_rt":           round(stdRT, 2),
		"min_rt":           round(minRT, 2),
		"reaction_drift":   round(drift, 2),
		"miss_count":       float64(missCount),
		"initiation_delay": round(initDelay, 2),
	}

	speedScore := clamp(100-((meanRT-fastReferenceRT)/rtScoreRange)*100, 0, 100)
	varPen := clamp(stdRT/8, 0, 20)
	driftPen := clamp(max(drift, 0)/15, 0, 15)
	missPen := clamp(float64(missCount)*8, 0, 25)

	score := clamp(speedScore-varPen-driftPen-missPen, 0, 100)
	return round(score, 2), feats, nil
}
