package features

import (
	"fmt"

	"github.com/Archi44444/NeuroSaathi/internal/models"
)

// Stroop reaction times below this floor carry no latency penalty.
const stroopLatencyFloor = 400.0

// ExtractExecutiveFeatures scores the Stroop interference task.
func (e *Extractor) ExtractExecutiveFeatures(stroop *models.StroopSample) (float64, map[string]float64, error) {
	var errorRate, stroopRT float64

	if stroop != nil && stroop.TotalTrials > 0 {
		if stroop.ErrorCount < 0 {
			return 0, nil, fmt.Errorf("stroop: error_count must not be negative, got %d", stroop.ErrorCount)
		}
		if stroop.ErrorCount > stroop.TotalTrials {
			return 0, nil, fmt.Errorf("stroop: error_count %d exceeds total_trials %d", stroop.ErrorCount, stroop.TotalTrials)
		}
		errorRate = float64(stroop.ErrorCount) / float64(stroop.TotalTrials)
		switch {
		case stroop.IncongruentRT != nil:
			stroopRT = *stroop.IncongruentRT
		case stroop.MeanRT != nil:
			stroopRT = *stroop.MeanRT
		default:
			stroopRT = e.est.Float(450, 800)
		}
	} else {
		errorRate = e.est.Float(0.05, 0.30)
		stroopRT = e.est.Float(450, 800)
	}

	feats := map[string]float64{
		"stroop_error_rate": round(errorRate, 4),
		"stroop_rt":         round(stroopRT, 2),
	}

	errorPen := min(errorRate*200, 60)
	var rtPen float64
	if stroopRT > stroopLatencyFloor {
		rtPen = min((stroopRT-stroopLatencyFloor)/400*40, 40)
	}

	score := clamp(100-errorPen-rtPen, 0, 100)
	return round(score, 2), feats, nil
}
