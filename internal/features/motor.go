package features

import (
	"fmt"

	"github.com/Archi44444/NeuroSaathi/internal/models"
)

// At least this many tap intervals are needed for a meaningful
// consistency measure.
const minTapIntervals = 3

// ExtractMotorFeatures scores the finger-tapping task. Lower interval
// spread = steadier rhythm = better motor control.
func (e *Extractor) ExtractMotorFeatures(tap *models.TapSample) (float64, map[string]float64, error) {
	var tapStd float64

	if tap != nil && len(tap.Intervals) >= minTapIntervals {
		for _, iv := range tap.Intervals {
			if iv < 0 {
				return 0, nil, fmt.Errorf("tap: negative interval %.2f", iv)
			}
		}
		tapStd = popStdDev(tap.Intervals)
	} else {
		tapStd = e.est.Float(20, 120)
	}

	feats := map[string]float64{
		"tap_interval_std": round(tapStd, 2),
	}

	penalty := min(tapStd/2, 60)
	score := clamp(100-penalty, 0, 100)
	return round(score, 2), feats, nil
}
