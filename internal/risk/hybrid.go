package risk

import (
	"fmt"
	"math"
)

// ComputeHybridRisk blends the clinically-adjusted probability with
// the raw model probability: 0.6·clinical + 0.4·ml, clamped to [0,1]
// and rounded to 4 decimals.
func ComputeHybridRisk(clinicalProb, mlProb float64) float64 {
	hybrid := hybridClinicalWeight*clinicalProb + hybridMLWeight*mlProb
	return roundTo(clampProb(hybrid), 4)
}

// ConfidenceInterval is an approximate band around a risk
// probability.
type ConfidenceInterval struct {
	Lower float64 `json:"ci_lower"`
	Upper float64 `json:"ci_upper"`
	Label string  `json:"ci_label"`
}

const (
	ciBaseSE        = 0.04
	ciBoundaryBonus = 0.03
	ciBoundarySlope = 0.06
)

// ComputeConfidenceInterval builds a heuristic interval around a
// probability: widest at p=0.5 (maximal uncertainty), narrowing to
// the base standard error toward the extremes. This is a designed
// heuristic, not a statistically derived interval.
func ComputeConfidenceInterval(prob float64) ConfidenceInterval {
	boundaryBonus := math.Max(0, ciBoundaryBonus-math.Abs(prob-0.5)*ciBoundarySlope)
	halfWidth := ciBaseSE + boundaryBonus

	return ConfidenceInterval{
		Lower: roundTo(math.Max(0, prob-halfWidth), 4),
		Upper: roundTo(math.Min(1, prob+halfWidth), 4),
		Label: fmt.Sprintf("%v%% (±%v%%)", roundTo(prob*100, 1), roundTo(halfWidth*100, 1)),
	}
}
