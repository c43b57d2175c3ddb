package risk

import (
	"math"

	"github.com/Archi44444/NeuroSaathi/internal/models"
)

// ApplyConditionMultipliers adjusts a base risk for reported medical
// conditions: R = base × (1 + Σγ), capped at MaxRiskCap. Conditions
// compound additively inside the multiplier. With no true conditions
// the base risk passes through unchanged.
func ApplyConditionMultipliers(baseRisk float64, conditions *models.Conditions) float64 {
	if conditions == nil {
		return math.Min(baseRisk, MaxRiskCap)
	}
	var gammaSum float64
	for name, set := range conditions.Flags() {
		if set {
			gammaSum += conditionGamma[name]
		}
	}
	return math.Min(baseRisk*(1+gammaSum), MaxRiskCap)
}

// EducationCorrection returns the signed offset for a 1–5 education
// level, applied by the caller to the memory domain score (scaled by
// 100). Unknown levels get no correction.
func EducationCorrection(level int) float64 {
	return educationCorrection[level]
}

// ComputeConfidenceScore estimates how reliable this session's results
// are: 1 minus the missing-data ratio minus the summed fatigue
// penalties, clamped to [0,1] and rounded to 3 decimals.
func ComputeConfidenceScore(missingDataRatio float64, fatigue *models.FatigueFlags) float64 {
	var penalty float64
	if fatigue != nil {
		for name, set := range fatigue.Flags() {
			if set {
				penalty += fatigueFactors[name]
			}
		}
	}
	confidence := 1.0 - missingDataRatio - penalty
	return roundTo(clampProb(confidence), 3)
}

// RecommendRetest reports whether confidence is low enough that the
// session should be repeated after rest.
func RecommendRetest(confidence float64) bool {
	return confidence < FatigueConfidenceThreshold
}

// AgeBracket buckets an age into the normative comparison groups.
func AgeBracket(age int) string {
	switch {
	case age < 40:
		return "20-39"
	case age < 60:
		return "40-59"
	case age < 75:
		return "60-75"
	default:
		return "75+"
	}
}

// AgeZScore compares a measurement against the peer-group norm:
// Z = (X − μ_age) / σ_age. Positive means above the peer mean. Metrics
// without a norm table return 0.
func AgeZScore(value float64, metric string, age int) float64 {
	norms, ok := ageNorms[metric]
	if !ok {
		return 0
	}
	norm, ok := norms[AgeBracket(age)]
	if !ok {
		return 0
	}
	return roundTo((value-norm.Mean)/norm.Std, 3)
}
