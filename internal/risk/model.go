package risk

import (
	"math"

	"github.com/Archi44444/NeuroSaathi/internal/features"
	"github.com/Archi44444/NeuroSaathi/internal/models"
)

// Disease identifies one of the three tracked conditions.
type Disease string

const (
	Alzheimers Disease = "alzheimers"
	Dementia   Disease = "dementia"
	Parkinsons Disease = "parkinsons"
)

// Level is the categorical banding of a probability.
type Level string

const (
	LevelLow      Level = "Low"
	LevelModerate Level = "Moderate"
	LevelHigh     Level = "High"
)

// Probabilities holds the three per-disease risk estimates, each in
// [0,1].
type Probabilities struct {
	Alzheimers float64 `json:"alzheimers_risk"`
	Dementia   float64 `json:"dementia_risk"`
	Parkinsons float64 `json:"parkinsons_risk"`
}

// ComputeDiseaseRisks normalizes the 18 raw features by their fixed
// divisors and runs the three logistic models. The optional profile
// applies small additive nudges per disease. Given identical inputs
// the output is bit-for-bit reproducible; there is no randomness
// here.
func ComputeDiseaseRisks(fv features.FeatureVector, profile *models.Profile) Probabilities {
	raw := fv.Values()
	var vec [18]float64
	for i, v := range raw {
		vec[i] = v / featureDivisors[i]
	}

	p := Probabilities{
		Alzheimers: predict(vec, alzheimersWeights, alzheimersBias),
		Dementia:   predict(vec, dementiaWeights, dementiaBias),
		Parkinsons: predict(vec, parkinsonsWeights, parkinsonsBias),
	}

	if profile != nil {
		var alzAdj, demAdj, parkAdj float64
		if profile.Age != nil && *profile.Age > 65 {
			alzAdj += 0.04
			demAdj += 0.03
			parkAdj += 0.03
		}
		if profile.SleepHours != nil && *profile.SleepHours < 6 {
			demAdj += 0.03
		}
		if profile.EducationLevel != nil && *profile.EducationLevel >= 4 {
			alzAdj -= 0.03
			demAdj -= 0.02
		}
		p.Alzheimers = clampProb(p.Alzheimers + alzAdj)
		p.Dementia = clampProb(p.Dementia + demAdj)
		p.Parkinsons = clampProb(p.Parkinsons + parkAdj)
	}

	return p
}

// predict is a logistic-regression forward pass, rounded to 3
// decimals.
func predict(vec, weights [18]float64, bias float64) float64 {
	logit := bias
	for i := range vec {
		logit += weights[i] * vec[i]
	}
	return roundTo(sigmoid(logit), 3)
}

func sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

// ProbToLevel maps a probability onto the three-level risk banding.
func ProbToLevel(prob float64) Level {
	switch {
	case prob < lowRiskMax:
		return LevelLow
	case prob < moderateRiskMax:
		return LevelModerate
	default:
		return LevelHigh
	}
}

func clampProb(p float64) float64 {
	return math.Min(math.Max(p, 0), 1)
}

func roundTo(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}
