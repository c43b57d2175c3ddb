package features

import "math/rand"

// Estimator supplies plausible stand-in values for measurements a
// client never recorded. Only the fallback branches of the extractors
// consult it; real measurements never pass through an Estimator, and
// the risk models downstream are fully deterministic.
type Estimator interface {
	Float(min, max float64) float64
	Int(min, max int) int
}

// randEstimator draws from the shared math/rand source, which is safe
// for concurrent requests.
type randEstimator struct{}

// NewRandomEstimator returns the production Estimator.
func NewRandomEstimator() Estimator {
	return randEstimator{}
}

func (randEstimator) Float(min, max float64) float64 {
	return min + rand.Float64()*(max-min)
}

func (randEstimator) Int(min, max int) int {
	return min + rand.Intn(max-min+1)
}
