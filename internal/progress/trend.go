package progress

// Trend classifies the direction of a metric series.
type Trend string

const (
	TrendImproving        Trend = "improving"
	TrendDeclining        Trend = "declining"
	TrendStable           Trend = "stable"
	TrendInsufficientData Trend = "insufficient_data"
	// TrendNoData is only ever the overall trajectory of an empty
	// history.
	TrendNoData Trend = "no_data"
)

// Slope thresholds (score units per session) separating a real
// direction from noise.
const (
	improvingSlope = 1.0
	decliningSlope = -1.0
)

// ComputeTrend fits an ordinary least-squares slope of score against
// session index and classifies it. Fewer than 2 points is
// insufficient data.
func ComputeTrend(scores []float64) Trend {
	if len(scores) < 2 {
		return TrendInsufficientData
	}

	n := len(scores)
	xMean := float64(n-1) / 2
	yMean := mean(scores)

	var numerator, denominator float64
	for i, s := range scores {
		dx := float64(i) - xMean
		numerator += dx * (s - yMean)
		denominator += dx * dx
	}

	// Cannot occur for n >= 2 with distinct indices; mapped to stable
	// rather than propagating a division fault.
	if denominator == 0 {
		return TrendStable
	}

	slope := numerator / denominator
	switch {
	case slope > improvingSlope:
		return TrendImproving
	case slope < decliningSlope:
		return TrendDeclining
	default:
		return TrendStable
	}
}

// ChangeRate is the percentage change from the first recorded score to
// the latest. Nil when there are fewer than 2 points or the baseline
// is zero.
func ChangeRate(scores []float64) *float64 {
	if len(scores) < 2 {
		return nil
	}
	first, latest := scores[0], scores[len(scores)-1]
	if first == 0 {
		return nil
	}
	rate := roundTo((latest-first)/first*100, 2)
	return &rate
}
