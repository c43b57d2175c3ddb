package progress

// MetricSummary describes one metric over a user's full history.
type MetricSummary struct {
	Label      string    `json:"label"`
	Latest     float64   `json:"latest"`
	Average    float64   `json:"average"`
	Best       float64   `json:"best"`
	Worst      float64   `json:"worst"`
	Trend      Trend     `json:"trend"`
	ChangeRate *float64  `json:"change_rate"`
	History    []float64 `json:"history"`
}

// RiskTrend tracks a stored disease probability over time.
type RiskTrend struct {
	Latest  float64 `json:"latest"`
	Average float64 `json:"average"`
	Trend   Trend   `json:"trend"`
}

// Summary is the full longitudinal view over a user's history.
type Summary struct {
	SessionCount      int                      `json:"session_count"`
	OverallTrajectory Trend                    `json:"overall_trajectory"`
	Metrics           map[string]MetricSummary `json:"metrics"`
	RiskTrends        map[string]RiskTrend     `json:"risk_trends"`
}

// BuildSummary computes per-metric trends and an overall trajectory
// from a chronological (oldest-first) history.
func BuildSummary(history []Record) Summary {
	if len(history) == 0 {
		return Summary{
			SessionCount:      0,
			OverallTrajectory: TrendNoData,
			Metrics:           map[string]MetricSummary{},
			RiskTrends:        map[string]RiskTrend{},
		}
	}

	metrics := make(map[string]MetricSummary, len(trackedMetrics))
	var improving, declining int

	for _, m := range trackedMetrics {
		series := make([]float64, len(history))
		rounded := make([]float64, len(history))
		for i, r := range history {
			series[i] = m.Get(r)
			rounded[i] = roundTo(series[i], 2)
		}

		trend := ComputeTrend(series)
		metrics[m.Key] = MetricSummary{
			Label:      m.Label,
			Latest:     roundTo(series[len(series)-1], 2),
			Average:    roundTo(mean(series), 2),
			Best:       roundTo(maxValue(series), 2),
			Worst:      roundTo(minValue(series), 2),
			Trend:      trend,
			ChangeRate: ChangeRate(series),
			History:    rounded,
		}

		switch trend {
		case TrendImproving:
			improving++
		case TrendDeclining:
			declining++
		}
	}

	// Majority vote across metrics; ties resolve to stable.
	overall := TrendStable
	if declining > improving {
		overall = TrendDeclining
	} else if improving > declining {
		overall = TrendImproving
	}

	riskTrends := make(map[string]RiskTrend, len(trackedRisks))
	for _, rm := range trackedRisks {
		series := make([]float64, len(history))
		scaled := make([]float64, len(history))
		for i, r := range history {
			series[i] = rm.Get(r)
			scaled[i] = series[i] * 100 // probability → score scale for slope thresholds
		}
		riskTrends[rm.Key] = RiskTrend{
			Latest:  roundTo(series[len(series)-1], 4),
			Average: roundTo(mean(series), 4),
			Trend:   ComputeTrend(scaled),
		}
	}

	return Summary{
		SessionCount:      len(history),
		OverallTrajectory: overall,
		Metrics:           metrics,
		RiskTrends:        riskTrends,
	}
}

func maxValue(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	highest := values[0]
	for _, v := range values[1:] {
		if v > highest {
			highest = v
		}
	}
	return highest
}

func minValue(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	lowest := values[0]
	for _, v := range values[1:] {
		if v < lowest {
			lowest = v
		}
	}
	return lowest
}
