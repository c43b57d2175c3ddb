package risk

import "math"

// DomainScores holds the five 0–100 domain health scores (higher =
// healthier).
type DomainScores struct {
	Speech    float64 `json:"speech_score"`
	Memory    float64 `json:"memory_score"`
	Reaction  float64 `json:"reaction_score"`
	Executive float64 `json:"executive_score"`
	Motor     float64 `json:"motor_score"`
}

// CompositeRisk collapses the domain scores into a single 0–100 risk
// number: each domain score is inverted (healthier = less risk) and
// weighted by the fixed domain weights.
func CompositeRisk(s DomainScores) float64 {
	risk := domainWeights.Speech*(100-s.Speech) +
		domainWeights.Memory*(100-s.Memory) +
		domainWeights.Reaction*(100-s.Reaction) +
		domainWeights.Executive*(100-s.Executive) +
		domainWeights.Motor*(100-s.Motor)
	return roundTo(math.Min(math.Max(risk, 0), 100), 2)
}

// RiskDrivers decomposes the composite risk into per-domain
// percentage contributions, keyed by the explanatory field names the
// dashboard expects. Percentages are rounded independently, so their
// sum can drift a few points from 100.
func RiskDrivers(s DomainScores) map[string]int {
	contributions := map[string]float64{
		"speech":    domainWeights.Speech * (100 - s.Speech),
		"memory":    domainWeights.Memory * (100 - s.Memory),
		"reaction":  domainWeights.Reaction * (100 - s.Reaction),
		"executive": domainWeights.Executive * (100 - s.Executive),
		"motor":     domainWeights.Motor * (100 - s.Motor),
	}

	var total float64
	for _, c := range contributions {
		total += c
	}
	if total == 0 {
		total = 1.0
	}

	pct := func(domain string) int {
		return int(math.Round(contributions[domain] / total * 100))
	}

	return map[string]int{
		"memory_recall_contribution_pct":      pct("memory"),
		"executive_function_contribution_pct": pct("executive"),
		"speech_delay_contribution_pct":       pct("speech"),
		"reaction_time_contribution_pct":      pct("reaction"),
		"motor_consistency_contribution_pct":  pct("motor"),
	}
}
