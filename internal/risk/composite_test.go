package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompositeRisk_PerfectHealthIsZero(t *testing.T) {
	scores := DomainScores{Speech: 100, Memory: 100, Reaction: 100, Executive: 100, Motor: 100}
	assert.Equal(t, 0.0, CompositeRisk(scores))
}

func TestCompositeRisk_WorstCaseIsHundred(t *testing.T) {
	assert.Equal(t, 100.0, CompositeRisk(DomainScores{}))
}

func TestCompositeRisk_Weighted(t *testing.T) {
	// Only memory impaired: 0.30 × (100−40) = 18.
	scores := DomainScores{Speech: 100, Memory: 40, Reaction: 100, Executive: 100, Motor: 100}
	assert.InDelta(t, 18.0, CompositeRisk(scores), 1e-9)
}

func TestRiskDrivers_PercentagesRoughlySumToHundred(t *testing.T) {
	cases := []DomainScores{
		{Speech: 80, Memory: 60, Reaction: 70, Executive: 90, Motor: 50},
		{Speech: 99, Memory: 98, Reaction: 97, Executive: 96, Motor: 95},
		{Speech: 10, Memory: 20, Reaction: 30, Executive: 40, Motor: 50},
	}

	for _, scores := range cases {
		drivers := RiskDrivers(scores)
		assert.Len(t, drivers, 5)

		sum := 0
		for key, pct := range drivers {
			assert.GreaterOrEqual(t, pct, 0, "driver %s negative", key)
			sum += pct
		}
		// Independent rounding can drift the total a few points.
		assert.InDelta(t, 100, sum, 5)
	}
}

func TestRiskDrivers_ZeroRiskDoesNotDivideByZero(t *testing.T) {
	drivers := RiskDrivers(DomainScores{Speech: 100, Memory: 100, Reaction: 100, Executive: 100, Motor: 100})
	for key, pct := range drivers {
		assert.Equal(t, 0, pct, "driver %s", key)
	}
}

func TestRiskDrivers_DominantDomain(t *testing.T) {
	// Memory is the only impairment, so it owns all the risk.
	drivers := RiskDrivers(DomainScores{Speech: 100, Memory: 0, Reaction: 100, Executive: 100, Motor: 100})
	assert.Equal(t, 100, drivers["memory_recall_contribution_pct"])
	assert.Equal(t, 0, drivers["speech_delay_contribution_pct"])
}
