package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Archi44444/NeuroSaathi/internal/features"
	"github.com/Archi44444/NeuroSaathi/internal/models"
)

func defaultVector() features.FeatureVector {
	return features.BuildFeatureVector(nil, nil, nil, nil, nil)
}

func intPtr(v int) *int         { return &v }
func f64Ptr(v float64) *float64 { return &v }

func TestComputeDiseaseRisks_InRange(t *testing.T) {
	p := ComputeDiseaseRisks(defaultVector(), nil)

	for _, prob := range []float64{p.Alzheimers, p.Dementia, p.Parkinsons} {
		assert.GreaterOrEqual(t, prob, 0.0)
		assert.LessOrEqual(t, prob, 1.0)
	}
}

func TestComputeDiseaseRisks_Deterministic(t *testing.T) {
	fv := defaultVector()
	profile := &models.Profile{Age: intPtr(70), SleepHours: f64Ptr(5), EducationLevel: intPtr(4)}

	first := ComputeDiseaseRisks(fv, profile)
	second := ComputeDiseaseRisks(fv, profile)
	assert.Equal(t, first, second)

	noProfileA := ComputeDiseaseRisks(fv, nil)
	noProfileB := ComputeDiseaseRisks(fv, nil)
	assert.Equal(t, noProfileA, noProfileB)
}

func TestComputeDiseaseRisks_ProfileNudges(t *testing.T) {
	fv := defaultVector()
	base := ComputeDiseaseRisks(fv, nil)

	elderly := ComputeDiseaseRisks(fv, &models.Profile{Age: intPtr(70)})
	assert.InDelta(t, base.Alzheimers+0.04, elderly.Alzheimers, 1e-9)
	assert.InDelta(t, base.Dementia+0.03, elderly.Dementia, 1e-9)
	assert.InDelta(t, base.Parkinsons+0.03, elderly.Parkinsons, 1e-9)

	shortSleep := ComputeDiseaseRisks(fv, &models.Profile{SleepHours: f64Ptr(5)})
	assert.InDelta(t, base.Dementia+0.03, shortSleep.Dementia, 1e-9)
	assert.Equal(t, base.Alzheimers, shortSleep.Alzheimers)

	educated := ComputeDiseaseRisks(fv, &models.Profile{EducationLevel: intPtr(5)})
	assert.InDelta(t, base.Alzheimers-0.03, educated.Alzheimers, 1e-9)
	assert.InDelta(t, base.Dementia-0.02, educated.Dementia, 1e-9)
}

func TestComputeDiseaseRisks_WorseMemoryRaisesAlzheimers(t *testing.T) {
	healthy := features.BuildFeatureVector(nil, map[string]float64{
		"immediate_recall_accuracy": 95,
		"delayed_recall_accuracy":   95,
		"intrusion_count":           0,
	}, nil, nil, nil)
	impaired := features.BuildFeatureVector(nil, map[string]float64{
		"immediate_recall_accuracy": 20,
		"delayed_recall_accuracy":   10,
		"intrusion_count":           6,
	}, nil, nil, nil)

	assert.Greater(t,
		ComputeDiseaseRisks(impaired, nil).Alzheimers,
		ComputeDiseaseRisks(healthy, nil).Alzheimers,
	)
}

func TestProbToLevel(t *testing.T) {
	tests := []struct {
		prob float64
		want Level
	}{
		{0.0, LevelLow},
		{0.34, LevelLow},
		{0.35, LevelModerate},
		{0.64, LevelModerate},
		{0.65, LevelHigh},
		{1.0, LevelHigh},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, ProbToLevel(tc.prob), "prob %v", tc.prob)
	}
}
