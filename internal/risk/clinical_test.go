package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Archi44444/NeuroSaathi/internal/models"
)

func TestApplyConditionMultipliers_IdentityWithoutConditions(t *testing.T) {
	for _, r := range []float64{0, 0.2, 0.5, 0.95} {
		assert.Equal(t, r, ApplyConditionMultipliers(r, nil))
		assert.Equal(t, r, ApplyConditionMultipliers(r, &models.Conditions{}))
	}
}

func TestApplyConditionMultipliers_CompoundsAdditively(t *testing.T) {
	conditions := &models.Conditions{Diabetes: true, Hypertension: true}

	// γ(diabetes)=0.04, γ(hypertension)=0.05 → ×1.09.
	got := ApplyConditionMultipliers(0.5, conditions)
	assert.InDelta(t, 0.545, got, 1e-9)
	assert.GreaterOrEqual(t, got, 0.5)
}

func TestApplyConditionMultipliers_Cap(t *testing.T) {
	conditions := &models.Conditions{
		Diabetes: true, Hypertension: true, StrokeHistory: true,
		FamilyAlzheimers: true, ParkinsonsDx: true, Depression: true,
		ThyroidDisorder: true,
	}

	assert.Equal(t, 0.95, ApplyConditionMultipliers(0.9, conditions))
}

func TestEducationCorrection(t *testing.T) {
	assert.Equal(t, 0.05, EducationCorrection(1))
	assert.Equal(t, 0.03, EducationCorrection(2))
	assert.Equal(t, 0.0, EducationCorrection(3))
	assert.Equal(t, -0.02, EducationCorrection(5))
	// Unknown level ⇒ no correction.
	assert.Equal(t, 0.0, EducationCorrection(9))
}

func TestComputeConfidenceScore(t *testing.T) {
	assert.Equal(t, 1.0, ComputeConfidenceScore(0, nil))
	assert.Equal(t, 0.8, ComputeConfidenceScore(0.2, &models.FatigueFlags{}))

	// tired (0.10) + sick (0.08) on a complete session.
	got := ComputeConfidenceScore(0, &models.FatigueFlags{Tired: true, Sick: true})
	assert.InDelta(t, 0.82, got, 1e-9)

	// Never leaves [0,1].
	assert.Equal(t, 0.0, ComputeConfidenceScore(1.0, &models.FatigueFlags{Tired: true, SleepDeprived: true}))
}

func TestRecommendRetest(t *testing.T) {
	assert.False(t, RecommendRetest(0.75))
	assert.False(t, RecommendRetest(0.9))
	assert.True(t, RecommendRetest(0.74))
}

func TestAgeBracket(t *testing.T) {
	tests := []struct {
		age  int
		want string
	}{
		{25, "20-39"},
		{39, "20-39"},
		{40, "40-59"},
		{60, "60-75"},
		{74, "60-75"},
		{75, "75+"},
		{90, "75+"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, AgeBracket(tc.age), "age %d", tc.age)
	}
}

func TestAgeZScore(t *testing.T) {
	// 20-39 reaction norm: mean 280, std 45.
	assert.InDelta(t, 1.0, AgeZScore(325, "reaction_time", 30), 1e-9)
	assert.InDelta(t, 0.0, AgeZScore(280, "reaction_time", 30), 1e-9)

	// Unknown metric ⇒ neutral.
	assert.Equal(t, 0.0, AgeZScore(100, "grip_strength", 30))
}
