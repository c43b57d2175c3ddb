package models

import (
	"time"

	"github.com/lib/pq"

	"github.com/Archi44444/NeuroSaathi/internal/progress"
)

// AssessmentResult is the persisted record for one completed session.
// It is written once per analyze call and never updated; the
// repository keeps only a user's most recent entries.
type AssessmentResult struct {
	ID        uint      `json:"-" gorm:"primaryKey"`
	UserID    uint      `json:"-" gorm:"index;not null"`
	CreatedAt time.Time `json:"timestamp"`

	SpeechScore    float64 `json:"speech_score"`
	MemoryScore    float64 `json:"memory_score"`
	ReactionScore  float64 `json:"reaction_score"`
	ExecutiveScore float64 `json:"executive_score"`
	MotorScore     float64 `json:"motor_score"`

	AlzheimersRisk float64 `json:"alzheimers_risk"`
	DementiaRisk   float64 `json:"dementia_risk"`
	ParkinsonsRisk float64 `json:"parkinsons_risk"`

	CompositeRiskScore        float64 `json:"composite_risk_score"`
	HybridRisk                float64 `json:"hybrid_risk"`
	Confidence                float64 `json:"confidence"`
	AttentionVariabilityIndex float64 `json:"attention_variability_index"`

	// The 18-feature vector in its fixed order, kept for audit and
	// recalibration work.
	FeatureVector pq.Float64Array `json:"feature_vector,omitempty" gorm:"type:float8[]"`
}

// ProgressRecord projects the stored result onto the slice the
// progress analyzers consume.
func (r AssessmentResult) ProgressRecord() progress.Record {
	return progress.Record{
		SpeechScore:    r.SpeechScore,
		MemoryScore:    r.MemoryScore,
		ReactionScore:  r.ReactionScore,
		ExecutiveScore: r.ExecutiveScore,
		MotorScore:     r.MotorScore,
		AlzheimersRisk: r.AlzheimersRisk,
		DementiaRisk:   r.DementiaRisk,
		ParkinsonsRisk: r.ParkinsonsRisk,
	}
}

// ProgressRecords converts a chronological history in one pass.
func ProgressRecords(results []AssessmentResult) []progress.Record {
	records := make([]progress.Record, len(results))
	for i, r := range results {
		records[i] = r.ProgressRecord()
	}
	return records
}
