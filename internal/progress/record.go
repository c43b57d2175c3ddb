package progress

// Record is the slice of a stored assessment result that progress
// analysis reads. Histories are passed by value, oldest first; this
// package never mutates or extends them.
type Record struct {
	SpeechScore    float64
	MemoryScore    float64
	ReactionScore  float64
	ExecutiveScore float64
	MotorScore     float64

	AlzheimersRisk float64
	DementiaRisk   float64
	ParkinsonsRisk float64
}

// trackedMetrics fixes which scores are analyzed and in what order.
var trackedMetrics = []struct {
	Key   string
	Label string
	Get   func(Record) float64
}{
	{"memory_score", "Memory", func(r Record) float64 { return r.MemoryScore }},
	{"reaction_score", "Reaction Time", func(r Record) float64 { return r.ReactionScore }},
	{"speech_score", "Speech", func(r Record) float64 { return r.SpeechScore }},
	{"executive_score", "Executive Function", func(r Record) float64 { return r.ExecutiveScore }},
	{"motor_score", "Motor Control", func(r Record) float64 { return r.MotorScore }},
}

var trackedRisks = []struct {
	Key string
	Get func(Record) float64
}{
	{"alzheimers_risk", func(r Record) float64 { return r.AlzheimersRisk }},
	{"dementia_risk", func(r Record) float64 { return r.DementiaRisk }},
	{"parkinsons_risk", func(r Record) float64 { return r.ParkinsonsRisk }},
}
