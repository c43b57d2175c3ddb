package models

// Per-domain payloads submitted by the assessment frontend. Every
// field is optional; the feature extractors substitute fallbacks for
// anything the test never measured.

type SpeechSample struct {
	AudioB64               string   `json:"audio_b64,omitempty"`
	WPM                    *float64 `json:"wpm"`
	SpeedDeviation         *float64 `json:"speed_deviation"`
	SpeechSpeedVariability *float64 `json:"speech_speed_variability"`
	PauseRatio             *float64 `json:"pause_ratio"`
	CompletionRatio        *float64 `json:"completion_ratio"`
	RestartCount           int      `json:"restart_count"`
	SpeechStartDelay       *float64 `json:"speech_start_delay"`
}

type MemorySample struct {
	WordRecallAccuracy    float64  `json:"word_recall_accuracy"`
	PatternAccuracy       float64  `json:"pattern_accuracy"`
	DelayedRecallAccuracy *float64 `json:"delayed_recall_accuracy"`
	RecallLatencySeconds  *float64 `json:"recall_latency_seconds"`
	OrderMatchRatio       *float64 `json:"order_match_ratio"`
	IntrusionCount        int      `json:"intrusion_count"`
}

type ReactionSample struct {
	Times           []float64 `json:"times"`
	MissCount       int       `json:"miss_count"`
	InitiationDelay *float64  `json:"initiation_delay"`
}

type StroopSample struct {
	TotalTrials   int      `json:"total_trials"`
	ErrorCount    int      `json:"error_count"`
	MeanRT        *float64 `json:"mean_rt"`
	IncongruentRT *float64 `json:"incongruent_rt"`
}

type TapSample struct {
	Intervals []float64 `json:"intervals"`
	TapCount  int       `json:"tap_count"`
}

// Profile carries the self-reported demographics used for risk nudges
// and age-normed comparisons. EducationLevel is 1–5 (1 = no formal
// schooling, 5 = postgraduate).
type Profile struct {
	Age            *int     `json:"age"`
	EducationLevel *int     `json:"education_level"`
	SleepHours     *float64 `json:"sleep_hours"`
}

type Conditions struct {
	Diabetes         bool `json:"diabetes"`
	Hypertension     bool `json:"hypertension"`
	StrokeHistory    bool `json:"stroke_history"`
	FamilyAlzheimers bool `json:"family_alzheimers"`
	ParkinsonsDx     bool `json:"parkinsons_dx"`
	Depression       bool `json:"depression"`
	ThyroidDisorder  bool `json:"thyroid_disorder"`
}

// Flags exposes the condition checkboxes keyed the way the gamma
// table is keyed.
func (c Conditions) Flags() map[string]bool {
	return map[string]bool{
		"diabetes":          c.Diabetes,
		"hypertension":      c.Hypertension,
		"stroke_history":    c.StrokeHistory,
		"family_alzheimers": c.FamilyAlzheimers,
		"parkinsons_dx":     c.ParkinsonsDx,
		"depression":        c.Depression,
		"thyroid_disorder":  c.ThyroidDisorder,
	}
}

type FatigueFlags struct {
	Tired         bool `json:"tired"`
	SleepDeprived bool `json:"sleep_deprived"`
	Sick          bool `json:"sick"`
	Anxious       bool `json:"anxious"`
}

func (f FatigueFlags) Flags() map[string]bool {
	return map[string]bool{
		"tired":          f.Tired,
		"sleep_deprived": f.SleepDeprived,
		"sick":           f.Sick,
		"anxious":        f.Anxious,
	}
}

// AnalyzeRequest is the full submission for one screening session.
// The loose MemoryResults / ReactionTimes fields are the legacy shape
// older frontends send when the structured samples are absent.
type AnalyzeRequest struct {
	SpeechAudio   string             `json:"speech_audio,omitempty"`
	MemoryResults map[string]float64 `json:"memory_results"`
	ReactionTimes []float64          `json:"reaction_times"`

	Speech   *SpeechSample   `json:"speech"`
	Memory   *MemorySample   `json:"memory"`
	Reaction *ReactionSample `json:"reaction"`
	Stroop   *StroopSample   `json:"stroop"`
	Tap      *TapSample      `json:"tap"`

	Profile    *Profile      `json:"profile"`
	Conditions *Conditions   `json:"conditions"`
	Fatigue    *FatigueFlags `json:"fatigue"`
}
