package features

// FeatureVector is the fixed 18-feature summary of one session,
// grouped speech(5) / memory(5) / reaction(5) / executive(2) /
// motor(1). Values are the raw extractor outputs; normalization to
// model range happens inside the risk models, not here.
type FeatureVector struct {
	WPM                     float64 `json:"wpm"`
	SpeedDeviation          float64 `json:"speed_deviation"`
	SpeechVariability       float64 `json:"speech_variability"`
	PauseRatio              float64 `json:"pause_ratio"`
	SpeechStartDelay        float64 `json:"speech_start_delay"`
	ImmediateRecallAccuracy float64 `json:"immediate_recall_accuracy"`
	DelayedRecallAccuracy   float64 `json:"delayed_recall_accuracy"`
	IntrusionCount          float64 `json:"intrusion_count"`
	RecallLatency           float64 `json:"recall_latency"`
	OrderMatchRatio         float64 `json:"order_match_ratio"`
	MeanRT                  float64 `json:"mean_rt"`
	StdRT                   float64 `json:"std_rt"`
	MinRT                   float64 `json:"min_rt"`
	ReactionDrift           float64 `json:"reaction_drift"`
	MissCount               float64 `json:"miss_count"`
	StroopErrorRate         float64 `json:"stroop_error_rate"`
	StroopRT                float64 `json:"stroop_rt"`
	TapIntervalStd          float64 `json:"tap_interval_std"`
}

// BuildFeatureVector merges the five extractors' feature maps into the
// fixed-order vector. It is total: any feature an extractor did not
// emit gets its documented default, so the vector is always fully
// populated.
func BuildFeatureVector(speech, memory, reaction, executive, motor map[string]float64) FeatureVector {
	return FeatureVector{
		WPM:                     get(speech, "wpm", 120),
		SpeedDeviation:          get(speech, "speed_deviation", 10),
		SpeechVariability:       get(speech, "speech_variability", 8),
		PauseRatio:              get(speech, "pause_ratio", 0.15),
		SpeechStartDelay:        get(speech, "speech_start_delay", 1.0),
		ImmediateRecallAccuracy: get(memory, "immediate_recall_accuracy", 70),
		DelayedRecallAccuracy:   get(memory, "delayed_recall_accuracy", 65),
		IntrusionCount:          get(memory, "intrusion_count", 1),
		RecallLatency:           get(memory, "recall_latency", 3.0),
		OrderMatchRatio:         get(memory, "order_match_ratio", 0.8),
		MeanRT:                  get(reaction, "mean_rt", 320),
		StdRT:                   get(reaction, "std_rt", 45),
		MinRT:                   get(reaction, "min_rt", 250),
		ReactionDrift:           get(reaction, "reaction_drift", 10),
		MissCount:               get(reaction, "miss_count", 0),
		StroopErrorRate:         get(executive, "stroop_error_rate", 0.10),
		StroopRT:                get(executive, "stroop_rt", 550),
		TapIntervalStd:          get(motor, "tap_interval_std", 40),
	}
}

// Map returns the vector keyed by feature name, the shape the
// importance ranker and the stored record consume.
func (fv FeatureVector) Map() map[string]float64 {
	return map[string]float64{
		"wpm":                       fv.WPM,
		"speed_deviation":           fv.SpeedDeviation,
		"speech_variability":        fv.SpeechVariability,
		"pause_ratio":               fv.PauseRatio,
		"speech_start_delay":        fv.SpeechStartDelay,
		"immediate_recall_accuracy": fv.ImmediateRecallAccuracy,
		"delayed_recall_accuracy":   fv.DelayedRecallAccuracy,
		"intrusion_count":           fv.IntrusionCount,
		"recall_latency":            fv.RecallLatency,
		"order_match_ratio":         fv.OrderMatchRatio,
		"mean_rt":                   fv.MeanRT,
		"std_rt":                    fv.StdRT,
		"min_rt":                    fv.MinRT,
		"reaction_drift":            fv.ReactionDrift,
		"miss_count":                fv.MissCount,
		"stroop_error_rate":         fv.StroopErrorRate,
		"stroop_rt":                 fv.StroopRT,
		"tap_interval_std":          fv.TapIntervalStd,
	}
}

// Values returns the vector in its fixed order, matching the weight
// vectors of the disease models.
func (fv FeatureVector) Values() [18]float64 {
	return [18]float64{
		fv.WPM, fv.SpeedDeviation, fv.SpeechVariability, fv.PauseRatio, fv.SpeechStartDelay,
		fv.ImmediateRecallAccuracy, fv.DelayedRecallAccuracy, fv.IntrusionCount, fv.RecallLatency, fv.OrderMatchRatio,
		fv.MeanRT, fv.StdRT, fv.MinRT, fv.ReactionDrift, fv.MissCount,
		fv.StroopErrorRate, fv.StroopRT,
		fv.TapIntervalStd,
	}
}

func get(m map[string]float64, key string, def float64) float64 {
	if v, ok := m[key]; ok {
		return v
	}
	return def
}
