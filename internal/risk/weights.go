package risk

// Fixed model configuration. Weight vectors, biases, divisors and the
// clinical tables are hand-authored constants, loaded once at process
// start; nothing here is mutated at runtime. Positive weight = higher
// feature value increases that disease's risk.
//
// Weight order matches features.FeatureVector.Values():
//   [wpm, speed_dev, speech_var, pause_ratio, start_delay,
//    imm_recall, del_recall, intrusions, latency, order_ratio,
//    mean_rt, std_rt, min_rt, drift, misses,
//    stroop_err, stroop_rt, tap_std]

// Alzheimer's: dominated by memory decline and word-finding
// difficulty.
var alzheimersWeights = [18]float64{
	-0.100, // wpm (slower speech, mild)
	0.080,  // speed_deviation
	0.060,  // speech_variability
	0.150,  // pause_ratio (word finding)
	0.050,  // speech_start_delay
	-0.300, // immediate_recall_accuracy (primary)
	-0.350, // delayed_recall_accuracy (strongest marker)
	0.200,  // intrusion_count
	0.150,  // recall_latency
	-0.200, // order_match_ratio
	0.030,  // mean_rt
	0.020,  // std_rt
	0.010,  // min_rt
	0.030,  // reaction_drift
	0.050,  // miss_count
	0.050,  // stroop_error_rate
	0.020,  // stroop_rt
	0.020,  // tap_interval_std
}

const alzheimersBias = 0.20

// General dementia: attention, processing speed, broad decline.
var dementiaWeights = [18]float64{
	-0.080,
	0.050,
	0.050,
	0.080,
	0.060,
	-0.200,
	-0.180,
	0.120,
	0.100,
	-0.120,
	0.250, // mean_rt (processing speed)
	0.200, // std_rt (attention instability)
	0.100,
	0.180,
	0.250, // miss_count (sustained attention, primary)
	0.300, // stroop_error_rate (executive function, primary)
	0.150,
	0.080,
}

const dementiaBias = -0.30

// Parkinson's: motor timing, initiation, reaction consistency.
var parkinsonsWeights = [18]float64{
	-0.150, // wpm (hypophonia)
	0.120,
	0.180, // speech_variability (dysrhythmic)
	0.100,
	0.200, // speech_start_delay (initiation delay, primary)
	-0.050,
	-0.050,
	0.050,
	0.080,
	-0.050,
	0.300, // mean_rt (bradykinesia, primary)
	0.250, // std_rt (motor inconsistency, primary)
	0.200, // min_rt (slow even at best)
	0.150,
	0.200,
	0.080,
	0.100,
	0.400, // tap_interval_std (rhythmic motor control, primary)
}

const parkinsonsBias = -0.50

// Per-feature divisors bringing raw features into an approximate
// [0,1] range at model-input time (e.g. mean reaction time / 800 ms).
var featureDivisors = [18]float64{
	200.0,  // wpm
	50.0,   // speed_deviation
	30.0,   // speech_variability
	1.0,    // pause_ratio (already a ratio)
	5.0,    // speech_start_delay (s)
	100.0,  // immediate_recall_accuracy (%)
	100.0,  // delayed_recall_accuracy (%)
	10.0,   // intrusion_count
	15.0,   // recall_latency (s)
	1.0,    // order_match_ratio
	800.0,  // mean_rt (ms)
	300.0,  // std_rt (ms)
	600.0,  // min_rt (ms)
	300.0,  // reaction_drift (ms)
	10.0,   // miss_count
	1.0,    // stroop_error_rate
	1000.0, // stroop_rt (ms)
	200.0,  // tap_interval_std (ms)
}

// Domain weights for the composite risk score; they sum to 1.0.
var domainWeights = struct {
	Speech, Memory, Reaction, Executive, Motor float64
}{
	Speech:    0.25,
	Memory:    0.30,
	Reaction:  0.20,
	Executive: 0.15,
	Motor:     0.10,
}

// Categorical risk thresholds on the probability scale.
const (
	lowRiskMax      = 0.35
	moderateRiskMax = 0.65
)

// Medical-condition risk multipliers (gamma coefficients) and the hard
// cap on any adjusted probability.
var conditionGamma = map[string]float64{
	"diabetes":          0.04,
	"hypertension":      0.05,
	"stroke_history":    0.08,
	"family_alzheimers": 0.06,
	"parkinsons_dx":     0.10,
	"depression":        0.04,
	"thyroid_disorder":  0.03,
}

const MaxRiskCap = 0.95

// Education correction applied to the memory domain score (cognitive
// reserve). Levels: 1 none, 2 primary, 3 secondary, 4 graduate,
// 5 postgraduate.
var educationCorrection = map[int]float64{
	1: +0.05,
	2: +0.03,
	3: 0.00,
	4: 0.00,
	5: -0.02,
}

// Confidence penalties for self-reported temporary factors.
var fatigueFactors = map[string]float64{
	"tired":          0.10,
	"sleep_deprived": 0.12,
	"sick":           0.08,
	"anxious":        0.06,
}

// FatigueConfidenceThreshold: below this confidence a retest is
// recommended.
const FatigueConfidenceThreshold = 0.75

// Hybrid blend weights; they sum to 1.0.
const (
	hybridClinicalWeight = 0.6
	hybridMLWeight       = 0.4
)

// Curated per-disease importance tables for the explainability
// ranking. These are clinical judgments, not derived from the model
// weights.
var importanceTables = map[Disease]map[string]float64{
	Alzheimers: {
		"delayed_recall_accuracy":   0.35,
		"immediate_recall_accuracy": 0.30,
		"intrusion_count":           0.20,
		"pause_ratio":               0.15,
		"order_match_ratio":         0.15,
		"recall_latency":            0.10,
		"reaction_drift":            0.05,
		"stroop_error_rate":         0.05,
	},
	Dementia: {
		"stroop_error_rate":         0.30,
		"miss_count":                0.25,
		"mean_rt":                   0.25,
		"immediate_recall_accuracy": 0.20,
		"std_rt":                    0.20,
		"reaction_drift":            0.18,
		"delayed_recall_accuracy":   0.18,
	},
	Parkinsons: {
		"tap_interval_std":   0.40,
		"mean_rt":            0.30,
		"std_rt":             0.25,
		"speech_start_delay": 0.20,
		"speech_variability": 0.18,
		"min_rt":             0.15,
	},
}

// Age-bracket norms for peer comparison z-scores.
type ageNorm struct {
	Mean, Std float64
}

var ageNorms = map[string]map[string]ageNorm{
	"reaction_time": { // ms, lower is better
		"20-39": {Mean: 280, Std: 45},
		"40-59": {Mean: 330, Std: 55},
		"60-75": {Mean: 400, Std: 70},
		"75+":   {Mean: 480, Std: 90},
	},
	"memory_accuracy": { // %, higher is better
		"20-39": {Mean: 82, Std: 12},
		"40-59": {Mean: 75, Std: 13},
		"60-75": {Mean: 65, Std: 15},
		"75+":   {Mean: 55, Std: 18},
	},
	"wpm": { // words per minute, higher is better
		"20-39": {Mean: 145, Std: 30},
		"40-59": {Mean: 135, Std: 30},
		"60-75": {Mean: 120, Std: 32},
		"75+":   {Mean: 105, Std: 35},
	},
}

// Safe output language returned alongside every result.
const (
	Disclaimer = "This is NOT a diagnosis. This tool identifies cognitive risk indicators only. " +
		"Always consult a qualified neurologist or physician for clinical evaluation."
	RetestRecommendation = "Results may be temporarily affected by fatigue or stress. " +
		"Please retest after adequate rest for a more reliable reading."
)
