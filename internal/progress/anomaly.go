package progress

import (
	"fmt"
	"math"
)

// Severity classifies how far a new score dropped below its history.
type Severity string

const (
	SeverityInsufficientData Severity = "insufficient_data"
	SeverityNone             Severity = "none"
	SeverityMild             Severity = "mild"
	SeveritySignificant      Severity = "significant"
	SeveritySevere           Severity = "severe"
)

// Rank orders severities for cross-metric aggregation. Insufficient
// data ranks with none: it is a terminal state, not an alert.
func (s Severity) Rank() int {
	switch s {
	case SeverityMild:
		return 1
	case SeveritySignificant:
		return 2
	case SeveritySevere:
		return 3
	default:
		return 0
	}
}

const (
	// Minimum prior sessions before z-scores mean anything.
	minAnomalyHistory = 3

	// Drop-only z thresholds. A rise (z > 0) is never flagged.
	mildZThreshold        = -1.5
	significantZThreshold = -1.75
	severeZThreshold      = -2.5

	// Floor on the historical std to avoid dividing by near-zero on
	// flat histories.
	stdFloor = 1.0
)

// Finding is the anomaly verdict for a single metric.
type Finding struct {
	Detected    bool     `json:"anomaly_detected"`
	ZScore      *float64 `json:"z_score"`
	Severity    Severity `json:"severity"`
	MeanHistory float64  `json:"mean_history,omitempty"`
	StdHistory  float64  `json:"std_history,omitempty"`
	Message     string   `json:"message,omitempty"`
}

// DetectAnomaly checks whether currentScore is an anomalous drop
// against the chronological score history. The current score is never
// part of the history it is compared against.
func DetectAnomaly(history []float64, currentScore float64, metricLabel string) Finding {
	if len(history) < minAnomalyHistory {
		return Finding{
			Detected: false,
			Severity: SeverityInsufficientData,
			Message:  fmt.Sprintf("Need %d+ sessions to detect anomalies.", minAnomalyHistory),
		}
	}

	meanH := mean(history)
	stdH := sampleStdDev(history)
	if stdH < stdFloor {
		stdH = stdFloor
	}

	z := roundTo((currentScore-meanH)/stdH, 3)

	var severity Severity
	switch {
	case z < severeZThreshold:
		severity = SeveritySevere
	case z < significantZThreshold:
		severity = SeveritySignificant
	case z < mildZThreshold:
		severity = SeverityMild
	default:
		severity = SeverityNone
	}

	return Finding{
		Detected:    severity != SeverityNone,
		ZScore:      &z,
		Severity:    severity,
		MeanHistory: roundTo(meanH, 2),
		StdHistory:  roundTo(stdH, 2),
		Message:     severityMessage(severity, metricLabel),
	}
}

func severityMessage(s Severity, metricLabel string) string {
	switch s {
	case SeverityMild:
		return fmt.Sprintf("Mild %s dip detected. Monitor over next session.", metricLabel)
	case SeveritySignificant:
		return fmt.Sprintf("Significant %s drop detected. Recommend clinical attention.", metricLabel)
	case SeveritySevere:
		return fmt.Sprintf("Severe %s decline detected. Urgent clinical evaluation advised.", metricLabel)
	default:
		return ""
	}
}

// AnomalyReport aggregates per-metric findings into one alert level.
type AnomalyReport struct {
	OverallAlert Severity           `json:"overall_alert"`
	Metrics      map[string]Finding `json:"metrics"`
}

// AnalyzeAllAnomalies runs the drop detector independently over every
// tracked domain score and reports the worst severity found. The
// history snapshot is read-only; concurrency of the surrounding
// read-then-append is the caller's concern.
func AnalyzeAllAnomalies(history []Record, current Record) AnomalyReport {
	if len(history) == 0 {
		return AnomalyReport{OverallAlert: SeverityNone, Metrics: map[string]Finding{}}
	}

	findings := make(map[string]Finding, len(trackedMetrics))
	overall := SeverityNone

	for _, m := range trackedMetrics {
		series := make([]float64, len(history))
		for i, r := range history {
			series[i] = m.Get(r)
		}

		finding := DetectAnomaly(series, m.Get(current), m.Label)
		findings[m.Key] = finding

		if finding.Severity.Rank() > overall.Rank() {
			overall = finding.Severity
		}
	}

	return AnomalyReport{OverallAlert: overall, Metrics: findings}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// sampleStdDev uses the n−1 divisor; callers guarantee len ≥ 2.
func sampleStdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	avg := mean(values)
	var sumSquaredDiff float64
	for _, v := range values {
		diff := v - avg
		sumSquaredDiff += diff * diff
	}
	return math.Sqrt(sumSquaredDiff / float64(len(values)-1))
}

func roundTo(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}
