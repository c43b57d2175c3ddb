package features

import (
	"fmt"
	"math"

	"github.com/Archi44444/NeuroSaathi/internal/models"
)

// Extractor converts raw per-domain payloads into domain scores and
// named features. The Estimator is only used on branches where the
// structured payload is entirely absent.
type Extractor struct {
	est Estimator
}

func NewExtractor(est Estimator) *Extractor {
	return &Extractor{est: est}
}

// Realistic word-per-minute band for a read-aloud task. Values outside
// it come from accidental sub-second recordings and would distort the
// score.
const (
	minWPM = 10.0
	maxWPM = 350.0
)

// ExtractSpeechFeatures scores the read-aloud task. If the frontend
// supplied Web Speech API measurements they are used as-is; otherwise
// conservative estimates are derived from the audio payload size.
func (e *Extractor) ExtractSpeechFeatures(audioB64 string, speech *models.SpeechSample) (float64, map[string]float64, error) {
	var (
		wpm, speedDev, spVar   float64
		pauseRatio, complRatio float64
		startDelay             float64
		restarts               int
	)

	if speech != nil {
		if speech.RestartCount < 0 {
			return 0, nil, fmt.Errorf("speech: restart_count must not be negative, got %d", speech.RestartCount)
		}
		if speech.WPM != nil && *speech.WPM > 0 {
			wpm = *speech.WPM
		} else {
			wpm = estimateWPM(audioB64)
		}
		wpm = clamp(wpm, minWPM, maxWPM)
		if speech.SpeedDeviation != nil {
			speedDev = *speech.SpeedDeviation
		} else {
			speedDev = estimateSpeedDeviation(wpm)
		}
		if speech.SpeechSpeedVariability != nil {
			spVar = *speech.SpeechSpeedVariability
		} else {
			spVar = speedDev
		}
		pauseRatio = 0.15
		if speech.PauseRatio != nil {
			pauseRatio = *speech.PauseRatio
		}
		complRatio = 1.0
		if speech.CompletionRatio != nil {
			complRatio = *speech.CompletionRatio
		}
		restarts = speech.RestartCount
		startDelay = 0.8
		if speech.SpeechStartDelay != nil {
			startDelay = *speech.SpeechStartDelay
		}
	} else {
		wpm = estimateWPM(audioB64)
		speedDev = estimateSpeedDeviation(wpm)
		spVar = speedDev
		pauseRatio = 0.18
		complRatio = 0.90
		restarts = 0
		startDelay = 1.0
	}

	feats := map[string]float64{
		"wpm":                round(wpm, 2),
		"speed_deviation":    round(speedDev, 2),
		"speech_variability": round(spVar, 2),
		"pause_ratio":        round(pauseRatio, 4),
		"speech_start_delay": round(startDelay, 2),
	}

	// Optimal read-aloud pace is 100-180 wpm, centered on 140.
	var wpmScore float64
	switch {
	case wpm >= 100 && wpm <= 180:
		wpmScore = 100.0 - (math.Abs(wpm-140)/40)*15
	case wpm < 100:
		wpmScore = max(0, 60.0-(100-wpm)*1.2)
	default:
		wpmScore = max(0, 85.0-(wpm-180)*0.8)
	}

	pausePen := min(pauseRatio*100, 40) // high pause ratio = word-finding difficulty
	varPen := min(spVar/3.0, 25)
	complBonus := complRatio * 15
	restartPen := min(float64(restarts)*6, 20)
	delayPen := min(max(0, (startDelay-0.5)*5), 15)

	score := clamp(wpmScore-pausePen-varPen+complBonus-restartPen-delayPen, 0, 100)
	return round(score, 2), feats, nil
}

// estimateWPM is the conservative fallback when no transcription is
// available: a saturating function of the audio payload size.
func estimateWPM(audioB64 string) float64 {
	if audioB64 == "" {
		return 120.0
	}
	lengthFactor := min(float64(len(audioB64))/10000, 1.0)
	return round(100+40*lengthFactor, 1)
}

func estimateSpeedDeviation(wpm float64) float64 {
	switch {
	case wpm < 80:
		return 20.0
	case wpm < 120:
		return 15.0
	case wpm < 160:
		return 10.0
	default:
		return 14.0
	}
}
