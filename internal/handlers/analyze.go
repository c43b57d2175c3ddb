package handlers

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/Archi44444/NeuroSaathi/internal/features"
	"github.com/Archi44444/NeuroSaathi/internal/models"
	"github.com/Archi44444/NeuroSaathi/internal/progress"
	"github.com/Archi44444/NeuroSaathi/internal/repository"
	"github.com/Archi44444/NeuroSaathi/internal/risk"
)

type AnalyzeHandler struct {
	log       *zap.Logger
	extractor *features.Extractor
}

func NewAnalyzeHandler(log *zap.Logger, extractor *features.Extractor) *AnalyzeHandler {
	return &AnalyzeHandler{log: log, extractor: extractor}
}

// riskLevels is the categorical banding of the three adjusted
// probabilities.
type riskLevels struct {
	Alzheimers risk.Level `json:"alzheimers"`
	Dementia   risk.Level `json:"dementia"`
	Parkinsons risk.Level `json:"parkinsons"`
}

// peerComparison is the optional age-normed view of the session's key
// measurements.
type peerComparison struct {
	AgeBracket     string  `json:"age_bracket"`
	ReactionTimeZ  float64 `json:"reaction_time_z"`
	MemoryAccuracy float64 `json:"memory_accuracy_z"`
	WPMZ           float64 `json:"wpm_z"`
}

// AnalyzeResponse is the full result payload for one session.
type AnalyzeResponse struct {
	SpeechScore    float64 `json:"speech_score"`
	MemoryScore    float64 `json:"memory_score"`
	ReactionScore  float64 `json:"reaction_score"`
	ExecutiveScore float64 `json:"executive_score"`
	MotorScore     float64 `json:"motor_score"`

	AlzheimersRisk float64    `json:"alzheimers_risk"`
	DementiaRisk   float64    `json:"dementia_risk"`
	ParkinsonsRisk float64    `json:"parkinsons_risk"`
	RiskLevels     riskLevels `json:"risk_levels"`

	CompositeRiskScore float64 `json:"composite_risk_score"`

	HybridRisk      float64 `json:"hybrid_risk"`
	Confidence      float64 `json:"confidence"`
	RecommendRetest bool    `json:"recommend_retest"`
	RetestMessage   string  `json:"retest_message,omitempty"`
	CILower         float64 `json:"ci_lower"`
	CIUpper         float64 `json:"ci_upper"`
	CILabel         string  `json:"ci_label"`

	LogisticRiskProbability float64 `json:"logistic_risk_probability"`

	AnomalyAlert   progress.Severity           `json:"anomaly_alert"`
	AnomalyDetails map[string]progress.Finding `json:"anomaly_details,omitempty"`

	RiskDrivers       map[string]int         `json:"risk_drivers"`
	FeatureImportance []risk.ImportanceEntry `json:"feature_importance"`
	ModelValidation   risk.ModelValidation   `json:"model_validation"`

	FeatureVector             features.FeatureVector `json:"feature_vector"`
	AttentionVariabilityIndex float64                `json:"attention_variability_index"`

	PeerComparison *peerComparison `json:"peer_comparison,omitempty"`

	Disclaimer string `json:"disclaimer"`
}

// Analyze runs the full scoring pipeline for one session and appends
// the result to the authenticated user's history.
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Failed to bind analyze request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	// Feature extraction. Extractors either produce a full result or
	// reject the whole call; there is no partial output.
	speechScore, speechF, err := h.extractor.ExtractSpeechFeatures(req.SpeechAudio, req.Speech)
	if err != nil {
		h.reject(c, user.ID, err)
		return
	}
	memoryScore, memoryF, err := h.extractor.ExtractMemoryFeatures(req.MemoryResults, req.Memory)
	if err != nil {
		h.reject(c, user.ID, err)
		return
	}
	reactionScore, reactionF, err := h.extractor.ExtractReactionFeatures(req.ReactionTimes, req.Reaction)
	if err != nil {
		h.reject(c, user.ID, err)
		return
	}
	execScore, execF, err := h.extractor.ExtractExecutiveFeatures(req.Stroop)
	if err != nil {
		h.reject(c, user.ID, err)
		return
	}
	motorScore, motorF, err := h.extractor.ExtractMotorFeatures(req.Tap)
	if err != nil {
		h.reject(c, user.ID, err)
		return
	}

	h.respond(c, user.ID, &req, domainExtraction{
		speechScore, memoryScore, reactionScore, execScore, motorScore,
		speechF, memoryF, reactionF, execF, motorF,
	})
}

// reject maps a core validation error onto a client-facing processing
// error without leaking internals beyond the validation message.
func (h *AnalyzeHandler) reject(c *gin.Context, userID uint, err error) {
	h.log.Warn("Analyze validation failed", zap.Error(err), zap.Uint("user_id", userID))
	c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Processing error: " + err.Error()})
}

type domainExtraction struct {
	speechScore, memoryScore, reactionScore, execScore, motorScore float64
	speechF, memoryF, reactionF, execF, motorF                     map[string]float64
}

func (h *AnalyzeHandler) respond(c *gin.Context, userID uint, req *models.AnalyzeRequest, ex domainExtraction) {
	fv := features.BuildFeatureVector(ex.speechF, ex.memoryF, ex.reactionF, ex.execF, ex.motorF)
	risks := risk.ComputeDiseaseRisks(fv, req.Profile)

	// Clinical layers.
	alzAdj := risk.ApplyConditionMultipliers(risks.Alzheimers, req.Conditions)
	demAdj := risk.ApplyConditionMultipliers(risks.Dementia, req.Conditions)
	parkAdj := risk.ApplyConditionMultipliers(risks.Parkinsons, req.Conditions)

	memoryScore := ex.memoryScore
	if req.Profile != nil && req.Profile.EducationLevel != nil {
		corr := risk.EducationCorrection(*req.Profile.EducationLevel)
		memoryScore = clampScore(memoryScore + corr*100)
	}

	confidence := risk.ComputeConfidenceScore(missingDataRatio(req), req.Fatigue)

	// Hybrid risk and confidence interval around it.
	hybridRisk := risk.ComputeHybridRisk(alzAdj, risks.Alzheimers)
	ci := risk.ComputeConfidenceInterval(hybridRisk)

	scores := risk.DomainScores{
		Speech:    ex.speechScore,
		Memory:    memoryScore,
		Reaction:  ex.reactionScore,
		Executive: ex.execScore,
		Motor:     ex.motorScore,
	}
	compositeRisk := risk.CompositeRisk(scores)
	drivers := risk.RiskDrivers(scores)
	importance := risk.ComputeFeatureImportance(fv.Map(), risk.Alzheimers)

	avi := attentionVariabilityIndex(ex.reactionF)

	vectorValues := fv.Values()
	result := models.AssessmentResult{
		UserID:                    userID,
		SpeechScore:               ex.speechScore,
		MemoryScore:               memoryScore,
		ReactionScore:             ex.reactionScore,
		ExecutiveScore:            ex.execScore,
		MotorScore:                ex.motorScore,
		AlzheimersRisk:            alzAdj,
		DementiaRisk:              demAdj,
		ParkinsonsRisk:            parkAdj,
		CompositeRiskScore:        compositeRisk,
		HybridRisk:                hybridRisk,
		Confidence:                confidence,
		AttentionVariabilityIndex: avi,
		FeatureVector:             pq.Float64Array(vectorValues[:]),
	}

	// Anomalies are computed against the prior history only; the new
	// result is never compared against itself.
	anomalies := progress.AnomalyReport{OverallAlert: progress.SeverityNone, Metrics: map[string]progress.Finding{}}
	history, err := repository.GetHistory(c.Request.Context(), userID)
	if err != nil {
		h.log.Error("Failed to load result history", zap.Error(err), zap.Uint("user_id", userID))
	} else {
		anomalies = progress.AnalyzeAllAnomalies(models.ProgressRecords(history), result.ProgressRecord())
	}

	if err := repository.SaveResult(c.Request.Context(), &result); err != nil {
		h.log.Error("Failed to save assessment result", zap.Error(err), zap.Uint("user_id", userID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save result"})
		return
	}

	resp := AnalyzeResponse{
		SpeechScore:    ex.speechScore,
		MemoryScore:    memoryScore,
		ReactionScore:  ex.reactionScore,
		ExecutiveScore: ex.execScore,
		MotorScore:     ex.motorScore,

		AlzheimersRisk: alzAdj,
		DementiaRisk:   demAdj,
		ParkinsonsRisk: parkAdj,
		RiskLevels: riskLevels{
			Alzheimers: risk.ProbToLevel(alzAdj),
			Dementia:   risk.ProbToLevel(demAdj),
			Parkinsons: risk.ProbToLevel(parkAdj),
		},

		CompositeRiskScore: compositeRisk,

		HybridRisk:      hybridRisk,
		Confidence:      confidence,
		RecommendRetest: risk.RecommendRetest(confidence),
		CILower:         ci.Lower,
		CIUpper:         ci.Upper,
		CILabel:         ci.Label,

		LogisticRiskProbability: alzAdj, // primary risk signal

		AnomalyAlert: anomalies.OverallAlert,

		RiskDrivers:       drivers,
		FeatureImportance: importance,
		ModelValidation:   risk.SimulatedValidation(),

		FeatureVector:             fv,
		AttentionVariabilityIndex: avi,

		Disclaimer: risk.Disclaimer,
	}
	if resp.RecommendRetest {
		resp.RetestMessage = risk.RetestRecommendation
	}
	if anomalies.OverallAlert != progress.SeverityNone {
		resp.AnomalyDetails = anomalies.Metrics
	}
	if req.Profile != nil && req.Profile.Age != nil {
		age := *req.Profile.Age
		resp.PeerComparison = &peerComparison{
			AgeBracket:     risk.AgeBracket(age),
			ReactionTimeZ:  risk.AgeZScore(fv.MeanRT, "reaction_time", age),
			MemoryAccuracy: risk.AgeZScore(fv.ImmediateRecallAccuracy, "memory_accuracy", age),
			WPMZ:           risk.AgeZScore(fv.WPM, "wpm", age),
		}
	}

	c.JSON(http.StatusOK, resp)
}

// attentionVariabilityIndex is the coefficient of variation of the
// reaction times.
func attentionVariabilityIndex(reactionF map[string]float64) float64 {
	meanRT := reactionF["mean_rt"]
	if meanRT <= 0 {
		return 0
	}
	return roundTo(reactionF["std_rt"]/meanRT, 4)
}

// missingDataRatio counts how many of the five domains arrived with
// no usable payload at all.
func missingDataRatio(req *models.AnalyzeRequest) float64 {
	missing := 0
	if req.Speech == nil && req.SpeechAudio == "" {
		missing++
	}
	if req.Memory == nil && len(req.MemoryResults) == 0 {
		missing++
	}
	if (req.Reaction == nil || len(req.Reaction.Times) == 0) && len(req.ReactionTimes) == 0 {
		missing++
	}
	if req.Stroop == nil || req.Stroop.TotalTrials == 0 {
		missing++
	}
	if req.Tap == nil || len(req.Tap.Intervals) == 0 {
		missing++
	}
	return float64(missing) / 5.0
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func roundTo(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}
