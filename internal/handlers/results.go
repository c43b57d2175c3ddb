package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/Archi44444/NeuroSaathi/internal/models"
	"github.com/Archi44444/NeuroSaathi/internal/progress"
	"github.com/Archi44444/NeuroSaathi/internal/repository"
)

type ResultsHandler struct {
	log *zap.Logger
}

func NewResultsHandler(log *zap.Logger) *ResultsHandler {
	return &ResultsHandler{log: log}
}

// MyResults returns the caller's retained history plus the
// longitudinal progress summary over it.
func (h *ResultsHandler) MyResults(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	history, err := repository.GetHistory(c.Request.Context(), user.ID)
	if err != nil {
		h.log.Error("Failed to load history", zap.Error(err), zap.Uint("user_id", user.ID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load results"})
		return
	}

	summary := progress.BuildSummary(models.ProgressRecords(history))
	c.JSON(http.StatusOK, gin.H{
		"results":  history,
		"progress": summary,
	})
}

// chartableMetrics maps the chart query parameter onto stored scores.
var chartableMetrics = map[string]struct {
	Label string
	Get   func(models.AssessmentResult) float64
}{
	"speech_score":    {"Speech", func(r models.AssessmentResult) float64 { return r.SpeechScore }},
	"memory_score":    {"Memory", func(r models.AssessmentResult) float64 { return r.MemoryScore }},
	"reaction_score":  {"Reaction Time", func(r models.AssessmentResult) float64 { return r.ReactionScore }},
	"executive_score": {"Executive Function", func(r models.AssessmentResult) float64 { return r.ExecutiveScore }},
	"motor_score":     {"Motor Control", func(r models.AssessmentResult) float64 { return r.MotorScore }},
	"composite_risk":  {"Composite Risk", func(r models.AssessmentResult) float64 { return r.CompositeRiskScore }},
}

// TrendChart renders the caller's history for one metric as a line
// chart.
func (h *ResultsHandler) TrendChart(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	metricKey := c.DefaultQuery("metric", "memory_score")
	metric, ok := chartableMetrics[metricKey]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown metric"})
		return
	}

	history, err := repository.GetHistory(c.Request.Context(), user.ID)
	if err != nil {
		h.log.Error("Failed to load history for chart", zap.Error(err), zap.Uint("user_id", user.ID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load results"})
		return
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: metric.Label + " Over Time",
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Session"}),
		charts.WithYAxisOpts(opts.YAxis{Name: metric.Label}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider"}),
	)

	xAxis := make([]string, len(history))
	items := make([]opts.LineData, len(history))
	for i, r := range history {
		xAxis[i] = r.CreatedAt.Format("2006-01-02")
		items[i] = opts.LineData{Value: metric.Get(r)}
	}

	line.SetXAxis(xAxis)
	line.AddSeries(metric.Label, items).
		SetSeriesOptions(charts.WithLineStyleOpts(opts.LineStyle{Width: 2}))

	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := line.Render(c.Writer); err != nil {
		h.log.Error("Failed to render chart", zap.Error(err))
	}
}
