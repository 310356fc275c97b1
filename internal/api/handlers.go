// Package api exposes the opportunity analyzer over HTTP.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/opportunity-radar/internal/analyzer"
	"github.com/jonesrussell/opportunity-radar/internal/domain"
	"github.com/jonesrussell/opportunity-radar/internal/logger"
	"github.com/jonesrussell/opportunity-radar/internal/telemetry"
)

// Handler handles HTTP requests for the opportunity-radar API.
type Handler struct {
	analyzer     *analyzer.Analyzer
	telemetry    *telemetry.Provider
	logger       logger.Logger
	maxBatchSize int
}

// NewHandler creates a new API handler.
func NewHandler(a *analyzer.Analyzer, tp *telemetry.Provider, log logger.Logger, maxBatchSize int) *Handler {
	return &Handler{
		analyzer:     a,
		telemetry:    tp,
		logger:       log,
		maxBatchSize: maxBatchSize,
	}
}

// Analyze handles POST /api/v1/analyze.
func (h *Handler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid analyze request", logger.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	verdict := h.analyzer.Analyze(c.Request.Context(), req.Text)

	h.logger.Info("post analyzed",
		logger.String("category", string(verdict.Category)),
		logger.Float64("confidence", verdict.Confidence),
		logger.String("urgency", string(verdict.Urgency)),
	)

	c.JSON(http.StatusOK, AnalyzeResponse{Verdict: verdict})
}

// AnalyzeBatch handles POST /api/v1/analyze/batch.
func (h *Handler) AnalyzeBatch(c *gin.Context) {
	var req BatchAnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid batch analyze request", logger.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if len(req.Posts) > h.maxBatchSize {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "batch exceeds maximum size",
		})
		return
	}

	verdicts := h.analyzer.AnalyzeBatch(c.Request.Context(), req.Posts)

	opportunities := 0
	for _, v := range verdicts {
		if v.IsOpportunity() {
			opportunities++
		}
	}

	h.logger.Info("batch analyzed",
		logger.Int("total", len(verdicts)),
		logger.Int("opportunities", opportunities),
	)

	c.JSON(http.StatusOK, BatchAnalyzeResponse{
		Verdicts:      verdicts,
		Total:         len(verdicts),
		Opportunities: opportunities,
	})
}

// Suggest handles POST /api/v1/suggest.
func (h *Handler) Suggest(c *gin.Context) {
	var req SuggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid suggest request", logger.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	suggestions := analyzer.SuggestResponses(req.Verdict)
	h.telemetry.RecordSuggestions()

	c.JSON(http.StatusOK, SuggestResponse{Suggestions: suggestions})
}

// GetLexicons handles GET /api/v1/lexicons.
func (h *Handler) GetLexicons(c *gin.Context) {
	c.JSON(http.StatusOK, LexiconsResponse{
		Lexicons: h.analyzer.Lexicons(),
		Keywords: h.analyzer.KeywordCount(),
	})
}

// UpdateLexicons handles PUT /api/v1/lexicons. The body is a full lexicon
// set; the analyzer swaps tables atomically, so in-flight analyses are
// unaffected.
func (h *Handler) UpdateLexicons(c *gin.Context) {
	var lex domain.Lexicons
	if err := c.ShouldBindJSON(&lex); err != nil {
		h.logger.Warn("invalid lexicons payload", logger.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if len(lex.Categories) == 0 && len(lex.HelpPhrases) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "lexicons must define categories or help_phrases",
		})
		return
	}

	h.analyzer.UpdateLexicons(lex)

	c.JSON(http.StatusOK, LexiconsResponse{
		Lexicons: h.analyzer.Lexicons(),
		Keywords: h.analyzer.KeywordCount(),
	})
}

// HealthCheck handles GET /healthz.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// ReadyCheck handles GET /ready. The service is ready once the keyword
// automaton has been built.
func (h *Handler) ReadyCheck(c *gin.Context) {
	if h.analyzer.KeywordCount() == 0 {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "no lexicons loaded"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
