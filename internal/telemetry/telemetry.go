// Package telemetry provides OpenTelemetry instrumentation for the
// opportunity-radar service. It exports Prometheus metrics and provides
// tracing capabilities.
package telemetry

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "opportunity-radar"

// Metrics holds all opportunity-radar Prometheus metrics.
type Metrics struct {
	// Analysis metrics
	PostsAnalyzed    *prometheus.CounterVec
	NonOpportunities prometheus.Counter
	AnalysisDuration prometheus.Histogram
	UrgencyTotal     *prometheus.CounterVec
	BatchSize        prometheus.Histogram

	// Keyword index metrics
	IndexMatchDuration prometheus.Histogram
	LexiconReloads     prometheus.Counter
	KeywordCount       prometheus.Gauge

	// Suggestion metrics
	SuggestionsServed prometheus.Counter
}

// Provider wraps telemetry providers.
type Provider struct {
	Tracer  trace.Tracer
	Metrics *Metrics
}

// NewProvider initializes telemetry with Prometheus metrics.
func NewProvider() *Provider {
	return &Provider{
		Tracer:  otel.Tracer(serviceName),
		Metrics: initMetrics(),
	}
}

// Handler returns the Prometheus HTTP handler for the /metrics endpoint.
func (p *Provider) Handler() http.Handler {
	return promhttp.Handler()
}

// RecordAnalysis records one analyzed post.
func (p *Provider) RecordAnalysis(ctx context.Context, duration time.Duration, category, urgency string, opportunity bool) {
	if p == nil || p.Metrics == nil {
		return
	}
	p.Metrics.PostsAnalyzed.WithLabelValues(category).Inc()
	p.Metrics.UrgencyTotal.WithLabelValues(urgency).Inc()
	p.Metrics.AnalysisDuration.Observe(duration.Seconds())
	if !opportunity {
		p.Metrics.NonOpportunities.Inc()
	}

	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		span.SetAttributes(
			attribute.String("opportunity.category", category),
			attribute.String("opportunity.urgency", urgency),
			attribute.Bool("opportunity.detected", opportunity),
		)
	}
}

// RecordIndexMatch records one keyword index pass.
func (p *Provider) RecordIndexMatch(duration time.Duration) {
	if p == nil || p.Metrics == nil {
		return
	}
	p.Metrics.IndexMatchDuration.Observe(duration.Seconds())
}

// RecordLexiconReload records a lexicon hot-reload and the resulting
// automaton size.
func (p *Provider) RecordLexiconReload(keywords int) {
	if p == nil || p.Metrics == nil {
		return
	}
	p.Metrics.LexiconReloads.Inc()
	p.Metrics.KeywordCount.Set(float64(keywords))
}

// RecordBatch records the size of one batch analysis request.
func (p *Provider) RecordBatch(size int) {
	if p == nil || p.Metrics == nil {
		return
	}
	p.Metrics.BatchSize.Observe(float64(size))
}

// RecordSuggestions records one served suggestion set.
func (p *Provider) RecordSuggestions() {
	if p == nil || p.Metrics == nil {
		return
	}
	p.Metrics.SuggestionsServed.Inc()
}

func initMetrics() *Metrics {
	m := &Metrics{}
	initAnalysisMetrics(m)
	initIndexMetrics(m)
	return m
}

func initAnalysisMetrics(m *Metrics) {
	m.PostsAnalyzed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "radar_posts_analyzed_total",
		Help: "Total posts analyzed, by resulting category",
	}, []string{"category"})

	m.NonOpportunities = promauto.NewCounter(prometheus.CounterOpts{
		Name: "radar_non_opportunities_total",
		Help: "Total posts with no help-seeking intent detected",
	})

	m.AnalysisDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "radar_analysis_duration_seconds",
		Help:    "Time to analyze a single post",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1},
	})

	m.UrgencyTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "radar_urgency_total",
		Help: "Total posts analyzed, by detected urgency tier",
	}, []string{"urgency"})

	m.BatchSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "radar_batch_size",
		Help:    "Number of posts per batch analysis request",
		Buckets: []float64{1, 5, 10, 25, 50, 100},
	})

	m.SuggestionsServed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "radar_suggestions_served_total",
		Help: "Total response suggestion sets served",
	})
}

func initIndexMetrics(m *Metrics) {
	m.IndexMatchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "radar_index_match_duration_seconds",
		Help:    "Time spent in keyword matching (Aho-Corasick)",
		Buckets: []float64{0.00001, 0.0001, 0.0005, 0.001, 0.005, 0.01},
	})

	m.LexiconReloads = promauto.NewCounter(prometheus.CounterOpts{
		Name: "radar_lexicon_reloads_total",
		Help: "Total lexicon hot-reloads",
	})

	m.KeywordCount = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "radar_keyword_count",
		Help: "Distinct phrases in the keyword automaton",
	})
}
