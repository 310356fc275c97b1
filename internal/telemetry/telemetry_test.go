package telemetry_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jonesrussell/opportunity-radar/internal/telemetry"
)

// providerOnce ensures we only create one Provider per test run to avoid
// duplicate Prometheus metric registration errors from promauto's global registry
var (
	testProvider *telemetry.Provider
	providerOnce sync.Once
)

func getTestProvider(t *testing.T) *telemetry.Provider {
	t.Helper()
	providerOnce.Do(func() {
		testProvider = telemetry.NewProvider()
	})
	return testProvider
}

func TestNewProvider(t *testing.T) {
	provider := getTestProvider(t)
	if provider == nil {
		t.Fatal("expected non-nil provider")
	}
	if provider.Tracer == nil {
		t.Error("expected non-nil tracer")
	}
	if provider.Metrics == nil {
		t.Error("expected non-nil metrics")
	}
	if provider.Handler() == nil {
		t.Error("expected non-nil metrics handler")
	}
}

func TestRecordAnalysis(t *testing.T) {
	provider := getTestProvider(t)

	ctx := context.Background()
	provider.RecordAnalysis(ctx, time.Millisecond, "data_visualization", "medium", true)
	provider.RecordAnalysis(ctx, time.Millisecond, "none", "low", false)
}

func TestRecordIndexMetrics(t *testing.T) {
	provider := getTestProvider(t)

	provider.RecordIndexMatch(50 * time.Microsecond)
	provider.RecordLexiconReload(42)
}

func TestRecordBatchAndSuggestions(t *testing.T) {
	provider := getTestProvider(t)

	provider.RecordBatch(3)
	provider.RecordSuggestions()
}

func TestNilProviderIsSafe(t *testing.T) {
	var provider *telemetry.Provider

	provider.RecordAnalysis(context.Background(), time.Millisecond, "none", "low", false)
	provider.RecordIndexMatch(time.Microsecond)
	provider.RecordLexiconReload(0)
	provider.RecordBatch(1)
	provider.RecordSuggestions()
}
