//nolint:testpackage // Testing internal analyzer requires same package access
package analyzer

import (
	"reflect"
	"testing"

	"github.com/jonesrussell/opportunity-radar/internal/domain"
)

func TestSuggestResponses_LowConfidence(t *testing.T) {
	v := &domain.Verdict{
		Category:   domain.CategoryDataVisualization,
		Confidence: 0.19,
		Urgency:    domain.UrgencyUrgent,
	}

	got := SuggestResponses(v)
	want := []string{lowConfidenceMessage}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSuggestResponses_ThresholdIsInclusive(t *testing.T) {
	v := &domain.Verdict{
		Category:   domain.CategoryDataVisualization,
		Confidence: 0.2,
		Urgency:    domain.UrgencyMedium,
	}

	got := SuggestResponses(v)
	if !reflect.DeepEqual(got, baseSuggestions[domain.CategoryDataVisualization]) {
		t.Errorf("confidence 0.2 must earn category suggestions, got %v", got)
	}
}

func TestSuggestResponses_UrgencyExtras(t *testing.T) {
	tests := []struct {
		name    string
		urgency domain.Urgency
		extras  bool
	}{
		{"low", domain.UrgencyLow, false},
		{"medium", domain.UrgencyMedium, false},
		{"high", domain.UrgencyHigh, true},
		{"urgent", domain.UrgencyUrgent, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &domain.Verdict{
				Category:   domain.CategoryWebDevelopment,
				Confidence: 0.5,
				Urgency:    tt.urgency,
			}

			got := SuggestResponses(v)
			want := baseSuggestions[domain.CategoryWebDevelopment]
			if tt.extras {
				want = append(append([]string{}, want...), urgentSuggestions...)
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("got %v, want %v", got, want)
			}
		})
	}
}

func TestSuggestResponses_AllCategoriesCovered(t *testing.T) {
	categories := append([]domain.Category{domain.CategoryMixed}, domain.BaseCategories...)
	for _, cat := range categories {
		v := &domain.Verdict{Category: cat, Confidence: 0.8, Urgency: domain.UrgencyMedium}
		if got := SuggestResponses(v); len(got) == 0 {
			t.Errorf("category %s has no suggestions", cat)
		}
	}
}

func TestSuggestResponses_Deterministic(t *testing.T) {
	v := &domain.Verdict{
		Category:   domain.CategoryMixed,
		Confidence: 0.6,
		Urgency:    domain.UrgencyUrgent,
	}

	first := SuggestResponses(v)
	for i := 0; i < 5; i++ {
		if got := SuggestResponses(v); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d: got %v, want %v", i, got, first)
		}
	}
}
