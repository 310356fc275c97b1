//nolint:testpackage // Testing internal analyzer requires same package access
package analyzer

import (
	"testing"

	"github.com/jonesrussell/opportunity-radar/internal/domain"
)

func TestDetectUrgency(t *testing.T) {
	a := newTestAnalyzer(t)

	tests := []struct {
		name string
		text string
		want domain.Urgency
	}{
		{
			name: "urgent phrase",
			text: "need this done asap",
			want: domain.UrgencyUrgent,
		},
		{
			name: "high phrase",
			text: "there is a hard deadline on this",
			want: domain.UrgencyHigh,
		},
		{
			name: "medium phrase",
			text: "planning a rollout next month",
			want: domain.UrgencyMedium,
		},
		{
			name: "low phrase",
			text: "eventually we would like a dashboard",
			want: domain.UrgencyLow,
		},
		{
			name: "no phrase defaults to medium",
			text: "we want a dashboard for sales data",
			want: domain.UrgencyMedium,
		},
		{
			name: "empty text defaults to medium",
			text: "",
			want: domain.UrgencyMedium,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.DetectUrgency(tt.text); got != tt.want {
				t.Errorf("DetectUrgency(%q) = %s, want %s", tt.text, got, tt.want)
			}
		})
	}
}

func TestDetectUrgency_TierPriorityWins(t *testing.T) {
	a := newTestAnalyzer(t)

	// Phrases from both the urgent and low tiers: tier priority decides,
	// not match count.
	text := "considering options, thinking about the future, but honestly this is urgent"
	if got := a.DetectUrgency(text); got != domain.UrgencyUrgent {
		t.Errorf("expected urgent to win over low, got %s", got)
	}
}
