package analyzer

import (
	"strings"

	"github.com/jonesrussell/opportunity-radar/internal/domain"
)

// detectUrgency scans the urgency tiers in priority order (urgent, high,
// medium, low) and returns the first tier with a phrase present in the text.
// Phrase order within a tier does not matter, only tier order does. With no
// match at all the default is medium.
func detectUrgency(lex domain.Lexicons, text string) domain.Urgency {
	for _, tier := range domain.UrgencyTiers {
		for _, phrase := range lex.Urgency[tier] {
			if strings.Contains(text, normalizePhrase(phrase)) {
				return tier
			}
		}
	}
	return domain.UrgencyMedium
}

// DetectUrgency classifies the urgency expressed in normalized text.
func (a *Analyzer) DetectUrgency(text string) domain.Urgency {
	lex, _ := a.snapshot()
	return detectUrgency(lex, text)
}
