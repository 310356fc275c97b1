package analyzer

import "github.com/jonesrussell/opportunity-radar/internal/domain"

// lowConfidenceThreshold is the confidence below which a verdict only earns
// the generic low-confidence message. Exactly 0.2 qualifies for category
// suggestions.
const lowConfidenceThreshold = 0.2

const lowConfidenceMessage = "Low confidence opportunity - may not be relevant"

// Urgency extras appended for high/urgent verdicts, in order.
var urgentSuggestions = []string{
	"Emphasize quick turnaround and availability",
	"Mention agile development approach",
}

var baseSuggestions = map[domain.Category][]string{
	domain.CategoryDataIntegration: {
		"Highlight experience with ETL processes and data pipelines",
		"Mention specific integration tools (Zapier, MuleSoft, custom APIs)",
		"Showcase data warehousing and real-time processing capabilities",
	},
	domain.CategoryDataVisualization: {
		"Share portfolio of dashboard examples",
		"Mention expertise in Tableau, Power BI, or custom solutions",
		"Highlight ability to translate business needs into visual insights",
	},
	domain.CategoryWebDevelopment: {
		"Showcase relevant web development portfolio",
		"Mention technology stack expertise (React, Django, etc.)",
		"Emphasize responsive design and user experience",
	},
	domain.CategoryAppDevelopment: {
		"Share mobile app portfolio and app store links",
		"Mention cross-platform vs native development capabilities",
		"Highlight user-centric design approach",
	},
	domain.CategoryMixed: {
		"Emphasize full-stack capabilities across multiple domains",
		"Mention integrated solutions experience",
		"Highlight project management for complex requirements",
	},
}

// SuggestResponses maps a verdict to outreach advice. Verdicts below the
// confidence threshold get a single low-confidence message; everything else
// gets the category's base suggestions plus urgency extras for high/urgent
// verdicts. Deterministic given the verdict.
func SuggestResponses(v *domain.Verdict) []string {
	if v.Confidence < lowConfidenceThreshold {
		return []string{lowConfidenceMessage}
	}

	suggestions := make([]string, 0, len(baseSuggestions[v.Category])+len(urgentSuggestions))
	suggestions = append(suggestions, baseSuggestions[v.Category]...)

	if v.Urgency.AtLeastHigh() {
		suggestions = append(suggestions, urgentSuggestions...)
	}

	return suggestions
}
