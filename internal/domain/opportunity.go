// Package domain defines the core types for opportunity detection.
package domain

// Category identifies the service category a post is asking for.
type Category string

// Category constants. CategoryNone marks a post in which no help-seeking
// intent was detected; it is never produced by the scorer itself.
const (
	CategoryNone              Category = "none"
	CategoryDataIntegration   Category = "data_integration"
	CategoryDataVisualization Category = "data_visualization"
	CategoryWebDevelopment    Category = "web_development"
	CategoryAppDevelopment    Category = "app_development"
	CategoryMixed             Category = "mixed"
)

// BaseCategories lists the scorable categories in enumeration order.
// Scoring ties and indicator compilation follow this order.
var BaseCategories = []Category{
	CategoryDataIntegration,
	CategoryDataVisualization,
	CategoryWebDevelopment,
	CategoryAppDevelopment,
}

// Urgency represents how soon the poster wants the work done.
type Urgency string

// Urgency constants, from most to least severe.
const (
	UrgencyUrgent Urgency = "urgent"
	UrgencyHigh   Urgency = "high"
	UrgencyMedium Urgency = "medium"
	UrgencyLow    Urgency = "low"
)

// UrgencyTiers lists urgency levels in detection priority order. The first
// tier with a phrase present in the text wins.
var UrgencyTiers = []Urgency{
	UrgencyUrgent,
	UrgencyHigh,
	UrgencyMedium,
	UrgencyLow,
}

// AtLeastHigh reports whether the urgency is high or urgent.
func (u Urgency) AtLeastHigh() bool {
	return u == UrgencyHigh || u == UrgencyUrgent
}

// Verdict is the result of analyzing one post. It is immutable after
// construction; callers must not mutate its slices.
type Verdict struct {
	Category      Category `json:"category"`
	Confidence    float64  `json:"confidence"` // 0.0-1.0
	Urgency       Urgency  `json:"urgency"`
	KeyIndicators []string `json:"key_indicators"` // matched phrases, at most 10
	Requirements  []string `json:"requirements"`   // extracted requirement hints
}

// IsOpportunity reports whether the post expressed help-seeking intent at all.
func (v *Verdict) IsOpportunity() bool {
	return v.Category != CategoryNone
}
