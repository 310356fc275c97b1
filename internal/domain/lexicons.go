package domain

// KeywordSet holds the weighted phrase lists for one category. Primary
// phrases count double when scoring.
type KeywordSet struct {
	Primary   []string `json:"primary"   yaml:"primary"`
	Secondary []string `json:"secondary" yaml:"secondary"`
}

// MaxWeightedScore returns the highest weighted score the set can produce.
func (k KeywordSet) MaxWeightedScore() int {
	return 2*len(k.Primary) + len(k.Secondary)
}

// Lexicons is the full phrase configuration driving the analyzer. It is
// treated as immutable once handed to an analyzer; updates go through
// Analyzer.UpdateLexicons with a fresh value.
type Lexicons struct {
	Categories  map[Category]KeywordSet `json:"categories" yaml:"categories"`
	HelpPhrases []string                `json:"help_phrases" yaml:"help_phrases"`
	Urgency     map[Urgency][]string    `json:"urgency" yaml:"urgency"`
}

// Clone returns a deep copy so callers can hand out lexicons without
// aliasing the analyzer's working set.
func (l Lexicons) Clone() Lexicons {
	out := Lexicons{
		Categories:  make(map[Category]KeywordSet, len(l.Categories)),
		HelpPhrases: append([]string(nil), l.HelpPhrases...),
		Urgency:     make(map[Urgency][]string, len(l.Urgency)),
	}
	for cat, set := range l.Categories {
		out.Categories[cat] = KeywordSet{
			Primary:   append([]string(nil), set.Primary...),
			Secondary: append([]string(nil), set.Secondary...),
		}
	}
	for tier, phrases := range l.Urgency {
		out.Urgency[tier] = append([]string(nil), phrases...)
	}
	return out
}
