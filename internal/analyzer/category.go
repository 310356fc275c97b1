package analyzer

import "github.com/jonesrussell/opportunity-radar/internal/domain"

// primaryKeywordWeight is the scoring weight of a primary keyword match.
// Secondary matches count once.
const primaryKeywordWeight = 2

// scoreFromHits computes a confidence per base category from the phrase hit
// set. Weighted score is 2*primary_matches + secondary_matches, normalized by
// the category's maximum possible weighted score and clamped to [0,1]. An
// empty keyword set scores 0.0. Every base category is present in the result.
func scoreFromHits(lex domain.Lexicons, hits map[string]bool) map[domain.Category]float64 {
	scores := make(map[domain.Category]float64, len(domain.BaseCategories))

	for _, cat := range domain.BaseCategories {
		set := lex.Categories[cat]
		maxPossible := set.MaxWeightedScore()
		if maxPossible == 0 {
			scores[cat] = 0.0
			continue
		}

		weighted := 0
		for _, kw := range set.Primary {
			if hits[normalizePhrase(kw)] {
				weighted += primaryKeywordWeight
			}
		}
		for _, kw := range set.Secondary {
			if hits[normalizePhrase(kw)] {
				weighted++
			}
		}

		confidence := float64(weighted) / float64(maxPossible)
		if confidence > 1.0 {
			confidence = 1.0
		}
		scores[cat] = confidence
	}

	return scores
}

// bestCategory selects the category with the highest confidence. Ties break
// by enumeration order: the first category with the maximal value wins.
func bestCategory(scores map[domain.Category]float64) (domain.Category, float64) {
	best := domain.BaseCategories[0]
	bestScore := scores[best]
	for _, cat := range domain.BaseCategories[1:] {
		if scores[cat] > bestScore {
			best = cat
			bestScore = scores[cat]
		}
	}
	return best, bestScore
}

// ScoreCategories scores normalized text against each base category's
// keyword lexicon and returns a confidence in [0,1] per category.
func (a *Analyzer) ScoreCategories(text string) map[domain.Category]float64 {
	lex, idx := a.snapshot()
	return scoreFromHits(lex, idx.Match(text))
}
