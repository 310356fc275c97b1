package analyzer

import (
	"strings"

	ahocorasick "github.com/cloudflare/ahocorasick"

	"github.com/jonesrussell/opportunity-radar/internal/domain"
)

// keywordIndex holds an Aho-Corasick automaton over every phrase the analyzer
// scans for: help-seeking phrases plus all category keywords. A single pass
// over the text yields the complete set of contained phrases, with the same
// containment semantics as per-phrase strings.Contains checks.
//
// The index is immutable after construction; lexicon updates build a new one.
type keywordIndex struct {
	matcher *ahocorasick.Matcher
	phrases []string // automaton pattern order, deduplicated
}

func newKeywordIndex(lex domain.Lexicons) *keywordIndex {
	seen := make(map[string]bool)
	phrases := make([]string, 0, len(lex.HelpPhrases)+len(lex.Categories)*estimatedKeywordsPerCategory)

	add := func(phrase string) {
		phrase = normalizePhrase(phrase)
		if phrase == "" || seen[phrase] {
			return
		}
		seen[phrase] = true
		phrases = append(phrases, phrase)
	}

	for _, phrase := range lex.HelpPhrases {
		add(phrase)
	}
	for _, cat := range domain.BaseCategories {
		set := lex.Categories[cat]
		for _, kw := range set.Primary {
			add(kw)
		}
		for _, kw := range set.Secondary {
			add(kw)
		}
	}

	idx := &keywordIndex{phrases: phrases}
	if len(phrases) > 0 {
		idx.matcher = ahocorasick.NewStringMatcher(phrases)
	}
	return idx
}

const estimatedKeywordsPerCategory = 16 // initial slice capacity only

// Match returns the set of indexed phrases contained in the normalized text.
// Each phrase appears at most once regardless of repetition in the text.
func (idx *keywordIndex) Match(text string) map[string]bool {
	hits := make(map[string]bool)
	if idx.matcher == nil || text == "" {
		return hits
	}
	for _, patternIdx := range idx.matcher.Match([]byte(text)) {
		if patternIdx < len(idx.phrases) {
			hits[idx.phrases[patternIdx]] = true
		}
	}
	return hits
}

// PhraseCount returns the number of distinct indexed phrases.
func (idx *keywordIndex) PhraseCount() int {
	return len(idx.phrases)
}

func normalizePhrase(phrase string) string {
	return strings.ToLower(strings.TrimSpace(phrase))
}
