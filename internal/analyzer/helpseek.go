package analyzer

import "github.com/jonesrussell/opportunity-radar/internal/domain"

// helpSeekingFromHits collects the help-seeking phrases present in the hit
// set, in lexicon order. Duplicates are impossible since each phrase is
// checked once.
func helpSeekingFromHits(lex domain.Lexicons, hits map[string]bool) []string {
	found := make([]string, 0, len(lex.HelpPhrases))
	for _, phrase := range lex.HelpPhrases {
		if hits[normalizePhrase(phrase)] {
			found = append(found, phrase)
		}
	}
	return found
}

// DetectHelpSeeking reports whether normalized text signals a request for
// help or hiring intent, along with the matched phrases in lexicon order.
// Text with no matches yields (false, empty slice).
func (a *Analyzer) DetectHelpSeeking(text string) (bool, []string) {
	lex, idx := a.snapshot()
	found := helpSeekingFromHits(lex, idx.Match(text))
	return len(found) > 0, found
}
