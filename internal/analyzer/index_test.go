//nolint:testpackage // Testing internal analyzer requires same package access
package analyzer

import (
	"strings"
	"testing"

	"github.com/jonesrussell/opportunity-radar/internal/domain"
)

func TestKeywordIndex_MatchEquivalentToContains(t *testing.T) {
	lex := DefaultLexicons()
	idx := newKeywordIndex(lex)

	texts := []string{
		"looking for a data visualization expert with tableau and power bi",
		"urgent: need data integration specialist asap! etl required",
		"can someone recommend a good restaurant in downtown? thanks!",
		"we require a freelancer for a react native mobile app project",
		"",
	}

	phrases := make([]string, 0, idx.PhraseCount())
	phrases = append(phrases, lex.HelpPhrases...)
	for _, set := range lex.Categories {
		phrases = append(phrases, set.Primary...)
		phrases = append(phrases, set.Secondary...)
	}

	for _, text := range texts {
		hits := idx.Match(text)
		for _, phrase := range phrases {
			want := strings.Contains(text, normalizePhrase(phrase))
			if hits[phrase] != want {
				t.Errorf("text %q phrase %q: index says %v, contains says %v", text, phrase, hits[phrase], want)
			}
		}
	}
}

func TestKeywordIndex_OverlappingPhrases(t *testing.T) {
	idx := newKeywordIndex(DefaultLexicons())

	// "data integration" contains neither "data visualization" nor "dashboard";
	// the hit set must only report phrases actually present.
	hits := idx.Match("we need data integration and a dashboard")

	if !hits["data integration"] {
		t.Error("expected data integration hit")
	}
	if !hits["dashboard"] {
		t.Error("expected dashboard hit")
	}
	if hits["data visualization"] {
		t.Error("unexpected data visualization hit")
	}
}

func TestKeywordIndex_DedupesPhrases(t *testing.T) {
	lex := DefaultLexicons()
	// "project" appears in help phrases; duplicating it in a category must not
	// inflate the phrase count by more than the genuinely new entries.
	base := newKeywordIndex(lex).PhraseCount()

	dup := lex.Clone()
	set := dup.Categories[domain.CategoryWebDevelopment]
	set.Secondary = append(set.Secondary, "project", "website")
	dup.Categories[domain.CategoryWebDevelopment] = set

	if got := newKeywordIndex(dup).PhraseCount(); got != base {
		t.Errorf("phrase count: got %d, want %d (duplicates must collapse)", got, base)
	}
}

func TestKeywordIndex_EmptyLexicons(t *testing.T) {
	idx := newKeywordIndex(domain.Lexicons{
		Categories: map[domain.Category]domain.KeywordSet{},
	})

	if idx.PhraseCount() != 0 {
		t.Errorf("phrase count: got %d, want 0", idx.PhraseCount())
	}
	if hits := idx.Match("looking for anything at all"); len(hits) != 0 {
		t.Errorf("expected no hits, got %v", hits)
	}
}
