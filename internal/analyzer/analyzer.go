// Package analyzer implements the opportunity scoring engine: text
// normalization, help-seeking detection, weighted category scoring, urgency
// inference, and requirement extraction over free-text social-media posts.
package analyzer

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/jonesrussell/opportunity-radar/internal/domain"
	"github.com/jonesrussell/opportunity-radar/internal/logger"
	"github.com/jonesrussell/opportunity-radar/internal/telemetry"
)

const (
	// mixedThreshold is the confidence a base category must strictly exceed
	// to count toward the mixed-category override.
	mixedThreshold = 0.3

	// maxKeyIndicators caps the indicator list on a verdict.
	maxKeyIndicators = 10
)

// Analyzer turns raw post text into opportunity verdicts. Lexicons are
// immutable after construction; UpdateLexicons swaps in a fresh set
// atomically, so concurrent Analyze calls need no caller-side locking.
type Analyzer struct {
	mu        sync.RWMutex
	lex       domain.Lexicons
	index     *keywordIndex
	logger    logger.Logger
	telemetry *telemetry.Provider
}

// New creates an analyzer over the given lexicons. The telemetry provider is
// optional; pass nil to disable instrumentation.
func New(log logger.Logger, lex domain.Lexicons, tp *telemetry.Provider) *Analyzer {
	a := &Analyzer{
		lex:       lex.Clone(),
		logger:    log,
		telemetry: tp,
	}
	a.index = newKeywordIndex(a.lex)
	tp.RecordLexiconReload(a.index.PhraseCount())

	log.Info("analyzer initialized",
		logger.Int("categories", len(a.lex.Categories)),
		logger.Int("help_phrases", len(a.lex.HelpPhrases)),
		logger.Int("keywords", a.index.PhraseCount()),
	)
	return a
}

// snapshot returns the current lexicons and index under a read lock.
func (a *Analyzer) snapshot() (domain.Lexicons, *keywordIndex) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.lex, a.index
}

// Analyze scores one post. It is total: any input string, including empty or
// non-ASCII, yields a verdict and never an error. Posts without help-seeking
// intent short-circuit to a zero-confidence, low-urgency verdict.
func (a *Analyzer) Analyze(ctx context.Context, post string) *domain.Verdict {
	start := time.Now()

	if a.telemetry != nil && a.telemetry.Tracer != nil {
		var span trace.Span
		ctx, span = a.telemetry.Tracer.Start(ctx, "analyzer.Analyze")
		defer span.End()
	}

	lex, idx := a.snapshot()
	text := Normalize(post)

	matchStart := time.Now()
	hits := idx.Match(text)
	a.telemetry.RecordIndexMatch(time.Since(matchStart))

	helpFound := helpSeekingFromHits(lex, hits)
	if len(helpFound) == 0 {
		verdict := &domain.Verdict{
			Category:      domain.CategoryNone,
			Confidence:    0.0,
			Urgency:       domain.UrgencyLow,
			KeyIndicators: []string{},
			Requirements:  []string{},
		}
		a.telemetry.RecordAnalysis(ctx, time.Since(start), string(verdict.Category), string(verdict.Urgency), false)
		a.logger.Debug("no help-seeking intent detected", logger.Int("text_len", len(text)))
		return verdict
	}

	scores := scoreFromHits(lex, hits)
	category, confidence := bestCategory(scores)

	// Mixed-category override: more than one base category above the
	// threshold relabels the verdict as mixed, keeping the top confidence.
	above := 0
	for _, cat := range domain.BaseCategories {
		if scores[cat] > mixedThreshold {
			above++
		}
	}
	if above > 1 {
		category = domain.CategoryMixed
	}

	verdict := &domain.Verdict{
		Category:      category,
		Confidence:    confidence,
		Urgency:       detectUrgency(lex, text),
		KeyIndicators: compileIndicators(lex, helpFound, hits),
		Requirements:  ExtractRequirements(text),
	}

	a.telemetry.RecordAnalysis(ctx, time.Since(start), string(verdict.Category), string(verdict.Urgency), true)
	a.logger.Debug("post analyzed",
		logger.String("category", string(verdict.Category)),
		logger.Float64("confidence", verdict.Confidence),
		logger.String("urgency", string(verdict.Urgency)),
		logger.Int("indicators", len(verdict.KeyIndicators)),
		logger.Int("requirements", len(verdict.Requirements)),
	)
	return verdict
}

// compileIndicators assembles the verdict's key indicators: help-seeking
// phrases first, then every matched category keyword in category-then-keyword
// enumeration order, deduplicated and truncated to the cap.
func compileIndicators(lex domain.Lexicons, helpFound []string, hits map[string]bool) []string {
	indicators := make([]string, 0, maxKeyIndicators)
	seen := make(map[string]bool)

	appendIndicator := func(phrase string) {
		if seen[phrase] {
			return
		}
		seen[phrase] = true
		indicators = append(indicators, phrase)
	}

	for _, phrase := range helpFound {
		appendIndicator(phrase)
	}
	for _, cat := range domain.BaseCategories {
		set := lex.Categories[cat]
		for _, kw := range set.Primary {
			if hits[normalizePhrase(kw)] {
				appendIndicator(kw)
			}
		}
		for _, kw := range set.Secondary {
			if hits[normalizePhrase(kw)] {
				appendIndicator(kw)
			}
		}
	}

	if len(indicators) > maxKeyIndicators {
		indicators = indicators[:maxKeyIndicators]
	}
	return indicators
}

// UpdateLexicons replaces the phrase tables and rebuilds the keyword
// automaton atomically. In-flight Analyze calls finish on the old tables.
func (a *Analyzer) UpdateLexicons(lex domain.Lexicons) {
	fresh := lex.Clone()
	index := newKeywordIndex(fresh)

	a.mu.Lock()
	a.lex = fresh
	a.index = index
	a.mu.Unlock()

	a.telemetry.RecordLexiconReload(index.PhraseCount())
	a.logger.Info("lexicons updated",
		logger.Int("categories", len(fresh.Categories)),
		logger.Int("help_phrases", len(fresh.HelpPhrases)),
		logger.Int("keywords", index.PhraseCount()),
	)
}

// Lexicons returns a copy of the current phrase tables.
func (a *Analyzer) Lexicons() domain.Lexicons {
	lex, _ := a.snapshot()
	return lex.Clone()
}

// KeywordCount returns the number of distinct phrases in the automaton.
func (a *Analyzer) KeywordCount() int {
	_, idx := a.snapshot()
	return idx.PhraseCount()
}
