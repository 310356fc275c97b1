//nolint:testpackage // Testing internal analyzer requires same package access
package analyzer

import (
	"testing"

	"github.com/jonesrussell/opportunity-radar/internal/logger"
)

func newTestAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	return New(logger.NewNop(), DefaultLexicons(), nil)
}

func TestDetectHelpSeeking_Found(t *testing.T) {
	a := newTestAnalyzer(t)

	text := Normalize("Looking for a freelancer, need help with our website project")
	seeking, found := a.DetectHelpSeeking(text)

	if !seeking {
		t.Fatal("expected help-seeking intent to be detected")
	}

	// Matches come back in lexicon order.
	want := []string{"looking for", "need help", "freelancer", "project"}
	if len(found) != len(want) {
		t.Fatalf("expected %d phrases, got %d: %v", len(want), len(found), found)
	}
	for i, phrase := range want {
		if found[i] != phrase {
			t.Errorf("phrase %d: got %q, want %q", i, found[i], phrase)
		}
	}
}

func TestDetectHelpSeeking_NoMatch(t *testing.T) {
	a := newTestAnalyzer(t)

	seeking, found := a.DetectHelpSeeking(Normalize("Can someone recommend a good restaurant in downtown? Thanks!"))

	if seeking {
		t.Error("expected no help-seeking intent")
	}
	if len(found) != 0 {
		t.Errorf("expected no phrases, got %v", found)
	}
}

func TestDetectHelpSeeking_SubstringContainment(t *testing.T) {
	a := newTestAnalyzer(t)

	// "require" matches inside "required"; containment, not word matching.
	seeking, found := a.DetectHelpSeeking("etl experience required")
	if !seeking {
		t.Fatal("expected help-seeking intent")
	}
	if len(found) != 1 || found[0] != "require" {
		t.Errorf("expected [require], got %v", found)
	}
}
