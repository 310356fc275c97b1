package analyzer

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Technology alternation patterns, one per concern: languages/frameworks,
// databases/search, cloud platforms, BI tools, API paradigms, mobile.
// Longer alternatives come first within a group so "javascript" is not
// reported as "java".
var techPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(python|javascript|java|react|angular|vue|node\.?js|django|flask|spring)`),
	regexp.MustCompile(`(?i)(mysql|postgresql|mongodb|oracle|elasticsearch|sql)`),
	regexp.MustCompile(`(?i)(aws|azure|gcp|google cloud|cloud)`),
	regexp.MustCompile(`(?i)(tableau|power bi|looker|qlik|grafana)`),
	regexp.MustCompile(`(?i)(api|rest|graphql|microservices)`),
	regexp.MustCompile(`(?i)(mobile|ios|android|flutter|react native)`),
}

// Budget tokens: dollar amounts (optional cents, optional k suffix) or bare
// numbers followed by budget/dollar/usd.
var budgetPattern = regexp.MustCompile(`(?i)\$[\d,]+(?:\.\d{2})?k?|\d+k?\s*(?:budget|dollar|usd)`)

// Timeline tokens: a number followed by a day/week/month/hour unit.
var timelinePattern = regexp.MustCompile(`(?i)\d+\s*(?:days?|weeks?|months?|hours?)`)

// ExtractRequirements pattern-matches technology names, budget figures, and
// timeline phrases out of normalized text. Technology matches are title-cased.
// Budget and timeline matches each collapse into a single summary entry. The
// result is deduplicated; entry order is implementation-defined.
func ExtractRequirements(text string) []string {
	var requirements []string

	titleCaser := cases.Title(language.English)
	for _, pattern := range techPatterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			requirements = append(requirements, titleCaser.String(match[1]))
		}
	}

	if budgets := budgetPattern.FindAllString(text, -1); len(budgets) > 0 {
		requirements = append(requirements, "Budget mentioned: "+strings.Join(budgets, ", "))
	}

	if timelines := timelinePattern.FindAllString(text, -1); len(timelines) > 0 {
		requirements = append(requirements, "Timeline: "+strings.Join(timelines, ", "))
	}

	return dedupe(requirements)
}

// dedupe removes duplicates keeping first occurrence order.
func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}
