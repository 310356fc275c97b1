//nolint:testpackage // Testing internal analyzer requires same package access
package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractRequirements_Technologies(t *testing.T) {
	reqs := ExtractRequirements("we use python and react, data lives in postgresql on aws")

	assert.Contains(t, reqs, "Python")
	assert.Contains(t, reqs, "React")
	assert.Contains(t, reqs, "Postgresql")
	assert.Contains(t, reqs, "Aws")
}

func TestExtractRequirements_TechnologiesDeduplicated(t *testing.T) {
	reqs := ExtractRequirements("react react react")

	count := 0
	for _, r := range reqs {
		if r == "React" {
			count++
		}
	}
	assert.Equal(t, 1, count, "duplicate technology mentions collapse to one entry")
}

func TestExtractRequirements_Budget(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "dollar amount",
			text: "we can pay $2,500.00 for this",
			want: "$2,500.00",
		},
		{
			name: "dollar amount with k suffix",
			text: "budget around $5k total",
			want: "$5k",
		},
		{
			name: "bare number with budget keyword",
			text: "we have a 3000 budget for the project",
			want: "3000 budget",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reqs := ExtractRequirements(tt.text)

			var budget string
			for _, r := range reqs {
				if strings.HasPrefix(r, "Budget mentioned: ") {
					budget = r
					break
				}
			}
			require.NotEmpty(t, budget, "expected a budget entry in %v", reqs)
			assert.Contains(t, budget, tt.want)
		})
	}
}

func TestExtractRequirements_BudgetSingleEntry(t *testing.T) {
	reqs := ExtractRequirements("either $500 now or $1,000 later")

	entries := 0
	for _, r := range reqs {
		if strings.HasPrefix(r, "Budget mentioned: ") {
			entries++
			assert.Contains(t, r, "$500")
			assert.Contains(t, r, "$1,000")
		}
	}
	assert.Equal(t, 1, entries, "multiple budget matches collapse to one summary")
}

func TestExtractRequirements_Timeline(t *testing.T) {
	reqs := ExtractRequirements("delivery in 3 weeks, first demo after 10 days")

	var timeline string
	for _, r := range reqs {
		if strings.HasPrefix(r, "Timeline: ") {
			timeline = r
			break
		}
	}
	require.NotEmpty(t, timeline, "expected a timeline entry in %v", reqs)
	assert.Contains(t, timeline, "3 weeks")
	assert.Contains(t, timeline, "10 days")
}

func TestExtractRequirements_NoMatches(t *testing.T) {
	reqs := ExtractRequirements("just a plain post about nothing in particular")
	assert.Empty(t, reqs)
}
