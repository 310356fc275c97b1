package analyzer

import "github.com/jonesrussell/opportunity-radar/internal/domain"

// DefaultLexicons returns the compiled-in phrase tables. Callers get a fresh
// copy on every call; the analyzer never mutates its working set.
func DefaultLexicons() domain.Lexicons {
	return domain.Lexicons{
		Categories: map[domain.Category]domain.KeywordSet{
			domain.CategoryDataIntegration: {
				Primary: []string{
					"data integration", "data pipeline", "etl",
					"data migration", "api integration", "database sync",
				},
				Secondary: []string{
					"data warehousing", "system integration", "connect systems",
					"real-time data", "data sync", "import data",
				},
			},
			domain.CategoryDataVisualization: {
				Primary: []string{
					"data visualization", "dashboard", "reporting",
					"analytics", "business intelligence", "kpi dashboard",
				},
				Secondary: []string{
					"charts", "graphs", "visualize data", "data insights",
					"tableau", "power bi", "looker",
				},
			},
			domain.CategoryWebDevelopment: {
				Primary: []string{
					"website", "web development", "web app",
					"web application", "frontend", "backend",
				},
				Secondary: []string{
					"full stack", "landing page", "e-commerce", "build website",
					"web portal", "wordpress", "react", "cms",
				},
			},
			domain.CategoryAppDevelopment: {
				Primary: []string{
					"mobile app", "app development", "ios app",
					"android app", "native app", "cross platform",
				},
				Secondary: []string{
					"flutter", "react native", "swift", "kotlin",
					"build app", "app store", "play store",
				},
			},
		},
		HelpPhrases: []string{
			"looking for", "need help", "seeking", "require", "want to hire",
			"need assistance", "help needed", "recommendations for",
			"anyone know", "suggestions for", "advice on", "expertise in",
			"consultant", "freelancer", "agency", "developer", "specialist",
			"outsource", "contract", "project", "budget for", "quote for",
		},
		Urgency: map[domain.Urgency][]string{
			domain.UrgencyUrgent: {"urgent", "asap", "immediately", "rush", "emergency"},
			domain.UrgencyHigh:   {"soon", "quickly", "fast", "priority", "deadline"},
			domain.UrgencyMedium: {"next month", "few weeks", "planning", "upcoming"},
			domain.UrgencyLow:    {"future", "eventually", "considering", "thinking about"},
		},
	}
}
