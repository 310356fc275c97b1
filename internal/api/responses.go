package api

import "github.com/jonesrussell/opportunity-radar/internal/domain"

// AnalyzeRequest represents a single post analysis request.
type AnalyzeRequest struct {
	Text string `json:"text" binding:"required"`
}

// AnalyzeResponse represents a single post analysis response.
type AnalyzeResponse struct {
	Verdict *domain.Verdict `json:"verdict"`
}

// BatchAnalyzeRequest represents a batch analysis request.
type BatchAnalyzeRequest struct {
	Posts []string `json:"posts" binding:"required,min=1"`
}

// BatchAnalyzeResponse represents a batch analysis response.
type BatchAnalyzeResponse struct {
	Verdicts      []*domain.Verdict `json:"verdicts"`
	Total         int               `json:"total"`
	Opportunities int               `json:"opportunities"`
}

// SuggestRequest carries a verdict to generate outreach advice for.
type SuggestRequest struct {
	Verdict *domain.Verdict `json:"verdict" binding:"required"`
}

// SuggestResponse represents generated outreach advice.
type SuggestResponse struct {
	Suggestions []string `json:"suggestions"`
}

// LexiconsResponse represents the analyzer's current phrase tables.
type LexiconsResponse struct {
	Lexicons domain.Lexicons `json:"lexicons"`
	Keywords int             `json:"keywords"`
}

// ErrorResponse represents an error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}
