package domain

import "context"

// SummarizeRequest carries the raw testimonial text to condense
type SummarizeRequest struct {
	Text string `json:"text" binding:"required"`
}

// Summary is the AI-generated one-liner. Text is never empty: a provider
// result that trims to nothing is surfaced as an error, not an empty success.
type Summary struct {
	Text string `json:"summary"`
}

// SummarizeUsecase defines the interface for AI summarization
type SummarizeUsecase interface {
	Summarize(ctx context.Context, text string) (*Summary, error)
}
