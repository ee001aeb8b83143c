package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"unicode/utf8"

	"testimonial-wall-backend/internal/domain"
	"testimonial-wall-backend/pkg/ai"
	"testimonial-wall-backend/pkg/apperror"
	"testimonial-wall-backend/pkg/logger"
)

// minSummarizeLength is the minimum number of trimmed characters a
// testimonial must have before it is worth a provider call
const minSummarizeLength = 10

type summarizeUsecase struct {
	provider ai.SummarizationProvider
}

// NewSummarizeUsecase creates a new summarize usecase backed by the given provider
func NewSummarizeUsecase(provider ai.SummarizationProvider) domain.SummarizeUsecase {
	return &summarizeUsecase{
		provider: provider,
	}
}

// Summarize validates the input and requests a one-sentence summary from the
// active provider, normalizing the provider's error shapes into the app
// taxonomy. Validation failures never reach the provider.
func (uc *summarizeUsecase) Summarize(ctx context.Context, text string) (*domain.Summary, error) {
	if utf8.RuneCountInString(strings.TrimSpace(text)) < minSummarizeLength {
		return nil, apperror.BadRequest("A valid \"text\" field of at least 10 characters is required.")
	}

	summary, err := uc.provider.Summarize(ctx, text)
	if err != nil {
		return nil, uc.translate(err)
	}

	// The provider already trims; guard the invariant here too so an empty
	// summary can never be returned as success
	summary = strings.TrimSpace(summary)
	if summary == "" {
		return nil, apperror.New(http.StatusInternalServerError, "AI returned an unexpected response structure.", ai.ErrMalformedResponse)
	}

	return &domain.Summary{Text: summary}, nil
}

func (uc *summarizeUsecase) translate(err error) *apperror.AppError {
	var upstream *ai.UpstreamError

	switch {
	case errors.Is(err, ai.ErrMissingCredential):
		logger.Log.Error("Summarization provider credential missing")
		return apperror.New(http.StatusInternalServerError, "Summarization service is not configured.", err)
	case errors.Is(err, ai.ErrModelLoading):
		logger.Log.Warn("Summarization model still loading", "error", err)
		return apperror.ServiceUnavailable("The AI model is still warming up. Please try again in a moment.", err)
	case errors.Is(err, ai.ErrMalformedResponse):
		logger.Log.Error("Summarization provider returned malformed response", "error", err)
		return apperror.New(http.StatusInternalServerError, "AI returned an unexpected response structure.", err)
	case errors.As(err, &upstream):
		logger.Log.Error("Summarization provider error", "status", upstream.StatusCode, "message", upstream.Message)
		return apperror.New(http.StatusInternalServerError, "Failed to get a summary from the AI provider.", err)
	default:
		logger.Log.Error("Summarization request failed", "error", err)
		return apperror.Internal(err)
	}
}
