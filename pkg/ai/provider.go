package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// SummarizationProvider turns raw testimonial text into a single wall-ready
// sentence. Implementations must be safe for concurrent use.
type SummarizationProvider interface {
	Summarize(ctx context.Context, text string) (string, error)
}

var (
	// ErrMissingCredential means the active provider has no API key configured.
	// It is returned before any network call is attempted.
	ErrMissingCredential = errors.New("ai: provider credential is not configured")

	// ErrMalformedResponse means the provider answered but the expected
	// fields were missing at some depth, or the summary was blank.
	ErrMalformedResponse = errors.New("ai: provider returned an unexpected response structure")

	// ErrModelLoading means the upstream model is still warming up. This is
	// the only condition callers should retry.
	ErrModelLoading = errors.New("ai: model is still loading")
)

// UpstreamError is a non-retryable provider failure carrying the upstream's
// human-readable message. The message is logged server-side, never forwarded
// to clients verbatim.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("ai: upstream error (status %d): %s", e.StatusCode, e.Message)
}

// promptTemplate is the fixed instruction wrapped around every testimonial.
// The input text is embedded verbatim.
const promptTemplate = `You are a marketing assistant. Summarize the following customer testimonial into a single, punchy, and positive sentence suitable for a website's 'Wall of Love'. Focus on the core benefit or emotion. Do not add any extra text or quotation marks, just the summarized sentence. Testimonial: "%s"`

func buildPrompt(text string) string {
	return fmt.Sprintf(promptTemplate, text)
}

// isLoadingMessage reports whether an upstream error message indicates the
// model is warming up rather than permanently failing. Providers signal this
// only through message text, so substring inspection is the contract.
func isLoadingMessage(msg string) bool {
	m := strings.ToLower(msg)
	return strings.Contains(m, "currently loading") ||
		strings.Contains(m, "is loading") ||
		strings.Contains(m, "warming up")
}

const defaultTimeout = 30 * time.Second

// Option configures a provider client.
type Option func(*clientSettings)

type clientSettings struct {
	baseURL    string
	httpClient *http.Client
}

// WithBaseURL overrides the provider endpoint, mainly for tests.
func WithBaseURL(baseURL string) Option {
	return func(s *clientSettings) {
		s.baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	}
}

// WithHTTPClient overrides the HTTP client used for provider calls.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(s *clientSettings) {
		s.httpClient = httpClient
	}
}

func newClientSettings(defaultBaseURL string, opts []Option) clientSettings {
	s := clientSettings{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(&s)
	}
	if s.httpClient == nil {
		s.httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return s
}
