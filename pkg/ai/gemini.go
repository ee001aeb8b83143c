package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com"

// geminiRequest is the minimal request shape for the generateContent endpoint.
type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

// geminiResponse is the minimal response shape returned by generateContent.
// Every level is optional: the traversal in Summarize must not assume any of
// it is present.
type geminiResponse struct {
	Candidates []struct {
		Content *struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *geminiAPIError `json:"error"`
}

type geminiAPIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// GeminiClient calls the Google Gemini generateContent REST endpoint.
type GeminiClient struct {
	apiKey   string
	model    string
	settings clientSettings
}

// NewGeminiClient creates a Gemini-backed SummarizationProvider. An empty
// apiKey is allowed at construction time; Summarize reports it as a
// configuration error before touching the network.
func NewGeminiClient(apiKey, model string, opts ...Option) *GeminiClient {
	if model == "" {
		model = "gemini-1.5-flash-latest"
	}
	return &GeminiClient{
		apiKey:   apiKey,
		model:    model,
		settings: newClientSettings(defaultGeminiBaseURL, opts),
	}
}

func (c *GeminiClient) Summarize(ctx context.Context, text string) (string, error) {
	if c.apiKey == "" {
		return "", ErrMissingCredential
	}

	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: buildPrompt(text)}}}},
	})
	if err != nil {
		return "", fmt.Errorf("gemini: marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.settings.baseURL, c.model, c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("gemini: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.settings.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini: request failed: %w", err)
	}
	defer func() { _ = res.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("gemini: read response body: %w", err)
	}

	var payload geminiResponse
	if err := json.Unmarshal(raw, &payload); err != nil {
		if res.StatusCode < 200 || res.StatusCode >= 300 {
			return "", &UpstreamError{StatusCode: res.StatusCode, Message: http.StatusText(res.StatusCode)}
		}
		return "", fmt.Errorf("%w: invalid JSON", ErrMalformedResponse)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		message := "failed to get summary from the AI provider"
		if payload.Error != nil && payload.Error.Message != "" {
			message = payload.Error.Message
		}
		if isLoadingMessage(message) {
			return "", fmt.Errorf("%w: %s", ErrModelLoading, message)
		}
		return "", &UpstreamError{StatusCode: res.StatusCode, Message: message}
	}

	// Walk candidates -> content -> parts defensively. A missing field at
	// any depth is a malformed response, never a panic.
	if len(payload.Candidates) == 0 {
		return "", fmt.Errorf("%w: no candidates", ErrMalformedResponse)
	}
	content := payload.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return "", fmt.Errorf("%w: candidate has no content parts", ErrMalformedResponse)
	}

	summary := strings.TrimSpace(content.Parts[0].Text)
	if summary == "" {
		return "", fmt.Errorf("%w: empty summary text", ErrMalformedResponse)
	}
	return summary, nil
}
