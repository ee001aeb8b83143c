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

const defaultHuggingFaceBaseURL = "https://api-inference.huggingface.co"

type huggingFaceRequest struct {
	Inputs string `json:"inputs"`
}

// huggingFaceResult is one element of the inference API response array.
// Summarization models answer with summary_text, text-generation models with
// generated_text; accept either.
type huggingFaceResult struct {
	SummaryText   string `json:"summary_text"`
	GeneratedText string `json:"generated_text"`
}

// huggingFaceAPIError is the error envelope the inference API returns, most
// notably {"error":"Model X is currently loading","estimated_time":20} while
// a cold model warms up.
type huggingFaceAPIError struct {
	Error         string  `json:"error"`
	EstimatedTime float64 `json:"estimated_time"`
}

// HuggingFaceClient calls the Hugging Face hosted inference API.
type HuggingFaceClient struct {
	apiKey   string
	model    string
	settings clientSettings
}

// NewHuggingFaceClient creates a Hugging Face backed SummarizationProvider.
func NewHuggingFaceClient(apiKey, model string, opts ...Option) *HuggingFaceClient {
	if model == "" {
		model = "facebook/bart-large-cnn"
	}
	return &HuggingFaceClient{
		apiKey:   apiKey,
		model:    model,
		settings: newClientSettings(defaultHuggingFaceBaseURL, opts),
	}
}

func (c *HuggingFaceClient) Summarize(ctx context.Context, text string) (string, error) {
	if c.apiKey == "" {
		return "", ErrMissingCredential
	}

	body, err := json.Marshal(huggingFaceRequest{Inputs: buildPrompt(text)})
	if err != nil {
		return "", fmt.Errorf("huggingface: marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s", c.settings.baseURL, c.model)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("huggingface: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	res, err := c.settings.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("huggingface: request failed: %w", err)
	}
	defer func() { _ = res.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("huggingface: read response body: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		var apiErr huggingFaceAPIError
		message := http.StatusText(res.StatusCode)
		if err := json.Unmarshal(raw, &apiErr); err == nil && apiErr.Error != "" {
			message = apiErr.Error
		}
		if isLoadingMessage(message) {
			return "", fmt.Errorf("%w: %s", ErrModelLoading, message)
		}
		return "", &UpstreamError{StatusCode: res.StatusCode, Message: message}
	}

	var results []huggingFaceResult
	if err := json.Unmarshal(raw, &results); err != nil {
		return "", fmt.Errorf("%w: invalid JSON", ErrMalformedResponse)
	}
	if len(results) == 0 {
		return "", fmt.Errorf("%w: empty result list", ErrMalformedResponse)
	}

	summary := strings.TrimSpace(results[0].SummaryText)
	if summary == "" {
		summary = strings.TrimSpace(results[0].GeneratedText)
	}
	if summary == "" {
		return "", fmt.Errorf("%w: empty summary text", ErrMalformedResponse)
	}
	return summary, nil
}
