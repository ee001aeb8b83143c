package ai

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func geminiServer(t *testing.T, status int, body string) (*httptest.Server, *int) {
	t.Helper()
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		require.Equal(t, http.MethodPost, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func TestGeminiSummarize_Success(t *testing.T) {
	srv, _ := geminiServer(t, http.StatusOK,
		`{"candidates":[{"content":{"parts":[{"text":"  A punchy summary.  "}]}}]}`)

	c := NewGeminiClient("test-key", "", WithBaseURL(srv.URL))
	got, err := c.Summarize(context.Background(), "a long enough testimonial")
	require.NoError(t, err)
	require.Equal(t, "A punchy summary.", got)
}

func TestGeminiSummarize_MissingCredential(t *testing.T) {
	srv, calls := geminiServer(t, http.StatusOK, `{}`)

	c := NewGeminiClient("", "", WithBaseURL(srv.URL))
	_, err := c.Summarize(context.Background(), "some testimonial")
	require.ErrorIs(t, err, ErrMissingCredential)
	require.Equal(t, 0, *calls, "credential check must happen before any network call")
}

func TestGeminiSummarize_MalformedResponses(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"no candidates", `{}`},
		{"empty candidates", `{"candidates":[]}`},
		{"no content", `{"candidates":[{}]}`},
		{"no parts", `{"candidates":[{"content":{}}]}`},
		{"empty parts", `{"candidates":[{"content":{"parts":[]}}]}`},
		{"blank text", `{"candidates":[{"content":{"parts":[{"text":"   "}]}}]}`},
		{"not json", `<html>oops</html>`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv, _ := geminiServer(t, http.StatusOK, tc.body)
			c := NewGeminiClient("test-key", "", WithBaseURL(srv.URL))
			_, err := c.Summarize(context.Background(), "some testimonial")
			require.ErrorIs(t, err, ErrMalformedResponse)
		})
	}
}

func TestGeminiSummarize_UpstreamError(t *testing.T) {
	srv, _ := geminiServer(t, http.StatusBadRequest,
		`{"error":{"code":400,"message":"API key not valid.","status":"INVALID_ARGUMENT"}}`)

	c := NewGeminiClient("test-key", "", WithBaseURL(srv.URL))
	_, err := c.Summarize(context.Background(), "some testimonial")

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	require.Equal(t, http.StatusBadRequest, upstream.StatusCode)
	require.Equal(t, "API key not valid.", upstream.Message)
}

func TestGeminiSummarize_ModelLoading(t *testing.T) {
	srv, _ := geminiServer(t, http.StatusServiceUnavailable,
		`{"error":{"code":503,"message":"The model is loading, please retry.","status":"UNAVAILABLE"}}`)

	c := NewGeminiClient("test-key", "", WithBaseURL(srv.URL))
	_, err := c.Summarize(context.Background(), "some testimonial")
	require.ErrorIs(t, err, ErrModelLoading)
	require.False(t, errors.Is(err, ErrMalformedResponse))
}

func TestGeminiSummarize_PromptEmbedsInput(t *testing.T) {
	var received string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req geminiRequest
		require.NoError(t, jsonDecode(r, &req))
		require.Len(t, req.Contents, 1)
		require.Len(t, req.Contents[0].Parts, 1)
		received = req.Contents[0].Parts[0].Text
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"ok"}]}}]}`))
	}))
	t.Cleanup(srv.Close)

	c := NewGeminiClient("test-key", "", WithBaseURL(srv.URL))
	_, err := c.Summarize(context.Background(), "Great service, would buy again")
	require.NoError(t, err)
	require.Contains(t, received, `Testimonial: "Great service, would buy again"`)
	require.Contains(t, received, "marketing assistant")
}
