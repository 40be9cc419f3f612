package advice

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dayline/dayline/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGeminiTestServer(t *testing.T, handler http.HandlerFunc) *GeminiGenerator {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	generator, err := NewGeminiGenerator(context.Background(), config.Advice{
		ApiKey:     "test-key",
		Model:      "gemini-2.0-flash-lite",
		Endpoint:   server.URL + "/",
		TimeoutSec: 1,
	})
	require.NoError(t, err)
	return generator
}

func TestNewGeminiGenerator_DisabledWithoutKey(t *testing.T) {
	_, err := NewGeminiGenerator(context.Background(), config.Advice{Model: "gemini-2.0-flash-lite"})

	assert.ErrorIs(t, err, ErrAdviceDisabled)
}

func TestGeminiGenerator_Generate(t *testing.T) {
	var gotPath, gotKey, gotPrompt string
	generator := newGeminiTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		body, _ := io.ReadAll(r.Body)
		var request struct {
			Contents []struct {
				Role  string `json:"role"`
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
		}
		_ = json.Unmarshal(body, &request)
		if len(request.Contents) > 0 && len(request.Contents[0].Parts) > 0 {
			gotPrompt = request.Contents[0].Parts[0].Text
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"Sleep a bit more."},{"text":" Put the phone away."}]}}]}`))
	})

	text, err := generator.Generate(context.Background(), "how am I doing?")

	require.NoError(t, err)
	assert.Equal(t, "Sleep a bit more. Put the phone away.", text)
	assert.True(t, strings.HasSuffix(gotPath, "models/gemini-2.0-flash-lite:generateContent"), gotPath)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "how am I doing?", gotPrompt)
}

func TestGeminiGenerator_EmptyResponse(t *testing.T) {
	generator := newGeminiTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	})

	_, err := generator.Generate(context.Background(), "prompt")

	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestGeminiGenerator_ServerError(t *testing.T) {
	generator := newGeminiTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"code":500,"message":"internal","status":"INTERNAL"}}`))
	})

	_, err := generator.Generate(context.Background(), "prompt")

	assert.ErrorIs(t, err, ErrGeneratorUnavailable)
}

func TestGeminiGenerator_Timeout(t *testing.T) {
	generator := newGeminiTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	})
	generator.timeout = 50 * time.Millisecond

	_, err := generator.Generate(context.Background(), "prompt")

	assert.ErrorIs(t, err, ErrTimeout)
}
