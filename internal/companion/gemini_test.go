package companion

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	generativelanguage "google.golang.org/api/generativelanguage/v1beta"

	"moodsync/apps/backend/internal/config"
)

func newTestGeminiClient(t *testing.T, handler http.HandlerFunc) *GeminiClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewGeminiClient(context.Background(), config.Config{
		GeminiAPIKey:  "test-key",
		GeminiModel:   "gemini-2.0-flash",
		GeminiBaseURL: server.URL,
	})
	require.NoError(t, err)
	return client
}

func TestGeminiClientGenerate(t *testing.T) {
	var gotPrompt, gotPath, gotKey string
	client := newTestGeminiClient(t, func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		if gotKey == "" {
			gotKey = r.Header.Get("X-Goog-Api-Key")
		}

		var req generativelanguage.GenerateContentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if len(req.Contents) == 1 && len(req.Contents[0].Parts) == 1 {
			gotPrompt = req.Contents[0].Parts[0].Text
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"candidates":[{
				"content":{"role":"model","parts":[{"text":"Hi **babe**"},{"text":" 💕"}]},
				"finishReason":"STOP"
			}]
		}`))
	})

	got, err := client.Generate(context.Background(), "hello prompt")
	require.NoError(t, err)
	assert.Equal(t, "Hi **babe** 💕", got)
	assert.Equal(t, "hello prompt", gotPrompt)
	assert.Equal(t, "/v1beta/models/gemini-2.0-flash:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)
}

func TestGeminiClientBackendError(t *testing.T) {
	client := newTestGeminiClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`))
	})

	_, err := client.Generate(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gemini generateContent")
}

func TestGeminiClientMalformedBody(t *testing.T) {
	client := newTestGeminiClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":`))
	})

	_, err := client.Generate(context.Background(), "hello")
	require.Error(t, err)
}

func TestNewGeminiClientRequiresKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), config.Config{GeminiModel: "gemini-2.0-flash"})
	require.Error(t, err)

	_, err = NewGeminiClient(context.Background(), config.Config{GeminiAPIKey: "k"})
	require.Error(t, err)
}

func TestModelResource(t *testing.T) {
	assert.Equal(t, "models/gemini-2.0-flash", (&GeminiClient{model: "gemini-2.0-flash"}).modelResource())
	assert.Equal(t, "models/custom", (&GeminiClient{model: "models/custom"}).modelResource())
}

func TestResponseText(t *testing.T) {
	_, err := responseText(nil)
	assert.Error(t, err)

	text, err := responseText(&generativelanguage.GenerateContentResponse{})
	require.NoError(t, err)
	assert.Empty(t, text)

	_, err = responseText(&generativelanguage.GenerateContentResponse{
		PromptFeedback: &generativelanguage.PromptFeedback{BlockReason: "SAFETY"},
	})
	assert.Error(t, err)

	_, err = responseText(&generativelanguage.GenerateContentResponse{
		Candidates: []*generativelanguage.Candidate{{FinishReason: "SAFETY"}},
	})
	assert.Error(t, err)

	text, err = responseText(&generativelanguage.GenerateContentResponse{
		Candidates: []*generativelanguage.Candidate{{FinishReason: "MAX_TOKENS"}},
	})
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestGatewayWithGeminiFailureFallsBack(t *testing.T) {
	client := newTestGeminiClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"denied"}}`))
	})
	gw := NewGateway(client, nil, nil, 0)

	got := gw.Respond(context.Background(), TaskCompletion, Fields{TaskName: "Drink water"})
	assert.Equal(t, "Amazing job on completing Drink water, babe! 🎉 You're absolutely crushing it! 💖", got)
}
