package summarize

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMistralProviderSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "mistral-medium", req.Model)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Contains(t, req.Messages[1].Content, "BEGIN CONTENT")

		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "# Notes\n- point"}},
			},
		})
	}))
	defer server.Close()

	p := NewMistralProvider(server.URL, "key", "", zap.NewNop())
	notes, err := p.Summarize(context.Background(), BuildPrompt("hello", ""))
	require.NoError(t, err)
	assert.Equal(t, "# Notes\n- point", notes)
}

func TestMistralProviderHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"quota exceeded"}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	p := NewMistralProvider(server.URL, "key", "", zap.NewNop())
	_, err := p.Summarize(context.Background(), "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestMistralProviderEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"choices": []interface{}{}})
	}))
	defer server.Close()

	p := NewMistralProvider(server.URL, "key", "", zap.NewNop())
	_, err := p.Summarize(context.Background(), "prompt")
	assert.ErrorContains(t, err, "empty response")
}
