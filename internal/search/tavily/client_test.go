package tavily

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abeeranajam31/Ai-powered-Chatot/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(config.TavilyConfig{
		APIKey:     "test-key",
		BaseURL:    srv.URL,
		MaxResults: 3,
	})
	require.NoError(t, err)
	return client
}

func TestClient_Search_TruncatesQueryTo400Chars(t *testing.T) {
	var received searchRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		json.NewEncoder(w).Encode(map[string]any{"results": []any{}})
	})

	long := strings.Repeat("x", 650)
	_, err := client.Search(context.Background(), long)
	require.NoError(t, err)

	assert.Len(t, []rune(received.Query), 400)
	assert.Equal(t, strings.Repeat("x", 400), received.Query)
	assert.Equal(t, "test-key", received.APIKey)
	assert.Equal(t, 3, received.MaxResults)
}

func TestClient_Search_ShortQueryUnchanged(t *testing.T) {
	var received searchRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		json.NewEncoder(w).Encode(map[string]any{"results": []any{}})
	})

	_, err := client.Search(context.Background(), "weather in Lahore today")
	require.NoError(t, err)
	assert.Equal(t, "weather in Lahore today", received.Query)
}

func TestClient_Search_FormatsResults(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"answer": "It is raining.",
			"results": []map[string]string{
				{"title": "Weather", "content": "Heavy rain expected", "url": "https://example.com/w"},
			},
		})
	})

	got, err := client.Search(context.Background(), "weather")
	require.NoError(t, err)
	assert.Contains(t, got, "It is raining.")
	assert.Contains(t, got, "Weather: Heavy rain expected")
	assert.Contains(t, got, "https://example.com/w")
}

func TestClient_Search_ErrorStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"invalid api key"}`, http.StatusUnauthorized)
	})

	_, err := client.Search(context.Background(), "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestNewClient_MissingKey(t *testing.T) {
	_, err := NewClient(config.TavilyConfig{})
	assert.Error(t, err)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short"))
	assert.Len(t, []rune(Truncate(strings.Repeat("é", 500))), MaxQueryLen)
}
