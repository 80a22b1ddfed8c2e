package tavily

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/abeeranajam31/Ai-powered-Chatot/internal/config"
)

// MaxQueryLen is the hard cap the Tavily API places on query length.
// Longer queries are truncated before being sent.
const MaxQueryLen = 400

// Client is a Tavily web-search API client.
type Client struct {
	baseURL    string
	apiKey     string
	maxResults int
	client     *http.Client
}

func NewClient(cfg config.TavilyConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("missing tavily API key")
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.tavily.com"
	}
	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 3
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     cfg.APIKey,
		maxResults: maxResults,
		client:     &http.Client{Timeout: 30 * time.Second},
	}, nil
}

type searchRequest struct {
	APIKey     string `json:"api_key"`
	Query      string `json:"query"`
	MaxResults int    `json:"max_results"`
}

type searchResponse struct {
	Answer  string `json:"answer"`
	Results []struct {
		Title   string `json:"title"`
		URL     string `json:"url"`
		Content string `json:"content"`
	} `json:"results"`
}

// Search runs a web search and returns the results as plain text. Queries
// longer than MaxQueryLen characters are truncated.
func (c *Client) Search(ctx context.Context, query string) (string, error) {
	query = Truncate(query)

	body, err := json.Marshal(searchRequest{
		APIKey:     c.apiKey,
		Query:      query,
		MaxResults: c.maxResults,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/search", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read search response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("search returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	var sr searchResponse
	if err := json.Unmarshal(data, &sr); err != nil {
		return "", fmt.Errorf("failed to decode search response: %w", err)
	}

	return formatResults(sr), nil
}

// Truncate caps a query at MaxQueryLen characters.
func Truncate(query string) string {
	runes := []rune(query)
	if len(runes) <= MaxQueryLen {
		return query
	}
	return string(runes[:MaxQueryLen])
}

func formatResults(sr searchResponse) string {
	var b strings.Builder
	if sr.Answer != "" {
		b.WriteString(sr.Answer)
	}
	for _, r := range sr.Results {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(r.Title)
		if r.Content != "" {
			b.WriteString(": ")
			b.WriteString(r.Content)
		}
		if r.URL != "" {
			b.WriteString(" (")
			b.WriteString(r.URL)
			b.WriteString(")")
		}
	}
	return b.String()
}
