package domain

import "context"

// Chunk is one fixed-size window of the source document, produced at
// index-build time and immutable afterwards.
type Chunk struct {
	Text   string `json:"text"`
	Source string `json:"source"`
	Index  int    `json:"index"`
}

// SearchResult pairs a chunk with its similarity score for a query.
type SearchResult struct {
	Chunk Chunk   `json:"chunk"`
	Score float64 `json:"score"`
}

// Retriever defines the interface for similarity search over the
// persisted document index.
type Retriever interface {
	Retrieve(ctx context.Context, query string, topK int) ([]SearchResult, error)
}
