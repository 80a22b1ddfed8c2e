package index

import (
	"context"
	"fmt"

	"github.com/abeeranajam31/Ai-powered-Chatot/internal/domain"
)

// Retriever embeds a query and runs similarity search against a loaded
// store. It implements domain.Retriever.
type Retriever struct {
	store    *Store
	embedder Embedder
}

func NewRetriever(store *Store, embedder Embedder) *Retriever {
	return &Retriever{store: store, embedder: embedder}
}

func (r *Retriever) Retrieve(ctx context.Context, query string, topK int) ([]domain.SearchResult, error) {
	vectors, err := r.embedder.EmbedTexts(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}
	if len(vectors) == 0 {
		return nil, fmt.Errorf("no embedding returned for query")
	}
	vector := vectors[0]
	normalize(vector)

	return r.store.Search(vector, topK), nil
}
