package index

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/tmc/langchaingo/textsplitter"

	"github.com/abeeranajam31/Ai-powered-Chatot/internal/domain"
)

// Embedder computes one embedding vector per input text.
type Embedder interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Builder produces a persisted index from a source document.
type Builder struct {
	embedder     Embedder
	chunkSize    int
	chunkOverlap int
}

func NewBuilder(embedder Embedder, chunkSize, chunkOverlap int) *Builder {
	if chunkSize <= 0 {
		chunkSize = 500
	}
	if chunkOverlap < 0 {
		chunkOverlap = 50
	}
	return &Builder{
		embedder:     embedder,
		chunkSize:    chunkSize,
		chunkOverlap: chunkOverlap,
	}
}

// Build extracts the document, splits it into overlapping chunks, embeds
// them and persists the index into outDir. An unreadable document or a
// failed embedding call aborts the build with nothing written.
func (b *Builder) Build(ctx context.Context, docPath, outDir string) (*Store, error) {
	text, err := ExtractText(docPath)
	if err != nil {
		return nil, err
	}

	splitter := textsplitter.NewRecursiveCharacter(
		textsplitter.WithChunkSize(b.chunkSize),
		textsplitter.WithChunkOverlap(b.chunkOverlap),
	)
	pieces, err := splitter.SplitText(text)
	if err != nil {
		return nil, fmt.Errorf("failed to split document: %w", err)
	}
	if len(pieces) == 0 {
		return nil, fmt.Errorf("document %s produced no chunks", docPath)
	}

	vectors, err := b.embedder.EmbedTexts(ctx, pieces)
	if err != nil {
		return nil, fmt.Errorf("failed to embed chunks: %w", err)
	}
	if len(vectors) != len(pieces) {
		return nil, fmt.Errorf("expected %d embeddings, got %d", len(pieces), len(vectors))
	}
	for _, v := range vectors {
		normalize(v)
	}

	source := filepath.Base(docPath)
	chunks := make([]domain.Chunk, len(pieces))
	for i, p := range pieces {
		chunks[i] = domain.Chunk{Text: p, Source: source, Index: i}
	}

	store := &Store{
		Source:    source,
		Dimension: len(vectors[0]),
		Chunks:    chunks,
		Vectors:   vectors,
	}
	if err := store.Save(outDir); err != nil {
		return nil, err
	}
	return store, nil
}
