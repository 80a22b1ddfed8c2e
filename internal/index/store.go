package index

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"

	"github.com/abeeranajam31/Ai-powered-Chatot/internal/domain"
)

const indexFile = "index.json"

// Store is the persisted similarity-searchable index: the document chunks
// and their L2-normalized embedding vectors. It is built once offline and
// loaded read-only at serve time.
type Store struct {
	Source    string         `json:"source"`
	Dimension int            `json:"dimension"`
	Chunks    []domain.Chunk `json:"chunks"`
	Vectors   [][]float32    `json:"vectors"`
}

// Search returns the topK chunks most similar to the given normalized
// query vector, highest score first.
func (s *Store) Search(vector []float32, topK int) []domain.SearchResult {
	if topK <= 0 {
		topK = 2
	}

	scores := make([]float64, len(s.Vectors))
	for i := range s.Vectors {
		scores[i] = dot(s.Vectors[i], vector)
	}

	idxs := make([]int, len(scores))
	for i := range idxs {
		idxs[i] = i
	}
	sort.Slice(idxs, func(a, b int) bool { return scores[idxs[a]] > scores[idxs[b]] })

	if topK > len(idxs) {
		topK = len(idxs)
	}
	results := make([]domain.SearchResult, 0, topK)
	for _, j := range idxs[:topK] {
		results = append(results, domain.SearchResult{Chunk: s.Chunks[j], Score: scores[j]})
	}
	return results
}

// Save persists the store into dir. The file is written to a temp path and
// renamed so a failed build leaves no partial index behind.
func (s *Store) Save(dir string) error {
	if len(s.Chunks) != len(s.Vectors) {
		return fmt.Errorf("chunks and vectors length mismatch: %d != %d", len(s.Chunks), len(s.Vectors))
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create index directory: %w", err)
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode index: %w", err)
	}

	tmp, err := os.CreateTemp(dir, indexFile+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp index file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write index: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close index file: %w", err)
	}

	if err := os.Rename(tmp.Name(), filepath.Join(dir, indexFile)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to finalize index: %w", err)
	}
	return nil
}

// Load reads a previously built index from dir.
func Load(dir string) (*Store, error) {
	data, err := os.ReadFile(filepath.Join(dir, indexFile))
	if err != nil {
		return nil, fmt.Errorf("failed to read index from %s: %w", dir, err)
	}

	var s Store
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to decode index: %w", err)
	}
	if len(s.Chunks) != len(s.Vectors) {
		return nil, fmt.Errorf("corrupt index: %d chunks, %d vectors", len(s.Chunks), len(s.Vectors))
	}
	return &s, nil
}

func dot(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}

func normalize(v []float32) {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	norm := math.Sqrt(sum)
	if norm == 0 {
		return
	}
	for i := range v {
		v[i] = float32(float64(v[i]) / norm)
	}
}
