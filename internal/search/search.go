package search

import "context"

// Searcher defines the interface for the live web-search collaborator.
// The result blob is consumed as opaque text.
type Searcher interface {
	Search(ctx context.Context, query string) (string, error)
}
