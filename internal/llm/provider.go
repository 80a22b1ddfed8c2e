package llm

import "context"

// Provider defines the interface for the generation model collaborator.
// A request carries one or more plain-text turns; the provider returns a
// single text reply.
type Provider interface {
	// Name returns the provider identifier
	Name() string

	// Generate produces one reply for the given turns
	Generate(ctx context.Context, turns []string) (string, error)
}
