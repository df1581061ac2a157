// Package ports defines interfaces for external service communication.
package ports

import "context"

// LLMClient defines the interface for handing a composed brief to a
// generative model.
type LLMClient interface {
	// Generate sends the brief and returns the model's narrative response.
	Generate(ctx context.Context, prompt string) (string, error)
}
