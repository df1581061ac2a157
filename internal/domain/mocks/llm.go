// Package mocks provides mock implementations for testing.
package mocks

import "context"

// LLM is a mock implementation of ports.LLMClient.
type LLM struct {
	Response string
	Err      error

	// Prompts records every prompt passed to Generate.
	Prompts []string
}

// Generate returns the configured response or error.
func (m *LLM) Generate(_ context.Context, prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}
