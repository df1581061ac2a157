package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ersonp/matrix-core/internal/domain/ports"
)

// DispatchHandler hands a composed brief to the generative model.
type DispatchHandler struct {
	llm ports.LLMClient
}

// NewDispatchHandler creates a new DispatchHandler.
func NewDispatchHandler(llm ports.LLMClient) *DispatchHandler {
	return &DispatchHandler{llm: llm}
}

// HandleDispatch sends the brief and returns the narrative response.
func (h *DispatchHandler) HandleDispatch(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", errors.New("nothing to dispatch: empty prompt")
	}

	response, err := h.llm.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("dispatching prompt: %w", err)
	}

	return response, nil
}
