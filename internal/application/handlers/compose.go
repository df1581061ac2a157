// Package handlers wires the domain services into application-level
// operations the CLI calls.
package handlers

import (
	"fmt"

	"github.com/ersonp/matrix-core/internal/domain/entities"
	"github.com/ersonp/matrix-core/internal/domain/services"
)

// Datasets holds the normalized entity lists of one invocation. They
// are read-only for the composition pipeline.
type Datasets struct {
	Universes []entities.Universe
	Spaces    []entities.Space
	Clusters  []entities.Cluster
	Assets    []entities.Asset
}

// ComposeResult is the outcome of one composition pass.
type ComposeResult struct {
	Mode   entities.Mode
	Prompt string

	// Unmatched holds tokens that resolved to nothing. Non-fatal; the
	// caller reports them as warnings.
	Unmatched []string
}

// ComposeHandler runs the full pipeline: tokenize, resolve, detect the
// mode, bind the cluster, compose. Fatal conditions short-circuit
// before composition; no partial prompt is ever produced.
type ComposeHandler struct{}

// NewComposeHandler creates a new ComposeHandler.
func NewComposeHandler() *ComposeHandler {
	return &ComposeHandler{}
}

// Handle resolves the raw arguments against the datasets and composes
// the brief. ModeList (no tokens) returns an empty prompt; the caller
// decides what a listing looks like.
func (h *ComposeHandler) Handle(ds Datasets, args []string) (*ComposeResult, error) {
	tokens := services.Tokenize(args)
	res := services.DetectMode(ds.Universes, ds.Spaces, ds.Assets, tokens)

	result := &ComposeResult{
		Mode:      res.Mode,
		Unmatched: res.Unmatched,
	}

	switch res.Mode {
	case entities.ModeList:
		return result, nil

	case entities.ModeInvalid:
		if res.Universe != nil && res.Space != nil {
			return nil, fmt.Errorf("%w: both a universe and a space resolved", services.ErrInvalidCombination)
		}
		// Tokens were given but nothing usable resolved.
		return nil, services.ErrNoEntity
	}

	if res.Mode.RequiresAssets() && len(res.Assets) == 0 {
		return nil, services.ErrNoEntity
	}

	var cluster *entities.Cluster
	var variation string
	if res.Mode.HasSpace() {
		var err error
		cluster, variation, err = services.BindCluster(*res.Space, ds.Clusters, len(res.Assets))
		if err != nil {
			return nil, err
		}
	}

	result.Prompt = services.ComposePrompt(res.Mode, res.Universe, res.Space, cluster, variation, res.Assets)
	return result, nil
}
