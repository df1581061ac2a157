package ports

import (
	"context"

	"github.com/ersonp/matrix-core/internal/domain/entities"
)

// EntityPoint is one indexed entity in the vector store: its stable
// point id, where it came from, and the serialized text that was
// embedded.
type EntityPoint struct {
	ID        string
	Kind      entities.Kind
	Key       string
	Name      string
	Text      string
	Embedding []float32
	Score     float32
}

// VectorDB defines the interface for the entity index.
type VectorDB interface {
	// EnsureCollection creates the collection if it doesn't exist.
	EnsureCollection(ctx context.Context, vectorSize uint64) error

	// SaveBatch upserts multiple entity points.
	SaveBatch(ctx context.Context, points []EntityPoint) error

	// Search returns the entities nearest to the embedding.
	Search(ctx context.Context, embedding []float32, limit int) ([]EntityPoint, error)
}
