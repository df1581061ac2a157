package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/matrix-core/internal/domain/entities"
	"github.com/ersonp/matrix-core/internal/domain/mocks"
)

func TestHandleIndex(t *testing.T) {
	embedder := &mocks.Embedder{EmbeddingResult: []float32{0.1, 0.2}}
	vectorDB := &mocks.VectorDB{}
	h := NewSearchHandler(embedder, vectorDB)

	ds := testDatasets(t)
	count, err := h.HandleIndex(context.Background(), ds)
	require.NoError(t, err)

	// 1 universe + 2 spaces + 1 cluster + 2 assets.
	assert.Equal(t, 6, count)
	assert.Len(t, vectorDB.Points, 6)
	assert.Equal(t, 1, vectorDB.EnsureCalls)

	for _, p := range vectorDB.Points {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Text)
		assert.Equal(t, []float32{0.1, 0.2}, p.Embedding)
	}
}

func TestHandleIndexIsIdempotent(t *testing.T) {
	embedder := &mocks.Embedder{EmbeddingResult: []float32{0.1}}
	vectorDB := &mocks.VectorDB{}
	h := NewSearchHandler(embedder, vectorDB)

	ds := testDatasets(t)
	_, err := h.HandleIndex(context.Background(), ds)
	require.NoError(t, err)
	_, err = h.HandleIndex(context.Background(), ds)
	require.NoError(t, err)

	assert.Len(t, vectorDB.Points, 6, "re-indexing upserts, never duplicates")
}

func TestHandleIndexEmptyDatasets(t *testing.T) {
	vectorDB := &mocks.VectorDB{}
	h := NewSearchHandler(&mocks.Embedder{}, vectorDB)

	count, err := h.HandleIndex(context.Background(), Datasets{})
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Zero(t, vectorDB.EnsureCalls)
}

func TestHandleIndexEmbedderError(t *testing.T) {
	embedder := &mocks.Embedder{Err: errors.New("quota exceeded")}
	h := NewSearchHandler(embedder, &mocks.VectorDB{})

	_, err := h.HandleIndex(context.Background(), testDatasets(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "embedding entities")
}

func TestHandleSearch(t *testing.T) {
	embedder := &mocks.Embedder{EmbeddingResult: []float32{0.5}}
	vectorDB := &mocks.VectorDB{}
	h := NewSearchHandler(embedder, vectorDB)

	_, err := h.HandleIndex(context.Background(), testDatasets(t))
	require.NoError(t, err)

	points, err := h.HandleSearch(context.Background(), "dojo", 2)
	require.NoError(t, err)
	assert.Len(t, points, 2)
}

func TestPointIDIsStable(t *testing.T) {
	a := PointID(entities.KindAssets, "A-09", "Ana Prado")
	b := PointID(entities.KindAssets, "A-09", "Ana Prado")
	assert.Equal(t, a, b)

	assert.NotEqual(t, a, PointID(entities.KindSpaces, "A-09", "Ana Prado"),
		"kind participates in the identity")
	assert.NotEqual(t, a, PointID(entities.KindAssets, "A-10", "Ana Prado"))

	// Name only matters when there is no key.
	assert.Equal(t, a, PointID(entities.KindAssets, "A-09", "renamed"))
	assert.NotEqual(t,
		PointID(entities.KindAssets, "", "Ana Prado"),
		PointID(entities.KindAssets, "", "Bruno Sa"))
}
