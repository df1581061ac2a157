package handlers

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ersonp/matrix-core/internal/domain/entities"
	"github.com/ersonp/matrix-core/internal/domain/ports"
	"github.com/ersonp/matrix-core/internal/domain/services"
)

// SearchHandler maintains and queries the semantic entity index. The
// index is a recovery path for humans typing tokens that don't resolve;
// the composition pipeline itself never touches it.
type SearchHandler struct {
	embedder ports.Embedder
	vectorDB ports.VectorDB
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(embedder ports.Embedder, vectorDB ports.VectorDB) *SearchHandler {
	return &SearchHandler{
		embedder: embedder,
		vectorDB: vectorDB,
	}
}

// HandleIndex serializes every entity, embeds the texts and upserts
// them. Point ids are derived from kind and identity so re-indexing
// replaces rather than duplicates. Returns the number of points indexed.
func (h *SearchHandler) HandleIndex(ctx context.Context, ds Datasets) (int, error) {
	points := indexPoints(ds)
	if len(points) == 0 {
		return 0, nil
	}

	texts := make([]string, len(points))
	for i, p := range points {
		texts[i] = p.Text
	}

	embeddings, err := h.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return 0, fmt.Errorf("embedding entities: %w", err)
	}
	if len(embeddings) != len(points) {
		return 0, fmt.Errorf("embedding count mismatch: %d texts, %d vectors", len(points), len(embeddings))
	}
	for i := range points {
		points[i].Embedding = embeddings[i]
	}

	if err := h.vectorDB.EnsureCollection(ctx, h.embedder.VectorSize()); err != nil {
		return 0, fmt.Errorf("ensuring collection: %w", err)
	}
	if err := h.vectorDB.SaveBatch(ctx, points); err != nil {
		return 0, fmt.Errorf("saving entity points: %w", err)
	}

	return len(points), nil
}

// HandleSearch embeds the query and returns the nearest entities.
func (h *SearchHandler) HandleSearch(ctx context.Context, query string, limit int) ([]ports.EntityPoint, error) {
	embedding, err := h.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}

	points, err := h.vectorDB.Search(ctx, embedding, limit)
	if err != nil {
		return nil, fmt.Errorf("searching entities: %w", err)
	}

	return points, nil
}

// indexPoints flattens the datasets into entity points with stable ids.
func indexPoints(ds Datasets) []ports.EntityPoint {
	var points []ports.EntityPoint

	add := func(kind entities.Kind, key, name string, rec *entities.Record) {
		if key == "" && name == "" {
			return
		}
		text := name
		if body := services.SerializeValue(rec); body != "" {
			if text != "" {
				text += " | "
			}
			text += body
		}
		points = append(points, ports.EntityPoint{
			ID:   PointID(kind, key, name),
			Kind: kind,
			Key:  key,
			Name: name,
			Text: text,
		})
	}

	for _, u := range ds.Universes {
		add(entities.KindUniverses, u.ID(), u.Name(), u.Record)
	}
	for _, s := range ds.Spaces {
		add(entities.KindSpaces, s.ID(), s.Name(), s.Record)
	}
	for _, c := range ds.Clusters {
		add(entities.KindClusters, c.ID(), c.Name(), c.Record)
	}
	for _, a := range ds.Assets {
		add(entities.KindAssets, a.ID(), a.FullName(), a.Record)
	}

	return points
}

// PointID derives a stable UUID for an entity so repeated indexing
// upserts the same point.
func PointID(kind entities.Kind, key, name string) string {
	ident := key
	if ident == "" {
		ident = name
	}
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(string(kind)+":"+entities.NormalizeName(ident))).String()
}
