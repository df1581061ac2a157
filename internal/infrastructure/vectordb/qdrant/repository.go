// Package qdrant provides a VectorDB implementation using Qdrant.
package qdrant

import (
	"context"
	"fmt"

	pb "github.com/qdrant/go-client/qdrant"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/ersonp/matrix-core/internal/domain/entities"
	"github.com/ersonp/matrix-core/internal/domain/ports"
	"github.com/ersonp/matrix-core/internal/infrastructure/config"
)

// Repository implements the VectorDB interface using Qdrant.
type Repository struct {
	client     pb.CollectionsClient
	points     pb.PointsClient
	collection string
	conn       *grpc.ClientConn
}

// NewRepository creates a new Qdrant repository.
func NewRepository(cfg config.QdrantConfig) (*Repository, error) {
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("connecting to qdrant: %w", err)
	}

	return &Repository{
		client:     pb.NewCollectionsClient(conn),
		points:     pb.NewPointsClient(conn),
		collection: cfg.Collection,
		conn:       conn,
	}, nil
}

// Close closes the gRPC connection.
func (r *Repository) Close() error {
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}

// EnsureCollection creates the collection if it doesn't exist.
func (r *Repository) EnsureCollection(ctx context.Context, vectorSize uint64) error {
	_, err := r.client.Get(ctx, &pb.GetCollectionInfoRequest{
		CollectionName: r.collection,
	})
	if err == nil {
		return nil
	}

	_, err = r.client.Create(ctx, &pb.CreateCollection{
		CollectionName: r.collection,
		VectorsConfig: &pb.VectorsConfig{
			Config: &pb.VectorsConfig_Params{
				Params: &pb.VectorParams{
					Size:     vectorSize,
					Distance: pb.Distance_Cosine,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("creating collection: %w", err)
	}

	return nil
}

// SaveBatch upserts multiple entity points.
func (r *Repository) SaveBatch(ctx context.Context, entityPoints []ports.EntityPoint) error {
	points := make([]*pb.PointStruct, 0, len(entityPoints))

	for _, ep := range entityPoints {
		point := &pb.PointStruct{
			Id: &pb.PointId{
				PointIdOptions: &pb.PointId_Uuid{
					Uuid: ep.ID,
				},
			},
			Vectors: &pb.Vectors{
				VectorsOptions: &pb.Vectors_Vector{
					Vector: &pb.Vector{
						Data: ep.Embedding,
					},
				},
			},
			Payload: map[string]*pb.Value{
				"kind": {Kind: &pb.Value_StringValue{StringValue: string(ep.Kind)}},
				"key":  {Kind: &pb.Value_StringValue{StringValue: ep.Key}},
				"name": {Kind: &pb.Value_StringValue{StringValue: ep.Name}},
				"text": {Kind: &pb.Value_StringValue{StringValue: ep.Text}},
			},
		}
		points = append(points, point)
	}

	_, err := r.points.Upsert(ctx, &pb.UpsertPoints{
		CollectionName: r.collection,
		Points:         points,
	})
	if err != nil {
		return fmt.Errorf("upserting points: %w", err)
	}

	return nil
}

// Search returns the entities nearest to the embedding.
func (r *Repository) Search(ctx context.Context, embedding []float32, limit int) ([]ports.EntityPoint, error) {
	resp, err := r.points.Search(ctx, &pb.SearchPoints{
		CollectionName: r.collection,
		Vector:         embedding,
		Limit:          uint64(limit),
		WithPayload: &pb.WithPayloadSelector{
			SelectorOptions: &pb.WithPayloadSelector_Enable{Enable: true},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("searching points: %w", err)
	}

	out := make([]ports.EntityPoint, 0, len(resp.Result))
	for _, scored := range resp.Result {
		out = append(out, scoredPointToEntity(scored))
	}

	return out, nil
}

// scoredPointToEntity maps a Qdrant result back to an entity point.
func scoredPointToEntity(p *pb.ScoredPoint) ports.EntityPoint {
	ep := ports.EntityPoint{Score: p.GetScore()}

	if id := p.GetId(); id != nil {
		ep.ID = id.GetUuid()
	}

	payload := p.GetPayload()
	ep.Kind = entities.Kind(payloadString(payload, "kind"))
	ep.Key = payloadString(payload, "key")
	ep.Name = payloadString(payload, "name")
	ep.Text = payloadString(payload, "text")

	return ep
}

func payloadString(payload map[string]*pb.Value, key string) string {
	v, ok := payload[key]
	if !ok {
		return ""
	}
	return v.GetStringValue()
}
