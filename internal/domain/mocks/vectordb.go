package mocks

import (
	"context"

	"github.com/ersonp/matrix-core/internal/domain/ports"
)

// VectorDB is an in-memory mock implementation of ports.VectorDB.
type VectorDB struct {
	Points []ports.EntityPoint
	Err    error

	EnsureCalls int
}

// EnsureCollection records the call.
func (m *VectorDB) EnsureCollection(_ context.Context, _ uint64) error {
	m.EnsureCalls++
	return m.Err
}

// SaveBatch appends the points, replacing existing ids.
func (m *VectorDB) SaveBatch(_ context.Context, points []ports.EntityPoint) error {
	if m.Err != nil {
		return m.Err
	}
	for _, p := range points {
		replaced := false
		for i := range m.Points {
			if m.Points[i].ID == p.ID {
				m.Points[i] = p
				replaced = true
				break
			}
		}
		if !replaced {
			m.Points = append(m.Points, p)
		}
	}
	return nil
}

// Search returns stored points in insertion order up to limit.
func (m *VectorDB) Search(_ context.Context, _ []float32, limit int) ([]ports.EntityPoint, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if limit > len(m.Points) {
		limit = len(m.Points)
	}
	out := make([]ports.EntityPoint, limit)
	copy(out, m.Points[:limit])
	return out, nil
}
