package openai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/matrix-core/internal/infrastructure/config"
)

func TestNewEmbedderRequiresAPIKey(t *testing.T) {
	_, err := NewEmbedder(config.EmbedderConfig{})
	require.Error(t, err)
}

func TestNewEmbedderVectorSizeFollowsModel(t *testing.T) {
	tests := []struct {
		model string
		want  uint64
	}{
		{model: "", want: 1536},
		{model: "text-embedding-3-small", want: 1536},
		{model: "text-embedding-3-large", want: 3072},
		{model: "text-embedding-ada-002", want: 1536},
	}

	for _, tt := range tests {
		e, err := NewEmbedder(config.EmbedderConfig{APIKey: "sk-test", Model: tt.model})
		require.NoError(t, err, tt.model)
		assert.Equal(t, tt.want, e.VectorSize(), tt.model)
	}
}

func TestNewEmbedderRejectsUnknownModel(t *testing.T) {
	_, err := NewEmbedder(config.EmbedderConfig{APIKey: "sk-test", Model: "embedding-9000"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported embedding model")
}
