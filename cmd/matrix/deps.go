package main

import (
	"fmt"
	"os"

	"github.com/ersonp/matrix-core/internal/application/handlers"
	"github.com/ersonp/matrix-core/internal/domain/entities"
	"github.com/ersonp/matrix-core/internal/domain/services"
	"github.com/ersonp/matrix-core/internal/infrastructure/config"
	embedder "github.com/ersonp/matrix-core/internal/infrastructure/embedder/openai"
	"github.com/ersonp/matrix-core/internal/infrastructure/parsers"
	"github.com/ersonp/matrix-core/internal/infrastructure/vectordb/qdrant"
)

// datasets bundles the normalized entity lists with what the writer
// side needs: the raw assets tree and its path, so the age-update
// routine can re-inject through the original container shape.
type datasets struct {
	handlers.Datasets

	rawAssets  any
	assetsPath string
}

// withDatasets loads config and the three JSON datasets, then calls fn.
// Any missing or invalid file fails the whole invocation.
func withDatasets(fn func(cfg *config.Config, basePath string, ds *datasets) error) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	ds, err := loadDatasets(cfg, cwd)
	if err != nil {
		return err
	}

	return fn(cfg, cwd, ds)
}

// loadConfigHere loads config from the invocation directory, for
// commands that don't need the datasets.
func loadConfigHere() (*config.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return cfg, nil
}

// loadDatasets parses and normalizes all entity lists. Clusters live in
// the spaces dataset, next to the spaces that bind to them.
func loadDatasets(cfg *config.Config, basePath string) (*datasets, error) {
	spacesRaw, err := parsers.LoadFile(cfg.SpacesPath(basePath))
	if err != nil {
		return nil, err
	}
	universesRaw, err := parsers.LoadFile(cfg.UniversesPath(basePath))
	if err != nil {
		return nil, err
	}
	assetsPath := cfg.AssetsPath(basePath)
	assetsRaw, err := parsers.LoadFile(assetsPath)
	if err != nil {
		return nil, err
	}

	return &datasets{
		Datasets: handlers.Datasets{
			Universes: entities.Universes(services.Normalize(universesRaw, entities.KindUniverses)),
			Spaces:    entities.Spaces(services.Normalize(spacesRaw, entities.KindSpaces)),
			Clusters:  entities.Clusters(services.Normalize(spacesRaw, entities.KindClusters)),
			Assets:    entities.Assets(services.Normalize(assetsRaw, entities.KindAssets)),
		},
		rawAssets:  assetsRaw,
		assetsPath: assetsPath,
	}, nil
}

// withSearchHandler builds the embedder and the Qdrant repository and
// calls fn with a ready SearchHandler. It handles cleanup automatically.
func withSearchHandler(cfg *config.Config, fn func(*handlers.SearchHandler) error) error {
	emb, err := embedder.NewEmbedder(cfg.Embedder)
	if err != nil {
		return fmt.Errorf("creating embedder: %w", err)
	}

	repo, err := qdrant.NewRepository(cfg.Qdrant)
	if err != nil {
		return fmt.Errorf("creating qdrant repository: %w", err)
	}
	defer repo.Close()

	return fn(handlers.NewSearchHandler(emb, repo))
}
