// matrix-lint checks the hand-edited JSON datasets for the mistakes
// humans actually make in them: duplicate ids, spaces bound to clusters
// that don't exist, malformed birth dates, entities nothing can resolve.
package main

import (
	"fmt"
	"os"

	"github.com/ersonp/matrix-core/internal/application/handlers"
	"github.com/ersonp/matrix-core/internal/domain/entities"
	"github.com/ersonp/matrix-core/internal/domain/services"
	"github.com/ersonp/matrix-core/internal/infrastructure/config"
	"github.com/ersonp/matrix-core/internal/infrastructure/parsers"
	"github.com/ersonp/matrix-core/tools/matrix-lint/checks"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func run() error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	ds, raw, err := loadDatasets(cfg, cwd)
	if err != nil {
		return err
	}

	findings := checks.Containers(raw)
	findings = append(findings, checks.Run(ds)...)
	for _, f := range findings {
		fmt.Printf("%s: %s\n", f.Check, f.Message)
	}

	if len(findings) > 0 {
		fmt.Printf("\n%d problem(s) found\n", len(findings))
		os.Exit(1)
	}
	fmt.Println("datasets clean")
	return nil
}

func loadDatasets(cfg *config.Config, basePath string) (handlers.Datasets, checks.RawDatasets, error) {
	spacesRaw, err := parsers.LoadFile(cfg.SpacesPath(basePath))
	if err != nil {
		return handlers.Datasets{}, checks.RawDatasets{}, err
	}
	universesRaw, err := parsers.LoadFile(cfg.UniversesPath(basePath))
	if err != nil {
		return handlers.Datasets{}, checks.RawDatasets{}, err
	}
	assetsRaw, err := parsers.LoadFile(cfg.AssetsPath(basePath))
	if err != nil {
		return handlers.Datasets{}, checks.RawDatasets{}, err
	}

	ds := handlers.Datasets{
		Universes: entities.Universes(services.Normalize(universesRaw, entities.KindUniverses)),
		Spaces:    entities.Spaces(services.Normalize(spacesRaw, entities.KindSpaces)),
		Clusters:  entities.Clusters(services.Normalize(spacesRaw, entities.KindClusters)),
		Assets:    entities.Assets(services.Normalize(assetsRaw, entities.KindAssets)),
	}
	raw := checks.RawDatasets{
		Universes: universesRaw,
		Spaces:    spacesRaw,
		Assets:    assetsRaw,
	}
	return ds, raw, nil
}
