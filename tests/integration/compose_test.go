// Package integration exercises the full pipeline the way the CLI
// does: datasets read from disk through the tolerant loader, entities
// normalized, a brief composed and written back out.
package integration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/matrix-core/internal/application/handlers"
	"github.com/ersonp/matrix-core/internal/domain/entities"
	"github.com/ersonp/matrix-core/internal/domain/services"
	"github.com/ersonp/matrix-core/internal/infrastructure/parsers"
)

const universesJSON = `{
	// universos ativos
	"universes": [
		{
			"id": "U-04",
			"name": "Neo Tokyo",
			"tone": "noir",
			"year": 2099,
			"rules": ["sem armas de fogo", "memória volátil"],
		}
	]
}`

const spacesJSON = `{
	"spaces": [
		{
			"id": "S-11",
			"name": "Dojo Central",
			"cluster_binding": {
				"cluster_id": "C-1",
				"inherits_contract": true,
			},
			"type": "treino",
			"description": "tatame amplo, luz baixa",
		}
	],
	"clusters": [
		{
			"cluster_id": "C-1",
			"name": "Combate Ritual",
			"contract": {
				"core_principles": ["respeito", "controle"],
				"forbidden_outcomes": ["lesão real"],
			},
		}
	]
}`

const assetsJSON = `{
	"assets": [
		{
			"asset_id": "A-09",
			"nome": "Ana",
			"sobrenome": "Prado",
			"data_nascimento": "2001-03-14",
			"idade": 24, // fica obsoleto, recalculado pelo relatório
			"altura_cm": 168,
			"peso_kg": 61.5,
			"cor_cabelo": "preto",
			"personalidade": "focada",
		},
		{
			"asset_id": "A-13",
			"nome": "Bruno",
			"sobrenome": "Sa",
			"data_nascimento": "1995-03-14",
		}
	]
}`

// loadFixtures writes the datasets to disk and loads them back the way
// the CLI does at startup.
func loadFixtures(t *testing.T) (handlers.Datasets, string, any) {
	t.Helper()
	dir := t.TempDir()

	write := func(name, body string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(body), 0644))
		return path
	}
	universesPath := write("universes.json", universesJSON)
	spacesPath := write("spaces.json", spacesJSON)
	assetsPath := write("assets.json", assetsJSON)

	universesRaw, err := parsers.LoadFile(universesPath)
	require.NoError(t, err)
	spacesRaw, err := parsers.LoadFile(spacesPath)
	require.NoError(t, err)
	assetsRaw, err := parsers.LoadFile(assetsPath)
	require.NoError(t, err)

	ds := handlers.Datasets{
		Universes: entities.Universes(services.Normalize(universesRaw, entities.KindUniverses)),
		Spaces:    entities.Spaces(services.Normalize(spacesRaw, entities.KindSpaces)),
		Clusters:  entities.Clusters(services.Normalize(spacesRaw, entities.KindClusters)),
		Assets:    entities.Assets(services.Normalize(assetsRaw, entities.KindAssets)),
	}
	return ds, assetsPath, assetsRaw
}

func TestComposeFromDisk(t *testing.T) {
	ds, _, _ := loadFixtures(t)
	h := handlers.NewComposeHandler()

	result, err := h.Handle(ds, []string{"S-11", "+", "A-09,A-13"})
	require.NoError(t, err)

	assert.Equal(t, entities.ModeSpaceAssets, result.Mode)
	prompt := result.Prompt

	assert.True(t, strings.HasPrefix(prompt, "MATRIX — PROMPT GERADOR (ESPAÇO + ATIVOS)\n"))
	assert.Contains(t, prompt, "**Dojo Central**")
	assert.Contains(t, prompt, "- Nome: Combate Ritual")
	assert.Contains(t, prompt, "Variação inferida: duo")
	assert.Contains(t, prompt, "- respeito")
	assert.Contains(t, prompt, "- **Ana Prado**")
	assert.Contains(t, prompt, "peso 61.5 kg")
	assert.Contains(t, prompt, "- **Bruno Sa**")
	assert.Contains(t, prompt, "## DIREÇÃO CRIATIVA (liberdade do Gemini)")

	assert.NotContains(t, prompt, "S-11")
	assert.NotContains(t, prompt, "A-09")
	assert.NotContains(t, prompt, "cluster_binding")
}

func TestComposeUniverseOnlyFromDisk(t *testing.T) {
	ds, _, _ := loadFixtures(t)
	h := handlers.NewComposeHandler()

	result, err := h.Handle(ds, []string{"neo tokyo"})
	require.NoError(t, err)

	assert.Equal(t, entities.ModeUniverseOnly, result.Mode)
	assert.Contains(t, result.Prompt, "**Neo Tokyo**")
	assert.Contains(t, result.Prompt, "- Year: 2099")
	assert.NotContains(t, result.Prompt, "U-04")
}

func TestComposeErrorsFromDisk(t *testing.T) {
	ds, _, _ := loadFixtures(t)
	h := handlers.NewComposeHandler()

	_, err := h.Handle(ds, []string{"U-04", "S-11"})
	assert.ErrorIs(t, err, services.ErrInvalidCombination)

	_, err = h.Handle(ds, []string{"ninguém"})
	assert.ErrorIs(t, err, services.ErrNoEntity)
}

func TestAgeUpdateRoundTrip(t *testing.T) {
	ds, assetsPath, assetsRaw := loadFixtures(t)

	today := time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC)
	updated := services.UpdateAges(ds.Assets, today)
	assert.Equal(t, 2, updated)

	require.NoError(t, parsers.SaveFile(assetsPath, assetsRaw))

	// Reload and check the recomputed age survived, with key order and
	// numeric literals intact.
	raw, err := os.ReadFile(assetsPath)
	require.NoError(t, err)
	out := string(raw)

	assert.Contains(t, out, `"idade": 25`)
	assert.Contains(t, out, `"peso_kg": 61.5`)
	assert.Less(t, strings.Index(out, `"asset_id"`), strings.Index(out, `"nome"`))
	assert.Less(t, strings.Index(out, `"nome"`), strings.Index(out, `"sobrenome"`))

	reloaded, err := parsers.LoadFile(assetsPath)
	require.NoError(t, err)
	assets := entities.Assets(services.Normalize(reloaded, entities.KindAssets))
	require.Len(t, assets, 2)
	age, ok := assets[1].Int("idade")
	require.True(t, ok, "age written for the asset that had none")
	assert.Equal(t, 31, age)
}
