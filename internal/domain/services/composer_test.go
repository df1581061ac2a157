package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/matrix-core/internal/domain/entities"
)

func composerUniverse(t *testing.T) entities.Universe {
	t.Helper()
	universes := entities.Universes(Normalize(mustDecode(t, `{"universes":[{
		"id":"U-04",
		"name":"Neo Tokyo",
		"tone":"noir",
		"year":2099,
		"rules":["sem armas","sem memória"],
		"curiosidade":"chove sempre"
	}]}`), entities.KindUniverses))
	require.Len(t, universes, 1)
	return universes[0]
}

func composerSpace(t *testing.T) entities.Space {
	t.Helper()
	spaces := entities.Spaces(Normalize(mustDecode(t, `{"spaces":[{
		"id":"S-11",
		"name":"Dojo Central",
		"cluster_binding":{"cluster_id":"C-1","inherits_contract":true},
		"type":"treino",
		"description":"tatame amplo",
		"lighting":"fria",
		"acustica":"eco seco"
	}]}`), entities.KindSpaces))
	require.Len(t, spaces, 1)
	return spaces[0]
}

func composerCluster(t *testing.T) *entities.Cluster {
	t.Helper()
	clusters := entities.Clusters(Normalize(mustDecode(t, `{"clusters":[{
		"cluster_id":"C-1",
		"name":"Combate Ritual",
		"description":"duelo encenado",
		"contract":{
			"core_principles":["respeito","controle"],
			"forbidden_outcomes":["lesão real"],
			"execution_requirements":{"aquecimento":true,"rounds":3}
		},
		"variations":{"solo":{"foco":"forma"},"duo":{"foco":"timing"}}
	}]}`), entities.KindClusters))
	require.Len(t, clusters, 1)
	return &clusters[0]
}

func composerAssets(t *testing.T) []entities.Asset {
	t.Helper()
	return entities.Assets(Normalize(mustDecode(t, `{"assets":[
		{"asset_id":"A-09","nome":"Ana","sobrenome":"Prado",
		 "data_nascimento":"2001-03-14","idade":25,"signo":"Peixes",
		 "altura_cm":168,"peso_kg":61.5,
		 "cor_cabelo":"preto","cor_olhos":"castanhos",
		 "estrutura_corpo":"mesomorfa","musculatura":62,
		 "personalidade":"focada","ascendente":"Leão","ascendente_confianca":80},
		{"asset_id":"A-13","nome":"Bruno","sobrenome":"Sa"}
	]}`), entities.KindAssets))
}

func TestComposePromptUniverseOnly(t *testing.T) {
	u := composerUniverse(t)

	got := ComposePrompt(entities.ModeUniverseOnly, &u, nil, nil, "", nil)

	assert.True(t, strings.HasPrefix(got, "MATRIX — PROMPT GERADOR (UNIVERSO)\n"))
	assert.Contains(t, got, "## UNIVERSO ATIVO")
	assert.Contains(t, got, "**Neo Tokyo**")
	assert.Contains(t, got, "- Tone: noir")
	assert.Contains(t, got, "- Year: 2099")
	assert.Contains(t, got, "- Rules: sem armas, sem memória")
	// Unknown author fields still render, after the known ones.
	assert.Contains(t, got, "- Curiosidade: chove sempre")
	assert.Less(t, strings.Index(got, "- Rules:"), strings.Index(got, "- Curiosidade:"))
	assert.Contains(t, got, "## DIREÇÃO CRIATIVA (liberdade do Gemini)")
	assert.True(t, strings.HasSuffix(got, "\n"))
	assert.NotContains(t, got, "U-04")
}

func TestComposePromptSpaceHidesPlumbing(t *testing.T) {
	space := composerSpace(t)
	cluster := composerCluster(t)

	got := ComposePrompt(entities.ModeSpaceOnly, nil, &space, cluster, VariationSolo, nil)

	assert.Contains(t, got, "MATRIX — PROMPT GERADOR (ESPAÇO)")
	assert.Contains(t, got, "**Dojo Central**")
	assert.NotContains(t, got, "S-11")
	assert.NotContains(t, got, "cluster_binding")
	assert.NotContains(t, got, "Cluster binding")

	assert.Contains(t, got, "### Cluster (contrato transversal)")
	assert.Contains(t, got, "- Nome: Combate Ritual")
	assert.Contains(t, got, "- Variação inferida: solo (pela quantidade de ativos)")
	assert.Contains(t, got, "**Princípios do cluster (sempre presentes):**\n- respeito\n- controle")
	assert.Contains(t, got, "**Proibido no cluster:**\n- lesão real")
	assert.Contains(t, got, "**Requisitos mínimos de execução:**")
	assert.Contains(t, got, "- aquecimento: sim")
	assert.Contains(t, got, "- rounds: 3")
	assert.Contains(t, got, "**Variações possíveis (schema):**")

	// Preferred keys come before the author's extra fields.
	assert.Contains(t, got, "- Type: treino")
	assert.Contains(t, got, "- Acustica: eco seco")
	assert.Less(t, strings.Index(got, "- Lighting:"), strings.Index(got, "- Acustica:"))
}

func TestComposePromptVariationIsTheOnlyDifference(t *testing.T) {
	space := composerSpace(t)
	cluster := composerCluster(t)

	solo := ComposePrompt(entities.ModeSpaceOnly, nil, &space, cluster, VariationSolo, nil)
	duo := ComposePrompt(entities.ModeSpaceOnly, nil, &space, cluster, VariationDuo, nil)

	assert.Equal(t,
		strings.ReplaceAll(solo, "Variação inferida: solo", "Variação inferida: duo"),
		duo)
}

func TestComposePromptAssets(t *testing.T) {
	assets := composerAssets(t)

	got := ComposePrompt(entities.ModeAssetsOnly, nil, nil, nil, "", assets)

	assert.Contains(t, got, "MATRIX — PROMPT GERADOR (ATIVOS)")
	assert.Contains(t, got, "## ATIVOS PRESENTES")
	assert.Contains(t, got, "- **Ana Prado**")
	assert.Contains(t, got, "- Dados: nascimento 2001-03-14; idade 25; signo Peixes; altura 168 cm; peso 61.5 kg")
	assert.Contains(t, got, "- Aparência: cabelo preto; olhos castanhos")
	assert.Contains(t, got, "- Corpo: mesomorfa — musculatura 62/100")
	assert.Contains(t, got, "- Personalidade: focada | ascendente Leão (confiança 80/100)")

	// A sparse asset still gets the name and the wardrobe rule, nothing else.
	assert.Contains(t, got, "- **Bruno Sa**")
	assert.Equal(t, 2, strings.Count(got, "- Vestuário: marcas premium"))
	assert.Equal(t, 1, strings.Count(got, "- Dados:"))
}

func TestComposePromptCombinedModes(t *testing.T) {
	u := composerUniverse(t)
	space := composerSpace(t)
	assets := composerAssets(t)

	withUniverse := ComposePrompt(entities.ModeUniverseAssets, &u, nil, nil, "", assets)
	assert.Contains(t, withUniverse, "MATRIX — PROMPT GERADOR (UNIVERSO + ATIVOS)")
	assert.Less(t, strings.Index(withUniverse, "## UNIVERSO ATIVO"), strings.Index(withUniverse, "## ATIVOS PRESENTES"))

	withSpace := ComposePrompt(entities.ModeSpaceAssets, nil, &space, nil, "", assets)
	assert.Contains(t, withSpace, "MATRIX — PROMPT GERADOR (ESPAÇO + ATIVOS)")
	assert.Less(t, strings.Index(withSpace, "## ESPAÇO ATIVO"), strings.Index(withSpace, "## ATIVOS PRESENTES"))
}

func TestComposePromptIsDeterministic(t *testing.T) {
	u := composerUniverse(t)
	assets := composerAssets(t)

	first := ComposePrompt(entities.ModeUniverseAssets, &u, nil, nil, "", assets)
	second := ComposePrompt(entities.ModeUniverseAssets, &u, nil, nil, "", assets)
	assert.Equal(t, first, second)
}
