package services

import (
	"fmt"
	"strings"

	"github.com/ersonp/matrix-core/internal/domain/entities"
)

// promptTitles maps each renderable mode to its fixed brief title.
var promptTitles = map[entities.Mode]string{
	entities.ModeUniverseOnly:   "MATRIX — PROMPT GERADOR (UNIVERSO)",
	entities.ModeSpaceOnly:      "MATRIX — PROMPT GERADOR (ESPAÇO)",
	entities.ModeAssetsOnly:     "MATRIX — PROMPT GERADOR (ATIVOS)",
	entities.ModeUniverseAssets: "MATRIX — PROMPT GERADOR (UNIVERSO + ATIVOS)",
	entities.ModeSpaceAssets:    "MATRIX — PROMPT GERADOR (ESPAÇO + ATIVOS)",
}

// universeMetaKeys is the allow-list of universe fields surfaced under
// the metadata heading, in this order, before the elastic extras.
var universeMetaKeys = []string{
	"classification",
	"temporal_policy",
	"memory_policy",
	"safety_envelope",
	"tone",
	"genre",
	"year",
	"setting",
	"rules",
	"limits",
	"notes",
}

// spacePreferredKeys is the allow-list of space fields surfaced first,
// in this order. Fields outside the list still render afterwards, in
// the order the author wrote them: unknown future fields are never
// dropped, only unprioritized.
var spacePreferredKeys = []string{
	"type",
	"mode",
	"description",
	"objects",
	"rules",
	"biomechanics",
	"balance_model",
	"leverage_model",
	"erotization_level",
	"wardrobe_policy",
	"variation_descriptions",
	"cold_open",
	"camera",
	"lighting",
	"sound",
	"music",
}

// spaceSkipKeys are never rendered. The brief must not expose raw
// identifiers or the binding plumbing to the model.
var spaceSkipKeys = map[string]bool{
	"id":              true,
	"cluster_binding": true,
}

// wardrobeRule is appended to every asset regardless of data. It is a
// fixed narrative rule of the system, not something data-driven.
const wardrobeRule = "- Vestuário: marcas premium e bonitas, escolhidas livremente conforme o contexto (o figurino responde ao ambiente)."

// ComposePrompt renders a resolved entity set into the final brief:
// universe or space section first, then the assets block, then the
// constant creative-direction footer. The output is deterministic for
// identical inputs.
func ComposePrompt(
	mode entities.Mode,
	universe *entities.Universe,
	space *entities.Space,
	cluster *entities.Cluster,
	variation string,
	assets []entities.Asset,
) string {
	parts := []string{promptTitles[mode], ""}

	switch mode {
	case entities.ModeUniverseOnly:
		parts = append(parts, describeUniverse(*universe))
	case entities.ModeSpaceOnly:
		parts = append(parts, describeSpace(*space, cluster, variation))
	case entities.ModeAssetsOnly:
		parts = append(parts, renderAssetsBlock(assets))
	case entities.ModeUniverseAssets:
		parts = append(parts, describeUniverse(*universe), renderAssetsBlock(assets))
	case entities.ModeSpaceAssets:
		parts = append(parts, describeSpace(*space, cluster, variation), renderAssetsBlock(assets))
	}

	parts = append(parts, renderDirectionBlock())

	return strings.TrimSpace(strings.Join(parts, "\n")) + "\n"
}

// describeUniverse renders the universe section: bold name, allow-listed
// metadata, then any remaining fields in source order.
func describeUniverse(u entities.Universe) string {
	name := u.Name()
	if name == "" {
		name = "Universo sem nome"
	}

	lines := []string{"## UNIVERSO ATIVO", "", "**" + name + "**", ""}

	var bits []string
	for _, k := range universeMetaKeys {
		if !u.Has(k) {
			continue
		}
		v, _ := u.Get(k)
		if txt := SerializeValue(v); txt != "" {
			bits = append(bits, "- "+titleCase(humanizeKey(k))+": "+txt)
		}
	}

	known := map[string]bool{"id": true, "name": true}
	for _, k := range universeMetaKeys {
		known[k] = true
	}
	for _, f := range u.Fields() {
		if known[f.Key] {
			continue
		}
		if txt := SerializeValue(f.Value); txt != "" {
			bits = append(bits, "- "+titleCase(humanizeKey(f.Key))+": "+txt)
		}
	}

	if len(bits) > 0 {
		lines = append(lines, "### Metadados")
		lines = append(lines, bits...)
		lines = append(lines, "")
	}

	return strings.TrimSpace(strings.Join(lines, "\n")) + "\n"
}

// describeSpace renders the space section, including the bound cluster
// contract when one applies.
func describeSpace(space entities.Space, cluster *entities.Cluster, variation string) string {
	name := space.Name()
	if name == "" {
		name = "Espaço sem nome"
	}

	lines := []string{"## ESPAÇO ATIVO", "", "**" + name + "**", ""}

	if cluster != nil {
		lines = append(lines, describeCluster(*cluster, variation)...)
	}

	var bullets []string
	for _, k := range spacePreferredKeys {
		if spaceSkipKeys[k] || !space.Has(k) {
			continue
		}
		v, _ := space.Get(k)
		if txt := SerializeValue(v); txt != "" {
			bullets = append(bullets, "- "+titleCase(humanizeKey(k))+": "+txt)
		}
	}

	preferred := make(map[string]bool, len(spacePreferredKeys))
	for _, k := range spacePreferredKeys {
		preferred[k] = true
	}
	for _, f := range space.Fields() {
		if spaceSkipKeys[f.Key] || preferred[f.Key] {
			continue
		}
		if txt := SerializeValue(f.Value); txt != "" {
			bullets = append(bullets, "- "+titleCase(humanizeKey(f.Key))+": "+txt)
		}
	}

	if len(bullets) > 0 {
		lines = append(lines, "### Parâmetros do espaço (base para execução)")
		lines = append(lines, bullets...)
		lines = append(lines, "")
	}

	return strings.TrimSpace(strings.Join(lines, "\n")) + "\n"
}

// describeCluster renders the cross-cutting contract attached to a
// space. Variations from the data are listed as possibilities only; the
// inferred variation is the one the binder computed.
func describeCluster(cluster entities.Cluster, variation string) []string {
	cname := cluster.Name()
	if cname == "" {
		cname = cluster.ID()
	}

	lines := []string{"### Cluster (contrato transversal)", "- Nome: " + cname}
	if desc := cluster.Description(); desc != "" {
		lines = append(lines, "- Descrição: "+desc)
	}
	if variation != "" {
		lines = append(lines, "- Variação inferida: "+variation+" (pela quantidade de ativos)")
	}
	lines = append(lines, "")

	if contract := cluster.Contract(); contract != nil {
		lines = append(lines, renderStringList(contract, "core_principles", "**Princípios do cluster (sempre presentes):**")...)
		lines = append(lines, renderStringList(contract, "forbidden_outcomes", "**Proibido no cluster:**")...)

		if req := contract.Sub("execution_requirements"); req != nil && req.Len() > 0 {
			block := []string{"**Requisitos mínimos de execução:**"}
			for _, f := range req.Fields() {
				if txt := SerializeValue(f.Value); txt != "" {
					block = append(block, "- "+humanizeKey(f.Key)+": "+txt)
				}
			}
			block = append(block, "")
			lines = append(lines, block...)
		}
	}

	if vars := cluster.Variations(); vars != nil && vars.Len() > 0 {
		lines = append(lines, "**Variações possíveis (schema):**")
		for _, f := range vars.Fields() {
			if f.Key == "" {
				continue
			}
			if rec, ok := f.Value.(*entities.Record); ok && rec.Len() > 0 {
				if desc := SerializeValue(rec); desc != "" {
					lines = append(lines, "- "+f.Key+": "+desc)
					continue
				}
			}
			lines = append(lines, "- "+f.Key)
		}
		lines = append(lines, "")
	}

	return lines
}

// renderStringList renders a contract list field as a bulleted block
// under heading, keeping only non-empty string elements.
func renderStringList(rec *entities.Record, key, heading string) []string {
	v, ok := rec.Get(key)
	if !ok {
		return nil
	}
	items, ok := v.([]any)
	if !ok || len(items) == 0 {
		return nil
	}

	lines := []string{heading}
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			continue
		}
		if s = strings.TrimSpace(s); s != "" {
			lines = append(lines, "- "+s)
		}
	}
	if len(lines) == 1 {
		return nil
	}
	return append(lines, "")
}

// renderAssetsBlock renders the assets-present section, one bulleted
// entry per asset in resolution order.
func renderAssetsBlock(assets []entities.Asset) string {
	lines := []string{"## ATIVOS PRESENTES", ""}
	for _, a := range assets {
		lines = append(lines, describeAsset(a))
	}
	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

// describeAsset renders one asset as its fixed semantic buckets: vitals,
// appearance, physique and personality, followed by the constant
// wardrobe rule. Buckets with no data contribute nothing.
func describeAsset(a entities.Asset) string {
	full := a.FullName()
	if full == "" {
		full = "Ativo sem nome"
	}

	var bits []string

	var vitals []string
	if nasc := a.Text("data_nascimento"); nasc != "" {
		vitals = append(vitals, "nascimento "+nasc)
	}
	if idade, ok := a.Int("idade"); ok {
		vitals = append(vitals, fmt.Sprintf("idade %d", idade))
	}
	if signo := a.Text("signo"); signo != "" {
		vitals = append(vitals, "signo "+signo)
	}
	if altura, ok := a.Int("altura_cm"); ok {
		vitals = append(vitals, fmt.Sprintf("altura %d cm", altura))
	}
	if peso, ok := a.Num("peso_kg"); ok {
		vitals = append(vitals, "peso "+peso.String()+" kg")
	}
	if len(vitals) > 0 {
		bits = append(bits, "- Dados: "+strings.Join(vitals, "; "))
	}

	var looks []string
	if cabelo := a.Text("cor_cabelo"); cabelo != "" {
		looks = append(looks, "cabelo "+cabelo)
	}
	if corte := a.Text("corte_penteado"); corte != "" {
		looks = append(looks, "corte "+corte)
	}
	if pele := a.Text("cor_pele"); pele != "" {
		looks = append(looks, "pele "+pele)
	}
	if olhos := a.Text("cor_olhos"); olhos != "" {
		looks = append(looks, "olhos "+olhos)
	}
	if len(looks) > 0 {
		bits = append(bits, "- Aparência: "+strings.Join(looks, "; "))
	}

	var body []string
	if estrutura := a.Text("estrutura_corpo"); estrutura != "" {
		body = append(body, estrutura)
	}
	if tecido, ok := a.Int("tecido_adiposo"); ok {
		body = append(body, fmt.Sprintf("tecido adiposo %d/100", tecido))
	}
	if musc, ok := a.Int("musculatura"); ok {
		body = append(body, fmt.Sprintf("musculatura %d/100", musc))
	}
	if len(body) > 0 {
		bits = append(bits, "- Corpo: "+strings.Join(body, " — "))
	}

	var persona []string
	if p := a.Text("personalidade"); p != "" {
		persona = append(persona, p)
	}
	if asc := a.Text("ascendente"); asc != "" {
		if conf, ok := a.Int("ascendente_confianca"); ok {
			persona = append(persona, fmt.Sprintf("ascendente %s (confiança %d/100)", asc, conf))
		} else {
			persona = append(persona, "ascendente "+asc)
		}
	}
	if len(persona) > 0 {
		bits = append(bits, "- Personalidade: "+strings.Join(persona, " | "))
	}

	bits = append(bits, wardrobeRule)

	return "- **" + full + "**\n" + strings.Join(bits, "\n")
}

// renderDirectionBlock returns the constant creative-direction footer
// every brief ends with.
func renderDirectionBlock() string {
	return strings.Join([]string{
		"## DIREÇÃO CRIATIVA (liberdade do Gemini)",
		"",
		"- Use as informações como base e expanda com criatividade, sem travar em formato.",
		"- Você pode criar espaços, detalhes e dinâmica social quando necessário para o mundo funcionar.",
		"- Não liste IDs/códigos no texto. Trate tudo como descrição humana e visual.",
		"- Continuidade pode ser local ao chat; um novo prompt pode redefinir o setup.",
		"- A pausa e o silêncio também são conteúdo.",
		"",
	}, "\n")
}
