// Package checks holds the individual dataset checks matrix-lint runs.
package checks

import (
	"fmt"

	"github.com/ersonp/matrix-core/internal/application/handlers"
	"github.com/ersonp/matrix-core/internal/domain/entities"
	"github.com/ersonp/matrix-core/internal/domain/services"
)

// Finding is one problem a check reported.
type Finding struct {
	Check   string
	Message string
}

// RawDatasets holds the parsed-but-unnormalized dataset trees, keyed by
// the file they came from. Clusters share the spaces file.
type RawDatasets struct {
	Universes any
	Spaces    any
	Assets    any
}

// Containers reports dataset files whose entity list sits under no
// recognized wrapper key. Normalization treats that as an empty
// dataset, so a misspelled wrapper makes every token stop resolving
// with no error anywhere.
func Containers(raw RawDatasets) []Finding {
	var findings []Finding

	report := func(file string, tree any, kind entities.Kind) {
		rec, ok := tree.(*entities.Record)
		if !ok {
			return
		}
		if services.ContainerKey(rec, kind) == "" {
			findings = append(findings, Finding{
				Check:   "container",
				Message: fmt.Sprintf("%s: no recognized wrapper key holds the %s list; every token will fail to resolve", file, kind),
			})
		}
	}

	// Clusters are not probed: a spaces file with no clusters list is a
	// valid dataset, and DanglingClusters already flags broken bindings.
	report("universes", raw.Universes, entities.KindUniverses)
	report("spaces", raw.Spaces, entities.KindSpaces)
	report("assets", raw.Assets, entities.KindAssets)

	return findings
}

// Check inspects the datasets and reports findings.
type Check func(ds handlers.Datasets) []Finding

// All returns every registered check.
func All() []Check {
	return []Check{
		DuplicateIDs,
		DanglingClusters,
		BirthDates,
		Unresolvable,
	}
}

// Run runs every check and collects the findings.
func Run(ds handlers.Datasets) []Finding {
	var findings []Finding
	for _, check := range All() {
		findings = append(findings, check(ds)...)
	}
	return findings
}

// DuplicateIDs reports ids shared by two entities of the same kind.
// Resolution is first-match, so the second entity is unreachable.
func DuplicateIDs(ds handlers.Datasets) []Finding {
	var findings []Finding

	report := func(kind entities.Kind, ids []string) {
		seen := make(map[string]bool)
		for _, id := range ids {
			norm := entities.NormalizeName(id)
			if norm == "" {
				continue
			}
			if seen[norm] {
				findings = append(findings, Finding{
					Check:   "duplicate-id",
					Message: fmt.Sprintf("%s: id %q appears more than once; only the first is reachable", kind, id),
				})
			}
			seen[norm] = true
		}
	}

	var ids []string
	for _, u := range ds.Universes {
		ids = append(ids, u.ID())
	}
	report(entities.KindUniverses, ids)

	ids = ids[:0]
	for _, s := range ds.Spaces {
		ids = append(ids, s.ID())
	}
	report(entities.KindSpaces, ids)

	ids = ids[:0]
	for _, c := range ds.Clusters {
		ids = append(ids, c.ID())
	}
	report(entities.KindClusters, ids)

	ids = ids[:0]
	for _, a := range ds.Assets {
		ids = append(ids, a.ID())
	}
	report(entities.KindAssets, ids)

	return findings
}

// DanglingClusters reports spaces whose cluster_binding points at a
// cluster_id no cluster declares. When the binding also requires
// validation, composing that space fails at run time.
func DanglingClusters(ds handlers.Datasets) []Finding {
	var findings []Finding
	for _, s := range ds.Spaces {
		binding, ok := s.Binding()
		if !ok || binding.ClusterID == "" {
			continue
		}
		if services.ResolveCluster(ds.Clusters, binding.ClusterID) != nil {
			continue
		}
		severity := "degrades silently to no cluster"
		if binding.RequiresValidation {
			severity = "fatal when composed"
		}
		findings = append(findings, Finding{
			Check:   "dangling-cluster",
			Message: fmt.Sprintf("space %q binds missing cluster %q (%s)", s.ID(), binding.ClusterID, severity),
		})
	}
	return findings
}

// BirthDates reports assets whose data_nascimento is present but not
// in YYYY-MM-DD form. The birthday report skips them without a word.
func BirthDates(ds handlers.Datasets) []Finding {
	var findings []Finding
	for _, a := range ds.Assets {
		raw := a.Text("data_nascimento")
		if raw == "" {
			continue
		}
		if _, ok := services.ParseBirthDate(a); !ok {
			findings = append(findings, Finding{
				Check:   "birth-date",
				Message: fmt.Sprintf("asset %q has malformed data_nascimento %q", a.ID(), raw),
			})
		}
	}
	return findings
}

// Unresolvable reports entities no token can ever reach: assets with
// neither an id nor a full name, universes and spaces with neither an
// id nor a name.
func Unresolvable(ds handlers.Datasets) []Finding {
	var findings []Finding

	for i, u := range ds.Universes {
		if u.ID() == "" && u.Name() == "" {
			findings = append(findings, Finding{
				Check:   "unresolvable",
				Message: fmt.Sprintf("universe #%d has neither id nor name", i+1),
			})
		}
	}
	for i, s := range ds.Spaces {
		if s.ID() == "" && s.Name() == "" {
			findings = append(findings, Finding{
				Check:   "unresolvable",
				Message: fmt.Sprintf("space #%d has neither id nor name", i+1),
			})
		}
	}
	for i, a := range ds.Assets {
		if a.ID() == "" && a.FullName() == "" {
			findings = append(findings, Finding{
				Check:   "unresolvable",
				Message: fmt.Sprintf("asset #%d has neither asset_id nor nome/sobrenome", i+1),
			})
		}
	}

	return findings
}
