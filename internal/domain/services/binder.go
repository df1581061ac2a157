package services

import (
	"fmt"

	"github.com/ersonp/matrix-core/internal/domain/entities"
)

// Variation labels inferred for a cluster-bound space. These two are the
// only variations the engine ever produces; the rule is fixed and
// data-independent.
const (
	VariationSolo = "solo"
	VariationDuo  = "duo"
)

// BindCluster decides whether and how a space surfaces its cluster.
//
// A space without a binding, or with an empty cluster_id, gets no
// cluster; that is not an error. A missing cluster is fatal only when
// the binding flags requires_cluster_validation, otherwise it degrades
// silently to no cluster. When the cluster resolves and the binding
// inherits the contract, the variation is inferred from the resolved
// asset count: "duo" for two or more, "solo" otherwise. This is the one
// place variation is computed; it is never read from the data.
func BindCluster(
	space entities.Space,
	clusters []entities.Cluster,
	assetCount int,
) (*entities.Cluster, string, error) {
	binding, ok := space.Binding()
	if !ok || binding.ClusterID == "" {
		return nil, "", nil
	}

	cluster := ResolveCluster(clusters, binding.ClusterID)
	if cluster == nil {
		if binding.RequiresValidation {
			return nil, "", fmt.Errorf("%w: %s", ErrClusterRequired, binding.ClusterID)
		}
		return nil, "", nil
	}

	if !binding.InheritsContract {
		return cluster, "", nil
	}

	if assetCount >= 2 {
		return cluster, VariationDuo, nil
	}
	return cluster, VariationSolo, nil
}
