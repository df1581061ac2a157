package entities

// Cluster is a cross-cutting behavioral contract shared by many spaces.
type Cluster struct {
	*Record
}

// Clusters wraps normalized records as clusters.
func Clusters(recs []*Record) []Cluster {
	out := make([]Cluster, 0, len(recs))
	for _, r := range recs {
		out = append(out, Cluster{r})
	}
	return out
}

// ID returns the cluster_id field. Clusters resolve only by id, never
// by display name.
func (c Cluster) ID() string {
	return c.Text("cluster_id")
}

// Name returns the name field.
func (c Cluster) Name() string {
	return c.Text("name")
}

// Description returns the description field.
func (c Cluster) Description() string {
	return c.Text("description")
}

// Contract returns the optional contract object.
func (c Cluster) Contract() *Record {
	return c.Sub("contract")
}

// Variations returns the optional variations map. It is informational
// only; the engine never derives a variation name from it.
func (c Cluster) Variations() *Record {
	return c.Sub("variations")
}
