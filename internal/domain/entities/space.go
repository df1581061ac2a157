package entities

// Space is a physical or narrative setting. It optionally binds to
// exactly one cluster through its cluster_binding field.
type Space struct {
	*Record
}

// Spaces wraps normalized records as spaces.
func Spaces(recs []*Record) []Space {
	out := make([]Space, 0, len(recs))
	for _, r := range recs {
		out = append(out, Space{r})
	}
	return out
}

// ID returns the id field.
func (s Space) ID() string {
	return s.Text("id")
}

// Name returns the name field.
func (s Space) Name() string {
	return s.Text("name")
}

// Matches reports whether a token resolves to this space by id or name.
func (s Space) Matches(token string) bool {
	t := NormalizeName(token)
	return t == NormalizeName(s.ID()) || t == NormalizeName(s.Name())
}

// ClusterBinding is a space's optional reference to a shared behavioral
// contract.
type ClusterBinding struct {
	ClusterID          string
	InheritsContract   bool
	RequiresValidation bool
}

// Binding returns the cluster binding, false when the space declares
// none (or the field is not an object).
func (s Space) Binding() (ClusterBinding, bool) {
	rec := s.Sub("cluster_binding")
	if rec == nil {
		return ClusterBinding{}, false
	}
	return ClusterBinding{
		ClusterID:          rec.Text("cluster_id"),
		InheritsContract:   rec.Bool("inherits_contract"),
		RequiresValidation: rec.Bool("requires_cluster_validation"),
	}, true
}
