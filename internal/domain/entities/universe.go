package entities

// Universe is a top-level setting record with an open metadata set.
type Universe struct {
	*Record
}

// Universes wraps normalized records as universes.
func Universes(recs []*Record) []Universe {
	out := make([]Universe, 0, len(recs))
	for _, r := range recs {
		out = append(out, Universe{r})
	}
	return out
}

// ID returns the id field.
func (u Universe) ID() string {
	return u.Text("id")
}

// Name returns the name field.
func (u Universe) Name() string {
	return u.Text("name")
}

// Matches reports whether a token resolves to this universe by id or name.
func (u Universe) Matches(token string) bool {
	t := NormalizeName(token)
	return t == NormalizeName(u.ID()) || t == NormalizeName(u.Name())
}
