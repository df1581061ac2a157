package entities

import "strings"

// Asset is a character record. Identity is the asset_id, or the full
// display name when the id is absent; both forms must resolve to the
// same record.
type Asset struct {
	*Record
}

// Assets wraps normalized records as assets.
func Assets(recs []*Record) []Asset {
	out := make([]Asset, 0, len(recs))
	for _, r := range recs {
		out = append(out, Asset{r})
	}
	return out
}

// ID returns the asset_id field.
func (a Asset) ID() string {
	return a.Text("asset_id")
}

// FullName returns the display name, "<nome> <sobrenome>" trimmed.
func (a Asset) FullName() string {
	return strings.TrimSpace(a.Text("nome") + " " + a.Text("sobrenome"))
}

// IdentityKey returns the de-duplication key for one resolution pass:
// the normalized asset_id, falling back to the normalized full name.
func (a Asset) IdentityKey() string {
	if id := NormalizeName(a.ID()); id != "" {
		return id
	}
	return NormalizeName(a.FullName())
}

// Matches reports whether a token resolves to this asset, comparing
// case-insensitively against the id and the full name.
func (a Asset) Matches(token string) bool {
	t := NormalizeName(token)
	return t == NormalizeName(a.ID()) || t == NormalizeName(a.FullName())
}
