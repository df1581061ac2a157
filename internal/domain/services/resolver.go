package services

import (
	"strings"

	"github.com/ersonp/matrix-core/internal/domain/entities"
)

// Tokenize normalizes a raw argument vector into discrete tokens: all
// arguments joined with single spaces, "+" treated as a separator, each
// whitespace chunk further split on commas, empty fragments dropped.
// Order is preserved and duplicates are kept; de-duplication happens at
// resolution time, by identity, not by surface form.
func Tokenize(args []string) []string {
	joined := strings.TrimSpace(strings.Join(args, " "))
	if joined == "" {
		return nil
	}
	joined = strings.ReplaceAll(joined, "+", " ")

	var tokens []string
	for _, chunk := range strings.Fields(joined) {
		for _, part := range strings.Split(chunk, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				tokens = append(tokens, part)
			}
		}
	}
	return tokens
}

// ResolveUniverse matches a token against universes by id or name,
// case-insensitively. Returns nil when nothing matches.
func ResolveUniverse(universes []entities.Universe, token string) *entities.Universe {
	for i := range universes {
		if universes[i].Matches(token) {
			return &universes[i]
		}
	}
	return nil
}

// ResolveSpace matches a token against spaces by id or name,
// case-insensitively. Returns nil when nothing matches.
func ResolveSpace(spaces []entities.Space, token string) *entities.Space {
	for i := range spaces {
		if spaces[i].Matches(token) {
			return &spaces[i]
		}
	}
	return nil
}

// ResolveCluster matches a cluster by cluster_id only. Returns nil when
// nothing matches.
func ResolveCluster(clusters []entities.Cluster, clusterID string) *entities.Cluster {
	t := entities.NormalizeName(clusterID)
	for i := range clusters {
		if entities.NormalizeName(clusters[i].ID()) == t {
			return &clusters[i]
		}
	}
	return nil
}

// ResolveAssets resolves each token independently against assets,
// preserving first-match order. A token without a match is returned in
// unmatched and does not abort the rest of the pass. Repeated tokens
// resolving to the same identity are kept once, at their first position.
func ResolveAssets(assets []entities.Asset, tokens []string) (resolved []entities.Asset, unmatched []string) {
	seen := make(map[string]bool)
	for _, tok := range tokens {
		var found *entities.Asset
		for i := range assets {
			if assets[i].Matches(tok) {
				found = &assets[i]
				break
			}
		}
		if found == nil {
			unmatched = append(unmatched, tok)
			continue
		}
		key := found.IdentityKey()
		if seen[key] {
			continue
		}
		seen[key] = true
		resolved = append(resolved, *found)
	}
	return resolved, unmatched
}
