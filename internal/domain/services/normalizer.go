// Package services implements the entity-resolution and
// contract-composition engine: schema normalization, value
// serialization, token resolution, mode detection, cluster binding and
// prompt composition. Everything here is pure and synchronous; file I/O
// and process concerns live with the callers.
package services

import (
	"github.com/ersonp/matrix-core/internal/domain/entities"
)

// containerKeys maps each entity kind to the container keys probed, in
// order, when a dataset wraps its list in an object. The probing order
// is data, not per-callsite logic: both historical entrypoints accepted
// slightly different wrappers and this table is their union.
var containerKeys = map[entities.Kind][]string{
	entities.KindAssets:    {"assets", "assets_registry", "registry", "items"},
	entities.KindSpaces:    {"spaces"},
	entities.KindClusters:  {"clusters"},
	entities.KindUniverses: {"universes"},
}

// Normalize extracts the canonical entity list for kind from a raw
// parsed JSON value. A bare array is taken as the list itself; an object
// is probed for the kind's candidate container keys, first array-valued
// hit wins. Non-object elements are silently discarded. Absence of data
// is a valid outcome: Normalize never fails, it returns an empty list.
func Normalize(raw any, kind entities.Kind) []*entities.Record {
	switch v := raw.(type) {
	case []any:
		return onlyRecords(v)
	case *entities.Record:
		for _, key := range containerKeys[kind] {
			inner, ok := v.Get(key)
			if !ok {
				continue
			}
			if list, ok := inner.([]any); ok {
				return onlyRecords(list)
			}
		}
	}
	return []*entities.Record{}
}

// onlyRecords filters a raw array to its object elements, preserving
// relative order.
func onlyRecords(items []any) []*entities.Record {
	recs := make([]*entities.Record, 0, len(items))
	for _, item := range items {
		if rec, ok := item.(*entities.Record); ok {
			recs = append(recs, rec)
		}
	}
	return recs
}

// ContainerKey returns the wrapper key under which the list for kind
// lives in raw, or "" when raw is a bare array (or nothing matches).
// Diagnostics use it to tell a recognized wrapper from a misspelled
// one: a dataset under an unknown key normalizes to nothing, silently.
func ContainerKey(raw any, kind entities.Kind) string {
	rec, ok := raw.(*entities.Record)
	if !ok {
		return ""
	}
	for _, key := range containerKeys[kind] {
		inner, ok := rec.Get(key)
		if !ok {
			continue
		}
		if _, ok := inner.([]any); ok {
			return key
		}
	}
	return ""
}
