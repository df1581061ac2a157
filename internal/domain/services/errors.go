package services

import "errors"

// Fatal conditions of the composition pipeline. All of them
// short-circuit before the composer runs; no partial prompt is ever
// produced.
var (
	// ErrClusterRequired means a space declared a hard dependency on a
	// cluster that does not resolve. This is a configuration error in
	// the data, not a resolution miss.
	ErrClusterRequired = errors.New("required cluster not found")

	// ErrNoEntity means a request that needs at least one resolved
	// entity ended up with zero. Distinct from the per-token warnings:
	// this is the whole request failing, not one token.
	ErrNoEntity = errors.New("no valid entity found for this request")

	// ErrInvalidCombination means the tokens bound both a universe and
	// a space in one request.
	ErrInvalidCombination = errors.New("invalid combination of tokens")
)
