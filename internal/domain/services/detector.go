package services

import (
	"github.com/ersonp/matrix-core/internal/domain/entities"
)

// Resolution is the outcome of one mode-detection pass.
type Resolution struct {
	Mode      entities.Mode
	Universe  *entities.Universe
	Space     *entities.Space
	Assets    []entities.Asset
	Unmatched []string
}

// DetectMode resolves tokens into a composition mode. It makes a single
// greedy pass over the tokens: a token fills the universe slot if it is
// still open, otherwise the space slot if that is still open; everything
// else is residual and later resolved as assets.
//
// The universe-before-space order inside the pass means a token that
// would match both entity kinds binds as a universe while that slot is
// open, even if the author meant a space. That is documented behavior,
// kept as-is.
func DetectMode(
	universes []entities.Universe,
	spaces []entities.Space,
	assets []entities.Asset,
	tokens []string,
) Resolution {
	if len(tokens) == 0 {
		return Resolution{Mode: entities.ModeList}
	}

	var (
		universe  *entities.Universe
		space     *entities.Space
		remaining []string
	)

	for _, tok := range tokens {
		if universe == nil {
			if u := ResolveUniverse(universes, tok); u != nil {
				universe = u
				continue
			}
		}
		if space == nil {
			if s := ResolveSpace(spaces, tok); s != nil {
				space = s
				continue
			}
		}
		remaining = append(remaining, tok)
	}

	var selected []entities.Asset
	var unmatched []string
	if len(remaining) > 0 {
		selected, unmatched = ResolveAssets(assets, remaining)
	}

	res := Resolution{
		Universe:  universe,
		Space:     space,
		Assets:    selected,
		Unmatched: unmatched,
	}

	switch {
	case universe != nil && space == nil:
		if len(selected) > 0 {
			res.Mode = entities.ModeUniverseAssets
		} else {
			res.Mode = entities.ModeUniverseOnly
		}
	case space != nil && universe == nil:
		if len(selected) > 0 {
			res.Mode = entities.ModeSpaceAssets
		} else {
			res.Mode = entities.ModeSpaceOnly
		}
	case universe == nil && space == nil && len(selected) > 0:
		// One asset is a first-class case, same as many.
		res.Mode = entities.ModeAssetsOnly
	default:
		res.Mode = entities.ModeInvalid
	}

	return res
}
