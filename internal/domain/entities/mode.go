package entities

// Mode is the composition shape selected from a resolved token set.
type Mode string

// Composition modes. Any resolution collapses to exactly one of these.
const (
	ModeList           Mode = "list"
	ModeUniverseOnly   Mode = "universe_only"
	ModeSpaceOnly      Mode = "space_only"
	ModeAssetsOnly     Mode = "assets_only"
	ModeUniverseAssets Mode = "universe_assets"
	ModeSpaceAssets    Mode = "space_assets"
	ModeInvalid        Mode = "invalid"
)

// RequiresAssets reports whether the mode is only valid with at least
// one resolved asset.
func (m Mode) RequiresAssets() bool {
	switch m {
	case ModeAssetsOnly, ModeUniverseAssets, ModeSpaceAssets:
		return true
	}
	return false
}

// HasSpace reports whether the mode carries a resolved space.
func (m Mode) HasSpace() bool {
	return m == ModeSpaceOnly || m == ModeSpaceAssets
}
