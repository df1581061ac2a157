package entities

// Kind identifies one of the four entity lists the engine resolves.
type Kind string

// Entity kinds.
const (
	KindAssets    Kind = "assets"
	KindSpaces    Kind = "spaces"
	KindClusters  Kind = "clusters"
	KindUniverses Kind = "universes"
)

// Kinds lists all entity kinds in their canonical order.
var Kinds = []Kind{KindUniverses, KindSpaces, KindClusters, KindAssets}
