// Package leveldata reads the parts of a TMX level the game logic needs:
// map size, the player spawn point and static collision rectangles. It has
// no dependencies on ebitengine, donburi or resolv.
package leveldata

// Object layer and object names the loader looks for.
const (
	SpawnLayer     = "spawn"
	SpawnObject    = "playerspawn"
	CollisionLayer = "collision"
)

// Level holds all collision-relevant data parsed from a TMX level file.
type Level struct {
	Name       string
	MapWidth   int // pixels
	MapHeight  int // pixels
	TileWidth  int
	TileHeight int

	Spawn SpawnPoint
	// SpawnFound is false when the spawn layer or the playerspawn object was
	// missing and Spawn holds the fallback position.
	SpawnFound bool

	Colliders []CollisionRect
	// CollisionFound is false when the collision layer was missing or had
	// no objects.
	CollisionFound bool

	// TileLayers lists the map's tile layer names in file order.
	TileLayers []string
}

// CollisionRect is one object from the collision layer, in map pixels with
// (X, Y) at the top-left corner.
type CollisionRect struct {
	X, Y, W, H float64
	Name       string
}

// SpawnPoint is where the player's feet start: horizontally centred, at
// the bottom edge of the body.
type SpawnPoint struct {
	X, Y float64
}
