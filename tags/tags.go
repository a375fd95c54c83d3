package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Wall       = donburi.NewTag().SetName("Wall")
	Projectile = donburi.NewTag().SetName("Projectile")
)

// Resolv tags for physics collision
const (
	ResolvSolid      = "solid"
	ResolvPlayer     = "Player"
	ResolvProjectile = "Projectile"
	// ResolvBounds marks the invisible walls around the map.
	ResolvBounds = "bounds"
)
