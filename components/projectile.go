package components

import "github.com/yohamta/donburi"

// ProjectileData is a straight-line mover with no gravity.
type ProjectileData struct {
	VelocityX, VelocityY float64
}

var Projectile = donburi.NewComponentType[ProjectileData]()
