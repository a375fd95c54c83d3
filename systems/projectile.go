package systems

import (
	"github.com/automoto/platproto/components"
	"github.com/automoto/platproto/shared/gamemath"
	"github.com/automoto/platproto/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProjectiles moves projectiles in a straight line and destroys the
// ones whose centre left the spawner's bounds.
func UpdateProjectiles(ecs *ecs.ECS) {
	bounds, ok := projectileBounds(ecs)

	var toRemove []*donburi.Entry
	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		projectile := components.Projectile.Get(e)
		obj := components.Object.Get(e)

		obj.X += projectile.VelocityX
		obj.Y += projectile.VelocityY
		obj.Update()

		if ok && gamemath.OutOfBounds(bounds, obj.X+obj.W/2, obj.Y+obj.H/2) {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		destroyProjectile(ecs, e)
	}
}

func projectileBounds(ecs *ecs.ECS) (gamemath.Rect, bool) {
	entry, ok := components.Spawner.First(ecs.World)
	if !ok {
		return gamemath.Rect{}, false
	}
	return components.Spawner.Get(entry).Bounds, true
}

func destroyProjectile(ecs *ecs.ECS, e *donburi.Entry) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		obj := components.Object.Get(e)
		if obj != nil && obj.Object != nil {
			components.Space.Get(spaceEntry).Remove(obj.Object)
		}
	}
	ecs.World.Remove(e.Entity())
}
