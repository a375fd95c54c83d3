package systems

import (
	"github.com/automoto/platproto/components"
	"github.com/automoto/platproto/systems/factory"
	"github.com/automoto/platproto/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSpawner fires a projectile from the player's centre along its last
// facing each time the spawner's interval elapses.
func UpdateSpawner(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	obj := components.Object.Get(playerEntry)
	facing := components.State.Get(playerEntry).Machine.Facing()

	components.Spawner.Each(ecs.World, func(e *donburi.Entry) {
		spawner := components.Spawner.Get(e)
		if !spawner.Interval.Fire() {
			return
		}
		factory.CreateProjectile(ecs, obj.X+obj.W/2, obj.Y+obj.H/2, facing.X, facing.Y, spawner.Speed)
		spawner.Spawned++
	})
}
