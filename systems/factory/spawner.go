package factory

import (
	"time"

	"github.com/automoto/platproto/archetypes"
	"github.com/automoto/platproto/components"
	cfg "github.com/automoto/platproto/config"
	"github.com/automoto/platproto/shared/fsm"
	"github.com/automoto/platproto/shared/gamemath"
	"github.com/automoto/platproto/shared/variants"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpawner attaches a projectile spawner to the world. Projectiles are
// culled once they leave a viewport-sized rectangle at the origin.
func CreateSpawner(ecs *ecs.ECS, spec variants.SpawnerSpec, clock fsm.Clock) *donburi.Entry {
	spawner := archetypes.Spawner.Spawn(ecs)
	components.Spawner.SetValue(spawner, components.SpawnerData{
		Interval: fsm.Every(time.Duration(spec.IntervalMs)*time.Millisecond, clock),
		Speed:    gamemath.PerTick(spec.Speed),
		Bounds: gamemath.Rect{
			W: float64(cfg.C.Width),
			H: float64(cfg.C.Height),
		},
	})
	return spawner
}
