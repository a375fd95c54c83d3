package systems

import (
	"github.com/automoto/platproto/components"
	"github.com/automoto/platproto/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates the arcade body model: drag on coasting bodies,
// gravity, and a terminal fall speed.
func UpdatePhysics(ecs *ecs.ECS) {
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		integrate(components.Physics.Get(e))
	})
}

func integrate(physics *components.PhysicsData) {
	if !physics.Driven {
		physics.SpeedX = gamemath.ApplyFriction(physics.SpeedX, physics.Drag)
	}

	if physics.Gravity == 0 {
		return
	}
	physics.SpeedY += physics.Gravity
	if physics.MaxFallSpeed > 0 && physics.SpeedY > physics.MaxFallSpeed {
		physics.SpeedY = physics.MaxFallSpeed
	}
}
