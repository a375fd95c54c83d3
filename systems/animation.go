package systems

import (
	"github.com/automoto/platproto/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimations advances every animation player by one tick. Completion
// callbacks fire from here and are picked up by the next UpdatePlayer.
func UpdateAnimations(ecs *ecs.ECS) {
	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)
		if anim.Player != nil {
			anim.Player.Update()
		}
	})
}
