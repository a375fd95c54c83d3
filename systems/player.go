package systems

import (
	"github.com/automoto/platproto/components"
	cfg "github.com/automoto/platproto/config"
	"github.com/automoto/platproto/shared/fsm"
	"github.com/automoto/platproto/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer steps the animation state machine once and hands the
// resulting command to the body and the animation player.
// Runs after UpdateInput and before UpdatePhysics.
func UpdatePlayer(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	respawn := GetAction(input, cfg.ActionRespawn).JustPressed

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		if respawn {
			respawnPlayer(e)
			snapCamera(ecs)
		}
		stepPlayer(e, input.Snapshot)
	})
}

// respawnPlayer puts the body back on its spawn point at rest.
func respawnPlayer(e *donburi.Entry) {
	spawn := components.Player.Get(e)
	obj := components.Object.Get(e)
	obj.X = spawn.SpawnX - obj.W/2
	obj.Y = spawn.SpawnY - obj.H
	obj.Update()

	physics := components.Physics.Get(e)
	physics.SpeedX = 0
	physics.SpeedY = 0
	physics.OnGround = nil
}

func snapCamera(ecs *ecs.ECS) {
	if entry, ok := components.Camera.First(ecs.World); ok {
		components.Camera.Get(entry).Snap = true
	}
}

func stepPlayer(e *donburi.Entry, snapshot fsm.InputSnapshot) {
	state := components.State.Get(e)
	physics := components.Physics.Get(e)

	grounded := physics.Grounded()
	if state.Machine.Params().TopDown {
		// Nothing pulls a top-down body off the ground.
		grounded = true
	}

	out := state.Machine.Step(fsm.Frame{
		Input:     snapshot,
		Grounded:  grounded,
		VelocityY: physics.SpeedY,
	})

	applyCommand(physics, out.Command)

	if len(out.Plays) == 0 {
		state.StateTimer++
		return
	}

	anim := components.Animation.Get(e)
	for _, s := range out.Plays {
		anim.SetAnimation(s)
		if s == fsm.Land {
			TriggerSquashStretch(e)
		}
	}
	state.LastRule = out.Rule
	state.StateTimer = 0
}

func applyCommand(physics *components.PhysicsData, cmd fsm.Command) {
	physics.SpeedX = cmd.VelocityX
	physics.Driven = cmd.VelocityX != 0

	if cmd.SetVelocityY {
		physics.SpeedY = cmd.VelocityY
	}
}
