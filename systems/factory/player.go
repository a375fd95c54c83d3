package factory

import (
	"github.com/automoto/platproto/archetypes"
	"github.com/automoto/platproto/assets/animations"
	"github.com/automoto/platproto/components"
	cfg "github.com/automoto/platproto/config"
	"github.com/automoto/platproto/shared/fsm"
	"github.com/automoto/platproto/shared/variants"
	"github.com/automoto/platproto/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player with its feet centred on (x, y).
func CreatePlayer(ecs *ecs.ECS, x, y float64, v *variants.Variant) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w := float64(cfg.Player.CollisionWidth)
	h := float64(cfg.Player.CollisionHeight)
	obj := resolv.NewObject(x-w/2, y-h, w, h, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	components.Player.SetValue(player, components.PlayerData{SpawnX: x, SpawnY: y})

	machine := fsm.New(v.Params())
	components.State.SetValue(player, components.StateData{Machine: machine})

	components.Physics.SetValue(player, components.PhysicsData{
		Gravity:      v.GravityPerTick(),
		Drag:         v.DragPerTick(),
		MaxFallSpeed: cfg.Physics.MaxFallSpeed,
	})

	components.SquashStretch.SetValue(player, components.SquashStretchData{ScaleX: 1, ScaleY: 1})

	animData := GenerateAnimations()
	WireCompletions(machine, animData.Player)
	animData.SetAnimation(fsm.Idle)
	components.Animation.Set(player, animData)

	return player
}

// WireCompletions forwards the end of every one-shot clip the machine waits
// on. Completions are queued on the machine and consumed by its next step.
func WireCompletions(machine *fsm.Machine, player *animations.Player) {
	for _, state := range []fsm.PlayerState{fsm.Attack1, fsm.Attack2, fsm.Land} {
		state := state
		player.OnComplete(state.String(), func() {
			machine.NotifyComplete(state)
		})
	}
}

// ApplyVariant retunes an existing player after its variant was reloaded.
func ApplyVariant(player *donburi.Entry, v *variants.Variant) {
	state := components.State.Get(player)
	state.Machine.SetParams(v.Params())

	physics := components.Physics.Get(player)
	physics.Gravity = v.GravityPerTick()
	physics.Drag = v.DragPerTick()
	if v.TopDown {
		physics.SpeedY = 0
	}
}
