package systems

import (
	"github.com/automoto/platproto/components"
	cfg "github.com/automoto/platproto/config"
	"github.com/automoto/platproto/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions moves every physics body through the resolv space,
// stopping it against solids and recording what it stands on.
func UpdateCollisions(ecs *ecs.ECS) {
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Object) {
			return
		}
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e).Object

		resolveHorizontal(physics, obj)
		resolveVertical(physics, obj)
		obj.Update()
	})
}

// resolveHorizontal moves the body by SpeedX, stopping flush against the
// nearest solid in the way.
func resolveHorizontal(physics *components.PhysicsData, object *resolv.Object) {
	dx := physics.SpeedX
	if dx == 0 {
		return
	}

	if check := object.Check(dx, 0, tags.ResolvSolid); check != nil {
		// Cells also hold solids beside or behind the body; only the ones
		// sharing rows with it and lying ahead of the move can stop it.
		for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
			if !overlapsVertically(object, solid) {
				continue
			}
			if dx > 0 && solid.X >= object.X+object.W {
				if gap := solid.X - (object.X + object.W); gap <= dx {
					dx = gap
					physics.SpeedX = 0
				}
			}
			if dx < 0 && solid.X+solid.W <= object.X {
				if gap := solid.X + solid.W - object.X; gap >= dx {
					dx = gap
					physics.SpeedX = 0
				}
			}
		}
	}

	object.X += dx
}

// resolveVertical moves the body by SpeedY and sets OnGround when it rests
// on a solid. The downward search reaches GroundReach pixels past the move
// so a body sitting exactly on a floor stays grounded.
func resolveVertical(physics *components.PhysicsData, object *resolv.Object) {
	physics.OnGround = nil
	dy := physics.SpeedY

	if dy < 0 {
		if solid, gap := nearestAbove(object, dy); solid != nil {
			// Head bump.
			physics.SpeedY = 0
			dy = gap
		}
		object.Y += dy
		return
	}

	if solid, gap := nearestBelow(object, dy+cfg.Physics.GroundReach); solid != nil {
		physics.OnGround = solid
		physics.SpeedY = 0
		dy = gap
	}
	object.Y += dy
}

// nearestAbove returns the closest solid over the body within reach (a
// negative distance) and the non-positive gap to it.
func nearestAbove(object *resolv.Object, reach float64) (*resolv.Object, float64) {
	check := object.Check(0, reach, tags.ResolvSolid)
	if check == nil {
		return nil, 0
	}
	var nearest *resolv.Object
	best := reach
	for _, o := range check.ObjectsByTags(tags.ResolvSolid) {
		if !overlapsHorizontally(object, o) || o.Y+o.H > object.Y {
			continue
		}
		if gap := o.Y + o.H - object.Y; gap >= best {
			nearest, best = o, gap
		}
	}
	return nearest, best
}

// nearestBelow returns the closest solid under the body within reach and
// the non-negative gap to it.
func nearestBelow(object *resolv.Object, reach float64) (*resolv.Object, float64) {
	check := object.Check(0, reach, tags.ResolvSolid)
	if check == nil {
		return nil, 0
	}
	var nearest *resolv.Object
	best := reach
	for _, o := range check.ObjectsByTags(tags.ResolvSolid) {
		if !overlapsHorizontally(object, o) || o.Y < object.Y+object.H {
			continue
		}
		if gap := o.Y - (object.Y + object.H); gap <= best {
			nearest, best = o, gap
		}
	}
	return nearest, best
}

func overlapsVertically(object, solid *resolv.Object) bool {
	return object.Y+object.H > solid.Y && object.Y < solid.Y+solid.H
}

func overlapsHorizontally(object, solid *resolv.Object) bool {
	return object.X+object.W > solid.X && object.X < solid.X+solid.W
}
