package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type PhysicsData struct {
	SpeedX       float64
	SpeedY       float64
	Gravity      float64 // added to SpeedY every tick
	Drag         float64 // removed from SpeedX every tick without input
	MaxFallSpeed float64
	// OnGround is the solid the body is standing on, or nil. The map's
	// bottom edge is a solid too, so standing on it counts.
	OnGround *resolv.Object
	// Driven is set while locomotion commands a horizontal speed so drag
	// only applies to coasting bodies.
	Driven bool
}

// Grounded reports whether the body rests on something this tick.
func (p *PhysicsData) Grounded() bool {
	return p.OnGround != nil
}

var Physics = donburi.NewComponentType[PhysicsData]()
