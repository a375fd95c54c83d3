package components

import (
	"github.com/automoto/platproto/shared/fsm"
	"github.com/automoto/platproto/shared/gamemath"
	"github.com/yohamta/donburi"
)

// SpawnerData fires projectiles from the player on a wall-clock interval.
type SpawnerData struct {
	Interval *fsm.Interval
	Speed    float64 // pixels per tick
	// Bounds is the rectangle outside which projectiles are destroyed.
	Bounds  gamemath.Rect
	Spawned int
}

var Spawner = donburi.NewComponentType[SpawnerData]()
