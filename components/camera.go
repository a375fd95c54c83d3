package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2
	// Snap moves the camera straight to its target on the next update.
	Snap bool
}

var Camera = donburi.NewComponentType[CameraData]()
