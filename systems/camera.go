package systems

import (
	"github.com/automoto/platproto/components"
	"github.com/automoto/platproto/config"
	"github.com/automoto/platproto/shared/gamemath"
	"github.com/automoto/platproto/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera follows the player, keeping the view inside the level.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	playerObject := components.Object.Get(playerEntry)

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return
	}

	targetX, targetY := CameraTarget(
		playerObject.X+playerObject.W/2, playerObject.Y+playerObject.H/2,
		float64(levelData.CurrentLevel.Width), float64(levelData.CurrentLevel.Height),
	)

	if camera.Snap {
		camera.Position.X = targetX
		camera.Position.Y = targetY
		camera.Snap = false
		return
	}

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

// CameraTarget clamps a focus point so the screen never shows outside a
// levelWidth x levelHeight map. Maps smaller than the screen pin to their
// top-left corner.
func CameraTarget(x, y, levelWidth, levelHeight float64) (float64, float64) {
	screenWidth := float64(config.C.Width)
	screenHeight := float64(config.C.Height)

	x = gamemath.Clamp(x, screenWidth/2, levelWidth-screenWidth/2)
	y = gamemath.Clamp(y, screenHeight/2, levelHeight-screenHeight/2)
	return x, y
}
