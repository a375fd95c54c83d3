package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/platproto/components"
	cfg "github.com/automoto/platproto/config"
	"github.com/automoto/platproto/fonts"
	"github.com/automoto/platproto/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every collision volume and prints the player's state
// machine while the F1 overlay is on.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	v, ok := cameraView(ecs, screen)
	if !ok {
		return
	}

	var ground *resolv.Object
	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		ground = components.Physics.Get(playerEntry).OnGround
	}

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			if obj.X+obj.W < v.minX || obj.X > v.maxX || obj.Y+obj.H < v.minY || obj.Y > v.maxY {
				continue
			}

			var c color.Color = cfg.UI.DebugColliderColor
			switch {
			case ground != nil && obj == ground:
				c = cfg.UI.DebugGroundColor
			case obj.HasTags(tags.ResolvPlayer):
				c = cfg.UI.DebugPlayerColor
			case obj.HasTags(tags.ResolvProjectile):
				c = cfg.LightBlue
			}
			strokeRect(screen, obj.X+v.camX, obj.Y+v.camY, obj.W, obj.H, c)
		}
	}

	drawStateText(ecs, screen)
}

func strokeRect(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), 1, c, false)     // Top
	vector.FillRect(screen, float32(x), float32(y+h-1), float32(w), 1, c, false) // Bottom
	vector.FillRect(screen, float32(x), float32(y), 1, float32(h), c, false)     // Left
	vector.FillRect(screen, float32(x+w-1), float32(y), 1, float32(h), c, false) // Right
}

func drawStateText(ecs *ecs.ECS, screen *ebiten.Image) {
	lines := debugLines(ecs)
	if len(lines) == 0 {
		return
	}

	face := fonts.Small.Get()
	lineHeight := face.Metrics().Height.Ceil()
	x := screen.Bounds().Dx() - 300
	y := 20
	vector.FillRect(screen, float32(x-6), float32(y-lineHeight), 300, float32(lineHeight*len(lines)+8), cfg.UI.HUDTextBg, false)
	for i, line := range lines {
		text.Draw(screen, line, face, x, y+i*lineHeight, cfg.UI.HUDTextColor)
	}
}

// debugLines describes the player's machine, its clip, the loaded level and
// the spawner.
func debugLines(ecs *ecs.ECS) []string {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return nil
	}
	state := components.State.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	facing := state.Machine.Facing()

	lines := []string{
		fmt.Sprintf("state: %s (%d ticks)", state.Current(), state.StateTimer),
		fmt.Sprintf("rule: %s", state.LastRule),
		fmt.Sprintf("grounded: %t  vx: %.2f  vy: %.2f", physics.Grounded(), physics.SpeedX, physics.SpeedY),
		fmt.Sprintf("facing: %s (%.2f, %.2f)", facing.Cardinal, facing.X, facing.Y),
	}

	if anim := components.Animation.Get(playerEntry); anim.Player != nil {
		if key, clip := anim.Player.Current(); clip != nil {
			lines = append(lines, fmt.Sprintf("clip: %s frame %d done: %t", key, clip.Frame(), clip.Done()))
		}
	}

	if levelEntry, ok := components.Level.First(ecs.World); ok {
		if level := components.Level.Get(levelEntry).CurrentLevel; level != nil && level.Data != nil {
			spawn := "spawn: map"
			if !level.Data.SpawnFound {
				spawn = "spawn: fallback"
			}
			colliders := fmt.Sprintf("%d colliders", len(level.Data.Colliders))
			if !level.Data.CollisionFound {
				colliders = "no collision layer"
			}
			lines = append(lines, fmt.Sprintf("level: %s (%d tile layers, %s, %s)",
				level.Data.Name, len(level.Data.TileLayers), spawn, colliders))
		}
	}

	if spawnerEntry, ok := components.Spawner.First(ecs.World); ok {
		spawner := components.Spawner.Get(spawnerEntry)
		live := 0
		tags.Projectile.Each(ecs.World, func(*donburi.Entry) { live++ })
		lines = append(lines, fmt.Sprintf("projectiles: %d live, %d spawned", live, spawner.Spawned))
	}

	return append(lines, fmt.Sprintf("tps: %.0f  fps: %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()))
}
