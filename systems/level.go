package systems

import (
	"github.com/automoto/platproto/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// DrawLevel draws the tile layers that sit behind entities.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	drawLevelImage(ecs, screen, func(l *components.LevelData) *ebiten.Image {
		return l.CurrentLevel.Background
	})
}

// DrawForeground draws the tile layers that sit in front of entities.
func DrawForeground(ecs *ecs.ECS, screen *ebiten.Image) {
	drawLevelImage(ecs, screen, func(l *components.LevelData) *ebiten.Image {
		return l.CurrentLevel.Foreground
	})
}

func drawLevelImage(ecs *ecs.ECS, screen *ebiten.Image, pick func(*components.LevelData) *ebiten.Image) {
	v, ok := cameraView(ecs, screen)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return
	}
	img := pick(levelData)
	if img == nil {
		return
	}

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(v.camX, v.camY)
	screen.DrawImage(img, drawOp)
}
