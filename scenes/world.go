package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/platproto/assets"
	"github.com/automoto/platproto/components"
	cfg "github.com/automoto/platproto/config"
	"github.com/automoto/platproto/shared/fsm"
	"github.com/automoto/platproto/shared/gamemath"
	"github.com/automoto/platproto/shared/leveldata"
	"github.com/automoto/platproto/systems"
	factory2 "github.com/automoto/platproto/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// collisionCellSize is the resolv space cell size in pixels.
const collisionCellSize = 16

type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	catalog      *Catalog
	variant      string
	once         sync.Once
}

// NewPlatformerScene creates the scene for the named variant.
func NewPlatformerScene(sc SceneChanger, catalog *Catalog, variant string) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, catalog: catalog, variant: variant}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	v := ps.catalog.Variants.MustGet(ps.variant)

	// Preload assets to avoid lag on first use (important for WASM)
	assets.PreloadPlayerAnimations()

	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	if ps.catalog.Watcher != nil {
		ecs.AddSystem(systems.NewVariantReload(ps.catalog.Watcher, ps.catalog.WatchFS, ps.catalog.Variants))
	}
	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.UpdatePhysics)
	ecs.AddSystem(systems.UpdateCollisions)
	ecs.AddSystem(systems.UpdateAnimations)
	ecs.AddSystem(systems.UpdateSpawner)
	ecs.AddSystem(systems.UpdateProjectiles)
	ecs.AddSystem(systems.UpdateEffects)
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.NewBackToMenu(ps.sceneChanger, func() interface{} {
		return NewMenuScene(ps.sceneChanger, ps.catalog)
	}))

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawBackdrop)
	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawAnimated)
	ecs.AddRenderer(cfg.Default, systems.DrawSprites)
	ecs.AddRenderer(cfg.Default, systems.DrawForeground)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.HUD, systems.DrawHUD)

	ps.ecs = ecs

	factory2.CreateVariant(ps.ecs, v)

	// Create the level entity and load level data FIRST.
	level := factory2.CreateLevel(ps.ecs, v.Level)
	levelData := components.Level.Get(level).CurrentLevel

	// Now create the space for collision detection using the level's dimensions.
	factory2.CreateSpace(ps.ecs,
		levelData.Width,
		levelData.Height,
		collisionCellSize, collisionCellSize,
	)

	factory2.CreateColliders(ps.ecs, levelData.Data.Colliders)
	factory2.CreateWorldBounds(ps.ecs, float64(levelData.Width), float64(levelData.Height))

	spawn := spawnInside(levelData.Data.Spawn, float64(levelData.Width), float64(levelData.Height))
	factory2.CreatePlayer(ps.ecs, spawn.X, spawn.Y, v)

	// Snap camera to the player's start position to prevent panning from (0,0)
	factory2.CreateCamera(ps.ecs, spawn.X, spawn.Y)

	if v.Spawner.Enabled {
		factory2.CreateSpawner(ps.ecs, v.Spawner, fsm.SystemClock{})
	}

	// Pull the persisted toggles into the world before the first frame.
	systems.GetOrCreateSettings(ps.ecs)
}

// spawnInside keeps a spawn point on a width x height map so the fallback
// spawn still works on maps smaller than the one it was chosen for.
func spawnInside(spawn leveldata.SpawnPoint, width, height float64) leveldata.SpawnPoint {
	halfW := float64(cfg.Player.CollisionWidth) / 2
	return leveldata.SpawnPoint{
		X: gamemath.Clamp(spawn.X, halfW, width-halfW),
		Y: gamemath.Clamp(spawn.Y, float64(cfg.Player.CollisionHeight), height-1),
	}
}
