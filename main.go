package main

import (
	"flag"
	"image"
	"log"
	"os"

	"github.com/automoto/platproto/assets"
	"github.com/automoto/platproto/config"
	"github.com/automoto/platproto/fonts"
	"github.com/automoto/platproto/scenes"
	"github.com/automoto/platproto/shared/variants"
	"github.com/automoto/platproto/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(catalog *scenes.Catalog) *Game {
	if err := fonts.LoadDefaults(config.UI.HUDFontSize, config.UI.DebugFontSize, config.Menu.FontSize*1.5); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewPlatformerScene(g, catalog, config.Debug.Variant)
	} else {
		g.scene = scenes.NewMenuScene(g, catalog)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.StringVar(&config.Debug.Variant, "variant", config.Debug.Variant, "variant to start with -skip-menu")
	flag.BoolVar(&config.Debug.SkipMenu, "skip-menu", config.Debug.SkipMenu, "start the variant directly")
	flag.BoolVar(&config.Debug.Overlay, "debug", config.Debug.Overlay, "draw collision volumes and state")
	flag.StringVar(&config.Debug.VariantsDir, "variants-dir", config.Debug.VariantsDir, "load variants from this directory and reload them on change")
	flag.Parse()

	catalog, err := loadCatalog(config.Debug.VariantsDir)
	if err != nil {
		log.Fatalf("Failed to load variants: %v", err)
	}
	if catalog.Watcher != nil {
		defer catalog.Watcher.Close()
	}
	if err := assets.CheckVariantLevels(catalog.Variants); err != nil {
		log.Fatalf("Failed to load variants: %v", err)
	}
	if _, ok := catalog.Variants.Get(config.Debug.Variant); !ok && config.Debug.SkipMenu {
		log.Fatalf("Unknown variant %q (have %v)", config.Debug.Variant, catalog.Variants.Names())
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence for saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	if err := ebiten.RunGame(NewGame(catalog)); err != nil {
		log.Fatal(err)
	}
}

// loadCatalog reads the embedded variants, or the ones in dir when set.
// A directory also gets a watcher so edits apply while the game runs.
func loadCatalog(dir string) (*scenes.Catalog, error) {
	if dir == "" {
		return &scenes.Catalog{Variants: assets.MustLoadVariants()}, nil
	}

	fsys := os.DirFS(dir)
	set, err := variants.LoadAll(fsys, ".")
	if err != nil {
		return nil, err
	}

	watcher, err := variants.NewWatcher(dir)
	if err != nil {
		log.Printf("Warning: Could not watch %s, hot reload disabled: %v", dir, err)
		return &scenes.Catalog{Variants: set}, nil
	}
	return &scenes.Catalog{Variants: set, Watcher: watcher, WatchFS: fsys}, nil
}
