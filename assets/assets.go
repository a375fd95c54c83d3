package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"io/fs"
	"log"
	"path"

	"github.com/automoto/platproto/config"
	"github.com/automoto/platproto/shared/leveldata"
	"github.com/automoto/platproto/shared/variants"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"
)

var (
	//go:embed all:levels
	assetFS embed.FS

	//go:embed all:images
	animationFS embed.FS

	//go:embed variants/*.yaml
	variantFS embed.FS
)

const (
	levelsDir   = "levels"
	variantsDir = "variants"
)

// Level is a parsed map plus its pre-rendered tile layers.
type Level struct {
	Data *leveldata.Level
	// Background holds every tile layer drawn behind entities, Foreground
	// the layers drawn in front of them. Either may be nil.
	Background *ebiten.Image
	Foreground *ebiten.Image
	Name       string
	Width      int
	Height     int
}

type LevelLoader struct {
	fsys fs.FS
}

func NewLevelLoader() *LevelLoader {
	return &LevelLoader{fsys: assetFS}
}

// MustLoadLevel loads levels/<file> from the embedded assets.
func (l *LevelLoader) MustLoadLevel(file string) Level {
	level, err := l.LoadLevel(file)
	if err != nil {
		panic(err)
	}
	return level
}

func (l *LevelLoader) LoadLevel(file string) (Level, error) {
	levelPath := path.Join(levelsDir, file)
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(l.fsys))
	if err != nil {
		return Level{}, fmt.Errorf("load level %s: %w", levelPath, err)
	}

	data := leveldata.FromMap(levelMap, leveldata.NameFromPath(file))
	level := Level{
		Data:   data,
		Name:   data.Name,
		Width:  data.MapWidth,
		Height: data.MapHeight,
	}

	renderer, err := render.NewRendererWithFileSystem(levelMap, l.fsys)
	if err != nil {
		return Level{}, fmt.Errorf("create renderer for %s: %w", levelPath, err)
	}

	back, front := splitLayers(levelMap, config.Level.BackgroundLayers, config.Level.ForegroundLayers)
	level.Background = renderLayers(renderer, levelMap, back, level.Width, level.Height)
	level.Foreground = renderLayers(renderer, levelMap, front, level.Width, level.Height)

	return level, nil
}

// splitLayers returns tile layer indices in draw order. Named background
// layers come first in configured order, then any unnamed layers in file
// order. Foreground layers keep their configured order.
func splitLayers(levelMap *tiled.Map, background, foreground []string) (back, front []int) {
	index := make(map[string]int, len(levelMap.Layers))
	for i, layer := range levelMap.Layers {
		index[layer.Name] = i
	}

	used := make(map[int]bool)
	for _, name := range background {
		if i, ok := index[name]; ok {
			back = append(back, i)
			used[i] = true
		}
	}
	for _, name := range foreground {
		if i, ok := index[name]; ok {
			front = append(front, i)
			used[i] = true
		}
	}
	for i := range levelMap.Layers {
		if !used[i] {
			back = append(back, i)
		}
	}
	return back, front
}

func renderLayers(renderer *render.Renderer, levelMap *tiled.Map, layers []int, width, height int) *ebiten.Image {
	if len(layers) == 0 {
		return nil
	}

	target := ebiten.NewImage(width, height)
	for _, i := range layers {
		layer := levelMap.Layers[i]
		if layer.Opacity <= 0 {
			continue
		}
		if err := renderer.RenderLayer(i); err != nil {
			log.Printf("Warning: Failed to render layer %s: %v", layer.Name, err)
			renderer.Clear()
			continue
		}
		layerImage := ebiten.NewImageFromImage(renderer.Result)
		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleAlpha(float32(layer.Opacity))
		target.DrawImage(layerImage, op)
		layerImage.Deallocate()
		renderer.Clear()
	}
	return target
}

// MustLoadVariants decodes every embedded variant definition.
func MustLoadVariants() *variants.Set {
	set, err := variants.LoadAll(variantFS, variantsDir)
	if err != nil {
		panic(err)
	}
	return set
}

// CheckVariantLevels parses every embedded map and reports variants whose
// level is not one of them.
func CheckVariantLevels(set *variants.Set) error {
	levels, _, err := leveldata.LoadAll(assetFS, levelsDir)
	if err != nil {
		return err
	}
	for _, name := range set.Names() {
		v := set.MustGet(name)
		if _, ok := levels[leveldata.NameFromPath(v.Level)]; !ok {
			return fmt.Errorf("variant %s: unknown level %s", v.Name, v.Level)
		}
	}
	return nil
}

type AnimationLoader struct {
	cache      map[string]*ebiten.Image
	frameCache map[string]*ebiten.Image
}

func NewAnimationLoader() *AnimationLoader {
	return &AnimationLoader{
		cache:      make(map[string]*ebiten.Image),
		frameCache: make(map[string]*ebiten.Image),
	}
}

func (l *AnimationLoader) MustLoadImage(path string) *ebiten.Image {
	if img, ok := l.cache[path]; ok {
		return img
	}

	imgBytes, err := animationFS.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("Failed to read image file %s: %v", path, err))
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		panic(fmt.Sprintf("Failed to create image from bytes for %s: %v", path, err))
	}

	l.cache[path] = img

	return img
}

// GetFrame returns a cached sub-image for one frame of a horizontal sprite
// sheet.
func (l *AnimationLoader) GetFrame(sheet string, frameIndex, frameWidth, frameHeight int) *ebiten.Image {
	key := fmt.Sprintf("%s/%d/%dx%d", sheet, frameIndex, frameWidth, frameHeight)
	if img, ok := l.frameCache[key]; ok {
		return img
	}

	img := l.MustLoadImage(path.Join("images/player", sheet))
	sx := frameIndex * frameWidth
	frame := img.SubImage(image.Rect(sx, 0, sx+frameWidth, frameHeight)).(*ebiten.Image)
	l.frameCache[key] = frame

	return frame
}

var (
	animationLoader = NewAnimationLoader()
)

func GetFrame(sheet string, frameIndex, frameWidth, frameHeight int) *ebiten.Image {
	return animationLoader.GetFrame(sheet, frameIndex, frameWidth, frameHeight)
}

func GetProjectileImage() *ebiten.Image {
	return animationLoader.MustLoadImage("images/projectile.png")
}

// PreloadPlayerAnimations decodes every player sheet and caches its frames
// so the first state change does not stall.
func PreloadPlayerAnimations() {
	for state, def := range config.PlayerAnimations {
		size, ok := config.Player.FrameSizes[state.String()]
		if !ok {
			panic(fmt.Sprintf("no frame size for animation %s", state))
		}
		for i := def.First; i <= def.Last; i++ {
			_ = GetFrame(def.Sheet, i, size.Width, size.Height)
		}
	}
	_ = GetProjectileImage()
}
