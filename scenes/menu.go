package scenes

import (
	"fmt"
	"image/color"
	"strings"
	"sync"

	"github.com/automoto/platproto/shared/variants"
	"github.com/automoto/platproto/systems"
	"github.com/automoto/platproto/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene lists the prototype variants and starts the chosen one.
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	catalog      *Catalog
	menuUI       *ui.VariantMenuUI
	chosen       string
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger, catalog *Catalog) *MenuScene {
	return &MenuScene{sceneChanger: sc, catalog: catalog}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
	ms.menuUI.Update()

	if ms.chosen != "" {
		systems.RememberVariant(ms.chosen)
		ms.sceneChanger.ChangeScene(NewPlatformerScene(ms.sceneChanger, ms.catalog, ms.chosen))
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	var last string
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		last = saved.LastVariant
	}

	ms.menuUI = ui.NewVariantMenuUI(menuEntries(ms.catalog.Variants), last, func(name string) {
		ms.chosen = name
	})
	if v, ok := ms.catalog.Variants.Get(last); ok {
		ms.menuUI.SetStatus(fmt.Sprintf("Last played: %s. Up/Down to choose, Enter to start", v.Title))
	}

	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMenu(ms.menuUI))
}

func menuEntries(set *variants.Set) []ui.VariantEntry {
	names := set.Names()
	entries := make([]ui.VariantEntry, 0, len(names))
	for _, name := range names {
		v := set.MustGet(name)
		entries = append(entries, ui.VariantEntry{
			Name:    v.Name,
			Title:   v.Title,
			Details: variantDetails(v),
		})
	}
	return entries
}

// variantDetails summarises which mechanics a variant switches on.
func variantDetails(v *variants.Variant) string {
	parts := []string{"platformer"}
	if v.TopDown {
		parts[0] = "top-down"
	}
	switch {
	case v.Attacks.Primary && v.Attacks.Secondary:
		parts = append(parts, "two attacks")
	case v.Attacks.Primary || v.Attacks.Secondary:
		parts = append(parts, "one attack")
	}
	if v.Spawner.Enabled {
		parts = append(parts, fmt.Sprintf("projectiles every %dms", v.Spawner.IntervalMs))
	}
	return strings.Join(parts, ", ") + " | " + v.Level
}
