package systems

import (
	"io/fs"
	"log"
	"path/filepath"
	"time"

	"github.com/automoto/platproto/components"
	"github.com/automoto/platproto/shared/fsm"
	"github.com/automoto/platproto/shared/gamemath"
	"github.com/automoto/platproto/shared/variants"
	"github.com/automoto/platproto/systems/factory"
	"github.com/automoto/platproto/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewVariantReload returns a system that re-reads variant files reported by
// w from fsys into set and retunes the running world when the active variant
// changed. Level changes only take effect the next time the variant is
// started.
func NewVariantReload(w *variants.Watcher, fsys fs.FS, set *variants.Set) func(*ecs.ECS) {
	return func(ecs *ecs.ECS) {
		select {
		case err := <-w.Errors:
			log.Printf("Warning: variant watcher: %v", err)
		default:
		}

		for _, path := range w.Drain() {
			v, err := variants.Load(fsys, filepath.Base(path))
			if err != nil {
				log.Printf("Warning: Could not reload variant: %v", err)
				continue
			}
			set.Put(v)
			applyReloadedVariant(ecs, v)
		}
	}
}

func applyReloadedVariant(ecs *ecs.ECS, v *variants.Variant) {
	entry, ok := components.Variant.First(ecs.World)
	if !ok {
		return
	}
	current := components.Variant.Get(entry)
	if current.Variant == nil || current.Name != v.Name {
		return
	}
	live := *v
	if live.Level != current.Level {
		log.Printf("Warning: variant %s changed level to %s; restart it to load the new map", v.Name, v.Level)
		live.Level = current.Level
	}
	current.Variant = &live

	tags.Player.Each(ecs.World, func(player *donburi.Entry) {
		factory.ApplyVariant(player, &live)
	})

	retuneSpawner(ecs, live.Spawner)

	log.Printf("Reloaded variant %s", v.Name)
}

// retuneSpawner applies spec to the running spawner. A disabled spawner
// keeps its entity with a zero period so Fire never reports; enabling one on
// a variant that started without it creates it.
func retuneSpawner(ecs *ecs.ECS, spec variants.SpawnerSpec) {
	entry, ok := components.Spawner.First(ecs.World)
	if !ok {
		if spec.Enabled {
			factory.CreateSpawner(ecs, spec, fsm.SystemClock{})
		}
		return
	}

	spawner := components.Spawner.Get(entry)
	spawner.Speed = gamemath.PerTick(spec.Speed)
	spawner.Interval.Period = 0
	if spec.Enabled {
		spawner.Interval.Period = time.Duration(spec.IntervalMs) * time.Millisecond
	}
	spawner.Interval.Reset()
}
