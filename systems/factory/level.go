package factory

import (
	"github.com/automoto/platproto/archetypes"
	"github.com/automoto/platproto/assets"
	"github.com/automoto/platproto/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel loads levels/<file> and stores it on a level entity.
func CreateLevel(ecs *ecs.ECS, file string) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	loader := assets.NewLevelLoader()
	loaded := loader.MustLoadLevel(file)

	components.Level.Set(level, &components.LevelData{
		CurrentLevel: &loaded,
	})

	return level
}
