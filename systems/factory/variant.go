package factory

import (
	"github.com/automoto/platproto/archetypes"
	"github.com/automoto/platproto/components"
	"github.com/automoto/platproto/shared/variants"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateVariant(ecs *ecs.ECS, v *variants.Variant) *donburi.Entry {
	entry := archetypes.Variant.Spawn(ecs)
	components.Variant.Set(entry, &components.VariantData{Variant: v})
	return entry
}
