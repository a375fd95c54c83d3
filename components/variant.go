package components

import (
	"github.com/automoto/platproto/shared/variants"
	"github.com/yohamta/donburi"
)

// VariantData is the prototype configuration the world was built from.
type VariantData struct {
	*variants.Variant
}

var Variant = donburi.NewComponentType[VariantData]()
