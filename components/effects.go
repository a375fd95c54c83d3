package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// SquashStretchData tracks sprite scale deformation on landing. The tweens
// ease each axis back to 1.
type SquashStretchData struct {
	ScaleX, ScaleY float64
	TweenX, TweenY *gween.Tween
}

var SquashStretch = donburi.NewComponentType[SquashStretchData]()

// FadeData drives a sprite's alpha.
type FadeData struct {
	Tween *gween.Tween
}

var Fade = donburi.NewComponentType[FadeData]()
