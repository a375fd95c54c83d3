package systems

import (
	"github.com/automoto/platproto/components"
	cfg "github.com/automoto/platproto/config"
	"github.com/automoto/platproto/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// tickSeconds is the tween time step for one update.
const tickSeconds = float32(1.0 / gamemath.TicksPerSecond)

// UpdateEffects advances squash/stretch and fade tweens.
func UpdateEffects(ecs *ecs.ECS) {
	updateSquashStretchEffects(ecs)
	updateFadeEffects(ecs)
}

// TriggerSquashStretch flattens the sprite on landing; the tweens ease it
// back to its natural size.
func TriggerSquashStretch(e *donburi.Entry) {
	if !e.HasComponent(components.SquashStretch) {
		return
	}
	ss := components.SquashStretch.Get(e)
	c := cfg.SquashStretch
	ss.ScaleX = c.LandScaleX
	ss.ScaleY = c.LandScaleY
	ss.TweenX = gween.New(float32(c.LandScaleX), 1, c.RecoverSeconds, ease.OutQuad)
	ss.TweenY = gween.New(float32(c.LandScaleY), 1, c.RecoverSeconds, ease.OutQuad)
}

func updateSquashStretchEffects(ecs *ecs.ECS) {
	components.SquashStretch.Each(ecs.World, func(e *donburi.Entry) {
		ss := components.SquashStretch.Get(e)
		if ss.TweenX != nil {
			x, done := ss.TweenX.Update(tickSeconds)
			ss.ScaleX = float64(x)
			if done {
				ss.TweenX = nil
				ss.ScaleX = 1
			}
		}
		if ss.TweenY != nil {
			y, done := ss.TweenY.Update(tickSeconds)
			ss.ScaleY = float64(y)
			if done {
				ss.TweenY = nil
				ss.ScaleY = 1
			}
		}
	})
}

func updateFadeEffects(ecs *ecs.ECS) {
	components.Fade.Each(ecs.World, func(e *donburi.Entry) {
		fade := components.Fade.Get(e)
		if fade.Tween == nil || !e.HasComponent(components.Sprite) {
			return
		}
		alpha, done := fade.Tween.Update(tickSeconds)
		sprite := components.Sprite.Get(e)
		sprite.Alpha = float64(alpha)
		if done {
			sprite.Alpha = 1
			fade.Tween = nil
		}
	})
}
