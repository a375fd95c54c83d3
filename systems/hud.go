package systems

import (
	"github.com/automoto/platproto/components"
	cfg "github.com/automoto/platproto/config"
	"github.com/automoto/platproto/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const hudMargin = 10

// DrawHUD shows the running variant and the controls it responds to.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Variant.First(ecs.World)
	if !ok {
		return
	}
	v := components.Variant.Get(entry)
	if v.Variant == nil {
		return
	}

	title := fonts.Regular.Get()
	small := fonts.Small.Get()
	hint := ControlsHint(v.TopDown, v.Attacks.Primary, v.Attacks.Secondary)

	titleHeight := title.Metrics().Height.Ceil()
	hintHeight := small.Metrics().Height.Ceil()
	vector.FillRect(screen, hudMargin/2, hudMargin/2, 420, float32(titleHeight+hintHeight+hudMargin), cfg.UI.HUDTextBg, false)

	text.Draw(screen, v.Title, title, hudMargin, hudMargin+titleHeight-4, cfg.UI.HUDTextColor)
	text.Draw(screen, hint, small, hudMargin, hudMargin+titleHeight+hintHeight-2, cfg.UI.HUDTextColor)
}

// ControlsHint describes the bindings that do something in a variant.
func ControlsHint(topDown, primary, secondary bool) string {
	hint := "Arrows/WASD move"
	if !topDown {
		hint += ", Space jump"
	}
	if primary {
		hint += ", LMB/J attack"
	}
	if secondary {
		hint += ", RMB/K alt attack"
	}
	return hint + ", F1 debug, R respawn, Esc menu"
}
