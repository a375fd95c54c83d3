package factory

import (
	"fmt"

	"github.com/automoto/platproto/assets"
	"github.com/automoto/platproto/assets/animations"
	"github.com/automoto/platproto/components"
	cfg "github.com/automoto/platproto/config"
	"github.com/automoto/platproto/shared/fsm"
	"github.com/automoto/platproto/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
)

// GenerateAnimations builds the player's animation set from the clip
// definitions in config. Missing definitions are configuration errors and
// panic.
func GenerateAnimations() *components.AnimationData {
	animData := &components.AnimationData{
		Player:       animations.NewPlayer(),
		CachedFrames: make(map[fsm.PlayerState]map[int]*ebiten.Image),
		FrameSizes:   make(map[fsm.PlayerState]cfg.FrameSize),
		CurrentSheet: fsm.Idle,
	}

	for _, state := range fsm.AllStates {
		def, ok := cfg.PlayerAnimations[state]
		if !ok {
			panic(fmt.Sprintf("No animation definition found for state: %s", state))
		}
		size, ok := cfg.Player.FrameSizes[state.String()]
		if !ok {
			panic(fmt.Sprintf("No frame size found for state: %s", state))
		}

		anim := animations.NewAnimation(def.First, def.Last, 1, gamemath.TicksPerFrame(def.FPS), def.Loop)
		animData.Player.Add(state.String(), anim)
		animData.FrameSizes[state] = size

		frames := make(map[int]*ebiten.Image)
		for sheetIndex := def.First; sheetIndex <= def.Last; sheetIndex++ {
			frames[sheetIndex] = assets.GetFrame(def.Sheet, sheetIndex, size.Width, size.Height)
		}
		animData.CachedFrames[state] = frames
	}

	return animData
}
