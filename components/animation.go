package components

import (
	"github.com/automoto/platproto/assets/animations"
	"github.com/automoto/platproto/config"
	"github.com/automoto/platproto/shared/fsm"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	Player *animations.Player
	// CachedFrames are sub-images keyed by state then sheet index.
	CachedFrames map[fsm.PlayerState]map[int]*ebiten.Image
	FrameSizes   map[fsm.PlayerState]config.FrameSize
	CurrentSheet fsm.PlayerState
}

// SetAnimation starts the clip for state from its first frame.
func (a *AnimationData) SetAnimation(state fsm.PlayerState) {
	if a.Player.Play(state.String()) {
		a.CurrentSheet = state
	}
}

// CurrentFrame returns the image to draw this tick, or nil.
func (a *AnimationData) CurrentFrame() *ebiten.Image {
	frames, ok := a.CachedFrames[a.CurrentSheet]
	if !ok {
		return nil
	}
	return frames[a.Player.Frame()]
}

var Animation = donburi.NewComponentType[AnimationData]()
