package components

import (
	cfg "github.com/automoto/platproto/config"
	"github.com/automoto/platproto/shared/fsm"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all
// actions. JustPressed/JustReleased are computed on-demand by comparing
// frames, except for mouse buttons whose presses are latched as edges so a
// click shorter than a frame is not lost.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
	Clicked  [cfg.ActionCount]bool
	// Snapshot is the logical input handed to the state machine this frame.
	Snapshot fsm.InputSnapshot
}

var Input = donburi.NewComponentType[InputData]()
