package components

import (
	"github.com/automoto/platproto/shared/fsm"
	"github.com/yohamta/donburi"
)

// StateData wraps the player's animation state machine.
type StateData struct {
	Machine *fsm.Machine
	// LastRule is the name of the most recent rule that fired, shown by the
	// debug overlay.
	LastRule   string
	StateTimer int // ticks spent in the current state
}

func (s *StateData) Current() fsm.PlayerState {
	return s.Machine.State()
}

var State = donburi.NewComponentType[StateData]()
