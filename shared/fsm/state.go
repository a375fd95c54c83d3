// Package fsm holds the player animation state machine shared by every
// prototype. It has no dependencies on ebiten, donburi or resolv so the whole
// per-frame decision can be exercised without a running game.
package fsm

// PlayerState identifies the animation state the player is in.
type PlayerState int

const (
	Idle PlayerState = iota
	Walk
	Jump
	Fall
	Land
	Attack1
	Attack2
)

// StateNames maps each state to the animation key it plays.
var StateNames = map[PlayerState]string{
	Idle:    "idle",
	Walk:    "walk",
	Jump:    "jump",
	Fall:    "fall",
	Land:    "land",
	Attack1: "attack1",
	Attack2: "attack2",
}

// AllStates lists every state in declaration order.
var AllStates = []PlayerState{Idle, Walk, Jump, Fall, Land, Attack1, Attack2}

func (s PlayerState) String() string {
	if name, ok := StateNames[s]; ok {
		return name
	}
	return "unknown"
}

// IsAttack reports whether the state owns horizontal locomotion.
func (s PlayerState) IsAttack() bool {
	return s == Attack1 || s == Attack2
}

func (s PlayerState) in(states ...PlayerState) bool {
	for _, other := range states {
		if s == other {
			return true
		}
	}
	return false
}
