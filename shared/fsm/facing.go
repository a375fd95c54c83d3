package fsm

import "math"

// Direction is one of the four cardinal facings.
type Direction int

const (
	Right Direction = iota
	Left
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Left:
		return "left"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// Facing is the last non-zero movement direction.
//
// X and Y form a unit vector: left/right in platformers, any of the eight
// compass directions in top-down prototypes. Cardinal collapses the vector to
// four directions with horizontal input taking priority over vertical and is
// what sprite flipping keys off.
type Facing struct {
	X, Y     float64
	Cardinal Direction
}

// DefaultFacing faces right, matching an unflipped sprite sheet.
func DefaultFacing() Facing {
	return Facing{X: 1, Y: 0, Cardinal: Right}
}

// Turn returns the facing for movement input (dx, dy). Zero input keeps the
// current facing.
func (f Facing) Turn(dx, dy float64) Facing {
	if dx == 0 && dy == 0 {
		return f
	}

	length := math.Hypot(dx, dy)
	next := Facing{X: dx / length, Y: dy / length}
	switch {
	case dx < 0:
		next.Cardinal = Left
	case dx > 0:
		next.Cardinal = Right
	case dy < 0:
		next.Cardinal = Up
	default:
		next.Cardinal = Down
	}
	return next
}

// FlipX reports whether a right-facing sprite must be mirrored.
func (f Facing) FlipX() bool {
	return f.Cardinal == Left
}
