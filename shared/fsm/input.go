package fsm

// InputSnapshot is the logical input for a single frame.
// AttackPrimary and AttackSecondary are edges: true only on the frame the
// button went down.
type InputSnapshot struct {
	Left            bool
	Right           bool
	Up              bool
	Down            bool
	Jump            bool
	AttackPrimary   bool
	AttackSecondary bool
}

// Moving reports whether any movement input is held. Vertical input only
// counts in top-down prototypes.
func (in InputSnapshot) Moving(topDown bool) bool {
	if in.Left || in.Right {
		return true
	}
	return topDown && (in.Up || in.Down)
}

// horizontal returns -1, 0 or 1. Right is evaluated last and wins when both
// directions are held.
func (in InputSnapshot) horizontal() float64 {
	var dx float64
	if in.Left {
		dx = -1
	}
	if in.Right {
		dx = 1
	}
	return dx
}

// vertical returns -1 (up), 0 or 1 (down). Down wins when both are held.
func (in InputSnapshot) vertical() float64 {
	var dy float64
	if in.Up {
		dy = -1
	}
	if in.Down {
		dy = 1
	}
	return dy
}
