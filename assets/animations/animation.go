package animations

// Animation steps through a contiguous range of sprite sheet frames.
type Animation struct {
	First      int
	Last       int
	Step       int // how many indices do we move per frame
	SpeedInTps int // how many ticks each frame is shown
	// Repeat loops back to First after Last. Without it the animation
	// completes and holds Last.
	Repeat       bool
	frameCounter int
	frame        int
	done         bool
}

// Update advances the animation by one tick. It returns true on the single
// tick a non-repeating animation finishes.
func (a *Animation) Update() bool {
	if a.done {
		return false
	}
	a.frameCounter--
	if a.frameCounter > 0 {
		return false
	}
	a.frameCounter = a.SpeedInTps

	next := a.frame + a.Step
	if next <= a.Last {
		a.frame = next
		return false
	}

	if a.Repeat {
		a.frame = a.First
		return false
	}
	a.done = true
	return true
}

func (a *Animation) Frame() int {
	return a.frame
}

// Done reports whether a non-repeating animation has finished.
func (a *Animation) Done() bool {
	return a.done
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.frameCounter = a.SpeedInTps
	a.done = false
}

func NewAnimation(first, last, step, speed int, repeat bool) *Animation {
	if step < 1 {
		step = 1
	}
	if speed < 1 {
		speed = 1
	}
	return &Animation{
		First:        first,
		Last:         last,
		Step:         step,
		SpeedInTps:   speed,
		Repeat:       repeat,
		frameCounter: speed,
		frame:        first,
	}
}
