package gamemath

// TicksPerSecond is the fixed update rate every prototype runs at.
const TicksPerSecond = 60

// ApplyFriction reduces speed toward zero by friction amount.
func ApplyFriction(speedX, friction float64) float64 {
	if speedX > friction {
		return speedX - friction
	}
	if speedX < -friction {
		return speedX + friction
	}
	return 0
}

// Clamp limits v to [lo, hi]. When hi < lo the range is collapsed onto lo,
// which is what a camera wants on a map smaller than the screen.
func Clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// PerTick converts a speed in pixels per second to pixels per tick.
func PerTick(pxPerSecond float64) float64 {
	return pxPerSecond / TicksPerSecond
}

// PerTickSquared converts an acceleration in pixels per second squared to
// the velocity change applied each tick.
func PerTickSquared(pxPerSecond2 float64) float64 {
	return pxPerSecond2 / (TicksPerSecond * TicksPerSecond)
}

// TicksPerFrame converts an animation frame rate into how many ticks each
// frame is held for. Rates at or below zero hold a frame for one tick.
func TicksPerFrame(fps float64) int {
	if fps <= 0 {
		return 1
	}
	n := int(TicksPerSecond/fps + 0.5)
	if n < 1 {
		return 1
	}
	return n
}
