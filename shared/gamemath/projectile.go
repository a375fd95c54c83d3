package gamemath

import "math"

// ProjectileOrientation returns the rotation and horizontal flip that make a
// right-pointing projectile sprite point along (dx, dy).
//
// Pure left is drawn as a mirror image rather than a half turn so the sprite
// stays upright. Vertical and diagonal directions rotate by atan2, with
// positive y pointing down the screen.
func ProjectileOrientation(dx, dy float64) (rotation float64, flipX bool) {
	switch {
	case dy == 0 && dx < 0:
		return 0, true
	case dy == 0:
		return 0, false
	case dx == 0 && dy < 0:
		return -math.Pi / 2, false
	case dx == 0:
		return math.Pi / 2, false
	default:
		return math.Atan2(dy, dx), false
	}
}

// ProjectileVelocity scales the direction (dx, dy) to speed. A zero
// direction fires to the right.
func ProjectileVelocity(dx, dy, speed float64) (vx, vy float64) {
	length := math.Hypot(dx, dy)
	if length == 0 {
		return speed, 0
	}
	return dx / length * speed, dy / length * speed
}

// Rect is an axis-aligned rectangle in world pixels.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether the point lies inside r. Points on the right or
// bottom edge are outside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// OutOfBounds reports whether a point has left the bounds rectangle.
func OutOfBounds(bounds Rect, x, y float64) bool {
	return !bounds.Contains(x, y)
}
