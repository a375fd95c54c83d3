package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectileOrientation(t *testing.T) {
	tests := []struct {
		name     string
		dx, dy   float64
		rotation float64
		flip     bool
	}{
		{"right", 1, 0, 0, false},
		{"left", -1, 0, 0, true},
		{"up", 0, -1, -math.Pi / 2, false},
		{"down", 0, 1, math.Pi / 2, false},
		{"down right", 1, 1, math.Pi / 4, false},
		{"up left", -1, -1, -3 * math.Pi / 4, false},
		{"zero", 0, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rotation, flip := ProjectileOrientation(tt.dx, tt.dy)
			assert.InDelta(t, tt.rotation, rotation, 1e-9)
			assert.Equal(t, tt.flip, flip)
		})
	}
}

func TestProjectileVelocity(t *testing.T) {
	vx, vy := ProjectileVelocity(0, 0, 5)
	assert.Equal(t, 5.0, vx)
	assert.Zero(t, vy)

	vx, vy = ProjectileVelocity(3, 4, 10)
	assert.InDelta(t, 6.0, vx, 1e-9)
	assert.InDelta(t, 8.0, vy, 1e-9)
}

func TestOutOfBounds(t *testing.T) {
	bounds := Rect{X: 0, Y: 0, W: 960, H: 540}
	assert.False(t, OutOfBounds(bounds, 0, 0))
	assert.False(t, OutOfBounds(bounds, 959, 539))
	assert.True(t, OutOfBounds(bounds, 960, 10))
	assert.True(t, OutOfBounds(bounds, -1, 10))
	assert.True(t, OutOfBounds(bounds, 10, 540))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 5.0, Clamp(5, 0, 10))
	assert.Equal(t, 0.0, Clamp(-5, 0, 10))
	assert.Equal(t, 10.0, Clamp(50, 0, 10))
	assert.Equal(t, 0.0, Clamp(50, 0, -10), "inverted range collapses to lo")
}

func TestUnitConversions(t *testing.T) {
	assert.InDelta(t, 200.0/60, PerTick(200), 1e-9)
	assert.InDelta(t, 1100.0/3600, PerTickSquared(1100), 1e-9)
	assert.Equal(t, 12, TicksPerFrame(5))
	assert.Equal(t, 6, TicksPerFrame(10))
	assert.Equal(t, 4, TicksPerFrame(14))
	assert.Equal(t, 1, TicksPerFrame(0))
	assert.Equal(t, 1, TicksPerFrame(120))
}

func TestApplyFriction(t *testing.T) {
	assert.Equal(t, 2.0, ApplyFriction(3, 1))
	assert.Equal(t, -2.0, ApplyFriction(-3, 1))
	assert.Zero(t, ApplyFriction(0.5, 1))
}
