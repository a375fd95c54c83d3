package fsm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocomote_AttackLocksHorizontal(t *testing.T) {
	inputs := []InputSnapshot{
		{},
		{Left: true},
		{Right: true},
		{Left: true, Right: true},
		{Right: true, Jump: true},
	}
	for _, state := range []PlayerState{Attack1, Attack2} {
		for _, in := range inputs {
			cmd := Locomote(platformer, in, state, DefaultFacing(), true)
			assert.Zero(t, cmd.VelocityX, "%s %+v", state, in)
			assert.False(t, cmd.SetVelocityY)
			assert.False(t, cmd.JumpRequested)
		}
	}
}

func TestLocomote_Horizontal(t *testing.T) {
	tests := []struct {
		name   string
		in     InputSnapshot
		wantVX float64
		want   Direction
	}{
		{"none keeps facing", InputSnapshot{}, 0, Right},
		{"left", InputSnapshot{Left: true}, -3, Left},
		{"right", InputSnapshot{Right: true}, 3, Right},
		{"both prefers right", InputSnapshot{Left: true, Right: true}, 3, Right},
		{"vertical ignored", InputSnapshot{Up: true, Down: true}, 0, Right},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := Locomote(platformer, tt.in, Idle, DefaultFacing(), true)
			assert.Equal(t, tt.wantVX, cmd.VelocityX)
			assert.Equal(t, tt.want, cmd.Facing.Cardinal)
			assert.False(t, cmd.SetVelocityY)
		})
	}
}

func TestLocomote_JumpOnlyFromGround(t *testing.T) {
	cmd := Locomote(platformer, InputSnapshot{Jump: true}, Walk, DefaultFacing(), false)
	assert.False(t, cmd.JumpRequested)
	assert.False(t, cmd.SetVelocityY)

	cmd = Locomote(platformer, InputSnapshot{Jump: true}, Walk, DefaultFacing(), true)
	assert.True(t, cmd.JumpRequested)
	assert.Equal(t, platformer.JumpVelocity, cmd.VelocityY)
}

func TestLocomote_TopDownVertical(t *testing.T) {
	p := Params{WalkSpeed: 2, TopDown: true}

	cmd := Locomote(p, InputSnapshot{Up: true, Down: true}, Idle, DefaultFacing(), true)
	assert.Equal(t, 2.0, cmd.VelocityY, "down wins when both are held")
	assert.Equal(t, Down, cmd.Facing.Cardinal)

	cmd = Locomote(p, InputSnapshot{}, Walk, cmd.Facing, true)
	assert.True(t, cmd.SetVelocityY)
	assert.Zero(t, cmd.VelocityY)
	assert.Equal(t, Down, cmd.Facing.Cardinal, "facing is retained")
}

func TestFacing_Turn(t *testing.T) {
	f := DefaultFacing()
	assert.Equal(t, f, f.Turn(0, 0))

	up := f.Turn(0, -1)
	assert.Equal(t, Up, up.Cardinal)
	assert.Equal(t, -1.0, up.Y)

	diag := f.Turn(1, 1)
	assert.Equal(t, Right, diag.Cardinal)
	assert.InDelta(t, 1.0, diag.X*diag.X+diag.Y*diag.Y, 1e-9)

	assert.True(t, f.Turn(-1, -1).FlipX())
	assert.False(t, f.Turn(0, 1).FlipX())
}
