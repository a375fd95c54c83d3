package fsm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var platformer = Params{
	WalkSpeed:       3,
	JumpVelocity:    -10,
	PrimaryAttack:   true,
	SecondaryAttack: true,
}

func grounded(in InputSnapshot) Frame {
	return Frame{Input: in, Grounded: true}
}

func airborne(vy float64) Frame {
	return Frame{Grounded: false, VelocityY: vy}
}

func countPlays(outs []Output, s PlayerState) int {
	n := 0
	for _, out := range outs {
		for _, p := range out.Plays {
			if p == s {
				n++
			}
		}
	}
	return n
}

// enterAttack drives a fresh machine into attack1 from the ground.
func enterAttack(t *testing.T) *Machine {
	t.Helper()
	m := New(platformer)
	out := m.Step(grounded(InputSnapshot{AttackPrimary: true}))
	require.Equal(t, []PlayerState{Attack1}, out.Plays)
	require.Equal(t, Attack1, m.State())
	return m
}

func TestMachine_StartsIdleFacingRight(t *testing.T) {
	m := New(platformer)
	assert.Equal(t, Idle, m.State())
	assert.Equal(t, Right, m.Facing().Cardinal)
}

func TestMachine_IdempotentReentry(t *testing.T) {
	m := New(platformer)

	out := m.Step(grounded(InputSnapshot{}))
	assert.Empty(t, out.Plays, "idle -> idle must not replay the animation")

	var direct Output
	assert.False(t, m.transition(Idle, &direct))
	assert.Empty(t, direct.Plays)

	out = m.Step(grounded(InputSnapshot{Right: true}))
	assert.Equal(t, []PlayerState{Walk}, out.Plays)

	out = m.Step(grounded(InputSnapshot{Right: true}))
	assert.Empty(t, out.Plays, "walk -> walk must not replay the animation")
}

func TestMachine_LandingIsEdgeTriggered(t *testing.T) {
	t.Run("false false true", func(t *testing.T) {
		m := New(platformer)
		var outs []Output
		for _, g := range []bool{false, false, true} {
			outs = append(outs, m.Step(Frame{Grounded: g}))
		}
		assert.Equal(t, 1, countPlays(outs, Land))
		assert.Equal(t, []PlayerState{Land}, outs[2].Plays)
		assert.Equal(t, "landing-edge", outs[2].Rule)
	})

	t.Run("true true true", func(t *testing.T) {
		m := New(platformer)
		var outs []Output
		for _, g := range []bool{true, true, true} {
			outs = append(outs, m.Step(Frame{Grounded: g}))
		}
		assert.Zero(t, countPlays(outs, Land))
	})
}

func TestMachine_JumpToFallOnVelocityCrossing(t *testing.T) {
	m := New(platformer)

	out := m.Step(grounded(InputSnapshot{Jump: true}))
	require.Equal(t, []PlayerState{Jump}, out.Plays)
	assert.True(t, out.Command.JumpRequested)
	assert.True(t, out.Command.SetVelocityY)
	assert.Equal(t, -10.0, out.Command.VelocityY)

	out = m.Step(airborne(-50))
	assert.Empty(t, out.Plays)
	assert.Equal(t, Jump, m.State())

	out = m.Step(airborne(-10))
	assert.Empty(t, out.Plays)
	assert.Equal(t, Jump, m.State())

	out = m.Step(airborne(5))
	assert.Equal(t, []PlayerState{Fall}, out.Plays)
	assert.Equal(t, "jump-to-fall", out.Rule)
}

func TestMachine_FallAfterLandingCompletes(t *testing.T) {
	m := New(platformer)
	m.Step(grounded(InputSnapshot{Jump: true}))
	m.Step(airborne(-4))
	m.Step(airborne(3))
	require.Equal(t, Fall, m.State())

	out := m.Step(Frame{Grounded: true})
	require.Equal(t, []PlayerState{Land}, out.Plays)

	// Still landing until the animation reports completion.
	out = m.Step(grounded(InputSnapshot{Left: true}))
	assert.Empty(t, out.Plays)
	assert.Equal(t, Land, m.State())

	m.NotifyComplete(Land)
	out = m.Step(grounded(InputSnapshot{Left: true}))
	assert.Equal(t, []PlayerState{Walk}, out.Plays)
	assert.Equal(t, "land-exit", out.Rule)
	assert.Equal(t, Left, m.Facing().Cardinal)
}

func TestMachine_LandCompletionWithoutInputIdles(t *testing.T) {
	m := New(platformer)
	m.Step(Frame{Grounded: false})
	m.Step(Frame{Grounded: true})
	require.Equal(t, Land, m.State())

	m.NotifyComplete(Land)
	out := m.Step(grounded(InputSnapshot{}))
	assert.Equal(t, []PlayerState{Idle}, out.Plays)
}

func TestMachine_AttackCompletionBranches(t *testing.T) {
	t.Run("airborne falls", func(t *testing.T) {
		m := enterAttack(t)
		m.NotifyComplete(Attack1)
		out := m.Step(Frame{Grounded: false, VelocityY: 2})
		assert.Equal(t, []PlayerState{Fall}, out.Plays)
		assert.Equal(t, "attack-exit", out.Rule)
	})

	t.Run("grounded and moving walks", func(t *testing.T) {
		m := enterAttack(t)
		m.NotifyComplete(Attack1)
		out := m.Step(grounded(InputSnapshot{Right: true}))
		assert.Equal(t, []PlayerState{Walk}, out.Plays)
		assert.Equal(t, 3.0, out.Command.VelocityX)
	})

	t.Run("grounded and still idles", func(t *testing.T) {
		m := enterAttack(t)
		m.NotifyComplete(Attack1)
		out := m.Step(grounded(InputSnapshot{}))
		assert.Equal(t, []PlayerState{Idle}, out.Plays)
	})
}

func TestMachine_AttackHoldsUntilCompletion(t *testing.T) {
	m := enterAttack(t)
	for i := 0; i < 5; i++ {
		out := m.Step(grounded(InputSnapshot{Right: true, Jump: true}))
		assert.Empty(t, out.Plays)
		assert.Zero(t, out.Command.VelocityX)
		assert.False(t, out.Command.JumpRequested)
	}
	assert.Equal(t, Attack1, m.State())
}

func TestMachine_StaleCompletionIsIgnored(t *testing.T) {
	m := New(platformer)
	m.Step(Frame{Grounded: false})
	m.Step(Frame{Grounded: true})
	require.Equal(t, Land, m.State())

	// Attack interrupts the landing before its completion is delivered.
	out := m.Step(grounded(InputSnapshot{AttackPrimary: true}))
	require.Equal(t, []PlayerState{Attack1}, out.Plays)

	m.NotifyComplete(Land)
	out = m.Step(grounded(InputSnapshot{}))
	assert.Empty(t, out.Plays)
	assert.Equal(t, Attack1, m.State())

	// A completion for the previous attack1 playthrough is consumed once.
	m.NotifyComplete(Attack1)
	m.Step(grounded(InputSnapshot{}))
	require.Equal(t, Idle, m.State())
	out = m.Step(grounded(InputSnapshot{}))
	assert.Empty(t, out.Plays)
}

func TestMachine_AttackEntryRules(t *testing.T) {
	t.Run("primary needs ground", func(t *testing.T) {
		m := New(platformer)
		out := m.Step(Frame{Input: InputSnapshot{AttackPrimary: true}, Grounded: false})
		assert.NotContains(t, out.Plays, Attack1)
	})

	t.Run("secondary works in the air", func(t *testing.T) {
		m := New(platformer)
		out := m.Step(Frame{Input: InputSnapshot{AttackSecondary: true}, Grounded: false})
		assert.Equal(t, []PlayerState{Attack2}, out.Plays)
	})

	t.Run("primary wins when both fire", func(t *testing.T) {
		m := New(platformer)
		out := m.Step(grounded(InputSnapshot{AttackPrimary: true, AttackSecondary: true}))
		assert.Equal(t, []PlayerState{Attack1}, out.Plays)
	})

	t.Run("attack beats jump on the same frame", func(t *testing.T) {
		m := New(platformer)
		out := m.Step(grounded(InputSnapshot{AttackPrimary: true, Jump: true, Left: true}))
		assert.Equal(t, []PlayerState{Attack1}, out.Plays)
		assert.False(t, out.Command.JumpRequested)
		assert.Zero(t, out.Command.VelocityX)
	})

	t.Run("disabled attacks are ignored", func(t *testing.T) {
		m := New(Params{WalkSpeed: 3, JumpVelocity: -10})
		out := m.Step(grounded(InputSnapshot{AttackPrimary: true, AttackSecondary: true}))
		assert.Empty(t, out.Plays)
		assert.Equal(t, Idle, m.State())
	})

	t.Run("no re-entry while attacking", func(t *testing.T) {
		m := enterAttack(t)
		out := m.Step(grounded(InputSnapshot{AttackSecondary: true}))
		assert.Empty(t, out.Plays)
		assert.Equal(t, Attack1, m.State())
	})
}

func TestMachine_WalkingOffALedgeFalls(t *testing.T) {
	m := New(platformer)
	m.Step(grounded(InputSnapshot{Right: true}))
	require.Equal(t, Walk, m.State())

	out := m.Step(Frame{Input: InputSnapshot{Right: true}, Grounded: false, VelocityY: 0})
	assert.Empty(t, out.Plays)

	out = m.Step(Frame{Input: InputSnapshot{Right: true}, Grounded: false, VelocityY: 0.5})
	assert.Equal(t, []PlayerState{Fall}, out.Plays)
}

func TestMachine_FacingPersists(t *testing.T) {
	m := New(platformer)
	m.Step(grounded(InputSnapshot{Left: true}))
	require.Equal(t, Left, m.Facing().Cardinal)

	frames := []InputSnapshot{{Right: true}, {}, {}}
	for _, in := range frames {
		m.Step(grounded(in))
		assert.Equal(t, Right, m.Facing().Cardinal)
		assert.False(t, m.Facing().FlipX())
	}
}

func TestMachine_TopDown(t *testing.T) {
	m := New(Params{WalkSpeed: 2, TopDown: true, SecondaryAttack: true})

	out := m.Step(grounded(InputSnapshot{Up: true}))
	assert.Equal(t, []PlayerState{Walk}, out.Plays)
	assert.True(t, out.Command.SetVelocityY)
	assert.Equal(t, -2.0, out.Command.VelocityY)
	assert.Equal(t, Up, m.Facing().Cardinal)

	out = m.Step(grounded(InputSnapshot{Down: true, Left: true}))
	assert.Empty(t, out.Plays)
	assert.Equal(t, Left, m.Facing().Cardinal)
	assert.InDelta(t, -0.7071, m.Facing().X, 1e-4)
	assert.InDelta(t, 0.7071, m.Facing().Y, 1e-4)

	out = m.Step(grounded(InputSnapshot{Jump: true}))
	assert.False(t, out.Command.JumpRequested)
	assert.Equal(t, []PlayerState{Idle}, out.Plays)

	out = m.Step(grounded(InputSnapshot{AttackSecondary: true, Up: true}))
	assert.Equal(t, []PlayerState{Attack2}, out.Plays)
	assert.True(t, out.Command.SetVelocityY)
	assert.Zero(t, out.Command.VelocityY)
}

func TestDefaultRules_Order(t *testing.T) {
	var names []string
	for _, r := range DefaultRules {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{
		"attack-entry",
		"attack-exit",
		"land-exit",
		"landing-edge",
		"jump-to-fall",
		"grounded-locomotion",
	}, names)
}

func TestPlayerState_Names(t *testing.T) {
	for _, s := range AllStates {
		assert.Equal(t, StateNames[s], s.String())
	}
	assert.Equal(t, "unknown", PlayerState(42).String())
	assert.True(t, Attack2.IsAttack())
	assert.False(t, Land.IsAttack())
}
