package animations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnimation_OneShotCompletesOnce(t *testing.T) {
	a := NewAnimation(0, 3, 1, 6, false)

	completions := 0
	var frames []int
	for tick := 1; tick <= 40; tick++ {
		if a.Update() {
			completions++
			assert.Equal(t, 24, tick)
		}
		frames = append(frames, a.Frame())
	}

	assert.Equal(t, 1, completions)
	assert.True(t, a.Done())
	assert.Equal(t, 3, a.Frame(), "holds the last frame")
	assert.Equal(t, 1, frames[5])
	assert.Equal(t, 0, frames[4])
}

func TestAnimation_RepeatLoops(t *testing.T) {
	a := NewAnimation(4, 7, 1, 2, true)
	for tick := 0; tick < 8; tick++ {
		assert.False(t, a.Update())
	}
	assert.False(t, a.Done())
	assert.Equal(t, 4, a.Frame(), "wrapped back to the first frame")
}

func TestAnimation_RestartClearsCompletion(t *testing.T) {
	a := NewAnimation(1, 2, 1, 1, false)
	a.Update()
	require.True(t, a.Update())

	a.Restart()
	assert.False(t, a.Done())
	assert.Equal(t, 1, a.Frame())
	a.Update()
	assert.True(t, a.Update())
}

func TestNewAnimation_ClampsStepAndSpeed(t *testing.T) {
	a := NewAnimation(0, 1, 0, 0, false)
	assert.Equal(t, 1, a.Step)
	assert.Equal(t, 1, a.SpeedInTps)
}

func TestPlayer_OnCompleteFiresPerPlaythrough(t *testing.T) {
	p := NewPlayer()
	p.Add("idle", NewAnimation(0, 3, 1, 1, true))
	p.Add("land", NewAnimation(1, 2, 1, 1, false))

	var landed, idled int
	p.OnComplete("land", func() { landed++ })
	p.OnComplete("idle", func() { idled++ })

	require.True(t, p.Play("idle"))
	for i := 0; i < 10; i++ {
		p.Update()
	}
	assert.Zero(t, idled, "repeating animations never complete")

	require.True(t, p.Play("land"))
	for i := 0; i < 10; i++ {
		p.Update()
	}
	assert.Equal(t, 1, landed)

	p.Play("land")
	for i := 0; i < 10; i++ {
		p.Update()
	}
	assert.Equal(t, 2, landed)
}

func TestPlayer_UnknownKey(t *testing.T) {
	p := NewPlayer()
	p.Add("idle", NewAnimation(0, 3, 1, 1, true))
	p.Play("idle")

	assert.False(t, p.Play("swim"))
	key, a := p.Current()
	assert.Equal(t, "idle", key)
	assert.NotNil(t, a)

	empty := NewPlayer()
	empty.Update()
	_, a = empty.Current()
	assert.Nil(t, a)
	assert.Zero(t, empty.Frame())
}

func TestPlayer_InterruptedAnimationDoesNotComplete(t *testing.T) {
	p := NewPlayer()
	p.Add("attack1", NewAnimation(0, 7, 1, 4, false))
	p.Add("idle", NewAnimation(0, 3, 1, 5, true))

	fired := false
	p.OnComplete("attack1", func() { fired = true })

	p.Play("attack1")
	for i := 0; i < 10; i++ {
		p.Update()
	}
	p.Play("idle")
	for i := 0; i < 100; i++ {
		p.Update()
	}
	assert.False(t, fired)
}
