package fsm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func TestInterval_FiresOnWallClock(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	every := Every(500*time.Millisecond, clock)

	assert.False(t, every.Fire(), "nothing fires before the first period")

	clock.advance(499 * time.Millisecond)
	assert.False(t, every.Fire())

	clock.advance(time.Millisecond)
	assert.True(t, every.Fire())
	assert.False(t, every.Fire(), "at most one firing per period")

	clock.advance(500 * time.Millisecond)
	assert.True(t, every.Fire())
}

func TestInterval_DoesNotBurstAfterStall(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	every := Every(100*time.Millisecond, clock)

	clock.advance(time.Second)
	assert.True(t, every.Fire())
	assert.False(t, every.Fire())

	clock.advance(99 * time.Millisecond)
	assert.False(t, every.Fire())
	clock.advance(time.Millisecond)
	assert.True(t, every.Fire())
}

func TestInterval_Reset(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	every := Every(time.Second, clock)

	clock.advance(900 * time.Millisecond)
	every.Reset()
	clock.advance(900 * time.Millisecond)
	assert.False(t, every.Fire())
	clock.advance(100 * time.Millisecond)
	assert.True(t, every.Fire())
}

func TestInterval_ZeroPeriodNeverFires(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	every := Every(0, clock)
	clock.advance(time.Hour)
	assert.False(t, every.Fire())
}
