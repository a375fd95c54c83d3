package fsm

import "time"

// Clock supplies wall-clock time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Interval fires on a fixed wall-clock period independent of frame rate.
type Interval struct {
	Period time.Duration
	clock  Clock
	next   time.Time
}

// Every returns an interval whose first firing is one period from now.
func Every(period time.Duration, clock Clock) *Interval {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Interval{
		Period: period,
		clock:  clock,
		next:   clock.Now().Add(period),
	}
}

// Fire reports whether the period has elapsed since the last firing. It fires
// at most once per call; if the caller fell more than a full period behind
// the schedule restarts from now instead of bursting.
func (t *Interval) Fire() bool {
	if t.Period <= 0 {
		return false
	}
	now := t.clock.Now()
	if now.Before(t.next) {
		return false
	}
	t.next = t.next.Add(t.Period)
	if !now.Before(t.next) {
		t.next = now.Add(t.Period)
	}
	return true
}

// Reset restarts the period from now.
func (t *Interval) Reset() {
	t.next = t.clock.Now().Add(t.Period)
}
