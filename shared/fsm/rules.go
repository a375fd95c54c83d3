package fsm

// Stage says when in the frame a rule is evaluated.
type Stage int

const (
	// StageEvents rules react to discrete events (button edges, animation
	// completions) and run before locomotion, like engine input callbacks.
	StageEvents Stage = iota
	// StagePolled rules inspect the body after locomotion has been computed.
	StagePolled
)

// Context is the read-only view a rule guard sees.
type Context struct {
	State         PlayerState
	Params        Params
	Input         InputSnapshot
	Command       Command
	Grounded      bool
	WasGrounded   bool
	VelocityY     float64
	PrevVelocityY float64

	completed []PlayerState
}

// Completed reports whether an animation-completion notification for s is
// pending and s is still the current state. Notifications for states the
// machine already left are stale and never match.
func (c *Context) Completed(s PlayerState) bool {
	if c.State != s {
		return false
	}
	for _, done := range c.completed {
		if done == s {
			return true
		}
	}
	return false
}

// Moving reports whether movement input is held this frame.
func (c *Context) Moving() bool {
	return c.Input.Moving(c.Params.TopDown)
}

func (c *Context) commandedMotion() bool {
	if c.Command.VelocityX != 0 {
		return true
	}
	return c.Params.TopDown && c.Command.VelocityY != 0
}

// Rule is one guarded transition. When returns the requested next state and
// true if the rule matches.
type Rule struct {
	Name  string
	Stage Stage
	When  func(c *Context) (PlayerState, bool)
}

// DefaultRules is the transition table in priority order. Within a frame
// the first matching rule wins and later rules are skipped.
var DefaultRules = []Rule{
	{Name: "attack-entry", Stage: StageEvents, When: attackEntry},
	{Name: "attack-exit", Stage: StageEvents, When: attackExit},
	{Name: "land-exit", Stage: StageEvents, When: landExit},
	{Name: "landing-edge", Stage: StagePolled, When: landingEdge},
	{Name: "jump-to-fall", Stage: StagePolled, When: jumpToFall},
	{Name: "grounded-locomotion", Stage: StagePolled, When: groundedLocomotion},
}

func attackEntry(c *Context) (PlayerState, bool) {
	if c.State.IsAttack() {
		return c.State, false
	}
	if c.Params.PrimaryAttack && c.Input.AttackPrimary && c.Grounded {
		return Attack1, true
	}
	if c.Params.SecondaryAttack && c.Input.AttackSecondary {
		return Attack2, true
	}
	return c.State, false
}

func attackExit(c *Context) (PlayerState, bool) {
	if !c.State.IsAttack() || !c.Completed(c.State) {
		return c.State, false
	}
	switch {
	case !c.Grounded:
		return Fall, true
	case c.Moving():
		return Walk, true
	default:
		return Idle, true
	}
}

func landExit(c *Context) (PlayerState, bool) {
	if !c.Completed(Land) {
		return c.State, false
	}
	if c.Moving() {
		return Walk, true
	}
	return Idle, true
}

func landingEdge(c *Context) (PlayerState, bool) {
	if c.WasGrounded || !c.Grounded || c.State.IsAttack() {
		return c.State, false
	}
	return Land, true
}

// jumpToFall lets fall be entered from any non-attack state once the body
// moves downward while airborne. From jump it additionally requires the
// vertical velocity to have just crossed from non-positive to positive.
func jumpToFall(c *Context) (PlayerState, bool) {
	if c.Grounded {
		return c.State, false
	}
	if c.State == Jump {
		if c.VelocityY > 0 && c.PrevVelocityY <= 0 {
			return Fall, true
		}
		return c.State, false
	}
	if !c.State.in(Fall, Attack1, Attack2) && c.VelocityY > 0 {
		return Fall, true
	}
	return c.State, false
}

func groundedLocomotion(c *Context) (PlayerState, bool) {
	if !c.Grounded || c.State.in(Jump, Fall, Attack1, Attack2, Land) {
		return c.State, false
	}
	moving := c.commandedMotion()
	if moving && c.State != Walk {
		return Walk, true
	}
	if !moving && c.State != Idle {
		return Idle, true
	}
	return c.State, false
}
