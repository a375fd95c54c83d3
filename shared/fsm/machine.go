package fsm

// Frame is what the physics and input collaborators report for one tick.
type Frame struct {
	Input     InputSnapshot
	Grounded  bool
	VelocityY float64 // body's current vertical velocity, positive is down
}

// Output is the result of stepping the machine for one frame.
type Output struct {
	Command Command
	// Plays lists the states whose animation must be started, in order.
	// Each accepted transition contributes exactly one entry.
	Plays []PlayerState
	// Rule is the name of the rule that fired this frame, if any.
	Rule string
}

// Machine owns the player's animation state and the little bit of history
// the rules need. It is not safe for concurrent use; the game drives it from
// a single update loop.
type Machine struct {
	params Params
	rules  []Rule

	state         PlayerState
	facing        Facing
	wasGrounded   bool
	prevVelocityY float64
	pending       []PlayerState
}

// New returns a machine in the idle state, facing right and standing on the
// ground.
func New(p Params) *Machine {
	return &Machine{
		params:      p,
		rules:       DefaultRules,
		state:       Idle,
		facing:      DefaultFacing(),
		wasGrounded: true,
	}
}

func (m *Machine) State() PlayerState { return m.state }

func (m *Machine) Facing() Facing { return m.facing }

func (m *Machine) Params() Params { return m.params }

// SetParams swaps the locomotion tunables without touching the state.
func (m *Machine) SetParams(p Params) {
	m.params = p
}

// NotifyComplete records that the animation for s finished a playthrough.
// It is safe to call from an animation callback at any point in the frame;
// the notification is consumed by the next Step and ignored if the machine
// has left s by then.
func (m *Machine) NotifyComplete(s PlayerState) {
	m.pending = append(m.pending, s)
}

// Step advances the machine by one frame.
//
// Event rules (attack edges, animation completions) run first. Locomotion is
// then computed against the resulting state; a granted jump enters the jump
// state immediately. If neither an event rule nor the jump fired, the polled
// rules are evaluated against the body.
func (m *Machine) Step(f Frame) Output {
	var out Output

	ctx := Context{
		State:         m.state,
		Params:        m.params,
		Input:         f.Input,
		Grounded:      f.Grounded,
		WasGrounded:   m.wasGrounded,
		VelocityY:     f.VelocityY,
		PrevVelocityY: m.prevVelocityY,
		completed:     m.pending,
	}

	fired := m.evaluate(StageEvents, &ctx, &out)
	m.pending = m.pending[:0]

	cmd := Locomote(m.params, f.Input, m.state, m.facing, f.Grounded)
	m.facing = cmd.Facing
	out.Command = cmd

	if cmd.JumpRequested {
		m.transition(Jump, &out)
		out.Rule = "jump-entry"
		fired = true
	}

	if !fired {
		ctx.State = m.state
		ctx.Command = cmd
		ctx.completed = nil
		m.evaluate(StagePolled, &ctx, &out)
	}

	m.wasGrounded = f.Grounded
	m.prevVelocityY = f.VelocityY
	return out
}

// evaluate runs the rules of one stage in order and applies the first match.
func (m *Machine) evaluate(stage Stage, ctx *Context, out *Output) bool {
	for _, r := range m.rules {
		if r.Stage != stage {
			continue
		}
		next, ok := r.When(ctx)
		if !ok {
			continue
		}
		m.transition(next, out)
		out.Rule = r.Name
		return true
	}
	return false
}

// transition moves to next and queues its animation. Re-entering the
// current state is a no-op so an in-progress animation is never restarted.
func (m *Machine) transition(next PlayerState, out *Output) bool {
	if next == m.state {
		return false
	}
	m.state = next
	out.Plays = append(out.Plays, next)
	return true
}
