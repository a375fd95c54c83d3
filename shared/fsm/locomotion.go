package fsm

// Params are the tunables a prototype feeds the locomotion mapping. Speeds
// are in whatever unit the physics body integrates (pixels per tick in the
// game).
type Params struct {
	WalkSpeed    float64
	JumpVelocity float64 // negative is up
	TopDown      bool

	PrimaryAttack   bool
	SecondaryAttack bool
}

// Command is the velocity update locomotion asks the physics body to apply.
type Command struct {
	VelocityX float64
	// VelocityY is only applied when SetVelocityY is true; otherwise the
	// body keeps integrating gravity on its own.
	VelocityY     float64
	SetVelocityY  bool
	Facing        Facing
	JumpRequested bool
}

// Locomote maps one frame of input to a velocity command.
//
// Attack states lock horizontal movement. Outside of attacks the walk speed
// follows the held direction and the facing follows any non-zero input. A
// platformer jump is a one-shot vertical impulse that is only granted on
// the ground.
func Locomote(p Params, in InputSnapshot, state PlayerState, facing Facing, grounded bool) Command {
	cmd := Command{Facing: facing}

	if state.IsAttack() {
		// Top-down bodies have no gravity to bring them to rest.
		cmd.SetVelocityY = p.TopDown
		return cmd
	}

	dx := in.horizontal()
	cmd.VelocityX = dx * p.WalkSpeed

	if p.TopDown {
		dy := in.vertical()
		cmd.VelocityY = dy * p.WalkSpeed
		cmd.SetVelocityY = true
		cmd.Facing = facing.Turn(dx, dy)
		return cmd
	}

	cmd.Facing = facing.Turn(dx, 0)

	if in.Jump && grounded {
		cmd.VelocityY = p.JumpVelocity
		cmd.SetVelocityY = true
		cmd.JumpRequested = true
	}

	return cmd
}
