package systems

import (
	"github.com/automoto/platproto/components"
	cfg "github.com/automoto/platproto/config"
	"github.com/automoto/platproto/shared/fsm"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input and updates the Input component.
// Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	input.Clicked = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}

		for _, btn := range binding.MouseButtons {
			if ebiten.IsMouseButtonPressed(btn) {
				input.Current[actionID] = true
			}
			if inpututil.IsMouseButtonJustPressed(btn) {
				input.Clicked[actionID] = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	left, right, up, down := getAnalogStickState(gamepadIDs)
	input.Current[cfg.ActionMoveLeft] = input.Current[cfg.ActionMoveLeft] || left
	input.Current[cfg.ActionMoveRight] = input.Current[cfg.ActionMoveRight] || right
	input.Current[cfg.ActionMoveUp] = input.Current[cfg.ActionMoveUp] || up
	input.Current[cfg.ActionMoveDown] = input.Current[cfg.ActionMoveDown] || down

	input.Snapshot = BuildSnapshot(input)
}

// BuildSnapshot maps the action arrays onto the logical input the state
// machine consumes. Attacks are edges; everything else is held state.
func BuildSnapshot(input *components.InputData) fsm.InputSnapshot {
	return fsm.InputSnapshot{
		Left:            input.Current[cfg.ActionMoveLeft],
		Right:           input.Current[cfg.ActionMoveRight],
		Up:              input.Current[cfg.ActionMoveUp],
		Down:            input.Current[cfg.ActionMoveDown],
		Jump:            input.Current[cfg.ActionJump],
		AttackPrimary:   attackEdge(input, cfg.ActionAttackPrimary),
		AttackSecondary: attackEdge(input, cfg.ActionAttackSecondary),
	}
}

func attackEdge(input *components.InputData, id cfg.ActionID) bool {
	return GetAction(input, id).JustPressed || input.Clicked[id]
}

// getAnalogStickState reads the left analog stick from all gamepads
func getAnalogStickState(gamepads []ebiten.GamepadID) (left, right, up, down bool) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		left = left || horizontal < -deadzone
		right = right || horizontal > deadzone
		up = up || vertical < -deadzone
		down = down || vertical > deadzone
	}
	return
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
