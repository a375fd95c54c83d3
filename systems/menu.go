package systems

import (
	cfg "github.com/automoto/platproto/config"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewBackToMenu creates a system that leaves the running prototype for the
// variant menu when the back action is pressed.
func NewBackToMenu(sceneChanger SceneChanger, createMenuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)
		if GetAction(input, cfg.ActionBackToMenu).JustPressed {
			sceneChanger.ChangeScene(createMenuScene())
		}
	}
}

// MenuNavigator is a list the keyboard or gamepad can walk through.
type MenuNavigator interface {
	Move(delta int)
	Confirm()
}

// NewUpdateMenu creates a system that drives menu with the move and confirm
// actions. Mouse input is handled by the menu widgets themselves.
func NewUpdateMenu(menu MenuNavigator) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)

		switch {
		case GetAction(input, cfg.ActionMoveUp).JustPressed:
			menu.Move(-1)
		case GetAction(input, cfg.ActionMoveDown).JustPressed:
			menu.Move(1)
		case GetAction(input, cfg.ActionConfirm).JustPressed:
			menu.Confirm()
		}
	}
}
