package config

import "github.com/automoto/platproto/shared/fsm"

// AnimationDef describes one clip in a sprite sheet. FPS is frames per
// second; the animation player converts it to ticks per frame.
type AnimationDef struct {
	Sheet string // sprite sheet file under assets/images/player
	First int
	Last  int
	FPS   float64
	Loop  bool
}

// PlayerAnimations maps each player state to its clip. Attack2 reuses the
// back half of the attack sheet.
var PlayerAnimations = map[fsm.PlayerState]AnimationDef{
	fsm.Idle:    {Sheet: "idle-sheet.png", First: 0, Last: 3, FPS: 5, Loop: true},
	fsm.Walk:    {Sheet: "run-sheet.png", First: 0, Last: 7, FPS: 10, Loop: true},
	fsm.Jump:    {Sheet: "jump-start-sheet.png", First: 0, Last: 3, FPS: 10},
	fsm.Fall:    {Sheet: "jump-end-sheet.png", First: 0, Last: 1, FPS: 10},
	fsm.Land:    {Sheet: "jump-end-sheet.png", First: 1, Last: 2, FPS: 10},
	fsm.Attack1: {Sheet: "attack-01-sheet.png", First: 0, Last: 7, FPS: 14},
	fsm.Attack2: {Sheet: "attack-01-sheet.png", First: 4, Last: 7, FPS: 10},
}
