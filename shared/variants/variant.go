// Package variants describes the playable prototypes. Each variant is a YAML
// document naming the level, the locomotion tunables and which optional
// mechanics (attacks, projectile spawner) are switched on.
package variants

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/automoto/platproto/shared/fsm"
	"github.com/automoto/platproto/shared/gamemath"
	"gopkg.in/yaml.v3"
)

// Variant is one prototype configuration. Speeds are pixels per second and
// accelerations pixels per second squared, as authored.
type Variant struct {
	Name         string      `yaml:"name"`
	Title        string      `yaml:"title"`
	Level        string      `yaml:"level"`
	TopDown      bool        `yaml:"top_down"`
	WalkSpeed    float64     `yaml:"walk_speed"`
	JumpVelocity float64     `yaml:"jump_velocity"`
	Gravity      float64     `yaml:"gravity"`
	DragX        float64     `yaml:"drag_x"`
	Attacks      AttackSpec  `yaml:"attacks"`
	Spawner      SpawnerSpec `yaml:"spawner"`
	Background   Color       `yaml:"background"`
}

type AttackSpec struct {
	Primary   bool `yaml:"primary"`
	Secondary bool `yaml:"secondary"`
}

// SpawnerSpec configures the periodic projectile spawner.
type SpawnerSpec struct {
	Enabled    bool    `yaml:"enabled"`
	IntervalMs int     `yaml:"interval_ms"`
	Speed      float64 `yaml:"speed"`
}

// Defaults applied to fields a document leaves at zero.
const (
	DefaultWalkSpeed    = 200
	DefaultJumpVelocity = -600
	DefaultGravity      = 1100
	DefaultDragX        = 800
	DefaultSpawnMs      = 500
	DefaultSpawnSpeed   = 300
)

// Decode parses a variant document, fills in defaults and validates it.
func Decode(data []byte) (*Variant, error) {
	var v Variant
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("variants: unmarshal: %w", err)
	}
	v.applyDefaults()
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return &v, nil
}

func (v *Variant) applyDefaults() {
	if v.Title == "" {
		v.Title = v.Name
	}
	if v.WalkSpeed == 0 {
		v.WalkSpeed = DefaultWalkSpeed
	}
	if v.JumpVelocity == 0 && !v.TopDown {
		v.JumpVelocity = DefaultJumpVelocity
	}
	if v.Gravity == 0 && !v.TopDown {
		v.Gravity = DefaultGravity
	}
	if v.DragX == 0 {
		v.DragX = DefaultDragX
	}
	if v.Spawner.Enabled {
		if v.Spawner.IntervalMs == 0 {
			v.Spawner.IntervalMs = DefaultSpawnMs
		}
		if v.Spawner.Speed == 0 {
			v.Spawner.Speed = DefaultSpawnSpeed
		}
	}
	if v.Background.Color == nil {
		v.Background.Color = color.NRGBA{R: 0x1d, G: 0x21, B: 0x2d, A: 0xff}
	}
}

// Validate reports the first problem with a decoded variant.
func (v *Variant) Validate() error {
	switch {
	case v.Name == "":
		return errors.New("variants: name is required")
	case v.Level == "":
		return fmt.Errorf("variants: %s: level is required", v.Name)
	case v.WalkSpeed < 0:
		return fmt.Errorf("variants: %s: walk_speed must not be negative", v.Name)
	case !v.TopDown && v.JumpVelocity > 0:
		return fmt.Errorf("variants: %s: jump_velocity must point up (negative)", v.Name)
	case v.TopDown && v.Gravity != 0:
		return fmt.Errorf("variants: %s: top-down variants have no gravity", v.Name)
	case v.Spawner.Enabled && v.Spawner.IntervalMs < 0:
		return fmt.Errorf("variants: %s: spawner interval_ms must not be negative", v.Name)
	}
	return nil
}

// Params converts the authored tunables into per-tick state machine
// parameters.
func (v *Variant) Params() fsm.Params {
	return fsm.Params{
		WalkSpeed:       gamemath.PerTick(v.WalkSpeed),
		JumpVelocity:    gamemath.PerTick(v.JumpVelocity),
		TopDown:         v.TopDown,
		PrimaryAttack:   v.Attacks.Primary,
		SecondaryAttack: v.Attacks.Secondary,
	}
}

// GravityPerTick is the vertical velocity added each tick.
func (v *Variant) GravityPerTick() float64 {
	return gamemath.PerTickSquared(v.Gravity)
}

// DragPerTick is the horizontal speed removed each tick without input.
func (v *Variant) DragPerTick() float64 {
	return gamemath.PerTickSquared(v.DragX)
}

// SpawnSpeedPerTick is the projectile speed in pixels per tick.
func (v *Variant) SpawnSpeedPerTick() float64 {
	return gamemath.PerTick(v.Spawner.Speed)
}

// Color is a "#rrggbb" or "#rrggbbaa" YAML scalar.
type Color struct {
	color.Color
}

func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	var rgba [4]uint8
	rgba[3] = 0xff
	for i := 0; i < len(s)/2; i++ {
		n, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return fmt.Errorf("invalid color %s: %w", value.Value, err)
		}
		rgba[i] = uint8(n)
	}

	c.Color = color.NRGBA{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}
	return nil
}
