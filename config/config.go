package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Render layers, drawn in ascending order.
const (
	Default ecs.LayerID = iota
	HUD
)

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// PlayerConfig contains player sprite and body dimensions. Locomotion
// tunables come from the active variant.
type PlayerConfig struct {
	CollisionWidth  int
	CollisionHeight int

	// Frame sizes per sprite sheet, keyed by animation key.
	FrameSizes map[string]FrameSize
}

// FrameSize is the pixel size of one frame in a sprite sheet.
type FrameSize struct {
	Width  int
	Height int
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	MaxFallSpeed float64 // pixels per tick
	// GroundReach is how far below the body a solid must be to count as
	// standing on it.
	GroundReach float64
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 // How fast camera follows player (0.0-1.0)
}

// SquashStretchConfig contains the landing squash effect configuration
type SquashStretchConfig struct {
	LandScaleX     float64 // horizontal scale on land (> 1 = wider)
	LandScaleY     float64 // vertical scale on land (< 1 = shorter)
	RecoverSeconds float32 // tween duration back to 1.0
}

// ProjectileConfig contains spawned projectile configuration
type ProjectileConfig struct {
	Width       float64
	Height      float64
	FadeSeconds float32 // alpha tween on spawn
}

// LevelConfig lists the tile layers drawn behind and in front of the
// player.
type LevelConfig struct {
	BackgroundLayers []string
	ForegroundLayers []string
}

// UIConfig contains HUD and debug overlay configuration
type UIConfig struct {
	HUDFontSize   float64
	DebugFontSize float64
	HUDTextColor  color.RGBA
	HUDTextBg     color.RGBA

	DebugColliderColor color.RGBA
	DebugPlayerColor   color.RGBA
	DebugGroundColor   color.RGBA
}

// MenuConfig contains variant menu configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	ButtonIdle        color.RGBA
	ButtonHover       color.RGBA
	ButtonPressed     color.RGBA
	FontSize          float64
	Title             string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu    bool   // Skip menu and go directly to game
	Overlay     bool   // Draw collision volumes and state
	Variant     string // Variant to start when skipping the menu
	VariantsDir string // Directory watched for variant hot reload
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Physics PhysicsConfig
var Camera CameraConfig
var SquashStretch SquashStretchConfig
var Projectile ProjectileConfig
var Level LevelConfig
var UI UIConfig
var Menu MenuConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		Title:  "platproto",
	}

	Player = PlayerConfig{
		CollisionWidth:  48,
		CollisionHeight: 64,
		FrameSizes: map[string]FrameSize{
			"idle":    {Width: 64, Height: 64},
			"walk":    {Width: 80, Height: 64},
			"jump":    {Width: 64, Height: 64},
			"fall":    {Width: 64, Height: 64},
			"land":    {Width: 64, Height: 64},
			"attack1": {Width: 96, Height: 64},
			"attack2": {Width: 96, Height: 64},
		},
	}

	Physics = PhysicsConfig{
		MaxFallSpeed: 16.0,
		GroundReach:  1.0,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.15,
	}

	SquashStretch = SquashStretchConfig{
		LandScaleX:     1.25,
		LandScaleY:     0.8,
		RecoverSeconds: 0.2,
	}

	Projectile = ProjectileConfig{
		Width:       16,
		Height:      8,
		FadeSeconds: 0.15,
	}

	// Tile layers in draw order. decor sits in front of the player.
	Level = LevelConfig{
		BackgroundLayers: []string{"background", "cliffs", "trees2", "trees", "ground"},
		ForegroundLayers: []string{"decor"},
	}

	UI = UIConfig{
		HUDFontSize:        14,
		DebugFontSize:      10,
		HUDTextColor:       White,
		HUDTextBg:          BlackOverlay,
		DebugColliderColor: color.RGBA{R: 0, G: 255, B: 0, A: 120},
		DebugPlayerColor:   color.RGBA{R: 255, G: 60, B: 60, A: 160},
		DebugGroundColor:   Yellow,
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 15, G: 25, B: 50, A: 255},
		TitleColor:        Orange,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		ButtonIdle:        DarkBlue,
		ButtonHover:       LightBlue,
		ButtonPressed:     color.RGBA{R: 40, G: 70, B: 120, A: 255},
		FontSize:          18,
		Title:             "Choose a prototype",
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu: false,
		Variant:  "tilemap",
	}
}
