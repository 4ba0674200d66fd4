package config

import (
	"errors"
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer used by the arena.
const Default ecs.LayerID = 0

// ErrInvalidViewport is returned when the viewport has no usable area.
var ErrInvalidViewport = errors.New("viewport must have a positive width and height")

// Config holds the window and viewport configuration
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`

	// FrameStep is the simulated milliseconds per tick used by the dash timer
	FrameStep float64 `yaml:"frameStep"`
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	Radius       float64 `yaml:"radius"`
	Speed        float64 `yaml:"speed"`
	DashSpeed    float64 `yaml:"dashSpeed"`
	DashDuration float64 `yaml:"dashDuration"` // milliseconds

	// Combat
	Health int `yaml:"health"`

	Trail TrailConfig `yaml:"trail"`
	Color color.RGBA  `yaml:"-"`
}

// TrailConfig contains motion trail sampling and decay values
type TrailConfig struct {
	Chance     float64 `yaml:"chance"`     // per-tick probability of a new sample
	Spread     float64 `yaml:"spread"`     // offset of a new sample along the velocity angle
	Momentum   float64 `yaml:"momentum"`   // per-tick drift of a sample along its own angle
	MaxSamples int     `yaml:"maxSamples"` // oldest samples are evicted beyond this
}

// EnemyConfig contains enemy configuration values
type EnemyConfig struct {
	Size   float64 `yaml:"size"`
	Speed  float64 `yaml:"speed"`
	Health int     `yaml:"health"`

	Trail TrailConfig `yaml:"trail"`
	Color color.RGBA  `yaml:"-"`
}

// ProjectileConfig contains projectile configuration values
type ProjectileConfig struct {
	Radius float64    `yaml:"radius"`
	Speed  float64    `yaml:"speed"`
	Color  color.RGBA `yaml:"-"`
}

// SpawnerConfig contains enemy spawn timing
type SpawnerConfig struct {
	IntervalMs int `yaml:"intervalMs"`
	// EdgeChance is the probability of picking a left/right edge over top/bottom
	EdgeChance float64 `yaml:"edgeChance"`
}

// CursorConfig contains crosshair configuration values
type CursorConfig struct {
	CrosshairSize float64    `yaml:"crosshairSize"`
	LineWidth     float64    `yaml:"lineWidth"`
	Color         color.RGBA `yaml:"-"`
}

// HUDConfig contains HUD layout values
type HUDConfig struct {
	FontSize      float64
	MarginX       int
	MarginY       int
	TextColor     color.RGBA
	FlashColor    color.RGBA
	FlashDuration float32 // seconds
	TrailAlpha    float64 // alpha of the newest trail sample
}

// GameOverConfig contains game over screen configuration values
type GameOverConfig struct {
	OverlayColor color.RGBA
	TitleColor   color.RGBA
	TextColor    color.RGBA
	FadeDuration float32 // seconds
	Title        string
	Message      string
	ButtonLabel  string
}

// PauseConfig contains pause overlay configuration values
type PauseConfig struct {
	OverlayColor color.RGBA
	TextColor    color.RGBA
	Label        string
	Hint         string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Seed        int64 // 0 = seed from the clock
	ShowProxies bool  // draw collision proxies from the first frame
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var Projectile ProjectileConfig
var Spawner SpawnerConfig
var Cursor CursorConfig
var HUD HUDConfig
var GameOver GameOverConfig
var Pause PauseConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Cyan         = color.RGBA{R: 22, G: 249, B: 234, A: 255}
	Magenta      = color.RGBA{R: 251, G: 0, B: 255, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Background   = color.RGBA{R: 8, G: 8, B: 16, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:     800,
		Height:    600,
		Title:     "Neon Arena",
		FrameStep: 16, // ~60Hz
	}

	// Player Config
	Player = PlayerConfig{
		Radius:       25,
		Speed:        5,
		DashSpeed:    25, // per tick for the 19-tick dash, about one 500px burst
		DashDuration: 300,
		Health:       100,
		Trail: TrailConfig{
			Chance:     0.2,
			Spread:     15,
			Momentum:   0.5,
			MaxSamples: 15,
		},
		Color: Cyan,
	}

	// Enemy Config
	Enemy = EnemyConfig{
		Size:   40,
		Speed:  2,
		Health: 100, // not consumed by collisions; enemies die in one hit
		Trail: TrailConfig{
			Chance:     0.1,
			Spread:     15,
			Momentum:   0.2,
			MaxSamples: 10,
		},
		Color: Magenta,
	}

	Projectile = ProjectileConfig{
		Radius: 8,
		Speed:  7,
		Color:  Cyan,
	}

	Spawner = SpawnerConfig{
		IntervalMs: 2000,
		EdgeChance: 0.5,
	}

	Cursor = CursorConfig{
		CrosshairSize: 20,
		LineWidth:     4,
		Color:         White,
	}

	HUD = HUDConfig{
		FontSize:      20,
		MarginX:       16,
		MarginY:       32,
		TextColor:     White,
		FlashColor:    LightRed,
		FlashDuration: 0.4,
		TrailAlpha:    0.5,
	}

	GameOver = GameOverConfig{
		OverlayColor: BlackOverlay,
		TitleColor:   LightRed,
		TextColor:    White,
		FadeDuration: 0.6,
		Title:        "GAME OVER",
		Message:      "The swarm got you.",
		ButtonLabel:  "Play again",
	}

	Pause = PauseConfig{
		OverlayColor: BlackOverlay,
		TextColor:    White,
		Label:        "PAUSED",
		Hint:         "Esc: Resume   F3: Collision boxes",
	}

	Debug = DebugConfig{}
}
