package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the tunable sections of the global config. Sections or
// fields missing from the YAML keep their current values.
type fileConfig struct {
	Window     Config           `yaml:"window"`
	Player     PlayerConfig     `yaml:"player"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Spawner    SpawnerConfig    `yaml:"spawner"`
	Cursor     CursorConfig     `yaml:"cursor"`
}

// LoadFile applies overrides from a YAML file to the global config.
func LoadFile(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return Apply(data)
}

// Apply applies YAML overrides to the global config. Nothing is changed when
// the document fails to parse or validate.
func Apply(data []byte) error {
	fc := fileConfig{
		Window:     *C,
		Player:     Player,
		Enemy:      Enemy,
		Projectile: Projectile,
		Spawner:    Spawner,
		Cursor:     Cursor,
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse config YAML: %w", err)
	}
	if err := validate(&fc); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	*C = fc.Window
	Player = fc.Player
	Enemy = fc.Enemy
	Projectile = fc.Projectile
	Spawner = fc.Spawner
	Cursor = fc.Cursor
	return nil
}

// ValidateViewport reports whether the given viewport can host the arena.
func ValidateViewport(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidViewport, width, height)
	}
	return nil
}

func validate(fc *fileConfig) error {
	if err := ValidateViewport(fc.Window.Width, fc.Window.Height); err != nil {
		return err
	}
	if fc.Window.FrameStep <= 0 {
		return fmt.Errorf("window.frameStep must be > 0, got %v", fc.Window.FrameStep)
	}

	if fc.Player.Radius <= 0 {
		return fmt.Errorf("player.radius must be > 0, got %v", fc.Player.Radius)
	}
	if fc.Player.Speed < 0 || fc.Player.DashSpeed < 0 {
		return fmt.Errorf("player speeds must be >= 0")
	}
	if fc.Player.DashDuration <= 0 {
		return fmt.Errorf("player.dashDuration must be > 0, got %v", fc.Player.DashDuration)
	}
	if fc.Player.Health <= 0 {
		return fmt.Errorf("player.health must be > 0, got %d", fc.Player.Health)
	}
	if err := validateTrail("player.trail", fc.Player.Trail); err != nil {
		return err
	}

	if fc.Enemy.Size <= 0 {
		return fmt.Errorf("enemy.size must be > 0, got %v", fc.Enemy.Size)
	}
	if fc.Enemy.Speed < 0 {
		return fmt.Errorf("enemy.speed must be >= 0, got %v", fc.Enemy.Speed)
	}
	if err := validateTrail("enemy.trail", fc.Enemy.Trail); err != nil {
		return err
	}

	if fc.Projectile.Radius <= 0 {
		return fmt.Errorf("projectile.radius must be > 0, got %v", fc.Projectile.Radius)
	}
	if fc.Spawner.IntervalMs <= 0 {
		return fmt.Errorf("spawner.intervalMs must be > 0, got %d", fc.Spawner.IntervalMs)
	}
	if fc.Spawner.EdgeChance < 0 || fc.Spawner.EdgeChance > 1 {
		return fmt.Errorf("spawner.edgeChance must be between 0 and 1, got %v", fc.Spawner.EdgeChance)
	}
	return nil
}

func validateTrail(name string, t TrailConfig) error {
	if t.Chance < 0 || t.Chance > 1 {
		return fmt.Errorf("%s.chance must be between 0 and 1, got %v", name, t.Chance)
	}
	if t.MaxSamples < 1 {
		return fmt.Errorf("%s.maxSamples must be >= 1, got %d", name, t.MaxSamples)
	}
	return nil
}
