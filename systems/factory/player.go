package factory

import (
	"github.com/automoto/neon-arena/archetypes"
	"github.com/automoto/neon-arena/components"
	cfg "github.com/automoto/neon-arena/config"
	"github.com/automoto/neon-arena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreatePlayer spawns the player at the given position.
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	components.Player.SetValue(player, components.PlayerData{
		Radius:       cfg.Player.Radius,
		Speed:        cfg.Player.Speed,
		DashSpeed:    cfg.Player.DashSpeed,
		DashDuration: cfg.Player.DashDuration,
	})
	components.Position.SetValue(player, math.Vec2{X: x, Y: y})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})
	components.Trail.SetValue(player, components.TrailData{
		Samples: make([]components.TrailSample, 0, cfg.Player.Trail.MaxSamples+1),
		Config:  cfg.Player.Trail,
	})

	attachObject(ecs, player, cfg.Player.Radius, tags.ResolvPlayer)

	return player
}
