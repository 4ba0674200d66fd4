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

// CreateEnemy spawns an enemy with the configured size, speed and health.
func CreateEnemy(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	components.Enemy.SetValue(enemy, components.EnemyData{
		Size:  cfg.Enemy.Size,
		Speed: cfg.Enemy.Speed,
	})
	components.Position.SetValue(enemy, math.Vec2{X: x, Y: y})

	// Health is carried but never consumed by collisions
	components.Health.SetValue(enemy, components.HealthData{
		Current: cfg.Enemy.Health,
		Max:     cfg.Enemy.Health,
	})
	components.Trail.SetValue(enemy, components.TrailData{
		Samples: make([]components.TrailSample, 0, cfg.Enemy.Trail.MaxSamples+1),
		Config:  cfg.Enemy.Trail,
	})

	attachObject(ecs, enemy, cfg.Enemy.Size, tags.ResolvEnemy)

	return enemy
}
