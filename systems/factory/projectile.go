package factory

import (
	"math"

	"github.com/automoto/neon-arena/archetypes"
	"github.com/automoto/neon-arena/components"
	cfg "github.com/automoto/neon-arena/config"
	"github.com/automoto/neon-arena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateProjectile spawns a projectile at (x, y) travelling toward
// (targetX, targetY). The direction is fixed at creation.
func CreateProjectile(ecs *ecs.ECS, x, y, targetX, targetY float64) *donburi.Entry {
	p := archetypes.Projectile.Spawn(ecs)

	angle := math.Atan2(targetY-y, targetX-x)
	speed := cfg.Projectile.Speed

	components.Projectile.SetValue(p, components.ProjectileData{
		Radius: cfg.Projectile.Radius,
		Speed:  speed,
	})
	components.Position.SetValue(p, dmath.Vec2{X: x, Y: y})
	components.Physics.SetValue(p, components.PhysicsData{
		SpeedX: math.Cos(angle) * speed,
		SpeedY: math.Sin(angle) * speed,
	})

	attachObject(ecs, p, cfg.Projectile.Radius, tags.ResolvProjectile)

	return p
}
