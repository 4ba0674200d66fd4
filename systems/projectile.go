package systems

import (
	"github.com/automoto/neon-arena/components"
	"github.com/automoto/neon-arena/systems/factory"
	"github.com/automoto/neon-arena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProjectiles moves projectiles in a straight line and removes the ones
// that left the viewport.
func UpdateProjectiles(ecs *ecs.ECS) {
	arena := getArena(ecs)
	if arena == nil {
		return
	}

	var toRemove []*donburi.Entry
	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		pos := components.Position.Get(e)

		pos.X += physics.SpeedX
		pos.Y += physics.SpeedY

		if pos.X < 0 || pos.X > arena.Width || pos.Y < 0 || pos.Y > arena.Height {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		factory.RemoveEntity(ecs.World, e)
	}
}
