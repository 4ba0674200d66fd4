package systems

import (
	"math"

	"github.com/automoto/neon-arena/components"
	"github.com/automoto/neon-arena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies moves every enemy straight at the player's current position.
func UpdateEnemies(ecs *ecs.ECS) {
	arena := getArena(ecs)
	playerEntry, ok := getPlayer(ecs)
	if arena == nil || !ok {
		return
	}
	target := *components.Position.Get(playerEntry)

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		physics := components.Physics.Get(e)
		pos := components.Position.Get(e)

		angle := math.Atan2(target.Y-pos.Y, target.X-pos.X)
		physics.SpeedX = math.Cos(angle) * enemy.Speed
		physics.SpeedY = math.Sin(angle) * enemy.Speed
		pos.X += physics.SpeedX
		pos.Y += physics.SpeedY

		updateTrail(components.Trail.Get(e), arena.Rand, pos.X, pos.Y, angle)
	})
}
