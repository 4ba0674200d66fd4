package systems

import (
	"github.com/automoto/neon-arena/components"
	"github.com/automoto/neon-arena/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewFireHandler subscribes projectile creation to fire requests. The
// returned system flushes the queue once per tick.
func NewFireHandler(e *ecs.ECS) ecs.System {
	components.FireRequested.Subscribe(e.World, func(w donburi.World, _ components.FireRequest) {
		fire(e)
	})
	return UpdateFire
}

// UpdateFire processes queued fire requests.
func UpdateFire(ecs *ecs.ECS) {
	components.FireRequested.ProcessEvents(ecs.World)
}

// fire launches one projectile from the player toward the cursor.
func fire(ecs *ecs.ECS) {
	playerEntry, ok := getPlayer(ecs)
	if !ok {
		return
	}
	cursor := getCursor(ecs)
	if cursor == nil {
		return
	}
	pos := components.Position.Get(playerEntry)
	factory.CreateProjectile(ecs, pos.X, pos.Y, cursor.X, cursor.Y)
}
