package systems

import (
	"log"

	"github.com/automoto/neon-arena/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTermination ends the run once the player has no health left.
func UpdateTermination(ecs *ecs.ECS) {
	arena := getArena(ecs)
	if arena == nil || arena.GameOver {
		return
	}
	playerEntry, ok := getPlayer(ecs)
	if !ok {
		return
	}
	if components.Health.Get(playerEntry).Depleted() {
		arena.GameOver = true
		spawned := 0
		if e, ok := components.Spawner.First(ecs.World); ok {
			spawned = components.Spawner.Get(e).Spawned
		}
		log.Printf("Game over at tick %d (%d enemies spawned)", arena.Tick, spawned)
	}
}

// WithGameOverCheck skips a system once the run has ended.
func WithGameOverCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if IsGameOver(e) {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused or after
// the run has ended.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(WithGameOverCheck(system))
}
