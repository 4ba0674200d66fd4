package factory

import (
	"math/rand"

	"github.com/automoto/neon-arena/archetypes"
	"github.com/automoto/neon-arena/components"
	cfg "github.com/automoto/neon-arena/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateArena creates the arena singleton along with its collision space,
// input state and cursor. spawnSignals may be nil when nothing spawns.
func CreateArena(ecs *ecs.ECS, width, height float64, rng *rand.Rand, spawnSignals <-chan struct{}) *donburi.Entry {
	arena := archetypes.Arena.Spawn(ecs)
	components.Arena.SetValue(arena, components.ArenaData{
		Width:  width,
		Height: height,
		Rand:   rng,
	})
	components.Spawner.SetValue(arena, components.SpawnerData{
		Signals: spawnSignals,
	})

	CreateSpace(ecs, width, height)
	archetypes.Input.Spawn(ecs)

	cursor := archetypes.Cursor.Spawn(ecs)
	components.Cursor.SetValue(cursor, components.CursorData{
		X:             width / 2,
		Y:             height / 2,
		CrosshairSize: cfg.Cursor.CrosshairSize,
	})

	return arena
}
