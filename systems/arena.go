package systems

import (
	"github.com/automoto/neon-arena/components"
	cfg "github.com/automoto/neon-arena/config"
	"github.com/automoto/neon-arena/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// getArena returns the arena singleton, or nil before the arena is created.
func getArena(ecs *ecs.ECS) *components.ArenaData {
	e, ok := components.Arena.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Arena.Get(e)
}

func getPlayer(ecs *ecs.ECS) (*donburi.Entry, bool) {
	return components.Player.First(ecs.World)
}

func getCursor(ecs *ecs.ECS) *components.CursorData {
	e, ok := components.Cursor.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Cursor.Get(e)
}

// GetAction returns the state of an action, or the zero state when no input
// entity exists.
func GetAction(ecs *ecs.ECS, action cfg.ActionID) components.ActionState {
	e, ok := components.Input.First(ecs.World)
	if !ok {
		return components.ActionState{}
	}
	return components.Input.Get(e).Action(action)
}

// IsGameOver reports whether the run has ended.
func IsGameOver(ecs *ecs.ECS) bool {
	arena := getArena(ecs)
	return arena != nil && arena.GameOver
}

// ResizeArena applies a new viewport size to spawn bounds, clamping and the
// collision space.
func ResizeArena(ecs *ecs.ECS, width, height int) error {
	if err := cfg.ValidateViewport(width, height); err != nil {
		return err
	}
	arena := getArena(ecs)
	if arena == nil {
		return nil
	}
	w, h := float64(width), float64(height)
	if arena.Width == w && arena.Height == h {
		return nil
	}
	arena.Width = w
	arena.Height = h
	factory.ResizeSpace(ecs.World, w, h)
	return nil
}

// UpdateTick advances the tick counter. It runs first so every later system
// sees the same tick number.
func UpdateTick(ecs *ecs.ECS) {
	if arena := getArena(ecs); arena != nil {
		arena.Tick++
	}
}
