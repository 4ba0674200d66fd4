package systems

import (
	"github.com/automoto/neon-arena/components"
	cfg "github.com/automoto/neon-arena/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput polls raw input, updates the InputComponent and the cursor, and
// queues a fire request on the press edge of the fire action while gameplay
// is running.
// Must run BEFORE every simulation system.
func UpdateInput(ecs *ecs.ECS) {
	var pressed [cfg.ActionCount]bool
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				pressed[actionID] = true
			}
		}
		for _, btn := range binding.MouseButtons {
			if ebiten.IsMouseButtonPressed(btn) {
				pressed[actionID] = true
			}
		}
	}

	cx, cy := ebiten.CursorPosition()
	applyInput(ecs, pressed, float64(cx), float64(cy))
}

// applyInput stores one frame of polled input.
func applyInput(ecs *ecs.ECS, pressed [cfg.ActionCount]bool, cursorX, cursorY float64) {
	e, ok := components.Input.First(ecs.World)
	if !ok {
		return
	}
	input := components.Input.Get(e)

	// Swap buffers: current becomes previous
	input.Previous = input.Current
	input.Current = pressed

	if cursor := getCursor(ecs); cursor != nil {
		cursor.X = cursorX
		cursor.Y = cursorY
	}

	if !input.Action(cfg.ActionFire).JustPressed {
		return
	}
	// Presses made while paused or after death are dropped, not queued
	if GetOrCreatePause(ecs).IsPaused || IsGameOver(ecs) {
		return
	}
	if _, ok := getPlayer(ecs); ok {
		components.FireRequested.Publish(ecs.World, components.FireRequest{})
	}
}
