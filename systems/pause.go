package systems

import (
	"github.com/automoto/neon-arena/components"
	cfg "github.com/automoto/neon-arena/config"
	"github.com/automoto/neon-arena/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// UpdatePause toggles pause and the collision overlay.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(ecs *ecs.ECS) {
	if IsGameOver(ecs) {
		return
	}
	pause := GetOrCreatePause(ecs)
	if GetAction(ecs, cfg.ActionPause).JustPressed {
		pause.IsPaused = !pause.IsPaused
	}

	if GetAction(ecs, cfg.ActionDebug).JustPressed {
		debug := GetOrCreateDebug(ecs)
		debug.ShowProxies = !debug.ShowProxies
	}
}

// DrawPause renders the pause overlay.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)
	if !pause.IsPaused {
		return
	}

	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Pause.OverlayColor,
		false,
	)

	face := fonts.HUD.Get()
	drawCentered(screen, cfg.Pause.Label, face, width, height/2)
	drawCentered(screen, cfg.Pause.Hint, face, width, height-cfg.HUD.MarginX)
}

func drawCentered(screen *ebiten.Image, s string, face font.Face, width, y int) {
	x := (width - font.MeasureString(face, s).Ceil()) / 2
	text.Draw(screen, s, face, x, y, cfg.Pause.TextColor)
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ecs.World.Create(components.Pause)
	}

	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}
