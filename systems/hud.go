package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/neon-arena/components"
	cfg "github.com/automoto/neon-arena/config"
	"github.com/automoto/neon-arena/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewHUDHandler subscribes the damage flash to player damage events. The
// returned system flushes the queue and advances the flash. The flash holds
// while paused.
func NewHUDHandler(e *ecs.ECS) ecs.System {
	components.PlayerDamagedEvent.Subscribe(e.World, startDamageFlash)
	return WithPauseCheck(UpdateHUD)
}

func startDamageFlash(w donburi.World, _ components.PlayerDamaged) {
	playerEntry, ok := components.Player.First(w)
	if !ok {
		return
	}
	flash := components.Flash.Get(playerEntry)
	flash.Tween = gween.New(1, 0, cfg.HUD.FlashDuration, ease.OutQuad)
	flash.Alpha = 1
}

// UpdateHUD processes damage events and fades the damage flash.
func UpdateHUD(ecs *ecs.ECS) {
	components.PlayerDamagedEvent.ProcessEvents(ecs.World)

	playerEntry, ok := getPlayer(ecs)
	if !ok {
		return
	}
	flash := components.Flash.Get(playerEntry)
	if flash.Tween == nil {
		return
	}
	alpha, finished := flash.Tween.Update(float32(cfg.C.FrameStep / 1000))
	flash.Alpha = alpha
	if finished {
		flash.Tween = nil
		flash.Alpha = 0
	}
}

// DrawHUD renders the health readout in the top-left corner, tinted while the
// damage flash is active.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := getPlayer(ecs)
	if !ok {
		return
	}
	hp := components.Health.Get(playerEntry)
	flash := components.Flash.Get(playerEntry)

	label := fmt.Sprintf("Health: %d", hp.Current)
	text.Draw(screen, label, fonts.HUD.Get(), cfg.HUD.MarginX, cfg.HUD.MarginY,
		blend(cfg.HUD.TextColor, cfg.HUD.FlashColor, flash.Alpha))
}

// blend mixes from a to b by t in [0, 1].
func blend(a, b color.RGBA, t float32) color.RGBA {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	mix := func(x, y uint8) uint8 {
		return uint8(float32(x) + (float32(y)-float32(x))*t)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
