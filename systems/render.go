package systems

import (
	"image/color"

	"github.com/automoto/neon-arena/components"
	cfg "github.com/automoto/neon-arena/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawArena renders trails, projectiles, enemies, the player and the
// crosshair, in that order, from a single snapshot.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	s := snapshotOf(ecs)

	drawTrails(screen, s)
	drawProjectiles(screen, s)
	drawEnemies(screen, s)
	drawPlayer(screen, s)
	drawCursor(screen, s)
}

func drawTrails(screen *ebiten.Image, s Snapshot) {
	for _, enemy := range s.Enemies {
		drawTrail(screen, enemy.Trail, enemy.Size/4, cfg.Enemy.Color)
	}
	if s.HasPlayer {
		drawTrail(screen, s.Player.Trail, s.Player.Radius/3, cfg.Player.Color)
	}
}

// drawTrail draws samples oldest first, fading out with age.
func drawTrail(screen *ebiten.Image, samples []components.TrailSample, radius float64, c color.RGBA) {
	n := len(samples)
	for i, sample := range samples {
		age := float64(i+1) / float64(n)
		alpha := uint8(255 * cfg.HUD.TrailAlpha * age)
		vector.FillCircle(screen,
			float32(sample.X), float32(sample.Y),
			float32(radius*age),
			color.NRGBA{R: c.R, G: c.G, B: c.B, A: alpha},
			true)
	}
}

func drawProjectiles(screen *ebiten.Image, s Snapshot) {
	for _, p := range s.Projectiles {
		vector.FillCircle(screen,
			float32(p.X), float32(p.Y), float32(p.Radius),
			cfg.Projectile.Color, true)
	}
}

// drawEnemies draws each enemy as an apex-up triangle spanning its size.
func drawEnemies(screen *ebiten.Image, s Snapshot) {
	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(cfg.Enemy.Color)

	var path vector.Path
	for _, enemy := range s.Enemies {
		half := float32(enemy.Size / 2)
		x, y := float32(enemy.X), float32(enemy.Y)

		path.Reset()
		path.MoveTo(x, y-half)
		path.LineTo(x-half, y+half)
		path.LineTo(x+half, y+half)
		path.Close()
		vector.FillPath(screen, &path, nil, op)
	}
}

func drawPlayer(screen *ebiten.Image, s Snapshot) {
	if !s.HasPlayer {
		return
	}
	p := s.Player
	vector.FillCircle(screen,
		float32(p.X), float32(p.Y), float32(p.Radius),
		cfg.Player.Color, true)
	if p.Dashing {
		vector.StrokeCircle(screen,
			float32(p.X), float32(p.Y), float32(p.Radius+4),
			2, cfg.White, true)
	}
}

func drawCursor(screen *ebiten.Image, s Snapshot) {
	x, y := float32(s.Cursor.X), float32(s.Cursor.Y)
	size := float32(s.Cursor.CrosshairSize)
	width := float32(cfg.Cursor.LineWidth)
	vector.StrokeLine(screen, x-size, y, x+size, y, width, cfg.Cursor.Color, false)
	vector.StrokeLine(screen, x, y-size, x, y+size, width, cfg.Cursor.Color, false)
}
