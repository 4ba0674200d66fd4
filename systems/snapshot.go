package systems

import (
	"github.com/automoto/neon-arena/components"
	"github.com/automoto/neon-arena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CircleView is a drawable circle.
type CircleView struct {
	X, Y   float64
	Radius float64
}

// PlayerView is the drawable state of the player.
type PlayerView struct {
	CircleView
	Trail   []components.TrailSample
	Dashing bool
}

// EnemyView is the drawable state of one enemy.
type EnemyView struct {
	X, Y  float64
	Size  float64
	Trail []components.TrailSample
}

// Snapshot is a read-only copy of everything the renderers draw.
type Snapshot struct {
	Width, Height float64

	HasPlayer bool
	Player    PlayerView
	Health    int
	MaxHealth int

	Projectiles []CircleView
	Enemies     []EnemyView

	Cursor components.CursorData
}

// TakeSnapshot copies the drawable state of the world. Trail slices are
// copies, so the snapshot stays valid after the next update.
func TakeSnapshot(w donburi.World) Snapshot {
	var s Snapshot

	if e, ok := components.Arena.First(w); ok {
		arena := components.Arena.Get(e)
		s.Width, s.Height = arena.Width, arena.Height
	}

	if e, ok := components.Player.First(w); ok {
		player := components.Player.Get(e)
		pos := components.Position.Get(e)
		health := components.Health.Get(e)
		s.HasPlayer = true
		s.Player = PlayerView{
			CircleView: CircleView{X: pos.X, Y: pos.Y, Radius: player.Radius},
			Trail:      copyTrail(components.Trail.Get(e)),
			Dashing:    player.IsDashing,
		}
		s.Health, s.MaxHealth = health.Current, health.Max
	}

	tags.Projectile.Each(w, func(e *donburi.Entry) {
		pos := components.Position.Get(e)
		s.Projectiles = append(s.Projectiles, CircleView{
			X: pos.X, Y: pos.Y, Radius: components.Projectile.Get(e).Radius,
		})
	})

	tags.Enemy.Each(w, func(e *donburi.Entry) {
		pos := components.Position.Get(e)
		s.Enemies = append(s.Enemies, EnemyView{
			X:     pos.X,
			Y:     pos.Y,
			Size:  components.Enemy.Get(e).Size,
			Trail: copyTrail(components.Trail.Get(e)),
		})
	})

	if e, ok := components.Cursor.First(w); ok {
		s.Cursor = *components.Cursor.Get(e)
	}

	return s
}

func copyTrail(t *components.TrailData) []components.TrailSample {
	return append([]components.TrailSample(nil), t.Samples...)
}

// snapshotOf is the renderers' entry point.
func snapshotOf(ecs *ecs.ECS) Snapshot {
	return TakeSnapshot(ecs.World)
}
