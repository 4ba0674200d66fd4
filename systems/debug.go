package systems

import (
	"image/color"

	"github.com/automoto/neon-arena/components"
	cfg "github.com/automoto/neon-arena/config"
	"github.com/automoto/neon-arena/systems/factory"
	"github.com/automoto/neon-arena/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every collision proxy in viewport coordinates.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateDebug(ecs).ShowProxies {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	margin := factory.SpaceMargin()

	for _, obj := range space.Objects() {
		x := obj.X - margin
		y := obj.Y - margin

		// Determine color based on tags
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvPlayer) {
			c = color.RGBA{0, 0, 255, 255} // Blue
		} else if obj.HasTags(tags.ResolvEnemy) {
			c = color.RGBA{255, 0, 0, 255} // Red
		} else if obj.HasTags(tags.ResolvProjectile) {
			c = color.RGBA{0, 255, 0, 255} // Green
		}

		vector.StrokeRect(screen, float32(x), float32(y), float32(obj.W), float32(obj.H), 1, c, false)
	}
}

// GetOrCreateDebug returns the singleton Debug component, creating if needed.
// A new component starts from the -debug flag.
func GetOrCreateDebug(ecs *ecs.ECS) *components.DebugData {
	if _, ok := components.Debug.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Debug))
		components.Debug.SetValue(ent, components.DebugData{
			ShowProxies: cfg.Debug.ShowProxies,
		})
	}

	ent, _ := components.Debug.First(ecs.World)
	return components.Debug.Get(ent)
}
