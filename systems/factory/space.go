package factory

import (
	"github.com/automoto/neon-arena/archetypes"
	"github.com/automoto/neon-arena/components"
	cfg "github.com/automoto/neon-arena/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	// SpaceCellSize is the resolv grid cell edge in pixels.
	SpaceCellSize = 32

	// ProxyPadding inflates every collision proxy so that any overlap of the
	// circles also shares a grid cell.
	ProxyPadding = 2.0
)

// SpaceMargin is the band around the viewport that the collision grid also
// covers, so enemies entering from off-screen still register.
func SpaceMargin() float64 {
	return 2*(cfg.Enemy.Size+ProxyPadding) + SpaceCellSize
}

// CreateSpace creates the collision space for a viewport of the given size.
func CreateSpace(ecs *ecs.ECS, width, height float64) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	components.Space.Set(space, newSpace(width, height))
	return space
}

// ResizeSpace replaces the collision grid and re-registers every proxy.
func ResizeSpace(w donburi.World, width, height float64) {
	spaceEntry, ok := components.Space.First(w)
	if !ok {
		return
	}
	space := newSpace(width, height)
	components.Space.Set(spaceEntry, space)

	components.Object.Each(w, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		if obj.Object != nil {
			space.Add(obj.Object)
		}
	})
}

func newSpace(width, height float64) *resolv.Space {
	margin := SpaceMargin()
	return resolv.NewSpace(
		int(width+2*margin),
		int(height+2*margin),
		SpaceCellSize, SpaceCellSize,
	)
}

// SyncObject moves an entity's collision proxy to its current position.
func SyncObject(e *donburi.Entry) {
	obj := components.Object.Get(e)
	if obj.Object == nil {
		return
	}
	pos := components.Position.Get(e)
	margin := SpaceMargin()
	obj.X = pos.X - obj.HalfExtent + margin
	obj.Y = pos.Y - obj.HalfExtent + margin
	obj.Update()
}

// attachObject creates a square proxy of the given radius for an entity and
// adds it to the space.
func attachObject(ecs *ecs.ECS, e *donburi.Entry, radius float64, tag string) {
	half := radius + ProxyPadding
	obj := resolv.NewObject(0, 0, half*2, half*2, tag)
	obj.Data = e
	components.Object.SetValue(e, components.ObjectData{Object: obj, HalfExtent: half})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	SyncObject(e)
}

// RemoveEntity unregisters the entity's proxy and removes it from the world.
// Removing an entity that is already gone is a no-op.
func RemoveEntity(w donburi.World, e *donburi.Entry) {
	if e == nil || !e.Valid() {
		return
	}
	if spaceEntry, ok := components.Space.First(w); ok && e.HasComponent(components.Object) {
		obj := components.Object.Get(e)
		if obj.Object != nil {
			components.Space.Get(spaceEntry).Remove(obj.Object)
		}
	}
	w.Remove(e.Entity())
}
