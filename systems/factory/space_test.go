package factory

import (
	"math/rand"
	"testing"

	"github.com/automoto/neon-arena/components"
	cfg "github.com/automoto/neon-arena/config"
	"github.com/automoto/neon-arena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestWorld(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	CreateArena(e, 800, 600, rand.New(rand.NewSource(1)), nil)
	return e
}

func TestCreateArena(t *testing.T) {
	e := newTestWorld(t)

	arenaEntry, ok := components.Arena.First(e.World)
	if !ok {
		t.Fatal("expected arena entity")
	}
	arena := components.Arena.Get(arenaEntry)
	if arena.Width != 800 || arena.Height != 600 || arena.Rand == nil {
		t.Errorf("unexpected arena %+v", arena)
	}
	if _, ok := components.Space.First(e.World); !ok {
		t.Error("expected collision space")
	}
	if _, ok := components.Input.First(e.World); !ok {
		t.Error("expected input entity")
	}
	cursorEntry, ok := components.Cursor.First(e.World)
	if !ok {
		t.Fatal("expected cursor entity")
	}
	if c := components.Cursor.Get(cursorEntry); c.X != 400 || c.Y != 300 {
		t.Errorf("expected cursor centered, got (%v, %v)", c.X, c.Y)
	}
}

func TestProxyFollowsPosition(t *testing.T) {
	e := newTestWorld(t)
	enemy := CreateEnemy(e, -cfg.Enemy.Size, 100)
	obj := components.Object.Get(enemy)

	margin := SpaceMargin()
	if obj.X != -cfg.Enemy.Size-obj.HalfExtent+margin {
		t.Errorf("unexpected proxy x %v", obj.X)
	}
	if obj.X < 0 || obj.Y < 0 {
		t.Errorf("off-screen spawn fell outside the collision grid: (%v, %v)", obj.X, obj.Y)
	}
	if obj.HalfExtent != cfg.Enemy.Size+ProxyPadding {
		t.Errorf("expected half extent %v, got %v", cfg.Enemy.Size+ProxyPadding, obj.HalfExtent)
	}

	components.Position.Get(enemy).X = 300
	SyncObject(enemy)
	if obj.X != 300-obj.HalfExtent+margin {
		t.Errorf("proxy did not follow position, x=%v", obj.X)
	}
	if obj.Space == nil || !obj.HasTags(tags.ResolvEnemy) {
		t.Error("expected tagged proxy registered in the space")
	}
}

func TestRemoveEntity(t *testing.T) {
	e := newTestWorld(t)
	p := CreateProjectile(e, 100, 100, 200, 100)
	obj := components.Object.Get(p).Object

	RemoveEntity(e.World, p)
	if p.Valid() {
		t.Fatal("expected entity removed")
	}
	if obj.Space != nil {
		t.Error("expected proxy unregistered")
	}

	// Second removal is a no-op
	RemoveEntity(e.World, p)
}

func TestResizeSpaceKeepsProxies(t *testing.T) {
	e := newTestWorld(t)
	enemy := CreateEnemy(e, 100, 100)
	old := components.Object.Get(enemy).Space

	ResizeSpace(e.World, 1600, 1200)

	spaceEntry, _ := components.Space.First(e.World)
	space := components.Space.Get(spaceEntry)
	if space == old {
		t.Fatal("expected a new space")
	}
	if got := components.Object.Get(enemy).Space; got != space {
		t.Error("expected proxy registered in the new space")
	}
}
