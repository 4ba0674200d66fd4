package scenes

import (
	"math/rand"
	"testing"

	"github.com/automoto/neon-arena/components"
	cfg "github.com/automoto/neon-arena/config"
	"github.com/automoto/neon-arena/systems"
	"github.com/automoto/neon-arena/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTickArena builds an arena with the scene's system order and no device
// polling.
func newTickArena(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	registerArenaSystems(e, func(*ecs.ECS) {})
	factory.CreateArena(e, 800, 600, rand.New(rand.NewSource(1)), nil)
	return e
}

func TestCollisionSeesThisTicksMotion(t *testing.T) {
	e := newTickArena(t)
	factory.CreatePlayer(e, 100, 300)

	// 55px apart before motion, 46px after: a hit only if motion runs first
	enemy := factory.CreateEnemy(e, 600, 300)
	proj := factory.CreateProjectile(e, 545, 300, 600, 300)
	if gap := cfg.Projectile.Radius + cfg.Enemy.Size; gap != 48 {
		t.Fatalf("scenario assumes a 48px hit distance, got %v", gap)
	}

	e.Update()

	if enemy.Valid() || proj.Valid() {
		t.Errorf("expected both destroyed in the same tick, enemy alive=%v projectile alive=%v",
			enemy.Valid(), proj.Valid())
	}
}

func TestTerminationSeesThisTicksDamage(t *testing.T) {
	e := newTickArena(t)
	player := factory.CreatePlayer(e, 400, 300)
	components.Health.Get(player).Current = 1

	// 66px apart before the enemy moves, 64px after, against a 65px hit distance
	factory.CreateEnemy(e, 466, 300)

	e.Update()

	if got := components.Health.Get(player).Current; got != 0 {
		t.Fatalf("expected health 0, got %d", got)
	}
	if !systems.IsGameOver(e) {
		t.Error("expected game over in the tick the last hit landed")
	}
}

func TestTickCounterAdvancesOncePerUpdate(t *testing.T) {
	e := newTickArena(t)
	factory.CreatePlayer(e, 400, 300)

	for i := 0; i < 4; i++ {
		e.Update()
	}

	arena, ok := components.Arena.First(e.World)
	if !ok {
		t.Fatal("expected arena entity")
	}
	if got := components.Arena.Get(arena).Tick; got != 4 {
		t.Errorf("expected tick 4, got %d", got)
	}
}
