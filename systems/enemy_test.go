package systems

import (
	"math"
	"testing"

	"github.com/automoto/neon-arena/components"
	cfg "github.com/automoto/neon-arena/config"
	"github.com/automoto/neon-arena/systems/factory"
)

func TestEnemyPursuit(t *testing.T) {
	e := newTestArena(t, 800, 600)
	factory.CreatePlayer(e, 400, 300)
	enemy := factory.CreateEnemy(e, -40, 150)

	// Recompute the heading every tick, as the system does
	wantX, wantY := -40.0, 150.0
	for i := 0; i < 20; i++ {
		angle := math.Atan2(300-wantY, 400-wantX)
		wantX += math.Cos(angle) * cfg.Enemy.Speed
		wantY += math.Sin(angle) * cfg.Enemy.Speed

		UpdateEnemies(e)
	}

	x, y := position(enemy)
	if math.Abs(x-wantX) > 1e-9 || math.Abs(y-wantY) > 1e-9 {
		t.Errorf("expected (%v, %v), got (%v, %v)", wantX, wantY, x, y)
	}

	// A static target is approached in a straight line
	start := math.Hypot(440, 150)
	if got := math.Hypot(400-x, 300-y); math.Abs(got-(start-20*cfg.Enemy.Speed)) > 1e-6 {
		t.Errorf("expected distance %v, got %v", start-20*cfg.Enemy.Speed, got)
	}
}

func TestEnemyFollowsMovingPlayer(t *testing.T) {
	e := newTestArena(t, 800, 600)
	player := factory.CreatePlayer(e, 400, 300)
	enemy := factory.CreateEnemy(e, 400, 100)

	UpdateEnemies(e)
	if x, y := position(enemy); x != 400 || y != 102 {
		t.Fatalf("expected enemy to move straight down to (400, 102), got (%v, %v)", x, y)
	}

	components.Position.Get(player).X = 700
	components.Position.Get(player).Y = 102
	UpdateEnemies(e)
	if x, y := position(enemy); x != 402 || math.Abs(y-102) > 1e-9 {
		t.Errorf("expected enemy to turn right to (402, 102), got (%v, %v)", x, y)
	}
}

func TestEnemyTrailCap(t *testing.T) {
	e := newTestArena(t, 800, 600)
	factory.CreatePlayer(e, 400, 300)
	enemy := factory.CreateEnemy(e, -40, 150)
	trail := components.Trail.Get(enemy)

	for i := 0; i < 300; i++ {
		UpdateEnemies(e)
		if len(trail.Samples) > cfg.Enemy.Trail.MaxSamples {
			t.Fatalf("tick %d: trail has %d samples", i, len(trail.Samples))
		}
	}
}

func TestEnemiesWithoutPlayerStayPut(t *testing.T) {
	e := newTestArena(t, 800, 600)
	enemy := factory.CreateEnemy(e, 10, 10)

	UpdateEnemies(e)
	if x, y := position(enemy); x != 10 || y != 10 {
		t.Errorf("expected enemy to stay at (10, 10), got (%v, %v)", x, y)
	}
}
