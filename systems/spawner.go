package systems

import (
	"context"
	"math/rand"
	"time"

	"github.com/automoto/neon-arena/components"
	cfg "github.com/automoto/neon-arena/config"
	"github.com/automoto/neon-arena/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// StartSpawnTimer sends a signal every interval until ctx is done. At most one
// signal is pending; a tick that finds the channel full is dropped.
func StartSpawnTimer(ctx context.Context, interval time.Duration) <-chan struct{} {
	signals := make(chan struct{}, 1)
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				select {
				case signals <- struct{}{}:
				default:
				}
			}
		}
	}()
	return signals
}

// UpdateSpawner drains pending spawn signals and creates one enemy per signal.
func UpdateSpawner(ecs *ecs.ECS) {
	e, ok := components.Spawner.First(ecs.World)
	if !ok {
		return
	}
	spawner := components.Spawner.Get(e)
	if spawner.Signals == nil {
		return
	}

	for {
		select {
		case _, open := <-spawner.Signals:
			if !open {
				spawner.Signals = nil
				return
			}
			SpawnEnemy(ecs)
			spawner.Spawned++
		default:
			return
		}
	}
}

// SpawnEnemy creates an enemy just outside a random edge of the viewport.
func SpawnEnemy(ecs *ecs.ECS) *donburi.Entry {
	arena := getArena(ecs)
	if arena == nil {
		return nil
	}
	x, y := spawnPosition(arena.Rand, arena.Width, arena.Height, cfg.Enemy.Size)
	return factory.CreateEnemy(ecs, x, y)
}

// spawnPosition picks a left/right edge with probability EdgeChance, otherwise
// a top/bottom edge. The coordinate along the edge is uniform.
func spawnPosition(rng *rand.Rand, width, height, size float64) (float64, float64) {
	if rng.Float64() < cfg.Spawner.EdgeChance {
		x := -size
		if rng.Float64() >= 0.5 {
			x = width + size
		}
		return x, rng.Float64() * height
	}

	y := -size
	if rng.Float64() >= 0.5 {
		y = height + size
	}
	return rng.Float64() * width, y
}
