package systems

import (
	"math"

	"github.com/automoto/neon-arena/components"
	"github.com/automoto/neon-arena/systems/factory"
	"github.com/automoto/neon-arena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions resolves player/enemy and projectile/enemy contacts. All
// pairs are tested against positions at the start of the pass; destroyed
// entities are collected and removed once the pass is done.
func UpdateCollisions(ecs *ecs.ECS) {
	components.Object.Each(ecs.World, factory.SyncObject)

	playerEntry, hasPlayer := getPlayer(ecs)

	marked := newRemovalSet()
	damage := 0

	tags.Enemy.Each(ecs.World, func(enemyEntry *donburi.Entry) {
		obj := components.Object.Get(enemyEntry)
		check := obj.Check(0, 0, tags.ResolvPlayer, tags.ResolvProjectile)
		if check == nil {
			return
		}

		enemy := components.Enemy.Get(enemyEntry)
		enemyPos := components.Position.Get(enemyEntry)

		if hasPlayer && len(check.ObjectsByTags(tags.ResolvPlayer)) > 0 {
			player := components.Player.Get(playerEntry)
			playerPos := components.Position.Get(playerEntry)
			if overlaps(playerPos.X, playerPos.Y, enemyPos.X, enemyPos.Y, player.Radius+enemy.Size) {
				damage++
				marked.add(enemyEntry)
			}
		}

		for _, o := range check.ObjectsByTags(tags.ResolvProjectile) {
			projEntry, ok := o.Data.(*donburi.Entry)
			if !ok || !projEntry.Valid() {
				continue
			}
			proj := components.Projectile.Get(projEntry)
			projPos := components.Position.Get(projEntry)
			if overlaps(projPos.X, projPos.Y, enemyPos.X, enemyPos.Y, proj.Radius+enemy.Size) {
				marked.add(projEntry)
				marked.add(enemyEntry)
			}
		}
	})

	if damage > 0 {
		health := components.Health.Get(playerEntry)
		for i := 0; i < damage; i++ {
			health.Damage(1)
			components.PlayerDamagedEvent.Publish(ecs.World, components.PlayerDamaged{
				Amount:    1,
				Remaining: health.Current,
			})
		}
	}

	for _, e := range marked.entries {
		factory.RemoveEntity(ecs.World, e)
	}
}

// overlaps reports whether two centers are closer than dist.
func overlaps(ax, ay, bx, by, dist float64) bool {
	return math.Hypot(ax-bx, ay-by) < dist
}

// removalSet keeps marked entries in first-marked order without duplicates.
type removalSet struct {
	seen    map[donburi.Entity]struct{}
	entries []*donburi.Entry
}

func newRemovalSet() *removalSet {
	return &removalSet{seen: make(map[donburi.Entity]struct{})}
}

func (s *removalSet) add(e *donburi.Entry) {
	if _, ok := s.seen[e.Entity()]; ok {
		return
	}
	s.seen[e.Entity()] = struct{}{}
	s.entries = append(s.entries, e)
}
