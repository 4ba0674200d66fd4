package archetypes

import (
	"github.com/automoto/neon-arena/components"
	cfg "github.com/automoto/neon-arena/config"
	"github.com/automoto/neon-arena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Arena = newArchetype(
		components.Arena,
		components.Spawner,
	)
	Space = newArchetype(
		components.Space,
	)
	Input = newArchetype(
		components.Input,
	)
	Cursor = newArchetype(
		components.Cursor,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Position,
		components.Physics,
		components.Health,
		components.Trail,
		components.Object,
		components.Flash,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Position,
		components.Physics,
		components.Health,
		components.Trail,
		components.Object,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Position,
		components.Physics,
		components.Object,
	)
	GameOver = newArchetype(
		components.GameOver,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
