package factory

import (
	"github.com/automoto/neon-arena/archetypes"
	"github.com/automoto/neon-arena/components"
	cfg "github.com/automoto/neon-arena/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGameOver creates the game over state with a fresh fade-in and the
// input entity the confirm action is read from.
func CreateGameOver(ecs *ecs.ECS) *donburi.Entry {
	e := archetypes.GameOver.Spawn(ecs)
	components.GameOver.SetValue(e, components.GameOverData{
		Fade: gween.New(0, 1, cfg.GameOver.FadeDuration, ease.OutCubic),
	})
	archetypes.Input.Spawn(ecs)
	return e
}
