package scenes

import (
	"sync"

	cfg "github.com/automoto/neon-arena/config"
	"github.com/automoto/neon-arena/systems"
	"github.com/automoto/neon-arena/systems/factory"
	"github.com/automoto/neon-arena/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameOverScene fades in over the final arena frame and waits for the player
// to start a new run.
type GameOverScene struct {
	ecs          *ecs.ECS
	arena        *ecs.ECS
	sceneChanger SceneChanger
	dialog       *ui.GameOverUI
	once         sync.Once
	restarting   bool
}

// NewGameOverScene creates a game over scene drawn on top of the ended arena.
func NewGameOverScene(sc SceneChanger, arena *ecs.ECS) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, arena: arena}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()

	if systems.GameOverReady(gs.ecs) {
		gs.dialog.Update()
	}
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Background)

	if gs.arena != nil {
		gs.arena.Draw(screen)
	}
	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)

	if systems.GameOverReady(gs.ecs) {
		gs.dialog.UI.Draw(screen)
	}
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())
	gs.dialog = ui.NewGameOverUI(gs.restart)

	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddSystem(systems.NewUpdateGameOver(gs.restart))

	gs.ecs.AddRenderer(cfg.Default, systems.DrawGameOver)

	factory.CreateGameOver(gs.ecs)
}

// restart replaces this scene with a brand-new arena.
func (gs *GameOverScene) restart() {
	if gs.restarting {
		return
	}
	gs.restarting = true
	gs.sceneChanger.ChangeScene(NewArenaScene(gs.sceneChanger))
}
