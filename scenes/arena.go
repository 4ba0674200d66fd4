package scenes

import (
	"context"
	"log"
	"math/rand"
	"sync"
	"time"

	cfg "github.com/automoto/neon-arena/config"
	"github.com/automoto/neon-arena/systems"
	"github.com/automoto/neon-arena/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArenaScene runs one life of the arena. A new scene is a full restart.
type ArenaScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once

	width, height int
	stopSpawner   context.CancelFunc
}

// NewArenaScene creates an arena sized to the current viewport.
func NewArenaScene(sc SceneChanger) *ArenaScene {
	return &ArenaScene{
		sceneChanger: sc,
		width:        cfg.C.Width,
		height:       cfg.C.Height,
	}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.ecs.Update()

	if systems.IsGameOver(as.ecs) {
		as.stopSpawner()
		as.sceneChanger.ChangeScene(NewGameOverScene(as.sceneChanger, as.ecs))
	}
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Background)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

// Resize applies a new viewport size. Sizes without area are ignored.
func (as *ArenaScene) Resize(width, height int) {
	if width == as.width && height == as.height {
		return
	}
	if as.ecs != nil {
		if err := systems.ResizeArena(as.ecs, width, height); err != nil {
			log.Printf("Ignoring resize: %v", err)
			return
		}
	}
	as.width, as.height = width, height
}

func (as *ArenaScene) configure() {
	seed := cfg.Debug.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	ctx, cancel := context.WithCancel(context.Background())
	as.stopSpawner = cancel
	signals := systems.StartSpawnTimer(ctx, time.Duration(cfg.Spawner.IntervalMs)*time.Millisecond)

	ecs := ecs.NewECS(donburi.NewWorld())
	registerArenaSystems(ecs, systems.UpdateInput)

	ecs.AddRenderer(cfg.Default, systems.DrawArena)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)

	as.ecs = ecs

	w, h := float64(as.width), float64(as.height)
	factory.CreateArena(as.ecs, w, h, rng, signals)
	factory.CreatePlayer(as.ecs, w/2, h/2)

	log.Printf("Arena started: %dx%d, seed %d", as.width, as.height, seed)
}

// registerArenaSystems adds the per-tick systems in order. input polls the
// devices and must come first.
func registerArenaSystems(e *ecs.ECS, input ecs.System) {
	// Systems that always run
	e.AddSystem(input)
	e.AddSystem(systems.UpdatePause)
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateTick))

	// Queued spawn signals and fire requests, then motion, then collision
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateSpawner))
	e.AddSystem(systems.WithGameplayChecks(systems.NewFireHandler(e)))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateProjectiles))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateEnemies))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCollisions))
	e.AddSystem(systems.UpdateTermination)
	e.AddSystem(systems.NewHUDHandler(e))
}
