package main

import (
	"flag"
	"log"

	"github.com/automoto/neon-arena/config"
	"github.com/automoto/neon-arena/fonts"
	"github.com/automoto/neon-arena/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	width, height int
	scene         Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
	g.resizeScene()
}

func NewGame() *Game {
	g := &Game{
		width:  config.C.Width,
		height: config.C.Height,
	}
	g.scene = scenes.NewArenaScene(g)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout follows the window size so the arena always fills the viewport.
// Sizes without area keep the previous layout.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if config.ValidateViewport(outsideWidth, outsideHeight) == nil &&
		(outsideWidth != g.width || outsideHeight != g.height) {
		g.width, g.height = outsideWidth, outsideHeight
		g.resizeScene()
	}
	return g.width, g.height
}

func (g *Game) resizeScene() {
	if r, ok := g.scene.(scenes.Resizer); ok {
		r.Resize(g.width, g.height)
	}
}

func main() {
	configPath := flag.String("config", "", "optional YAML file overriding gameplay tuning")
	width := flag.Int("width", 0, "viewport width (overrides config)")
	height := flag.Int("height", 0, "viewport height (overrides config)")
	seed := flag.Int64("seed", 0, "random seed for spawns and trails (0 = time based)")
	debug := flag.Bool("debug", false, "draw collision boxes (toggle in game with F3)")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		log.Printf("Loaded config from %s", *configPath)
	}
	if *width != 0 {
		config.C.Width = *width
	}
	if *height != 0 {
		config.C.Height = *height
	}
	config.Debug.Seed = *seed
	config.Debug.ShowProxies = *debug

	if err := config.ValidateViewport(config.C.Width, config.C.Height); err != nil {
		log.Fatalf("Invalid viewport: %v", err)
	}

	if err := fonts.LoadDefaults(config.HUD.FontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// One simulation step per display refresh
	ebiten.SetTPS(ebiten.SyncWithFPS)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
