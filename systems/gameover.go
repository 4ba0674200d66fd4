package systems

import (
	"github.com/automoto/neon-arena/components"
	cfg "github.com/automoto/neon-arena/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateGameOver creates an UpdateGameOver system that calls onConfirm
// once the fade-in has finished and the confirm action is pressed.
func NewUpdateGameOver(onConfirm func()) ecs.System {
	return func(e *ecs.ECS) {
		gameOver := getGameOver(e)
		if gameOver == nil {
			return
		}
		if gameOver.Fade != nil {
			alpha, finished := gameOver.Fade.Update(float32(cfg.C.FrameStep / 1000))
			gameOver.Alpha = alpha
			if finished {
				gameOver.Fade = nil
				gameOver.Alpha = 1
			}
			return
		}

		if GetAction(e, cfg.ActionConfirm).JustPressed && onConfirm != nil {
			onConfirm()
		}
	}
}

// GameOverReady reports whether the fade-in has finished.
func GameOverReady(e *ecs.ECS) bool {
	gameOver := getGameOver(e)
	return gameOver != nil && gameOver.Fade == nil
}

// DrawGameOver darkens the screen by the current fade.
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	gameOver := getGameOver(e)
	if gameOver == nil {
		return
	}

	overlay := cfg.GameOver.OverlayColor
	overlay.R = uint8(float32(overlay.R) * gameOver.Alpha)
	overlay.G = uint8(float32(overlay.G) * gameOver.Alpha)
	overlay.B = uint8(float32(overlay.B) * gameOver.Alpha)
	overlay.A = uint8(float32(overlay.A) * gameOver.Alpha)

	vector.FillRect(
		screen,
		0, 0,
		float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy()),
		overlay,
		false,
	)
}

func getGameOver(e *ecs.ECS) *components.GameOverData {
	entry, ok := components.GameOver.First(e.World)
	if !ok {
		return nil
	}
	return components.GameOver.Get(entry)
}
