package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// GameOverData stores the state of the game over screen
type GameOverData struct {
	Fade  *gween.Tween
	Alpha float32
}

// GameOver is the component type for game over screen state
var GameOver = donburi.NewComponentType[GameOverData]()

// FlashData tints the health readout after the player takes damage.
type FlashData struct {
	Tween *gween.Tween
	Alpha float32
}

var Flash = donburi.NewComponentType[FlashData]()
