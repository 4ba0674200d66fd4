package components

import (
	"math/rand"

	"github.com/yohamta/donburi"
)

// ArenaData is the per-run simulation state shared by all systems.
type ArenaData struct {
	Width  float64
	Height float64

	// Rand drives spawn positions and trail sampling
	Rand *rand.Rand

	Tick     int
	GameOver bool
}

var Arena = donburi.NewComponentType[ArenaData]()
