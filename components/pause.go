package components

import "github.com/yohamta/donburi"

// PauseData stores the pause state of the arena
type PauseData struct {
	IsPaused bool
}

var Pause = donburi.NewComponentType[PauseData]()

// DebugData toggles the collision proxy overlay
type DebugData struct {
	ShowProxies bool
}

var Debug = donburi.NewComponentType[DebugData]()
