package components

import "github.com/yohamta/donburi"

// SpawnerData receives one signal per spawn timer firing.
type SpawnerData struct {
	Signals <-chan struct{}
	Spawned int
}

var Spawner = donburi.NewComponentType[SpawnerData]()
