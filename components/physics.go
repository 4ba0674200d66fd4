package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Position is the center of an entity in viewport coordinates.
var Position = donburi.NewComponentType[math.Vec2]()

// PhysicsData is the per-tick displacement of an entity.
type PhysicsData struct {
	SpeedX float64
	SpeedY float64
}

var Physics = donburi.NewComponentType[PhysicsData]()
