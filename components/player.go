package components

import (
	"github.com/yohamta/donburi"
)

// Direction is the label of the last movement key seen.
type Direction string

const (
	DirectionNone  Direction = ""
	DirectionUp    Direction = "up"
	DirectionDown  Direction = "down"
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

type PlayerData struct {
	Radius float64
	Speed  float64

	// Dash
	DashSpeed    float64
	DashDuration float64 // milliseconds
	DashTime     float64 // milliseconds since the dash started
	IsDashing    bool
	DashX        float64 // velocity locked in when the dash started
	DashY        float64

	LastDirection Direction
}

var Player = donburi.NewComponentType[PlayerData]()
