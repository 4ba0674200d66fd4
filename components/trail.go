package components

import (
	"github.com/automoto/neon-arena/config"
	"github.com/yohamta/donburi"
)

// TrailSample is one point of a motion trail. Angle is the direction the
// sample drifts in.
type TrailSample struct {
	X, Y  float64
	Angle float64
}

// TrailData holds samples oldest first.
type TrailData struct {
	Samples []TrailSample
	Config  config.TrailConfig
}

var Trail = donburi.NewComponentType[TrailData]()
