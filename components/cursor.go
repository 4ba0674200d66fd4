package components

import "github.com/yohamta/donburi"

type CursorData struct {
	X, Y          float64
	CrosshairSize float64
}

var Cursor = donburi.NewComponentType[CursorData]()
