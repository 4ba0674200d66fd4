package components

import "github.com/yohamta/donburi"

type EnemyData struct {
	Size  float64 // extent of the triangle marker, also the hit radius
	Speed float64
}

var Enemy = donburi.NewComponentType[EnemyData]()
