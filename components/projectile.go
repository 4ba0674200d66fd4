package components

import "github.com/yohamta/donburi"

type ProjectileData struct {
	Radius float64
	Speed  float64
}

var Projectile = donburi.NewComponentType[ProjectileData]()
