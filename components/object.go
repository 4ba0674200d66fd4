package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the broad-phase collision proxy of an entity. The proxy is a
// square around the entity's circle and is re-synced from Position before
// every collision pass.
type ObjectData struct {
	*resolv.Object
	HalfExtent float64
}

var Object = donburi.NewComponentType[ObjectData]()

var Space = donburi.NewComponentType[resolv.Space]()
