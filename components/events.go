package components

import (
	"github.com/yohamta/donburi/features/events"
)

// FireRequest is published by the input adapter once per fire click.
type FireRequest struct{}

// PlayerDamaged is published by the collision pass for every enemy that
// reached the player.
type PlayerDamaged struct {
	Amount    int
	Remaining int
}

var (
	FireRequested      = events.NewEventType[FireRequest]()
	PlayerDamagedEvent = events.NewEventType[PlayerDamaged]()
)
