package components

import (
	"github.com/splitsecond/splitsecond/shared/collision"
	"github.com/splitsecond/splitsecond/shared/grapple"
	"github.com/splitsecond/splitsecond/shared/movement"
	"github.com/yohamta/donburi"
)

// PhysicsData holds the player's body and the two controllers that drive it.
// Grapple runs before Movement each tick.
type PhysicsData struct {
	Body     *collision.Body
	Movement *movement.Controller
	Grapple  *grapple.Controller
}

var Physics = donburi.NewComponentType[PhysicsData]()
