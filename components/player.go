package components

import (
	"github.com/splitsecond/splitsecond/shared/kinematics"
	"github.com/splitsecond/splitsecond/shared/movement"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	// Input is the snapshot the controllers read this tick.
	Input kinematics.InputSnapshot
	// Last is the movement snapshot after the previous tick.
	Last movement.Snapshot
}

var Player = donburi.NewComponentType[PlayerData]()
