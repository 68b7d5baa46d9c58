package components

import (
	"github.com/splitsecond/splitsecond/shared/followcam"
	"github.com/yohamta/donburi"
)

type CameraData struct {
	Rig *followcam.Rig
	// Sensitivity mirrors the rig's degrees per pixel so menus can show it.
	Sensitivity float64
}

var Camera = donburi.NewComponentType[CameraData]()
