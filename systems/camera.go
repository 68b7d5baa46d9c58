package systems

import (
	"github.com/splitsecond/splitsecond/components"
	"github.com/splitsecond/splitsecond/shared/followcam"
	"github.com/splitsecond/splitsecond/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLook turns the camera by this tick's look delta. It runs before
// UpdatePlayer so movement uses the fresh heading.
func UpdateLook(e *ecs.ECS) {
	rig := cameraRig(e)
	if rig == nil {
		return
	}
	input := getOrCreateInput(e)
	if input.LookX != 0 || input.LookY != 0 {
		rig.Look(input.LookX, input.LookY)
	}
}

// UpdateCamera eases the rig after the player has moved.
func UpdateCamera(e *ecs.ECS) {
	rig := cameraRig(e)
	if rig == nil {
		return
	}
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	rig.Update(player.Last, player.Input.Strafe, DeltaTime(e))
}

// SetSensitivity applies a mouse sensitivity to the live camera.
func SetSensitivity(e *ecs.ECS, degPerPixel float64) {
	entry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(entry)
	camera.Sensitivity = clampSensitivity(degPerPixel)
	camera.Rig.SetSensitivity(camera.Sensitivity)
}

func cameraRig(e *ecs.ECS) *followcam.Rig {
	entry, ok := components.Camera.First(e.World)
	if !ok {
		return nil
	}
	return components.Camera.Get(entry).Rig
}
