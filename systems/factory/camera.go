package factory

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/splitsecond/splitsecond/archetypes"
	"github.com/splitsecond/splitsecond/components"
	cfg "github.com/splitsecond/splitsecond/config"
	"github.com/splitsecond/splitsecond/shared/followcam"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera places the follow camera on a player standing at feet.
func CreateCamera(ecs *ecs.ECS, feet mgl64.Vec3, yaw float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	rig := followcam.NewRig(cfg.Camera, feet)
	rig.SetYaw(yaw)
	components.Camera.Set(camera, &components.CameraData{Rig: rig, Sensitivity: cfg.Camera.Sensitivity})
	return camera
}
