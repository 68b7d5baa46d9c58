package systems

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/splitsecond/splitsecond/components"
	cfg "github.com/splitsecond/splitsecond/config"
	"github.com/splitsecond/splitsecond/shared/kinematics"
	"github.com/splitsecond/splitsecond/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer samples input into the player's snapshot and steps the grapple,
// then the movement controller.
func UpdatePlayer(e *ecs.ECS) {
	input := getOrCreateInput(e)
	rig := cameraRig(e)
	dt := DeltaTime(e)

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		physics := components.Physics.Get(entry)

		yaw := player.Input.Yaw
		if rig != nil {
			yaw = rig.Yaw()
		}
		player.Input = buildSnapshot(input, yaw)

		respawns := physics.Movement.Respawns()
		physics.Grapple.Update(dt)
		physics.Movement.Update(dt)
		player.Last = physics.Movement.Snapshot()

		if physics.Movement.Respawns() != respawns {
			physics.Grapple.Cancel()
			if rig != nil {
				rig.Snap(player.Last.Position)
			}
		}
	})
}

// RestartPlayer puts the player back on the respawn point with a fresh clock.
func RestartPlayer(e *ecs.ECS) {
	rig := cameraRig(e)
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		physics := components.Physics.Get(entry)
		player := components.Player.Get(entry)

		physics.Grapple.Cancel()
		physics.Movement.Respawn()
		player.Last = physics.Movement.Snapshot()
		components.Timer.Get(entry).Elapsed = 0

		if rig != nil {
			rig.Snap(player.Last.Position)
		}
	})
}

// buildSnapshot maps action state onto the controllers' input sample.
func buildSnapshot(input *components.InputData, yaw float64) kinematics.InputSnapshot {
	strafe := axis(input, cfg.ActionMoveLeft, cfg.ActionMoveRight)
	forward := axis(input, cfg.ActionMoveBack, cfg.ActionMoveForward)

	slide := GetAction(input, cfg.ActionSlide)
	grapple := GetAction(input, cfg.ActionGrapple)

	return kinematics.InputSnapshot{
		Move:            mgl64.Vec2{strafe, forward},
		Sprint:          input.Current[cfg.ActionSprint],
		SlidePressed:    slide.JustPressed,
		SlideReleased:   slide.JustReleased,
		JumpPressed:     GetAction(input, cfg.ActionJump).JustPressed,
		GrapplePressed:  grapple.JustPressed,
		GrappleReleased: grapple.JustReleased,
		Strafe:          strafe,
		Yaw:             yaw,
	}
}
