package factory

import (
	"github.com/splitsecond/splitsecond/archetypes"
	"github.com/splitsecond/splitsecond/components"
	cfg "github.com/splitsecond/splitsecond/config"
	"github.com/splitsecond/splitsecond/shared/collision"
	"github.com/splitsecond/splitsecond/shared/grapple"
	"github.com/splitsecond/splitsecond/shared/kinematics"
	"github.com/splitsecond/splitsecond/shared/leveldata"
	"github.com/splitsecond/splitsecond/shared/movement"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player at the level spawn. The controllers read the
// input snapshot stored on the player each tick; view aims the grapple.
func CreatePlayer(ecs *ecs.ECS, space *collision.Space, level *leveldata.Level, view kinematics.Viewpoint) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	body := space.NewBody(level.Spawn, cfg.Player.Radius, cfg.Movement.StandingHeight)
	body.StepHeight = cfg.Player.StepHeight

	input := kinematics.InputFunc(func() kinematics.InputSnapshot {
		return components.Player.Get(player).Input
	})
	mover := movement.NewController(cfg.Movement, body, space, input, kinematics.Point(level.Respawn), level.Spawn)
	hook := grapple.NewController(cfg.Grapple, mover, space, input, view)

	components.Player.SetValue(player, components.PlayerData{
		Input: kinematics.InputSnapshot{Yaw: level.SpawnYaw},
		Last:  mover.Snapshot(),
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Body:     body,
		Movement: mover,
		Grapple:  hook,
	})
	components.Timer.SetValue(player, components.TimerData{})

	return player
}
