package factory

import (
	"github.com/splitsecond/splitsecond/archetypes"
	"github.com/splitsecond/splitsecond/components"
	"github.com/splitsecond/splitsecond/shared/collision"
	"github.com/splitsecond/splitsecond/shared/kinematics"
	"github.com/splitsecond/splitsecond/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace builds the collision space for a level and spawns an entity
// for every wall, grapple point, finish line and moving platform in it.
func CreateSpace(ecs *ecs.ECS, level *leveldata.Level) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	s, platforms := collision.Build(level)
	components.Space.SetValue(space, components.SpaceData{Space: s})

	for _, box := range s.Boxes(kinematics.LayerWall) {
		CreateWall(ecs, box)
	}
	for _, box := range s.Boxes(kinematics.LayerGrapple) {
		CreateGrapplePoint(ecs, box)
	}
	for _, box := range s.Boxes(collision.TagFinish) {
		CreateFinishLine(ecs, box)
	}
	for i, box := range platforms {
		CreateMovingPlatform(ecs, box, level.Platforms[i])
	}
	return space
}
