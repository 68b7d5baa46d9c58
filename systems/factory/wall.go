package factory

import (
	"github.com/splitsecond/splitsecond/archetypes"
	"github.com/splitsecond/splitsecond/components"
	"github.com/splitsecond/splitsecond/shared/collision"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall links a wall-jumpable box to a new entity.
func CreateWall(ecs *ecs.ECS, box *collision.Box) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)
	box.Data = wall // Link for O(1) lookup
	components.Object.SetValue(wall, components.ObjectData{Box: box})
	return wall
}

// CreateGrapplePoint links a grapple target box to a new entity.
func CreateGrapplePoint(ecs *ecs.ECS, box *collision.Box) *donburi.Entry {
	point := archetypes.GrapplePoint.Spawn(ecs)
	box.Data = point
	components.Object.SetValue(point, components.ObjectData{Box: box})
	return point
}
