package factory

import (
	"github.com/splitsecond/splitsecond/archetypes"
	"github.com/splitsecond/splitsecond/components"
	"github.com/splitsecond/splitsecond/shared/collision"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFinishLine creates a finish line entity around a trigger box
func CreateFinishLine(ecs *ecs.ECS, box *collision.Box) *donburi.Entry {
	finishLine := archetypes.FinishLine.Spawn(ecs)
	box.Data = finishLine

	components.Object.SetValue(finishLine, components.ObjectData{Box: box})
	components.FinishLine.SetValue(finishLine, components.FinishLineData{
		Activated: false,
	})

	return finishLine
}
