package archetypes

import (
	"github.com/splitsecond/splitsecond/components"
	cfg "github.com/splitsecond/splitsecond/config"
	"github.com/splitsecond/splitsecond/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Physics,
		components.Timer,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	GrapplePoint = newArchetype(
		tags.GrapplePoint,
		components.Object,
	)
	MovingPlatform = newArchetype(
		tags.Platform,
		components.Object,
		components.Platform,
	)
	FinishLine = newArchetype(
		tags.FinishLine,
		components.FinishLine,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
