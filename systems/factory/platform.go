package factory

import (
	"github.com/splitsecond/splitsecond/archetypes"
	"github.com/splitsecond/splitsecond/components"
	"github.com/splitsecond/splitsecond/shared/collision"
	"github.com/splitsecond/splitsecond/shared/leveldata"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateMovingPlatform drives box back and forth along p.Offset.
func CreateMovingPlatform(ecs *ecs.ECS, box *collision.Box, p leveldata.Platform) *donburi.Entry {
	platform := archetypes.MovingPlatform.Spawn(ecs)
	box.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Box: box})

	// The platform moves using a *gween.Sequence of tweens over its progress,
	// out and back, forever.
	dur := float32(p.Duration)
	tw := gween.NewSequence(
		gween.New(0, 1, dur, ease.InOutSine),
		gween.New(1, 0, dur, ease.InOutSine),
	)
	tw.SetLoop(-1)

	components.Platform.SetValue(platform, components.PlatformData{
		Origin: box.Min(),
		Offset: p.Offset,
		Tween:  tw,
	})
	return platform
}
