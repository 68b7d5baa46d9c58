package systems

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/splitsecond/splitsecond/components"
	"github.com/splitsecond/splitsecond/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlatforms advances every moving platform's tween and moves its box.
// It runs before UpdatePlayer so grounded bodies get carried this tick.
func UpdatePlatforms(e *ecs.ECS) {
	dt := float32(DeltaTime(e))
	tags.Platform.Each(e.World, func(entry *donburi.Entry) {
		platform := components.Platform.Get(entry)
		progress, _, _ := platform.Tween.Update(dt)
		components.Object.Get(entry).MoveTo(platformPosition(platform, float64(progress)))
	})
}

func platformPosition(p *components.PlatformData, progress float64) mgl64.Vec3 {
	return p.Origin.Add(p.Offset.Mul(progress))
}
