package systems

import (
	"time"

	"github.com/splitsecond/splitsecond/components"
	"github.com/splitsecond/splitsecond/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTimer advances the run clock. Wrapped in WithGameplayChecks, so the
// clock stops while paused and once the level is complete.
func UpdateTimer(e *ecs.ECS) {
	step := time.Duration(DeltaTime(e) * float64(time.Second))
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		components.Timer.Get(entry).Elapsed += step
	})
}

// Elapsed returns the player's run time.
func Elapsed(e *ecs.ECS) time.Duration {
	entry, ok := tags.Player.First(e.World)
	if !ok {
		return 0
	}
	return components.Timer.Get(entry).Elapsed
}
