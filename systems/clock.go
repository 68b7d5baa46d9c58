package systems

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/splitsecond/splitsecond/components"
	cfg "github.com/splitsecond/splitsecond/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock measures the wall time since the previous tick. It runs first
// and is never paused, so resuming does not produce one huge step.
func UpdateClock(e *ecs.ECS) {
	clock := getOrCreateClock(e)
	now := time.Now()
	clock.Delta = tickDelta(clock.Last, now)
	clock.Last = now
}

// DeltaTime is the length of the current tick in seconds.
func DeltaTime(e *ecs.ECS) float64 {
	clock := getOrCreateClock(e)
	if clock.Delta <= 0 {
		return nominalDelta()
	}
	return clock.Delta
}

// tickDelta caps a single step so a stalled frame cannot tunnel the player
// through geometry.
func tickDelta(last, now time.Time) float64 {
	if last.IsZero() {
		return nominalDelta()
	}
	dt := now.Sub(last).Seconds()
	if dt <= 0 {
		return nominalDelta()
	}
	return min(dt, cfg.Player.MaxDeltaTime)
}

func nominalDelta() float64 {
	return min(1/float64(ebiten.TPS()), cfg.Player.MaxDeltaTime)
}

func getOrCreateClock(e *ecs.ECS) *components.ClockData {
	if _, ok := components.Clock.First(e.World); !ok {
		e.World.Entry(e.World.Create(components.Clock))
	}

	entry, _ := components.Clock.First(e.World)
	return components.Clock.Get(entry)
}
