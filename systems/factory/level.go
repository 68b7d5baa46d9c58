package factory

import (
	"github.com/splitsecond/splitsecond/archetypes"
	"github.com/splitsecond/splitsecond/components"
	"github.com/splitsecond/splitsecond/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevelAtIndex stores the level list and the level being played. An
// out of range index falls back to the first level.
func CreateLevelAtIndex(ecs *ecs.ECS, levels []*leveldata.Level, levelIndex int) *donburi.Entry {
	if len(levels) == 0 {
		panic("No levels found in assets/levels directory")
	}
	level := archetypes.Level.Spawn(ecs)

	// Clamp index to valid range
	if levelIndex < 0 || levelIndex >= len(levels) {
		levelIndex = 0
	}

	components.Level.Set(level, &components.LevelData{
		Levels:       levels,
		LevelIndex:   levelIndex,
		CurrentLevel: levels[levelIndex],
	})

	return level
}
