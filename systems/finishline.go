package systems

import (
	"log"
	"time"

	"github.com/splitsecond/splitsecond/components"
	cfg "github.com/splitsecond/splitsecond/config"
	"github.com/splitsecond/splitsecond/shared/collision"
	"github.com/splitsecond/splitsecond/shared/score"
	"github.com/splitsecond/splitsecond/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFinishLine checks for player collision with finish line and triggers level complete
func UpdateFinishLine(e *ecs.ECS) {
	// Skip if level is already complete
	levelComplete := GetOrCreateLevelComplete(e)
	if levelComplete.IsComplete {
		return
	}

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	body := components.Physics.Get(playerEntry).Body

	for _, box := range components.Space.Get(spaceEntry).Overlapping(body, collision.TagFinish) {
		finishLineEntry, ok := box.Data.(*donburi.Entry)
		if !ok || finishLineEntry == nil || !finishLineEntry.Valid() {
			continue
		}
		finishLine := components.FinishLine.Get(finishLineEntry)
		if finishLine.Activated {
			continue
		}
		finishLine.Activated = true
		CompleteLevel(e, components.Timer.Get(playerEntry).Elapsed)
		return
	}
}

// CompleteLevel freezes the run at elapsed, records the best time and starts
// the leaderboard round trip.
func CompleteLevel(e *ecs.ECS, elapsed time.Duration) {
	levelComplete := GetOrCreateLevelComplete(e)
	levelComplete.IsComplete = true
	levelComplete.FinalTime = elapsed
	levelComplete.Best = elapsed

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return
	}
	id := levelData.CurrentLevel.ID

	levelComplete.Best, levelComplete.NewBest = RecordBestTime(id, elapsed)
	levelData.Best = levelComplete.Best
	log.Printf("Level %s finished in %s", id, score.FormatTime(elapsed))

	if levelData.Leaderboard == nil {
		return
	}
	var req *score.CreateRequest
	if levelData.PlayerName != "" {
		req = score.NewCreateRequest(levelData.PlayerName, elapsed)
	}
	levelComplete.Board = levelData.Leaderboard.Post(id, req, cfg.Leaderboard.Limit)
}
