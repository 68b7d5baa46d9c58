package components

import (
	"time"

	"github.com/splitsecond/splitsecond/network"
	"github.com/splitsecond/splitsecond/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *leveldata.Level
	LevelIndex   int
	Levels       []*leveldata.Level

	// Best is the saved best time for CurrentLevel, zero when there is none.
	Best time.Duration

	// PlayerName is the name scores are submitted under.
	PlayerName string
	// Leaderboard is nil when scores are not submitted.
	Leaderboard *network.Client
}

var Level = donburi.NewComponentType[LevelData]()
