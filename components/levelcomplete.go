package components

import (
	"time"

	"github.com/splitsecond/splitsecond/network"
	"github.com/yohamta/donburi"
)

// LevelCompleteData stores the state of the level complete overlay
type LevelCompleteData struct {
	IsComplete bool
	FinalTime  time.Duration
	Best       time.Duration
	NewBest    bool
	// Board is nil when the leaderboard is disabled.
	Board *network.Board
}

var LevelComplete = donburi.NewComponentType[LevelCompleteData]()
