package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData measures real time between ticks.
type ClockData struct {
	Last time.Time
	// Delta is the length of the current tick in seconds.
	Delta float64
}

var Clock = donburi.NewComponentType[ClockData]()
