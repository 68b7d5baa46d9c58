package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// TimerData is the run clock. It only advances while gameplay systems run.
type TimerData struct {
	Elapsed time.Duration
}

var Timer = donburi.NewComponentType[TimerData]()
